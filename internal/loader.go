package internal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// requiredColumns must all be present in the header, spelled exactly.
var requiredColumns = []string{"Date", "Description", "Amount"}

// ErrNoInput signals that neither a path nor an upload was supplied. It is
// deliberately not a LoadError: there is simply nothing to analyze, and the
// run ends without a failure.
var ErrNoInput = errors.New("no file path or uploaded file provided")

// LoadErrorKind distinguishes the ways a statement can fail to load.
type LoadErrorKind string

const (
	// KindParseFailure covers unreadable files and undecodable content.
	KindParseFailure LoadErrorKind = "parse-failure"
	// KindMissingColumns means the header lacks required column names.
	KindMissingColumns LoadErrorKind = "missing-columns"
)

// LoadError describes why a statement could not be loaded.
type LoadError struct {
	Kind LoadErrorKind
	msg  string
	err  error
}

func (e *LoadError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *LoadError) Unwrap() error {
	return e.err
}

func parseFailure(msg string, err error) *LoadError {
	return &LoadError{Kind: KindParseFailure, msg: msg, err: err}
}

func missingColumnsError(missing []string) *LoadError {
	return &LoadError{
		Kind: KindMissingColumns,
		msg: fmt.Sprintf("the file must contain columns: %s (missing: %s)",
			strings.Join(requiredColumns, ", "), strings.Join(missing, ", ")),
	}
}

// dateLayouts lists the accepted Date formats, most common first. Parsed
// values are normalized to midnight UTC so month bucketing never depends on
// a time-of-day or zone in the export.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"02.01.2006",
}

// Loader turns raw statement sources into validated, categorized transactions.
// Every outcome, success included, is reported through the presenter; errors
// are additionally returned so the caller can pick an exit code without
// reporting twice.
type Loader struct {
	categorizer *Categorizer
	presenter   Presenter
}

func NewLoader(c *Categorizer, p Presenter) *Loader {
	return &Loader{categorizer: c, presenter: p}
}

// Load dispatches on whichever source is present: a file path, an in-memory
// upload, or — when neither is given — ErrNoInput after a notice.
func (l *Loader) Load(path string, upload io.ReadSeeker) ([]Transaction, error) {
	switch {
	case path != "":
		return l.LoadFile(path)
	case upload != nil:
		return l.LoadUpload(upload)
	default:
		l.presenter.ShowText("No file path or uploaded file provided.")
		return nil, ErrNoInput
	}
}

// LoadFile loads a statement from disk. The source is picked by extension
// (.xlsx → workbook, anything else → delimited text with delimiter inference)
// unless the path carries an explicit source prefix like "xlsx:export.bin".
func (l *Loader) LoadFile(path string) ([]Transaction, error) {
	source, cleanPath := ParseFileArg(path)
	if source == "" {
		source = SourceForPath(cleanPath)
	}
	reader, err := GetReader(source)
	if err != nil {
		return nil, l.fail(parseFailure("unsupported statement source", err))
	}

	grid, err := reader.Read(cleanPath)
	if err != nil {
		return nil, l.fail(parseFailure(fmt.Sprintf("failed to load %s", cleanPath), err))
	}

	txs, lerr := l.process(grid)
	if lerr != nil {
		return nil, l.fail(lerr)
	}
	l.presenter.ShowText(fmt.Sprintf("Loaded %d transactions from %s", len(txs), cleanPath))
	return txs, nil
}

// LoadUpload loads a statement from a seekable in-memory buffer, trying comma
// first and tab after a rewind (see readUpload).
func (l *Loader) LoadUpload(r io.ReadSeeker) ([]Transaction, error) {
	grid, err := readUpload(r)
	if err != nil {
		return nil, l.fail(parseFailure("failed to parse uploaded statement", err))
	}

	txs, lerr := l.process(grid)
	if lerr != nil {
		return nil, l.fail(lerr)
	}
	l.presenter.ShowText(fmt.Sprintf("Loaded %d transactions from upload", len(txs)))
	return txs, nil
}

func (l *Loader) fail(e *LoadError) error {
	l.presenter.ShowError(e.Error())
	return e
}

// process runs the shared pipeline over a raw grid: header validation, row
// parsing, categorization, and the single invalid-row cleanup pass.
func (l *Loader) process(grid [][]string) ([]Transaction, *LoadError) {
	if len(grid) == 0 {
		return nil, parseFailure("statement contains no rows", nil)
	}

	col, missing := indexColumns(grid[0])
	if len(missing) > 0 {
		return nil, missingColumnsError(missing)
	}

	txs := make([]Transaction, 0, len(grid)-1)
	badAmounts := 0
	for _, row := range grid[1:] {
		if blankRow(row) {
			continue
		}

		amount, err := parseAmount(cell(row, col["Amount"]))
		if err != nil {
			badAmounts++
			continue
		}

		description := cell(row, col["Description"])
		txs = append(txs, Transaction{
			Date:        parseDateFlexible(cell(row, col["Date"])),
			Description: description,
			Amount:      amount,
			Category:    l.categorizer.Categorize(description),
		})
	}

	txs, dropped := DropInvalidDates(txs)
	if dropped > 0 {
		l.presenter.ShowWarning(fmt.Sprintf("Some dates were not recognized and will be excluded (%d rows)", dropped))
	}
	if badAmounts > 0 {
		l.presenter.ShowWarning(fmt.Sprintf("Some amounts were not numeric and will be excluded (%d rows)", badAmounts))
	}
	return txs, nil
}

// DropInvalidDates removes rows whose date failed to parse (the zero-time
// marker) and reports how many went. On an already-clean set it removes
// nothing and returns the set unchanged, so repeating the validation is a
// no-op.
func DropInvalidDates(txs []Transaction) ([]Transaction, int) {
	dropped := 0
	for _, tx := range txs {
		if tx.Date.IsZero() {
			dropped++
		}
	}
	if dropped == 0 {
		return txs, 0
	}
	clean := make([]Transaction, 0, len(txs)-dropped)
	for _, tx := range txs {
		if !tx.Date.IsZero() {
			clean = append(clean, tx)
		}
	}
	return clean, dropped
}

// indexColumns maps header names to positions and reports which required
// columns are absent. Names are matched exactly (case matters) after trimming
// surrounding whitespace; the first occurrence of a duplicated name wins.
func indexColumns(header []string) (map[string]int, []string) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := col[name]; !ok {
			col[name] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	return col, missing
}

// cell returns the trimmed value at idx, tolerating rows shorter than the
// header (workbook rows lose trailing empty cells).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDateFlexible tries each accepted layout in order. The zero time
// signals failure and doubles as the marker DropInvalidDates removes.
func parseDateFlexible(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// parseAmount handles the numeric formats banks actually export: surrounding
// space, space or comma thousands grouping, and comma decimal marks.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")
	switch {
	case strings.Contains(clean, ",") && strings.Contains(clean, "."):
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			// 1.234,56 — dots group, comma is the decimal mark
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		} else {
			// 1,234.56
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case strings.Contains(clean, ","):
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	return decimal.NewFromString(clean)
}
