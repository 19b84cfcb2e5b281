package internal

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Source names for the reader registry.
const (
	SourceDelimited = "delimited"
	SourceXLSX      = "xlsx"
)

// Reader turns a statement file into a raw cell grid, header row included.
// Readers only deal with container formats; all semantics (column validation,
// date and amount parsing, categorization) live in the Loader so every source
// goes through the same pipeline.
type Reader interface {
	Read(path string) ([][]string, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) ([][]string, error)

func (f ReaderFunc) Read(path string) ([][]string, error) {
	return f(path)
}

// readers is the registry of available statement readers
var readers = map[string]Reader{}

// RegisterReader registers a reader under the given source name
func RegisterReader(name string, r Reader) {
	readers[name] = r
}

// GetReader returns the reader for the given source name
func GetReader(source string) (Reader, error) {
	r, ok := readers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return r, nil
}

// AvailableSources returns the registered source names
func AvailableSources() []string {
	var sources []string
	for name := range readers {
		sources = append(sources, name)
	}
	return sources
}

// IsKnownSource returns true if the name is a registered source
func IsKnownSource(name string) bool {
	_, ok := readers[name]
	return ok
}

// ParseFileArg splits a file argument that may carry a source prefix.
// Returns (source, path); source is empty when no valid prefix is present.
// Example: "xlsx:export.bin" → ("xlsx", "export.bin")
// Example: "statement.csv" → ("", "statement.csv")
// Example: "C:\path\file.csv" → ("", "C:\path\file.csv") // Windows path
func ParseFileArg(arg string) (source, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownSource(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// SourceForPath picks the default source for a path by extension.
func SourceForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return SourceXLSX
	}
	return SourceDelimited
}

// readDelimitedFile reads a comma/tab/semicolon separated statement, inferring
// the delimiter from the header line.
func readDelimitedFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return parseDelimited(bytes.NewReader(data), sniffDelimiter(data))
}

// sniffDelimiter counts candidate separators in the header line and picks the
// most frequent one. Comma wins ties, being the most common export format.
func sniffDelimiter(data []byte) rune {
	header := data
	if idx := bytes.IndexByte(header, '\n'); idx != -1 {
		header = header[:idx]
	}
	best := ','
	bestCount := bytes.Count(header, []byte{','})
	for _, cand := range []byte{'\t', ';'} {
		if n := bytes.Count(header, []byte{cand}); n > bestCount {
			best = rune(cand)
			bestCount = n
		}
	}
	return best
}

func parseDelimited(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	return cr.ReadAll()
}

// readUpload parses an in-memory statement buffer. Uploads carry no file name
// to infer a format from, so the reader tries comma first and retries with tab
// after rewinding. An attempt only counts as successful if it yields at least
// two columns: tab-separated content splits into one comma-column per line
// without any reader error, and a one-column grid can never hold a statement.
func readUpload(r io.ReadSeeker) ([][]string, error) {
	commaGrid, commaErr := parseDelimited(r, ',')
	if usableGrid(commaGrid, commaErr) {
		return commaGrid, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding upload for tab retry: %w", err)
	}
	tabGrid, tabErr := parseDelimited(r, '\t')
	if usableGrid(tabGrid, tabErr) {
		return tabGrid, nil
	}

	// Neither delimiter produced a plausible grid. If one of them at least
	// parsed, hand that grid on so column validation can name what is
	// missing; otherwise report both parse failures.
	switch {
	case commaErr == nil:
		return commaGrid, nil
	case tabErr == nil:
		return tabGrid, nil
	default:
		return nil, fmt.Errorf("comma attempt failed (%v); tab attempt failed: %w", commaErr, tabErr)
	}
}

func usableGrid(grid [][]string, err error) bool {
	return err == nil && len(grid) > 0 && len(grid[0]) >= 2
}

// readXLSXFile reads the first sheet of a workbook as a cell grid. Fully empty
// leading rows (spreadsheet padding above the header) are dropped.
func readXLSXFile(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	for len(rows) > 0 && blankRow(rows[0]) {
		rows = rows[1:]
	}
	return rows, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func init() {
	// Register built-in readers
	RegisterReader(SourceDelimited, ReaderFunc(readDelimitedFile))
	RegisterReader(SourceXLSX, ReaderFunc(readXLSXFile))
}
