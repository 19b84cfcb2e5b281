package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// recordingPresenter captures every presenter call so tests can assert on
// what the pipeline reported and in which order.
type recordingPresenter struct {
	calls    []string // method order: "text", "warning", "error", "table", "totals", "chart"
	texts    []string
	warnings []string
	errors   []string
	tables   []recordedTable
	totals   []recordedTotals
	charts   []recordedTotals
}

type recordedTable struct {
	title string
	txs   []Transaction
}

type recordedTotals struct {
	title  string
	totals []CategoryTotal
}

func (r *recordingPresenter) ShowText(msg string) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, msg)
}

func (r *recordingPresenter) ShowWarning(msg string) {
	r.calls = append(r.calls, "warning")
	r.warnings = append(r.warnings, msg)
}

func (r *recordingPresenter) ShowError(msg string) {
	r.calls = append(r.calls, "error")
	r.errors = append(r.errors, msg)
}

func (r *recordingPresenter) ShowTable(title string, txs []Transaction) {
	r.calls = append(r.calls, "table")
	r.tables = append(r.tables, recordedTable{title: title, txs: txs})
}

func (r *recordingPresenter) ShowTotals(title string, totals []CategoryTotal) {
	r.calls = append(r.calls, "totals")
	r.totals = append(r.totals, recordedTotals{title: title, totals: totals})
}

func (r *recordingPresenter) ShowChart(title string, totals []CategoryTotal) {
	r.calls = append(r.calls, "chart")
	r.charts = append(r.charts, recordedTotals{title: title, totals: totals})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(d time.Time, description, category, amount string) Transaction {
	return Transaction{Date: d, Description: description, Category: category, Amount: dec(amount)}
}
