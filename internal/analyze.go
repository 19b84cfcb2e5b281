package internal

import "fmt"

// DefaultPreviewRows caps the processed-data table when no override is given.
const DefaultPreviewRows = 20

// AnalyzeOptions tunes presentation-side details of a run.
type AnalyzeOptions struct {
	// PreviewRows caps the processed-data table; zero means DefaultPreviewRows.
	PreviewRows int
}

// Analyze runs the full reporting pass over a loaded statement: processed-row
// preview, category totals, the spending distribution, and — when at least
// two months are present — the month-over-month change report. All output
// goes through the presenter; Analyze itself computes and narrates.
func Analyze(txs []Transaction, p Presenter, opts AnalyzeOptions) {
	if len(txs) == 0 {
		p.ShowWarning("No transactions to analyze.")
		return
	}

	preview := opts.PreviewRows
	if preview <= 0 {
		preview = DefaultPreviewRows
	}
	rows := txs
	if len(rows) > preview {
		rows = rows[:preview]
	}
	p.ShowTable("Processed Data", rows)

	totals := CategoryTotals(txs)
	p.ShowTotals("Expenses by Category", totals)
	p.ShowChart("Expense Distribution by Category", totals)

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	if !ok {
		// Single-month data: nothing to compare, and saying so every run
		// would be noise.
		return
	}
	p.ShowText(fmt.Sprintf("Expense Changes: %s -> %s", delta.PrevMonth, delta.CurrMonth))
	for _, d := range delta.Deltas {
		p.ShowText(deltaMessage(d))
	}
}

// deltaMessage renders one category change: always the absolute value, two
// decimals.
func deltaMessage(d CategoryDelta) string {
	switch d.Direction {
	case DeltaIncrease:
		return fmt.Sprintf("Expenses for %s increased by %s", d.Category, d.Amount.StringFixed(2))
	case DeltaDecrease:
		return fmt.Sprintf("Expenses for %s decreased by %s", d.Category, d.Amount.Abs().StringFixed(2))
	default:
		return fmt.Sprintf("Expenses for %s remained unchanged", d.Category)
	}
}
