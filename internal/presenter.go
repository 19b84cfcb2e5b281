package internal

// Presenter receives everything the analysis has to report. Calls are fire and
// forget: the pipeline never reads anything back, so terminal output, JSON
// reports and test recorders all plug in the same way.
type Presenter interface {
	// ShowText reports a neutral status message.
	ShowText(msg string)
	// ShowWarning reports a recoverable problem, e.g. rows that were dropped.
	ShowWarning(msg string)
	// ShowError reports a problem that aborts the current run.
	ShowError(msg string)
	// ShowTable renders processed transaction rows.
	ShowTable(title string, txs []Transaction)
	// ShowTotals renders per-category sums in display order.
	ShowTotals(title string, totals []CategoryTotal)
	// ShowChart renders each category's share of the total spend.
	ShowChart(title string, totals []CategoryTotal)
}
