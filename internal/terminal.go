package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// DefaultChartWidth is the bar length of a 100% share in the distribution
// chart.
const DefaultChartWidth = 40

// TerminalPresenter renders the analysis for a terminal: rounded tables with
// right-aligned amounts, colored warning/error lines, and a proportional bar
// chart for the spending distribution.
type TerminalPresenter struct {
	Out        io.Writer
	Currency   Currency
	ChartWidth int
}

func NewTerminalPresenter(out io.Writer, currency Currency) *TerminalPresenter {
	return &TerminalPresenter{Out: out, Currency: currency, ChartWidth: DefaultChartWidth}
}

func (p *TerminalPresenter) ShowText(msg string) {
	fmt.Fprintln(p.Out, msg)
}

func (p *TerminalPresenter) ShowWarning(msg string) {
	fmt.Fprintln(p.Out, text.FgYellow.Sprint("Warning: "+msg))
}

func (p *TerminalPresenter) ShowError(msg string) {
	fmt.Fprintln(p.Out, text.FgRed.Sprint("Error: "+msg))
}

// ShowTable renders processed transaction rows.
func (p *TerminalPresenter) ShowTable(title string, txs []Transaction) {
	p.title(title)
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.AppendHeader(table.Row{"Date", "Description", "Amount", "Category"})
	for _, tx := range txs {
		t.AppendRow(table.Row{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			p.Currency.Format(tx.Amount),
			tx.Category,
		})
	}
	applyTableStyle(t, 3)
	t.Render()
}

// ShowTotals renders the per-category sums with a grand-total footer.
func (p *TerminalPresenter) ShowTotals(title string, totals []CategoryTotal) {
	p.title(title)
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.AppendHeader(table.Row{"Category", "Total"})
	grand := decimal.Zero
	for _, ct := range totals {
		t.AppendRow(table.Row{ct.Category, p.Currency.Format(ct.Total)})
		grand = grand.Add(ct.Total)
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(p.Currency.Format(grand))})
	applyTableStyle(t, 2)
	t.Render()
}

// ShowChart draws each category's share of the total absolute spend as a bar
// with a one-decimal percentage.
func (p *TerminalPresenter) ShowChart(title string, totals []CategoryTotal) {
	p.title(title)
	shares := Shares(totals)
	if len(shares) == 0 {
		fmt.Fprintln(p.Out, "(no spending to chart)")
		return
	}

	width := p.ChartWidth
	if width <= 0 {
		width = DefaultChartWidth
	}
	nameWidth := 0
	for _, s := range shares {
		if len(s.Category) > nameWidth {
			nameWidth = len(s.Category)
		}
	}

	scale := decimal.NewFromInt(int64(width))
	for _, s := range shares {
		barLen := int(s.Percent.Mul(scale).Div(decimal.NewFromInt(100)).Round(0).IntPart())
		if barLen > width {
			barLen = width
		}
		fmt.Fprintf(p.Out, "%-*s %s %s%%\n",
			nameWidth, s.Category,
			text.FgCyan.Sprint(strings.Repeat("█", barLen)),
			s.Percent.StringFixed(1))
	}
}

func (p *TerminalPresenter) title(s string) {
	fmt.Fprintf(p.Out, "\n%s\n", text.Bold.Sprint(s))
}

// applyTableStyle sets the shared look: rounded borders, headers and footers
// left as written, the amount column right-aligned.
func applyTableStyle(t table.Writer, amountCol int) {
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: amountCol, Align: text.AlignRight},
	})
}
