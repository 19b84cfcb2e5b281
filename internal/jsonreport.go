package internal

import (
	"encoding/json"
	"io"
)

// JSONPresenter buffers everything the run reports and renders it as one
// machine-readable document at the end, mirroring what the terminal shows.
type JSONPresenter struct {
	report jsonReport
}

func NewJSONPresenter() *JSONPresenter {
	return &JSONPresenter{}
}

type jsonReport struct {
	Messages []string    `json:"messages,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
	Tables   []jsonTable `json:"tables,omitempty"`
	Totals   []jsonTotal `json:"totals,omitempty"`
	Charts   []jsonChart `json:"charts,omitempty"`
}

type jsonTable struct {
	Title string            `json:"title"`
	Rows  []jsonTransaction `json:"rows"`
}

type jsonTransaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
}

type jsonTotal struct {
	Title      string         `json:"title"`
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type jsonChart struct {
	Title  string      `json:"title"`
	Shares []jsonShare `json:"shares"`
}

type jsonShare struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Percent  string `json:"percent"`
}

func (p *JSONPresenter) ShowText(msg string) {
	p.report.Messages = append(p.report.Messages, msg)
}

func (p *JSONPresenter) ShowWarning(msg string) {
	p.report.Warnings = append(p.report.Warnings, msg)
}

func (p *JSONPresenter) ShowError(msg string) {
	p.report.Errors = append(p.report.Errors, msg)
}

func (p *JSONPresenter) ShowTable(title string, txs []Transaction) {
	t := jsonTable{Title: title, Rows: make([]jsonTransaction, 0, len(txs))}
	for _, tx := range txs {
		t.Rows = append(t.Rows, jsonTransaction{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Category:    tx.Category,
		})
	}
	p.report.Tables = append(p.report.Tables, t)
}

func (p *JSONPresenter) ShowTotals(title string, totals []CategoryTotal) {
	block := jsonTotal{Title: title, Categories: make([]jsonCategory, 0, len(totals))}
	for _, ct := range totals {
		block.Categories = append(block.Categories, jsonCategory{
			Category: ct.Category,
			Total:    ct.Total.String(),
		})
	}
	p.report.Totals = append(p.report.Totals, block)
}

func (p *JSONPresenter) ShowChart(title string, totals []CategoryTotal) {
	chart := jsonChart{Title: title}
	for _, s := range Shares(totals) {
		chart.Shares = append(chart.Shares, jsonShare{
			Category: s.Category,
			Total:    s.Total.String(),
			Percent:  s.Percent.StringFixed(1),
		})
	}
	p.report.Charts = append(p.report.Charts, chart)
}

// Render writes the collected report as indented JSON.
func (p *JSONPresenter) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.report)
}
