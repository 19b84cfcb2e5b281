package internal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the per-category spending summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotals sums amounts per category, ordered by descending total.
// Categories with exactly equal totals keep alphabetical order so the result
// is deterministic.
func CategoryTotals(txs []Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for name, sum := range sums {
		totals = append(totals, CategoryTotal{Category: name, Total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// MonthlyMatrix holds per-month, per-category sums. The matrix is dense:
// every (month, category) pair across the seen months and the category union
// has a cell, zero-filled where no transactions landed, so delta computation
// never meets a missing key.
type MonthlyMatrix struct {
	Months     []string // chronological "2006-01" keys
	Categories []string // alphabetical union across all months
	cells      map[string]map[string]decimal.Decimal
}

// MonthlyTotals buckets transactions into the dense month × category matrix.
func MonthlyTotals(txs []Transaction) *MonthlyMatrix {
	m := &MonthlyMatrix{cells: make(map[string]map[string]decimal.Decimal)}

	categories := make(map[string]bool)
	for _, tx := range txs {
		month := tx.Month()
		if m.cells[month] == nil {
			m.cells[month] = make(map[string]decimal.Decimal)
			m.Months = append(m.Months, month)
		}
		m.cells[month][tx.Category] = m.cells[month][tx.Category].Add(tx.Amount)
		categories[tx.Category] = true
	}
	sort.Strings(m.Months) // "2006-01" keys sort chronologically

	for name := range categories {
		m.Categories = append(m.Categories, name)
	}
	sort.Strings(m.Categories)

	for _, month := range m.Months {
		for _, name := range m.Categories {
			if _, ok := m.cells[month][name]; !ok {
				m.cells[month][name] = decimal.Zero
			}
		}
	}
	return m
}

// Total returns the matrix cell; anything outside the matrix is zero.
func (m *MonthlyMatrix) Total(month, category string) decimal.Decimal {
	return m.cells[month][category]
}

// DeltaDirection classifies a month-over-month change.
type DeltaDirection string

const (
	DeltaIncrease  DeltaDirection = "increase"
	DeltaDecrease  DeltaDirection = "decrease"
	DeltaUnchanged DeltaDirection = "unchanged"
)

// CategoryDelta is the signed spend change for one category between the two
// most recent months.
type CategoryDelta struct {
	Category  string
	Amount    decimal.Decimal
	Direction DeltaDirection
}

// MonthDelta compares the two chronologically latest months in the matrix.
type MonthDelta struct {
	PrevMonth string
	CurrMonth string
	Deltas    []CategoryDelta // one per matrix category, alphabetical
}

// MonthOverMonthDelta reports the spend change between the two most recent
// months. ok is false when the matrix spans fewer than two months: there is
// nothing to compare, which is not an error.
func MonthOverMonthDelta(m *MonthlyMatrix) (MonthDelta, bool) {
	if len(m.Months) < 2 {
		return MonthDelta{}, false
	}

	curr := m.Months[len(m.Months)-1]
	prev := m.Months[len(m.Months)-2]
	delta := MonthDelta{PrevMonth: prev, CurrMonth: curr}
	for _, name := range m.Categories {
		change := m.Total(curr, name).Sub(m.Total(prev, name))
		delta.Deltas = append(delta.Deltas, CategoryDelta{
			Category:  name,
			Amount:    change,
			Direction: classifyDelta(change),
		})
	}
	return delta, true
}

// classifyDelta is a literal sign check: only an exactly-zero change counts
// as unchanged, there is no epsilon band.
func classifyDelta(change decimal.Decimal) DeltaDirection {
	switch change.Sign() {
	case 1:
		return DeltaIncrease
	case -1:
		return DeltaDecrease
	default:
		return DeltaUnchanged
	}
}

// Share is one slice of the spending distribution: a category's portion of
// the total absolute spend.
type Share struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal // 0–100, full precision; presenters round
}

// Shares converts totals into distribution slices over absolute sums, so
// refunds don't flip the scale. A zero grand total yields nil: nothing to
// chart.
func Shares(totals []CategoryTotal) []Share {
	grand := decimal.Zero
	for _, ct := range totals {
		grand = grand.Add(ct.Total.Abs())
	}
	if grand.IsZero() {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	shares := make([]Share, 0, len(totals))
	for _, ct := range totals {
		shares = append(shares, Share{
			Category: ct.Category,
			Total:    ct.Total,
			Percent:  ct.Total.Abs().Mul(hundred).Div(grand),
		})
	}
	return shares
}
