package internal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTotalsOrdering(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 1), "coffee", "Food", "-10.00"),
		tx(date(2024, 1, 2), "taxi", "Transport", "-30.00"),
		tx(date(2024, 1, 3), "snack", "Food", "-5.00"),
		tx(date(2024, 1, 4), "salary", "Other", "1000.00"),
	}

	totals := CategoryTotals(txs)
	require.Len(t, totals, 3)

	// Descending by summed amount.
	assert.Equal(t, "Other", totals[0].Category)
	assert.True(t, dec("1000.00").Equal(totals[0].Total))
	assert.Equal(t, "Food", totals[1].Category)
	assert.True(t, dec("-15.00").Equal(totals[1].Total))
	assert.Equal(t, "Transport", totals[2].Category)
	assert.True(t, dec("-30.00").Equal(totals[2].Total))
}

func TestCategoryTotalsTieBreakAlphabetical(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 1), "b", "Transport", "-20.00"),
		tx(date(2024, 1, 2), "a", "Food", "-20.00"),
		tx(date(2024, 1, 3), "c", "Bills", "-20.00"),
	}

	totals := CategoryTotals(txs)
	require.Len(t, totals, 3)
	assert.Equal(t, "Bills", totals[0].Category)
	assert.Equal(t, "Food", totals[1].Category)
	assert.Equal(t, "Transport", totals[2].Category)
}

// Sums are exact: no float drift on amounts like 0.1 + 0.2.
func TestCategoryTotalsExactArithmetic(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 1), "a", "Food", "0.1"),
		tx(date(2024, 1, 2), "b", "Food", "0.2"),
	}

	totals := CategoryTotals(txs)
	require.Len(t, totals, 1)
	assert.True(t, dec("0.3").Equal(totals[0].Total), "got %s", totals[0].Total)
}

func TestCategoryTotalsEmpty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
}

func TestMonthlyTotalsDenseMatrix(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 5), "groceries", "Food", "-100.00"),
		tx(date(2024, 2, 5), "taxi", "Transport", "-40.00"),
	}

	m := MonthlyTotals(txs)
	assert.Equal(t, []string{"2024-01", "2024-02"}, m.Months)
	assert.Equal(t, []string{"Food", "Transport"}, m.Categories)

	// Every month has a cell for every category, zero where nothing landed.
	assert.True(t, dec("-100.00").Equal(m.Total("2024-01", "Food")))
	assert.True(t, m.Total("2024-01", "Transport").IsZero())
	assert.True(t, m.Total("2024-02", "Food").IsZero())
	assert.True(t, dec("-40.00").Equal(m.Total("2024-02", "Transport")))
}

func TestMonthlyTotalsMonthOrderIsChronological(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 12, 1), "a", "Food", "-1.00"),
		tx(date(2024, 2, 1), "b", "Food", "-1.00"),
		tx(date(2023, 11, 1), "c", "Food", "-1.00"),
	}

	m := MonthlyTotals(txs)
	assert.Equal(t, []string{"2023-11", "2024-02", "2024-12"}, m.Months)
}

func TestMonthOverMonthDelta(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 3), "groceries", "Food", "-100.00"),
		tx(date(2024, 1, 9), "taxi", "Transport", "-40.00"),
		tx(date(2024, 1, 15), "internet", "Bills", "-45.00"),
		tx(date(2024, 2, 3), "groceries", "Food", "-130.00"),
		tx(date(2024, 2, 9), "metro", "Transport", "-25.00"),
		tx(date(2024, 2, 15), "internet", "Bills", "-45.00"),
	}

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	require.True(t, ok)
	assert.Equal(t, "2024-01", delta.PrevMonth)
	assert.Equal(t, "2024-02", delta.CurrMonth)
	require.Len(t, delta.Deltas, 3)

	byName := map[string]CategoryDelta{}
	for _, d := range delta.Deltas {
		byName[d.Category] = d
	}

	// Spending became more negative: the signed sum decreased.
	assert.Equal(t, DeltaDecrease, byName["Food"].Direction)
	assert.True(t, dec("-30.00").Equal(byName["Food"].Amount))

	assert.Equal(t, DeltaIncrease, byName["Transport"].Direction)
	assert.True(t, dec("15.00").Equal(byName["Transport"].Amount))

	assert.Equal(t, DeltaUnchanged, byName["Bills"].Direction)
	assert.True(t, byName["Bills"].Amount.IsZero())
}

// Statements that export expenses as positive magnitudes work the same way:
// the delta is plain signed arithmetic on whatever convention the file uses.
func TestMonthOverMonthDeltaPositiveAmounts(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 10), "groceries", "Food", "100.00"),
		tx(date(2024, 2, 10), "groceries", "Food", "80.00"),
		tx(date(2024, 2, 11), "taxi", "Transport", "20.00"),
	}

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	require.True(t, ok)
	assert.Equal(t, "2024-01", delta.PrevMonth)
	assert.Equal(t, "2024-02", delta.CurrMonth)
	require.Len(t, delta.Deltas, 2)

	assert.Equal(t, "Food", delta.Deltas[0].Category)
	assert.Equal(t, DeltaDecrease, delta.Deltas[0].Direction)
	assert.True(t, dec("-20.00").Equal(delta.Deltas[0].Amount))

	assert.Equal(t, "Transport", delta.Deltas[1].Category)
	assert.Equal(t, DeltaIncrease, delta.Deltas[1].Direction)
	assert.True(t, dec("20.00").Equal(delta.Deltas[1].Amount))
}

func TestMonthOverMonthDeltaSingleMonth(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 3), "groceries", "Food", "-100.00"),
		tx(date(2024, 1, 9), "taxi", "Transport", "-40.00"),
	}

	_, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	assert.False(t, ok)
}

func TestMonthOverMonthDeltaUsesLatestTwoMonths(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 1), "a", "Food", "-999.00"),
		tx(date(2024, 2, 1), "b", "Food", "-100.00"),
		tx(date(2024, 3, 1), "c", "Food", "-160.00"),
	}

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	require.True(t, ok)
	assert.Equal(t, "2024-02", delta.PrevMonth)
	assert.Equal(t, "2024-03", delta.CurrMonth)
	require.Len(t, delta.Deltas, 1)
	assert.True(t, dec("-60.00").Equal(delta.Deltas[0].Amount))
}

func TestMonthOverMonthDeltaCoversCategoryUnion(t *testing.T) {
	// Food exists only in January, Transport only in February; both must get
	// a delta against a zero cell.
	txs := []Transaction{
		tx(date(2024, 1, 1), "groceries", "Food", "-100.00"),
		tx(date(2024, 2, 1), "taxi", "Transport", "-40.00"),
	}

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	require.True(t, ok)
	require.Len(t, delta.Deltas, 2)

	assert.Equal(t, "Food", delta.Deltas[0].Category)
	assert.True(t, dec("100.00").Equal(delta.Deltas[0].Amount))
	assert.Equal(t, DeltaIncrease, delta.Deltas[0].Direction)

	assert.Equal(t, "Transport", delta.Deltas[1].Category)
	assert.True(t, dec("-40.00").Equal(delta.Deltas[1].Amount))
	assert.Equal(t, DeltaDecrease, delta.Deltas[1].Direction)
}

// Offsetting transactions net to exactly zero and classify as unchanged;
// there is no tolerance band around zero.
func TestMonthOverMonthDeltaExactZero(t *testing.T) {
	txs := []Transaction{
		tx(date(2024, 1, 1), "a", "Food", "-10.00"),
		tx(date(2024, 2, 1), "b", "Food", "-15.00"),
		tx(date(2024, 2, 2), "refund", "Food", "5.00"),
	}

	delta, ok := MonthOverMonthDelta(MonthlyTotals(txs))
	require.True(t, ok)
	require.Len(t, delta.Deltas, 1)
	assert.Equal(t, DeltaUnchanged, delta.Deltas[0].Direction)
	assert.True(t, delta.Deltas[0].Amount.IsZero())
}

func TestClassifyDelta(t *testing.T) {
	assert.Equal(t, DeltaIncrease, classifyDelta(dec("0.01")))
	assert.Equal(t, DeltaDecrease, classifyDelta(dec("-0.01")))
	assert.Equal(t, DeltaUnchanged, classifyDelta(decimal.Zero))
	assert.Equal(t, DeltaUnchanged, classifyDelta(dec("5.00").Sub(dec("5.00"))))
}

func TestShares(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Food", Total: dec("-60.00")},
		{Category: "Transport", Total: dec("-30.00")},
		{Category: "Other", Total: dec("10.00")},
	}

	shares := Shares(totals)
	require.Len(t, shares, 3)

	// Percentages run over absolute values: 60 + 30 + 10 = 100.
	assert.Equal(t, "Food", shares[0].Category)
	assert.Equal(t, "60", shares[0].Percent.String())
	assert.Equal(t, "30", shares[1].Percent.String())
	assert.Equal(t, "10", shares[2].Percent.String())
}

func TestSharesZeroGrandTotal(t *testing.T) {
	assert.Nil(t, Shares(nil))
	assert.Nil(t, Shares([]CategoryTotal{{Category: "Food", Total: decimal.Zero}}))
}
