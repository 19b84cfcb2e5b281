package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one statement row after loading: date parsed, amount numeric,
// category assigned. A zero Date marks a row whose date could not be parsed;
// such rows never survive loading (see DropInvalidDates).
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // signed: negative for expenses, positive for credits
	Category    string
}

// Month returns the year-month bucket of the transaction, e.g. "2024-03".
// The keys sort chronologically as plain strings.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}
