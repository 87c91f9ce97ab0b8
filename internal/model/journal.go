package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line (apunte) is one debit-or-credit movement against one account
// within an entry. Exactly one of Debit/Credit is nonzero.
type Line struct {
	AccountCode string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// Entry (asiento) is one balanced double-entry transaction. Number is
// assigned by the journal at acceptance time, is strictly increasing
// per entity, and is never reused; an accepted entry is immutable.
// Corrections are made via new reversing entries.
type Entry struct {
	ID       int
	EntityID int
	Number   int
	Date     time.Time
	Memo     string
	Lines    []Line
}

// TotalDebit sums the debit side of all lines.
func (e Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}
