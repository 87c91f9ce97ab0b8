package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSide is the accounting polarity of a net balance.
type BalanceSide string

const (
	SideDebtor   BalanceSide = "deudor"
	SideCreditor BalanceSide = "acreedor"
)

// Movement is one ledger line as seen from an account's perspective.
// Movements are derived from the journal on demand and carry no
// independent identity.
type Movement struct {
	Date   time.Time
	Memo   string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// AccountBalance is the projected position of one account: debit and
// credit totals, their net, and the side that net falls on given the
// account's class.
type AccountBalance struct {
	AccountCode string
	TotalDebit  decimal.Decimal
	TotalHaber  decimal.Decimal
	Net         decimal.Decimal // TotalDebit - TotalHaber
	Side        BalanceSide
}
