// Package ledger derives the general ledger (libro mayor) from the
// journal by replay. Projection is a pure read: it holds no state of
// its own and running it twice over an unchanged journal yields
// identical results.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// ClassLookup resolves an account code to its class, used to pick the
// debtor/creditor polarity of a net balance.
type ClassLookup interface {
	ClassOf(code string) model.AccountClass
}

// Filter restricts a projection. Zero values mean no restriction.
type Filter struct {
	AccountCode string
	From        time.Time
	To          time.Time
}

func (f Filter) matchesDate(d time.Time) bool {
	if !f.From.IsZero() && d.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && d.After(f.To) {
		return false
	}
	return true
}

// AccountLedger is one account's projected view: its chronological
// movements plus the accumulated balance.
type AccountLedger struct {
	Balance   model.AccountBalance
	Movements []model.Movement
}

// Project replays entries in sequence order and buckets every line
// under its account code. For each bucket it accumulates debit/haber
// totals, computes net = debit - haber, and assigns the balance side
// by account-class polarity: asset and expense accounts are debtor on
// a nonnegative net; liability, equity and income accounts are
// creditor on a nonpositive net.
func Project(entries []model.Entry, classes ClassLookup, filter Filter) map[string]*AccountLedger {
	buckets := make(map[string]*AccountLedger)

	for _, e := range entries {
		if !filter.matchesDate(e.Date) {
			continue
		}
		for _, line := range e.Lines {
			if filter.AccountCode != "" && line.AccountCode != filter.AccountCode {
				continue
			}

			b, ok := buckets[line.AccountCode]
			if !ok {
				b = &AccountLedger{
					Balance: model.AccountBalance{
						AccountCode: line.AccountCode,
						TotalDebit:  decimal.Zero,
						TotalHaber:  decimal.Zero,
					},
				}
				buckets[line.AccountCode] = b
			}

			b.Movements = append(b.Movements, model.Movement{
				Date:   e.Date,
				Memo:   e.Memo,
				Debit:  line.Debit,
				Credit: line.Credit,
			})
			b.Balance.TotalDebit = b.Balance.TotalDebit.Add(line.Debit)
			b.Balance.TotalHaber = b.Balance.TotalHaber.Add(line.Credit)
		}
	}

	for code, b := range buckets {
		b.Balance.Net = b.Balance.TotalDebit.Sub(b.Balance.TotalHaber)
		b.Balance.Side = balanceSide(classes.ClassOf(code), b.Balance.Net)
	}

	return buckets
}

// balanceSide applies the standard polarity convention. It is not
// configurable.
func balanceSide(class model.AccountClass, net decimal.Decimal) model.BalanceSide {
	switch class {
	case model.ClassAsset, model.ClassExpense:
		if net.Sign() >= 0 {
			return model.SideDebtor
		}
		return model.SideCreditor
	default:
		if net.Sign() <= 0 {
			return model.SideCreditor
		}
		return model.SideDebtor
	}
}

// Codes returns the projected account codes in ascending order, for
// stable rendering of a full mayor.
func Codes(projection map[string]*AccountLedger) []string {
	codes := make([]string, 0, len(projection))
	for code := range projection {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
