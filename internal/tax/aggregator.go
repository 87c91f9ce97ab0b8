// Package tax computes statutory declaration figures by scanning the
// journal. The aggregator holds no state and recomputes on every call,
// so figures can never drift from the ledger.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/ledger"
	"github.com/contafacil-dev/contafacil/internal/model"
)

// BoxValue is one computed form box.
type BoxValue struct {
	Box    string
	Label  string
	Amount decimal.Decimal
}

// Figures is the computed set of boxes for one form and period, plus
// the bottom-line result (positive = payable, negative = refundable or
// carried forward).
type Figures struct {
	Form      FormCode
	FormName  string
	Year      int
	Period    Period
	Boxes     []BoxValue
	ResultBox string
	Result    decimal.Decimal
}

// Amount returns a box value by box number.
func (f Figures) Amount(box string) decimal.Decimal {
	for _, b := range f.Boxes {
		if b.Box == box {
			return b.Amount
		}
	}
	return decimal.Zero
}

// Aggregate computes a form's figures by projecting the ledger over
// the period and summing each declared (accountCode, side) pair into
// its box. Every figure reconciles exactly to the journal.
func Aggregate(entries []model.Entry, classes ledger.ClassLookup, form FormCode, year int, period Period) (Figures, error) {
	spec, err := Spec(form)
	if err != nil {
		return Figures{}, err
	}

	from, to, err := period.Range(year)
	if err != nil {
		return Figures{}, fmt.Errorf("form %s: %w", form, err)
	}

	projection := ledger.Project(entries, classes, ledger.Filter{From: from, To: to})

	fig := Figures{
		Form:      spec.Code,
		FormName:  spec.Name,
		Year:      year,
		Period:    period,
		ResultBox: spec.ResultBox,
		Result:    decimal.Zero,
	}

	for _, rule := range spec.Boxes {
		amount := decimal.Zero
		if b, ok := projection[rule.AccountCode]; ok {
			if rule.Side == SideDebit {
				amount = b.Balance.TotalDebit
			} else {
				amount = b.Balance.TotalHaber
			}
		}

		fig.Boxes = append(fig.Boxes, BoxValue{Box: rule.Box, Label: rule.Label, Amount: amount})
		switch rule.Role {
		case RoleDue:
			fig.Result = fig.Result.Add(amount)
		case RoleDeductible:
			fig.Result = fig.Result.Sub(amount)
		}
	}

	return fig, nil
}
