package journal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// ValidationKind names the invariant a candidate entry violated.
type ValidationKind string

const (
	KindMissingLines   ValidationKind = "missing-lines"
	KindUnknownAccount ValidationKind = "unknown-account"
	KindMalformedLine  ValidationKind = "malformed-line"
	KindUnbalanced     ValidationKind = "unbalanced"
)

// ValidationError describes a single invariant violation. The candidate
// is discarded and the journal left untouched; the caller must build a
// corrected candidate rather than retry the same one.
type ValidationError struct {
	Kind        ValidationKind
	Description string
	// Difference is the signed debit-minus-credit discrepancy, set only
	// for KindUnbalanced.
	Difference decimal.Decimal
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr ValidationError
	return errors.As(err, &verr)
}

// AccountChecker tests whether an account code exists in the chart of
// accounts. Entry-time validation rejects unknown accounts even though
// display-time lookups are lenient.
type AccountChecker interface {
	Exists(code string) bool
}

var hundred = decimal.NewFromInt(100)

// Validate checks a candidate entry against the admission invariants,
// in order: at least two lines, every account resolves, each line has
// exactly one nonzero side at no more than cent precision, and debits
// equal credits to the cent. It never mutates the journal.
func Validate(candidate model.Entry, accounts AccountChecker) error {
	if len(candidate.Lines) < 2 {
		return ValidationError{
			Kind:        KindMissingLines,
			Description: fmt.Sprintf("entry has %d line(s), need at least 2", len(candidate.Lines)),
		}
	}

	for i, line := range candidate.Lines {
		if !accounts.Exists(line.AccountCode) {
			return ValidationError{
				Kind:        KindUnknownAccount,
				Description: fmt.Sprintf("line %d: unknown account %q", i+1, line.AccountCode),
			}
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return ValidationError{
				Kind:        KindMalformedLine,
				Description: fmt.Sprintf("line %d: negative amount", i+1),
			}
		}

		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit {
			return ValidationError{
				Kind:        KindMalformedLine,
				Description: fmt.Sprintf("line %d: must have exactly one of debit or credit", i+1),
			}
		}

		if !centExact(line.Debit) || !centExact(line.Credit) {
			return ValidationError{
				Kind:        KindMalformedLine,
				Description: fmt.Sprintf("line %d: amount has more than 2 decimal places", i+1),
			}
		}
	}

	totalDebit := candidate.TotalDebit()
	totalCredit := candidate.TotalCredit()
	if !totalDebit.Equal(totalCredit) {
		diff := totalDebit.Sub(totalCredit)
		return ValidationError{
			Kind: KindUnbalanced,
			Description: fmt.Sprintf("debits (%s) != credits (%s), difference %s",
				totalDebit.StringFixed(2), totalCredit.StringFixed(2), diff.StringFixed(2)),
			Difference: diff,
		}
	}

	return nil
}

func centExact(d decimal.Decimal) bool {
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Floor())
}
