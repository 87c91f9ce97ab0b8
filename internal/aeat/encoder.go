// Package aeat serializes declaration figures into the fixed-width
// positional record format of tax-authority submission files. Field
// widths, padding sides and ordering are dictated by the format; the
// output must match byte for byte or the submission is invalid.
package aeat

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/tax"
)

const (
	nifWidth  = 9
	nameWidth = 40
	// amountDigits is the digit count of one monetary field, preceded
	// by a dedicated sign column (' ' nonnegative, 'N' negative) so
	// offsets stay constant for every input.
	amountDigits = 17
	negativeSign = 'N'
	// declarationType marks the record as a payable self-assessment.
	declarationType = 'I'
)

// FieldOverflowError reports a monetary figure that cannot fit the
// fixed width. Numeric fields are never silently truncated; text
// fields (name, NIF) are deliberately truncated instead.
type FieldOverflowError struct {
	Box    string
	Amount decimal.Decimal
}

func (e FieldOverflowError) Error() string {
	return fmt.Sprintf("box %s: amount %s does not fit %d digits", e.Box, e.Amount.StringFixed(2), amountDigits)
}

// EncodeDeclaration renders one declaration record: literal header tag
// with form code, fiscal year and period, the declarant's NIF and
// legal name in fixed columns, the declaration type, every box amount
// in form order followed by the result, and the literal trailer tag.
func EncodeDeclaration(entity model.Entity, fig tax.Figures) ([]byte, error) {
	if len(fig.Period) != 2 {
		return nil, fmt.Errorf("invalid period %q", fig.Period)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<T%s0%04d%s", fig.Form, fig.Year, fig.Period)
	buf.WriteString(padRight(entity.TaxID, nifWidth))
	buf.WriteString(padRight(entity.LegalName, nameWidth))
	buf.WriteByte(declarationType)

	for _, box := range fig.Boxes {
		field, err := amountField(box.Box, box.Amount)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(' ')
		buf.WriteString(field)
	}
	result, err := amountField(fig.ResultBox, fig.Result)
	if err != nil {
		return nil, err
	}
	buf.WriteByte(' ')
	buf.WriteString(result)

	fmt.Fprintf(&buf, "</T%s>", fig.Form)
	return buf.Bytes(), nil
}

// Filename suggests the download name for a declaration file.
func Filename(form tax.FormCode, year int, period tax.Period) string {
	return fmt.Sprintf("modelo%s_%d_%s.txt", form, year, period)
}

// amountField encodes an amount as integer cents: one sign column and
// amountDigits zero-padded digits.
func amountField(box string, amount decimal.Decimal) (string, error) {
	cents := amount.Shift(2)
	if !cents.Equal(cents.Floor()) {
		return "", FieldOverflowError{Box: box, Amount: amount}
	}
	// Normalize the exponent so String renders plain digits even when
	// the input carried trailing decimal zeros.
	cents = cents.Truncate(0)

	sign := byte(' ')
	if cents.IsNegative() {
		sign = negativeSign
		cents = cents.Neg()
	}

	digits := cents.String()
	if len(digits) > amountDigits {
		return "", FieldOverflowError{Box: box, Amount: amount}
	}

	var b bytes.Buffer
	b.WriteByte(sign)
	for i := len(digits); i < amountDigits; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return b.String(), nil
}

// padRight truncates or space-pads a text field to a fixed width.
func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return fmt.Sprintf("%-*s", width, s)
}
