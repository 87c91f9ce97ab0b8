package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/plan"
)

var pymes = plan.ForVariant(model.CatalogPymes)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(lines ...model.Line) model.Entry {
	return model.Entry{
		Date:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo:  "Fra. 2026/1234",
		Lines: lines,
	}
}

func debit(code, amount string) model.Line {
	return model.Line{AccountCode: code, Debit: dec(amount)}
}

func credit(code, amount string) model.Line {
	return model.Line{AccountCode: code, Credit: dec(amount)}
}

// Purchase of 1000.00 plus 21% VAT against the supplier account.
func TestValidate_BalancedPurchase(t *testing.T) {
	e := entry(
		debit("600", "1000.00"),
		debit("472", "210.00"),
		credit("400", "1210.00"),
	)
	assert.NoError(t, Validate(e, pymes))
}

func TestValidate_UnbalancedReportsDifference(t *testing.T) {
	e := entry(
		debit("600", "1000.00"),
		debit("472", "200.00"),
		credit("400", "1210.00"),
	)
	err := Validate(e, pymes)
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindUnbalanced, verr.Kind)
	assert.True(t, verr.Difference.Equal(dec("-10.00")), "got %s", verr.Difference)
}

func TestValidate_TooFewLines(t *testing.T) {
	err := Validate(entry(debit("600", "100.00")), pymes)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindMissingLines, verr.Kind)

	err = Validate(entry(), pymes)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindMissingLines, verr.Kind)
}

func TestValidate_UnknownAccount(t *testing.T) {
	e := entry(debit("9999", "100.00"), credit("572", "100.00"))
	err := Validate(e, pymes)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindUnknownAccount, verr.Kind)
}

func TestValidate_MalformedLines(t *testing.T) {
	cases := []struct {
		name string
		line model.Line
	}{
		{"both sides", model.Line{AccountCode: "600", Debit: dec("50.00"), Credit: dec("50.00")}},
		{"neither side", model.Line{AccountCode: "600"}},
		{"negative debit", model.Line{AccountCode: "600", Debit: dec("-10.00")}},
		{"sub-cent precision", model.Line{AccountCode: "600", Debit: dec("10.005")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := entry(tc.line, credit("572", "50.00"))
			err := Validate(e, pymes)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, KindMalformedLine, verr.Kind)
		})
	}
}

// Account existence is checked before balance, so a candidate with
// both problems reports the unknown account first.
func TestValidate_OrderOfChecks(t *testing.T) {
	e := entry(debit("9999", "100.00"), credit("572", "90.00"))
	err := Validate(e, pymes)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindUnknownAccount, verr.Kind)
}

func TestValidate_DoesNotMutateCandidate(t *testing.T) {
	e := entry(debit("600", "100.00"), credit("572", "100.00"))
	before := len(e.Lines)
	require.NoError(t, Validate(e, pymes))
	assert.Equal(t, before, len(e.Lines))
}

func TestIsValidation(t *testing.T) {
	err := Validate(entry(), pymes)
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(assert.AnError))
}
