package directory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafacil-dev/contafacil/internal/model"
)

func sampleRegistry() *Registry {
	return New(
		[]model.Entity{
			{ID: 1, TaxID: "B12345678", LegalName: "POINT TRADING S.L.", Type: model.EntityLimitedCompany},
			{ID: 3, TaxID: "H03123456", LegalName: "COMUNIDAD PROP. EDIFICIO LOS NARANJOS", Type: model.EntityOwnersAssoc},
		},
		[]Party{
			{ID: 2, TaxID: "A11111111", Name: "CLIENTE EJEMPLO SA", Kind: PartyCustomer, IBAN: "ES9121000418450200051332"},
			{ID: 3, TaxID: "11111111A", Name: "PROPIETARIO 1A - García Martínez", Kind: PartyOwner, IBAN: "ES7921000813610123456789"},
			{ID: 4, TaxID: "22222222B", Name: "PROPIETARIO 1B - López Fernández", Kind: PartyOwner, IBAN: "ES4720385778983000760236"},
		},
	)
}

func TestEntityLookup(t *testing.T) {
	r := sampleRegistry()

	e, err := r.Entity(1)
	require.NoError(t, err)
	assert.Equal(t, "B12345678", e.TaxID)

	_, err = r.Entity(99)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	assert.Len(t, r.Entities(), 2)
	assert.Equal(t, 1, r.Entities()[0].ID)
}

func TestCatalogForFollowsEntityType(t *testing.T) {
	r := sampleRegistry()

	company, err := r.CatalogFor(1)
	require.NoError(t, err)
	assert.True(t, company.Exists("700"))

	assoc, err := r.CatalogFor(3)
	require.NoError(t, err)
	assert.False(t, assoc.Exists("700"))
	assert.True(t, assoc.Exists("7400"))

	_, err = r.CatalogFor(99)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestMonthlyDues(t *testing.T) {
	r := sampleRegistry()
	owners := r.Parties(PartyOwner)
	require.Len(t, owners, 2)

	month := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	dues := MonthlyDues(owners, month, decimal.RequireFromString("125.50"))
	require.Len(t, dues, 2)

	assert.Equal(t, "R-202602-003", dues[0].Number)
	assert.Equal(t, "MAND-003", dues[0].MandateRef)
	assert.Equal(t, "Cuota ordinaria febrero 2026", dues[0].Memo)
	assert.Equal(t, "PROPIETARIO 1B - López Fernández", dues[1].Debtor.Name)
	assert.True(t, dues[1].Amount.Equal(decimal.RequireFromString("125.50")))
}
