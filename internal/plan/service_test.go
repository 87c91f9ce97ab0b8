package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafacil-dev/contafacil/internal/model"
)

func TestResolveCatalog(t *testing.T) {
	assert.Equal(t, model.CatalogComunidades, ResolveCatalog(model.EntityOwnersAssoc))
	assert.Equal(t, model.CatalogPymes, ResolveCatalog(model.EntityLimitedCompany))
	assert.Equal(t, model.CatalogPymes, ResolveCatalog(model.EntitySoleTrader))
	assert.Equal(t, model.CatalogPymes, ResolveCatalog(model.EntityType("desconocido")))
}

func TestLookup(t *testing.T) {
	c := ForVariant(model.CatalogPymes)

	a, ok := c.Lookup("600")
	require.True(t, ok)
	assert.Equal(t, "Compras de mercaderías", a.Description)
	assert.Equal(t, model.ClassExpense, a.Class)

	_, ok = c.Lookup("9999")
	assert.False(t, ok)
	assert.False(t, c.Exists("9999"))
	assert.True(t, c.Exists("472"))
}

func TestDescribePlaceholder(t *testing.T) {
	c := ForVariant(model.CatalogComunidades)
	assert.Equal(t, "Honorarios administrador", c.Describe("6230"))
	assert.Equal(t, PlaceholderDescription, c.Describe("600"))
}

// Code 430 exists in both charts with different meanings.
func TestVariantSemanticsDiffer(t *testing.T) {
	pymes, _ := ForVariant(model.CatalogPymes).Lookup("430")
	comunidades, _ := ForVariant(model.CatalogComunidades).Lookup("430")

	assert.Equal(t, "Clientes", pymes.Description)
	assert.Equal(t, "Propietarios cuenta corriente", comunidades.Description)
}

func TestForEntityPrefersExplicitChart(t *testing.T) {
	e := model.Entity{Type: model.EntityOwnersAssoc}
	assert.Equal(t, model.CatalogComunidades, ForEntity(e).Variant())

	// An explicit chart wins over the type mapping.
	e.Chart = model.CatalogPymes
	assert.Equal(t, model.CatalogPymes, ForEntity(e).Variant())
}

func TestByClass(t *testing.T) {
	c := ForVariant(model.CatalogPymes)
	for _, a := range c.ByClass(model.ClassIncome) {
		assert.Equal(t, model.ClassIncome, a.Class)
	}
	assert.NotEmpty(t, c.ByClass(model.ClassIncome))
}

func TestClassOfUnknownDefaultsToAsset(t *testing.T) {
	c := ForVariant(model.CatalogPymes)
	assert.Equal(t, model.ClassAsset, c.ClassOf("no-such-code"))
	assert.Equal(t, model.ClassLiability, c.ClassOf("477"))
}

func TestAllSortedAndUnique(t *testing.T) {
	c := ForVariant(model.CatalogComunidades)
	all := c.All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for i, a := range all {
		if i > 0 {
			assert.Less(t, all[i-1].Code, a.Code)
		}
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
	}
}
