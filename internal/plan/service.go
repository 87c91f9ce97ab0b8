package plan

import (
	"sort"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// PlaceholderDescription is returned for codes that no longer resolve
// in a catalog. Historical entries must stay displayable even if a
// catalog is later trimmed, so display-time lookups never fail hard.
const PlaceholderDescription = "Cuenta no encontrada"

// Catalog provides in-memory lookup over one chart of accounts. A
// catalog is immutable once published for a fiscal year.
type Catalog struct {
	variant  model.CatalogVariant
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewCatalog builds a Catalog from a slice of accounts. Codes must be
// unique; later duplicates are ignored.
func NewCatalog(variant model.CatalogVariant, accounts []model.Account) *Catalog {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := byCode[a.Code]; !dup {
			byCode[a.Code] = a
		}
	}
	return &Catalog{variant: variant, accounts: accounts, byCode: byCode}
}

// Variant returns which chart this catalog is.
func (c *Catalog) Variant() model.CatalogVariant {
	return c.variant
}

// All returns every account, ordered by code.
func (c *Catalog) All() []model.Account {
	out := make([]model.Account, len(c.accounts))
	copy(out, c.accounts)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Lookup returns the account for a code.
func (c *Catalog) Lookup(code string) (model.Account, bool) {
	a, ok := c.byCode[code]
	return a, ok
}

// Exists reports whether a code resolves in this catalog.
func (c *Catalog) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Describe returns the account description for display, falling back
// to a placeholder for unknown codes.
func (c *Catalog) Describe(code string) string {
	if a, ok := c.byCode[code]; ok {
		return a.Description
	}
	return PlaceholderDescription
}

// ClassOf returns the account class for a code. Unknown codes report
// the asset polarity, which keeps placeholder balances on the direct
// (debit-positive) convention.
func (c *Catalog) ClassOf(code string) model.AccountClass {
	if a, ok := c.byCode[code]; ok {
		return a.Class
	}
	return model.ClassAsset
}

// ByClass returns all accounts of the given class.
func (c *Catalog) ByClass(class model.AccountClass) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Class == class {
			result = append(result, a)
		}
	}
	return result
}
