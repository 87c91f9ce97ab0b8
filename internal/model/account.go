package model

// AccountClass classifies accounts in a PGC chart of accounts.
type AccountClass string

const (
	ClassAsset     AccountClass = "activo"
	ClassLiability AccountClass = "pasivo"
	ClassEquity    AccountClass = "patrimonio"
	ClassExpense   AccountClass = "gasto"
	ClassIncome    AccountClass = "ingreso"
)

// CatalogVariant identifies which built-in chart of accounts governs an
// entity's journal.
type CatalogVariant string

const (
	// CatalogPymes is the general SME/business chart.
	CatalogPymes CatalogVariant = "pymes"
	// CatalogComunidades is the homeowners'-association chart. Codes
	// overlap with the pymes chart but carry different meanings (430 is
	// "Clientes" there, "Propietarios cuenta corriente" here).
	CatalogComunidades CatalogVariant = "comunidades"
)

// Account is one entry of a chart of accounts. Codes are hierarchical
// strings ("400", "4751"); the class is fixed at catalog definition.
type Account struct {
	Code        string
	Description string
	Class       AccountClass
}
