package model

// EntityType distinguishes the legal forms the engine keeps books for.
type EntityType string

const (
	EntityLimitedCompany EntityType = "sociedad_limitada"
	EntityPublicCompany  EntityType = "sociedad_anonima"
	EntitySoleTrader     EntityType = "autonomo_directa"
	EntitySoleTraderFlat EntityType = "autonomo_modulos"
	EntityOwnersAssoc    EntityType = "comunidad_propietarios"
)

// VATRegime is the VAT treatment an entity is registered under.
type VATRegime string

const (
	RegimeGeneral    VATRegime = "general"
	RegimeNotSubject VATRegime = "no_sujeto"
)

// Entity is a bookkeeping client (company, sole trader, homeowners'
// association). Records are owned by the caller and supplied to the
// engine already validated; the engine only reads them.
type Entity struct {
	ID        int
	TaxID     string
	LegalName string
	Type      EntityType
	VATRegime VATRegime
	Chart     CatalogVariant
}
