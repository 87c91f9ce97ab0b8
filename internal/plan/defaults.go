package plan

import "github.com/contafacil-dev/contafacil/internal/model"

// ResolveCatalog maps an entity type to the catalog variant that
// governs its journal. Homeowners' associations keep the comunidades
// chart; every other recognized type keeps the general pymes chart.
func ResolveCatalog(entityType model.EntityType) model.CatalogVariant {
	if entityType == model.EntityOwnersAssoc {
		return model.CatalogComunidades
	}
	return model.CatalogPymes
}

// ForVariant returns the built-in catalog for a variant.
func ForVariant(variant model.CatalogVariant) *Catalog {
	if variant == model.CatalogComunidades {
		return comunidadesCatalog
	}
	return pymesCatalog
}

// ForEntity returns the built-in catalog governing an entity's journal.
func ForEntity(e model.Entity) *Catalog {
	if e.Chart != "" {
		return ForVariant(e.Chart)
	}
	return ForVariant(ResolveCatalog(e.Type))
}

var pymesCatalog = NewCatalog(model.CatalogPymes, []model.Account{
	{Code: "100", Description: "Capital social", Class: model.ClassEquity},
	{Code: "129", Description: "Resultado del ejercicio", Class: model.ClassEquity},
	{Code: "400", Description: "Proveedores", Class: model.ClassLiability},
	{Code: "410", Description: "Acreedores por prestación servicios", Class: model.ClassLiability},
	{Code: "430", Description: "Clientes", Class: model.ClassAsset},
	{Code: "465", Description: "Remuneraciones pendientes pago", Class: model.ClassLiability},
	{Code: "472", Description: "H.P. IVA soportado", Class: model.ClassAsset},
	{Code: "475", Description: "H.P. acreedora conceptos fiscales", Class: model.ClassLiability},
	{Code: "4750", Description: "H.P. acreedora por IVA", Class: model.ClassLiability},
	{Code: "4751", Description: "H.P. acreedora por retenciones", Class: model.ClassLiability},
	{Code: "476", Description: "Organismos Seg. Social acreedores", Class: model.ClassLiability},
	{Code: "477", Description: "H.P. IVA repercutido", Class: model.ClassLiability},
	{Code: "570", Description: "Caja, euros", Class: model.ClassAsset},
	{Code: "572", Description: "Bancos c/c", Class: model.ClassAsset},
	{Code: "600", Description: "Compras de mercaderías", Class: model.ClassExpense},
	{Code: "621", Description: "Arrendamientos y cánones", Class: model.ClassExpense},
	{Code: "622", Description: "Reparaciones y conservación", Class: model.ClassExpense},
	{Code: "623", Description: "Servicios profesionales indep.", Class: model.ClassExpense},
	{Code: "624", Description: "Transportes", Class: model.ClassExpense},
	{Code: "625", Description: "Primas de seguros", Class: model.ClassExpense},
	{Code: "626", Description: "Servicios bancarios", Class: model.ClassExpense},
	{Code: "627", Description: "Publicidad y propaganda", Class: model.ClassExpense},
	{Code: "628", Description: "Suministros", Class: model.ClassExpense},
	{Code: "629", Description: "Otros servicios", Class: model.ClassExpense},
	{Code: "640", Description: "Sueldos y salarios", Class: model.ClassExpense},
	{Code: "642", Description: "Seguridad Social empresa", Class: model.ClassExpense},
	{Code: "700", Description: "Ventas de mercaderías", Class: model.ClassIncome},
	{Code: "705", Description: "Prestaciones de servicios", Class: model.ClassIncome},
	{Code: "759", Description: "Ingresos por servicios diversos", Class: model.ClassIncome},
	{Code: "769", Description: "Otros ingresos financieros", Class: model.ClassIncome},
})

var comunidadesCatalog = NewCatalog(model.CatalogComunidades, []model.Account{
	{Code: "100", Description: "Fondo de reserva", Class: model.ClassEquity},
	{Code: "110", Description: "Remanente", Class: model.ClassEquity},
	{Code: "129", Description: "Resultado del ejercicio", Class: model.ClassEquity},
	{Code: "410", Description: "Acreedores prestación servicios", Class: model.ClassLiability},
	{Code: "430", Description: "Propietarios cuenta corriente", Class: model.ClassAsset},
	{Code: "4300", Description: "Propietarios - Cuotas ordinarias", Class: model.ClassAsset},
	{Code: "4301", Description: "Propietarios - Derramas", Class: model.ClassAsset},
	{Code: "4309", Description: "Propietarios - Dudoso cobro", Class: model.ClassAsset},
	{Code: "465", Description: "Remuneraciones pendientes pago", Class: model.ClassLiability},
	{Code: "4751", Description: "H.P. acreedora retenciones", Class: model.ClassLiability},
	{Code: "476", Description: "Organismos Seg. Social acreedores", Class: model.ClassLiability},
	{Code: "570", Description: "Caja", Class: model.ClassAsset},
	{Code: "572", Description: "Bancos c/c", Class: model.ClassAsset},
	{Code: "5721", Description: "Banco cuenta ordinaria", Class: model.ClassAsset},
	{Code: "5722", Description: "Banco fondo reserva", Class: model.ClassAsset},
	{Code: "621", Description: "Arrendamientos y cánones", Class: model.ClassExpense},
	{Code: "622", Description: "Reparaciones y conservación", Class: model.ClassExpense},
	{Code: "623", Description: "Servicios profesionales", Class: model.ClassExpense},
	{Code: "6230", Description: "Honorarios administrador", Class: model.ClassExpense},
	{Code: "625", Description: "Primas de seguros", Class: model.ClassExpense},
	{Code: "626", Description: "Servicios bancarios", Class: model.ClassExpense},
	{Code: "628", Description: "Suministros", Class: model.ClassExpense},
	{Code: "6280", Description: "Suministro eléctrico", Class: model.ClassExpense},
	{Code: "6281", Description: "Suministro agua", Class: model.ClassExpense},
	{Code: "629", Description: "Otros servicios", Class: model.ClassExpense},
	{Code: "6290", Description: "Limpieza", Class: model.ClassExpense},
	{Code: "6291", Description: "Jardinería", Class: model.ClassExpense},
	{Code: "6293", Description: "Mantenimiento ascensor", Class: model.ClassExpense},
	{Code: "630", Description: "Tributos", Class: model.ClassExpense},
	{Code: "640", Description: "Sueldos y salarios", Class: model.ClassExpense},
	{Code: "642", Description: "Seguridad Social empresa", Class: model.ClassExpense},
	{Code: "740", Description: "Cuotas de propietarios", Class: model.ClassIncome},
	{Code: "7400", Description: "Cuotas ordinarias", Class: model.ClassIncome},
	{Code: "7401", Description: "Derramas", Class: model.ClassIncome},
	{Code: "752", Description: "Ingresos por arrendamientos", Class: model.ClassIncome},
})
