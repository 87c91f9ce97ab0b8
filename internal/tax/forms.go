package tax

import (
	"fmt"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// FormCode identifies a statutory declaration form (modelo).
type FormCode string

const (
	// Form303 is the quarterly/monthly VAT self-assessment.
	Form303 FormCode = "303"
	// Form111 is the withholding declaration for employment income.
	Form111 FormCode = "111"
)

// Side selects which side of a line a box sums.
type Side string

const (
	SideDebit  Side = "debe"
	SideCredit Side = "haber"
)

// ResultRole marks how a box participates in the form's bottom line.
type ResultRole int

const (
	// RoleInformative boxes report a base and do not enter the result.
	RoleInformative ResultRole = 0
	// RoleDue quotas add to the result.
	RoleDue ResultRole = 1
	// RoleDeductible quotas subtract from the result.
	RoleDeductible ResultRole = -1
)

// BoxRule declares one form box as a sum of one (accountCode, side)
// pair over the period's ledger. Forms are pure declarative tables
// over the journal, not bespoke per-form code; a new form or a
// per-rate VAT split is added as table rows, never as logic.
type BoxRule struct {
	Box         string
	Label       string
	AccountCode string
	Side        Side
	Role        ResultRole
}

// FormSpec is the full declarative definition of one modelo.
type FormSpec struct {
	Code      FormCode
	Name      string
	Boxes     []BoxRule
	ResultBox string
}

// The single-rate box layout mirrors the source ledger: output VAT
// collects in 477 and input VAT in 472 regardless of rate, so the
// form totals always reconcile to those accounts.
var formSpecs = map[FormCode]FormSpec{
	Form303: {
		Code: Form303,
		Name: "IVA - Autoliquidación",
		Boxes: []BoxRule{
			{Box: "01", Label: "Base imponible devengada", AccountCode: "700", Side: SideCredit, Role: RoleInformative},
			{Box: "02", Label: "Cuota devengada", AccountCode: "477", Side: SideCredit, Role: RoleDue},
			{Box: "28", Label: "Base operaciones interiores", AccountCode: "600", Side: SideDebit, Role: RoleInformative},
			{Box: "29", Label: "Cuota soportada deducible", AccountCode: "472", Side: SideDebit, Role: RoleDeductible},
		},
		ResultBox: "71",
	},
	Form111: {
		Code: Form111,
		Name: "Retenciones e ingresos a cuenta - Rendimientos del trabajo",
		Boxes: []BoxRule{
			{Box: "02", Label: "Importe de las percepciones", AccountCode: "640", Side: SideDebit, Role: RoleInformative},
			{Box: "03", Label: "Importe de las retenciones", AccountCode: "4751", Side: SideCredit, Role: RoleDue},
		},
		ResultBox: "30",
	},
}

// Spec returns the declarative definition of a form.
func Spec(code FormCode) (FormSpec, error) {
	spec, ok := formSpecs[code]
	if !ok {
		return FormSpec{}, fmt.Errorf("unknown form %q", code)
	}
	return spec, nil
}

// Available lists the implemented forms that apply to an entity type.
// Associations are outside VAT scope, so the 303 never applies to
// them.
func Available(entityType model.EntityType) []FormCode {
	if entityType == model.EntityOwnersAssoc {
		return []FormCode{Form111}
	}
	return []FormCode{Form303, Form111}
}

// Applies reports whether a form can be declared by an entity type.
func Applies(code FormCode, entityType model.EntityType) bool {
	for _, f := range Available(entityType) {
		if f == code {
			return true
		}
	}
	return false
}
