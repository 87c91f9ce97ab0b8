package directory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/model"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthlyDues builds one receivable per owner for a month's ordinary
// dues, numbered R-{yyyymm}-{NNN} with a mandate reference derived
// from the owner's directory id.
func MonthlyDues(owners []Party, month time.Time, amount decimal.Decimal) []model.Receivable {
	memo := fmt.Sprintf("Cuota ordinaria %s %d", spanishMonths[month.Month()-1], month.Year())

	receivables := make([]model.Receivable, 0, len(owners))
	for _, owner := range owners {
		receivables = append(receivables, model.Receivable{
			Number:     fmt.Sprintf("R-%s-%03d", month.Format("200601"), owner.ID),
			Amount:     amount,
			Debtor:     model.Debtor{Name: owner.Name, IBAN: owner.IBAN},
			MandateRef: fmt.Sprintf("MAND-%03d", owner.ID),
			Memo:       memo,
		})
	}
	return receivables
}
