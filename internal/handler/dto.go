package handler

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/ledger"
	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/tax"
)

const dateLayout = "2006-01-02"

// Amounts travel as fixed-point strings ("1210.00") so no JSON float
// ever touches a monetary value.

type lineRequest struct {
	Account string `json:"account"`
	Debit   string `json:"debit,omitempty"`
	Credit  string `json:"credit,omitempty"`
}

type entryRequest struct {
	Date  string        `json:"date"`
	Memo  string        `json:"memo"`
	Lines []lineRequest `json:"lines"`
}

func (r entryRequest) toLines() ([]model.Line, error) {
	lines := make([]model.Line, 0, len(r.Lines))
	for i, l := range r.Lines {
		line := model.Line{AccountCode: l.Account, Debit: decimal.Zero, Credit: decimal.Zero}
		var err error
		if l.Debit != "" {
			if line.Debit, err = decimal.NewFromString(l.Debit); err != nil {
				return nil, fmt.Errorf("line %d: bad debit %q", i+1, l.Debit)
			}
		}
		if l.Credit != "" {
			if line.Credit, err = decimal.NewFromString(l.Credit); err != nil {
				return nil, fmt.Errorf("line %d: bad credit %q", i+1, l.Credit)
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

type entryAcceptedResponse struct {
	Number int `json:"number"`
}

type lineResponse struct {
	Account     string `json:"account"`
	Description string `json:"description"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
}

type entryResponse struct {
	Number int            `json:"number"`
	Date   string         `json:"date"`
	Memo   string         `json:"memo"`
	Lines  []lineResponse `json:"lines"`
}

type describer interface {
	Describe(code string) string
}

func toEntryResponse(e model.Entry, catalog describer) entryResponse {
	out := entryResponse{Number: e.Number, Date: e.Date.Format(dateLayout), Memo: e.Memo}
	for _, l := range e.Lines {
		lr := lineResponse{Account: l.AccountCode, Description: catalog.Describe(l.AccountCode)}
		if !l.Debit.IsZero() {
			lr.Debit = l.Debit.StringFixed(2)
		}
		if !l.Credit.IsZero() {
			lr.Credit = l.Credit.StringFixed(2)
		}
		out.Lines = append(out.Lines, lr)
	}
	return out
}

type movementResponse struct {
	Date   string `json:"date"`
	Memo   string `json:"memo"`
	Debit  string `json:"debit,omitempty"`
	Credit string `json:"credit,omitempty"`
}

type accountLedgerResponse struct {
	Account     string             `json:"account"`
	Description string             `json:"description"`
	TotalDebit  string             `json:"total_debit"`
	TotalHaber  string             `json:"total_haber"`
	Balance     string             `json:"balance"`
	Side        string             `json:"side"`
	Movements   []movementResponse `json:"movements"`
}

func toLedgerResponse(code string, al *ledger.AccountLedger, catalog describer) accountLedgerResponse {
	out := accountLedgerResponse{
		Account:     code,
		Description: catalog.Describe(code),
		TotalDebit:  al.Balance.TotalDebit.StringFixed(2),
		TotalHaber:  al.Balance.TotalHaber.StringFixed(2),
		Balance:     al.Balance.Net.Abs().StringFixed(2),
		Side:        string(al.Balance.Side),
	}
	for _, m := range al.Movements {
		mr := movementResponse{Date: m.Date.Format(dateLayout), Memo: m.Memo}
		if !m.Debit.IsZero() {
			mr.Debit = m.Debit.StringFixed(2)
		}
		if !m.Credit.IsZero() {
			mr.Credit = m.Credit.StringFixed(2)
		}
		out.Movements = append(out.Movements, mr)
	}
	return out
}

type boxResponse struct {
	Box    string `json:"box"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type figuresResponse struct {
	Form      string        `json:"form"`
	Name      string        `json:"name"`
	Year      int           `json:"year"`
	Period    string        `json:"period"`
	Boxes     []boxResponse `json:"boxes"`
	ResultBox string        `json:"result_box"`
	Result    string        `json:"result"`
}

func toFiguresResponse(fig tax.Figures) figuresResponse {
	out := figuresResponse{
		Form:      string(fig.Form),
		Name:      fig.FormName,
		Year:      fig.Year,
		Period:    string(fig.Period),
		ResultBox: fig.ResultBox,
		Result:    fig.Result.StringFixed(2),
	}
	for _, b := range fig.Boxes {
		out.Boxes = append(out.Boxes, boxResponse{Box: b.Box, Label: b.Label, Amount: b.Amount.StringFixed(2)})
	}
	return out
}

type debtorRequest struct {
	Name string `json:"name"`
	IBAN string `json:"iban"`
}

type receivableRequest struct {
	Number     string        `json:"number"`
	Amount     string        `json:"amount"`
	Debtor     debtorRequest `json:"debtor"`
	MandateRef string        `json:"mandate_ref"`
	Memo       string        `json:"memo,omitempty"`
}

type remittanceRequest struct {
	CollectionDate  string `json:"collection_date"`
	CreditorAccount struct {
		IBAN string `json:"iban"`
		BIC  string `json:"bic"`
	} `json:"creditor_account"`
	Receivables []receivableRequest `json:"receivables"`
}

func (r remittanceRequest) toReceivables() ([]model.Receivable, error) {
	out := make([]model.Receivable, 0, len(r.Receivables))
	for i, rr := range r.Receivables {
		amount, err := decimal.NewFromString(rr.Amount)
		if err != nil {
			return nil, fmt.Errorf("receivable %d: bad amount %q", i+1, rr.Amount)
		}
		out = append(out, model.Receivable{
			Number:     rr.Number,
			Amount:     amount,
			Debtor:     model.Debtor{Name: rr.Debtor.Name, IBAN: rr.Debtor.IBAN},
			MandateRef: rr.MandateRef,
			Memo:       rr.Memo,
		})
	}
	return out, nil
}

type duesRequest struct {
	Month  string `json:"month"` // "2026-02"
	Amount string `json:"amount"`
}

type receivableResponse struct {
	Number     string `json:"number"`
	Amount     string `json:"amount"`
	DebtorName string `json:"debtor_name"`
	DebtorIBAN string `json:"debtor_iban"`
	MandateRef string `json:"mandate_ref"`
	Memo       string `json:"memo"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
