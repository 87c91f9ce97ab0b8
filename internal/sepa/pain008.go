// Package sepa serializes direct-debit batches into SEPA
// payment-initiation messages (pain.008.001.02). Encoding is a pure
// transformation: the emitted CtrlSum always equals the arithmetic sum
// of the instructed amounts and NbOfTxs their count.
package sepa

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contafacil-dev/contafacil/internal/model"
)

const (
	namespace = "urn:iso:std:iso:20022:tech:xsd:pain.008.001.02"
	currency  = "EUR"

	maxNameLen = 70
	maxMemoLen = 140
)

// defaultSignatureDate is emitted when the caller supplies no
// mandate-signature date, matching the bytes banks already accepted
// for existing mandates.
var defaultSignatureDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewMessageID builds a batch message id: SEPA-{timestamp}-{8 random
// uppercase hex}.
func NewMessageID(now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("SEPA-%s-%s", now.Format("20060102150405"), random)
}

// DirectDebitInitiation is one pain.008 batch: a creditor collecting a
// set of receivables by direct debit on a requested date.
type DirectDebitInitiation struct {
	MessageID       string
	CreatedAt       time.Time
	CreditorName    string
	CreditorAccount model.CreditorAccount
	CollectionDate  time.Time
	SignatureDate   time.Time
	Receivables     []model.Receivable
}

// ControlSum is the arithmetic sum of all instructed amounts.
func (d DirectDebitInitiation) ControlSum() decimal.Decimal {
	total := decimal.Zero
	for _, r := range d.Receivables {
		total = total.Add(r.Amount)
	}
	return total
}

// ToXML renders the batch as a pain.008.001.02 document.
func (d DirectDebitInitiation) ToXML() ([]byte, error) {
	if len(d.Receivables) == 0 {
		return nil, fmt.Errorf("batch %s has no receivables", d.MessageID)
	}
	for _, r := range d.Receivables {
		if !r.Amount.IsPositive() {
			return nil, fmt.Errorf("receivable %s: instructed amount %s must be positive",
				r.Number, r.Amount.StringFixed(2))
		}
	}

	sigDate := d.SignatureDate
	if sigDate.IsZero() {
		sigDate = defaultSignatureDate
	}

	count := fmt.Sprintf("%d", len(d.Receivables))
	ctrlSum := d.ControlSum().StringFixed(2)

	doc := pain008Document{
		Xmlns: namespace,
		CstmrDrctDbtInitn: pain008Initiation{
			GrpHdr: pain008GrpHdr{
				MsgID:    d.MessageID,
				CreDtTm:  d.CreatedAt.Format("2006-01-02T15:04:05"),
				NbOfTxs:  count,
				CtrlSum:  ctrlSum,
				InitgPty: pain008Party{Nm: truncate(d.CreditorName, maxNameLen)},
			},
			PmtInf: pain008PmtInf{
				PmtInfID: d.MessageID + "-001",
				PmtMtd:   "DD",
				NbOfTxs:  count,
				CtrlSum:  ctrlSum,
				PmtTpInf: pain008PmtTpInf{
					SvcLvl:    pain008Code{Cd: "SEPA"},
					LclInstrm: pain008Code{Cd: "CORE"},
					SeqTp:     "RCUR",
				},
				ReqdColltnDt: d.CollectionDate.Format("2006-01-02"),
				Cdtr:         pain008Party{Nm: truncate(d.CreditorName, maxNameLen)},
				CdtrAcct:     pain008Account{ID: pain008AccountID{IBAN: d.CreditorAccount.IBAN}},
				CdtrAgt: pain008Agent{
					FinInstnID: pain008FinInstnID{BIC: d.CreditorAccount.BIC},
				},
				Txs: d.transactions(sigDate),
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling pain.008: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func (d DirectDebitInitiation) transactions(sigDate time.Time) []pain008Tx {
	txs := make([]pain008Tx, 0, len(d.Receivables))
	for _, r := range d.Receivables {
		txs = append(txs, pain008Tx{
			PmtID: pain008PmtID{EndToEndID: "E2E-" + r.Number},
			InstdAmt: pain008Amount{
				Ccy:    currency,
				Amount: r.Amount.StringFixed(2),
			},
			DrctDbtTx: pain008DrctDbtTx{
				MndtRltdInf: pain008Mandate{
					MndtID:    r.MandateRef,
					DtOfSgntr: sigDate.Format("2006-01-02"),
				},
			},
			DbtrAgt: pain008Agent{
				FinInstnID: pain008FinInstnID{Othr: &pain008Other{ID: "NOTPROVIDED"}},
			},
			Dbtr:     pain008Party{Nm: truncate(r.Debtor.Name, maxNameLen)},
			DbtrAcct: pain008Account{ID: pain008AccountID{IBAN: r.Debtor.IBAN}},
			RmtInf:   pain008RmtInf{Ustrd: truncate(r.Memo, maxMemoLen)},
		})
	}
	return txs
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// XML marshaling structs (internal)

type pain008Document struct {
	XMLName           xml.Name          `xml:"Document"`
	Xmlns             string            `xml:"xmlns,attr"`
	CstmrDrctDbtInitn pain008Initiation `xml:"CstmrDrctDbtInitn"`
}

type pain008Initiation struct {
	GrpHdr pain008GrpHdr `xml:"GrpHdr"`
	PmtInf pain008PmtInf `xml:"PmtInf"`
}

type pain008GrpHdr struct {
	MsgID    string       `xml:"MsgId"`
	CreDtTm  string       `xml:"CreDtTm"`
	NbOfTxs  string       `xml:"NbOfTxs"`
	CtrlSum  string       `xml:"CtrlSum"`
	InitgPty pain008Party `xml:"InitgPty"`
}

type pain008PmtInf struct {
	PmtInfID     string          `xml:"PmtInfId"`
	PmtMtd       string          `xml:"PmtMtd"`
	NbOfTxs      string          `xml:"NbOfTxs"`
	CtrlSum      string          `xml:"CtrlSum"`
	PmtTpInf     pain008PmtTpInf `xml:"PmtTpInf"`
	ReqdColltnDt string          `xml:"ReqdColltnDt"`
	Cdtr         pain008Party    `xml:"Cdtr"`
	CdtrAcct     pain008Account  `xml:"CdtrAcct"`
	CdtrAgt      pain008Agent    `xml:"CdtrAgt"`
	Txs          []pain008Tx     `xml:"DrctDbtTxInf"`
}

type pain008PmtTpInf struct {
	SvcLvl    pain008Code `xml:"SvcLvl"`
	LclInstrm pain008Code `xml:"LclInstrm"`
	SeqTp     string      `xml:"SeqTp"`
}

type pain008Code struct {
	Cd string `xml:"Cd"`
}

type pain008Party struct {
	Nm string `xml:"Nm"`
}

type pain008Account struct {
	ID pain008AccountID `xml:"Id"`
}

type pain008AccountID struct {
	IBAN string `xml:"IBAN"`
}

type pain008Agent struct {
	FinInstnID pain008FinInstnID `xml:"FinInstnId"`
}

type pain008FinInstnID struct {
	BIC  string        `xml:"BIC,omitempty"`
	Othr *pain008Other `xml:"Othr,omitempty"`
}

type pain008Other struct {
	ID string `xml:"Id"`
}

type pain008Tx struct {
	PmtID     pain008PmtID     `xml:"PmtId"`
	InstdAmt  pain008Amount    `xml:"InstdAmt"`
	DrctDbtTx pain008DrctDbtTx `xml:"DrctDbtTx"`
	DbtrAgt   pain008Agent     `xml:"DbtrAgt"`
	Dbtr      pain008Party     `xml:"Dbtr"`
	DbtrAcct  pain008Account   `xml:"DbtrAcct"`
	RmtInf    pain008RmtInf    `xml:"RmtInf"`
}

type pain008PmtID struct {
	EndToEndID string `xml:"EndToEndId"`
}

type pain008Amount struct {
	Ccy    string `xml:"Ccy,attr"`
	Amount string `xml:",chardata"`
}

type pain008DrctDbtTx struct {
	MndtRltdInf pain008Mandate `xml:"MndtRltdInf"`
}

type pain008Mandate struct {
	MndtID    string `xml:"MndtId"`
	DtOfSgntr string `xml:"DtOfSgntr"`
}

type pain008RmtInf struct {
	Ustrd string `xml:"Ustrd"`
}
