package model

import "github.com/shopspring/decimal"

// Debtor identifies the party a direct debit is collected from. IBANs
// are assumed checksum-valid on entry.
type Debtor struct {
	Name string
	IBAN string
}

// Receivable is one pending collection (an owner's dues, a customer
// invoice) eligible for a SEPA direct-debit batch.
type Receivable struct {
	Number     string
	Amount     decimal.Decimal
	Debtor     Debtor
	MandateRef string
	Memo       string
}

// CreditorAccount is the bank account a direct-debit batch collects
// into.
type CreditorAccount struct {
	IBAN string
	BIC  string
}
