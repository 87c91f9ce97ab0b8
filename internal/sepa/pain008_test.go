package sepa

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafacil-dev/contafacil/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func duesBatch(n int) DirectDebitInitiation {
	var receivables []model.Receivable
	for i := 1; i <= n; i++ {
		receivables = append(receivables, model.Receivable{
			Number:     fmt.Sprintf("R-202602-%03d", i),
			Amount:     dec("125.50"),
			Debtor:     model.Debtor{Name: fmt.Sprintf("PROPIETARIO %d", i), IBAN: "ES7921000813610123456789"},
			MandateRef: fmt.Sprintf("MAND-%03d", i),
			Memo:       "Cuota ordinaria febrero 2026",
		})
	}
	return DirectDebitInitiation{
		MessageID:       "SEPA-20260215103000-ABCDEF01",
		CreatedAt:       time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC),
		CreditorName:    "COMUNIDAD PROP. EDIFICIO LOS NARANJOS",
		CreditorAccount: model.CreditorAccount{IBAN: "ES9121000418450200051332", BIC: "CAIXESBBXXX"},
		CollectionDate:  time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Receivables:     receivables,
	}
}

// Decoded view of the emitted document, used to verify the control
// invariants against the output itself.
type decodedDoc struct {
	GrpHdr struct {
		MsgID   string `xml:"MsgId"`
		NbOfTxs int    `xml:"NbOfTxs"`
		CtrlSum string `xml:"CtrlSum"`
		Initg   struct {
			Nm string `xml:"Nm"`
		} `xml:"InitgPty"`
	} `xml:"CstmrDrctDbtInitn>GrpHdr"`
	PmtInf struct {
		PmtInfID     string `xml:"PmtInfId"`
		PmtMtd       string `xml:"PmtMtd"`
		NbOfTxs      int    `xml:"NbOfTxs"`
		CtrlSum      string `xml:"CtrlSum"`
		ReqdColltnDt string `xml:"ReqdColltnDt"`
		Txs          []struct {
			EndToEndID string `xml:"PmtId>EndToEndId"`
			InstdAmt   string `xml:"InstdAmt"`
			MndtID     string `xml:"DrctDbtTx>MndtRltdInf>MndtId"`
			DbtrName   string `xml:"Dbtr>Nm"`
			DbtrIBAN   string `xml:"DbtrAcct>Id>IBAN"`
		} `xml:"DrctDbtTxInf"`
	} `xml:"CstmrDrctDbtInitn>PmtInf"`
}

func decode(t *testing.T, out []byte) decodedDoc {
	t.Helper()
	var doc decodedDoc
	require.NoError(t, xml.Unmarshal(out, &doc))
	return doc
}

// Three receivables of 125.50 each: NbOfTxs=3, CtrlSum=376.50.
func TestControlSumMatchesTransactions(t *testing.T) {
	out, err := duesBatch(3).ToXML()
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, 3, doc.GrpHdr.NbOfTxs)
	assert.Equal(t, "376.50", doc.GrpHdr.CtrlSum)
	assert.Equal(t, 3, doc.PmtInf.NbOfTxs)
	assert.Equal(t, "376.50", doc.PmtInf.CtrlSum)
	require.Len(t, doc.PmtInf.Txs, 3)

	sum := decimal.Zero
	for _, tx := range doc.PmtInf.Txs {
		sum = sum.Add(dec(tx.InstdAmt))
	}
	assert.Equal(t, doc.GrpHdr.CtrlSum, sum.StringFixed(2))
}

func TestBatchFields(t *testing.T) {
	out, err := duesBatch(2).ToXML()
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, xml.Header))
	assert.Contains(t, s, `xmlns="urn:iso:std:iso:20022:tech:xsd:pain.008.001.02"`)
	assert.Contains(t, s, "<PmtMtd>DD</PmtMtd>")
	assert.Contains(t, s, "<Cd>SEPA</Cd>")
	assert.Contains(t, s, "<Cd>CORE</Cd>")
	assert.Contains(t, s, "<SeqTp>RCUR</SeqTp>")
	assert.Contains(t, s, "<Id>NOTPROVIDED</Id>")
	assert.Contains(t, s, `<InstdAmt Ccy="EUR">125.50</InstdAmt>`)

	doc := decode(t, out)
	assert.Equal(t, "SEPA-20260215103000-ABCDEF01", doc.GrpHdr.MsgID)
	assert.Equal(t, "SEPA-20260215103000-ABCDEF01-001", doc.PmtInf.PmtInfID)
	assert.Equal(t, "2026-02-20", doc.PmtInf.ReqdColltnDt)
	assert.Equal(t, "E2E-R-202602-001", doc.PmtInf.Txs[0].EndToEndID)
	assert.Equal(t, "MAND-002", doc.PmtInf.Txs[1].MndtID)
	assert.Equal(t, "ES7921000813610123456789", doc.PmtInf.Txs[0].DbtrIBAN)
}

func TestLongNamesTruncated(t *testing.T) {
	batch := duesBatch(1)
	batch.CreditorName = strings.Repeat("COMUNIDAD ", 20)
	batch.Receivables[0].Debtor.Name = strings.Repeat("GARCIA ", 20)

	out, err := batch.ToXML()
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Len(t, doc.GrpHdr.Initg.Nm, 70)
	assert.Len(t, doc.PmtInf.Txs[0].DbtrName, 70)
}

func TestEmptyBatchRejected(t *testing.T) {
	batch := duesBatch(0)
	_, err := batch.ToXML()
	assert.Error(t, err)
}

func TestNonPositiveAmountRejected(t *testing.T) {
	batch := duesBatch(1)
	batch.Receivables[0].Amount = dec("0.00")
	_, err := batch.ToXML()
	assert.Error(t, err)
}

func TestNewMessageIDFormat(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)
	id := NewMessageID(now)

	assert.Regexp(t, regexp.MustCompile(`^SEPA-20260215103000-[0-9A-F]{8}$`), id)
	assert.NotEqual(t, id, NewMessageID(now), "random component must differ")
}
