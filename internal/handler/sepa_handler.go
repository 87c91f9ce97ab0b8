package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/sepa"
)

// Remittance builds a SEPA direct-debit batch for the supplied
// receivables and returns the pain.008 document.
func (h *Handler) Remittance(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entity(w, r)
	if !ok {
		return
	}

	var req remittanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	collectionDate, err := parseDate(req.CollectionDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid collection date", req.CollectionDate)
		return
	}

	receivables, err := req.toReceivables()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid receivables", err.Error())
		return
	}

	now := h.now()
	batch := sepa.DirectDebitInitiation{
		MessageID:    sepa.NewMessageID(now),
		CreatedAt:    now,
		CreditorName: e.LegalName,
		CreditorAccount: model.CreditorAccount{
			IBAN: req.CreditorAccount.IBAN,
			BIC:  req.CreditorAccount.BIC,
		},
		CollectionDate: collectionDate,
		Receivables:    receivables,
	}

	out, err := batch.ToXML()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "cannot encode batch", err.Error())
		return
	}

	h.logger.Info("remittance generated",
		zap.Int("entity", e.ID),
		zap.String("message_id", batch.MessageID),
		zap.Int("receivables", len(receivables)),
		zap.String("control_sum", batch.ControlSum().StringFixed(2)))

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "remesa_"+batch.MessageID+".xml"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
