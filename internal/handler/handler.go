// Package handler exposes the ledger engine to its collaborators over
// HTTP: candidate entry intake, journal and mayor queries, tax
// declaration export and SEPA batch export.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/contafacil-dev/contafacil/internal/directory"
	"github.com/contafacil-dev/contafacil/internal/journal"
	"github.com/contafacil-dev/contafacil/internal/ledger"
	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/plan"
)

// Handler wires the engine's components behind the HTTP surface.
type Handler struct {
	registry   *directory.Registry
	journal    *journal.Service
	fiscalYear int
	now        func() time.Time
	logger     *zap.Logger
}

// New creates a Handler.
func New(registry *directory.Registry, svc *journal.Service, fiscalYear int, logger *zap.Logger) *Handler {
	return &Handler{
		registry:   registry,
		journal:    svc,
		fiscalYear: fiscalYear,
		now:        time.Now,
		logger:     logger,
	}
}

// RegisterRoutes attaches all engine routes to a router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/entities", h.ListEntities).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{variant}", h.ListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/entities/{id}/entries", h.RecordEntry).Methods(http.MethodPost)
	r.HandleFunc("/entities/{id}/journal", h.Journal).Methods(http.MethodGet)
	r.HandleFunc("/entities/{id}/ledger", h.Ledger).Methods(http.MethodGet)
	r.HandleFunc("/entities/{id}/declarations/{form}", h.Declaration).Methods(http.MethodGet)
	r.HandleFunc("/entities/{id}/declarations/{form}/file", h.DeclarationFile).Methods(http.MethodGet)
	r.HandleFunc("/entities/{id}/dues", h.GenerateDues).Methods(http.MethodPost)
	r.HandleFunc("/entities/{id}/remittances", h.Remittance).Methods(http.MethodPost)
}

func (h *Handler) entity(w http.ResponseWriter, r *http.Request) (model.Entity, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entity id", mux.Vars(r)["id"])
		return model.Entity{}, false
	}
	e, err := h.registry.Entity(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "entity not found", err.Error())
		return model.Entity{}, false
	}
	return e, true
}

// ListEntities returns the registered entity directory.
func (h *Handler) ListEntities(w http.ResponseWriter, _ *http.Request) {
	type entityResponse struct {
		ID    int    `json:"id"`
		NIF   string `json:"nif"`
		Name  string `json:"name"`
		Type  string `json:"type"`
		Chart string `json:"chart"`
	}
	var out []entityResponse
	for _, e := range h.registry.Entities() {
		out = append(out, entityResponse{
			ID:    e.ID,
			NIF:   e.TaxID,
			Name:  e.LegalName,
			Type:  string(e.Type),
			Chart: string(plan.ForEntity(e).Variant()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ListAccounts returns one built-in chart of accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	variant := model.CatalogVariant(mux.Vars(r)["variant"])
	if variant != model.CatalogPymes && variant != model.CatalogComunidades {
		writeError(w, http.StatusNotFound, "unknown catalog variant", string(variant))
		return
	}

	type accountResponse struct {
		Code        string `json:"code"`
		Description string `json:"description"`
		Class       string `json:"class"`
	}
	var out []accountResponse
	for _, a := range plan.ForVariant(variant).All() {
		out = append(out, accountResponse{Code: a.Code, Description: a.Description, Class: string(a.Class)})
	}
	writeJSON(w, http.StatusOK, out)
}

// RecordEntry validates and appends a candidate journal entry.
func (h *Handler) RecordEntry(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entity(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", req.Date)
		return
	}

	lines, err := req.toLines()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lines", err.Error())
		return
	}

	number, err := h.journal.Record(e.ID, journal.RecordParams{Date: date, Memo: req.Memo, Lines: lines})
	if err != nil {
		var verr journal.ValidationError
		if errors.As(err, &verr) {
			h.logger.Info("entry rejected",
				zap.Int("entity", e.ID),
				zap.String("kind", string(verr.Kind)))
			writeError(w, http.StatusUnprocessableEntity, string(verr.Kind), verr.Description)
			return
		}
		h.logger.Error("recording entry", zap.Int("entity", e.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}

	h.logger.Info("entry recorded", zap.Int("entity", e.ID), zap.Int("number", number))
	writeJSON(w, http.StatusCreated, entryAcceptedResponse{Number: number})
}

// Journal lists an entity's entries in sequence order.
func (h *Handler) Journal(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entity(w, r)
	if !ok {
		return
	}

	catalog := plan.ForEntity(e)
	out := []entryResponse{}
	for _, entry := range h.journal.Store().Entries(e.ID) {
		out = append(out, toEntryResponse(entry, catalog))
	}
	writeJSON(w, http.StatusOK, out)
}

// Ledger projects the mayor, optionally restricted by account code and
// date range (?account=&from=&to=).
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entity(w, r)
	if !ok {
		return
	}

	filter := ledger.Filter{AccountCode: r.URL.Query().Get("account")}
	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if filter.From, err = parseDate(v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date", v)
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if filter.To, err = parseDate(v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date", v)
			return
		}
	}

	catalog := plan.ForEntity(e)
	projection := ledger.Project(h.journal.Store().Entries(e.ID), catalog, filter)

	out := []accountLedgerResponse{}
	for _, code := range ledger.Codes(projection) {
		out = append(out, toLedgerResponse(code, projection[code], catalog))
	}
	writeJSON(w, http.StatusOK, out)
}

// GenerateDues builds a month's ordinary-dues receivables for an
// association's owners.
func (h *Handler) GenerateDues(w http.ResponseWriter, r *http.Request) {
	e, ok := h.entity(w, r)
	if !ok {
		return
	}
	if e.Type != model.EntityOwnersAssoc {
		writeError(w, http.StatusUnprocessableEntity, "dues require an owners association", string(e.Type))
		return
	}

	var req duesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", req.Month)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", req.Amount)
		return
	}

	dues := directory.MonthlyDues(h.registry.Parties(directory.PartyOwner), month, amount)
	out := make([]receivableResponse, 0, len(dues))
	for _, d := range dues {
		out = append(out, receivableResponse{
			Number:     d.Number,
			Amount:     d.Amount.StringFixed(2),
			DebtorName: d.Debtor.Name,
			DebtorIBAN: d.Debtor.IBAN,
			MandateRef: d.MandateRef,
			Memo:       d.Memo,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
