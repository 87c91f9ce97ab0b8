package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/contafacil-dev/contafacil/internal/aeat"
	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/plan"
	"github.com/contafacil-dev/contafacil/internal/tax"
)

func (h *Handler) declarationFigures(w http.ResponseWriter, r *http.Request) (model.Entity, tax.Figures, bool) {
	e, ok := h.entity(w, r)
	if !ok {
		return model.Entity{}, tax.Figures{}, false
	}

	form := tax.FormCode(mux.Vars(r)["form"])
	if !tax.Applies(form, e.Type) {
		writeError(w, http.StatusUnprocessableEntity, "form not applicable",
			fmt.Sprintf("form %s does not apply to %s", form, e.Type))
		return model.Entity{}, tax.Figures{}, false
	}

	year := h.fiscalYear
	if v := r.URL.Query().Get("year"); v != "" {
		var err error
		if year, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid year", v)
			return model.Entity{}, tax.Figures{}, false
		}
	}

	period := tax.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = tax.PeriodAnnual
	}
	if !period.Valid() {
		writeError(w, http.StatusBadRequest, "invalid period", string(period))
		return model.Entity{}, tax.Figures{}, false
	}

	fig, err := tax.Aggregate(h.journal.Store().Entries(e.ID), plan.ForEntity(e), form, year, period)
	if err != nil {
		writeError(w, http.StatusBadRequest, "aggregation failed", err.Error())
		return model.Entity{}, tax.Figures{}, false
	}
	return e, fig, true
}

// Declaration previews a form's figures as JSON.
func (h *Handler) Declaration(w http.ResponseWriter, r *http.Request) {
	_, fig, ok := h.declarationFigures(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toFiguresResponse(fig))
}

// DeclarationFile exports a form as a fixed-width AEAT submission
// file.
func (h *Handler) DeclarationFile(w http.ResponseWriter, r *http.Request) {
	e, fig, ok := h.declarationFigures(w, r)
	if !ok {
		return
	}

	out, err := aeat.EncodeDeclaration(e, fig)
	if err != nil {
		var overflow aeat.FieldOverflowError
		if errors.As(err, &overflow) {
			writeError(w, http.StatusUnprocessableEntity, "figure exceeds field width", overflow.Error())
			return
		}
		h.logger.Error("encoding declaration", zap.Int("entity", e.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}

	filename := aeat.Filename(fig.Form, fig.Year, fig.Period)
	h.logger.Info("declaration exported",
		zap.Int("entity", e.ID),
		zap.String("form", string(fig.Form)),
		zap.String("file", filename))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
