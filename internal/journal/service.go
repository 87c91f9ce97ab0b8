package journal

import (
	"fmt"
	"time"

	"github.com/contafacil-dev/contafacil/internal/model"
)

// CatalogResolver yields the chart of accounts governing an entity's
// journal. Entities on different charts coexist in one store.
type CatalogResolver interface {
	CatalogFor(entityID int) (AccountChecker, error)
}

// Service records candidate entries against a store, validating each
// one against the chart of accounts that governs the entity.
type Service struct {
	store    *Store
	catalogs CatalogResolver
}

// NewService creates a journal Service.
func NewService(store *Store, catalogs CatalogResolver) *Service {
	return &Service{store: store, catalogs: catalogs}
}

// Store exposes the underlying journal store for read-only projection.
func (s *Service) Store() *Store {
	return s.store
}

// RecordParams holds a candidate entry as supplied by the capture
// collaborator.
type RecordParams struct {
	Date  time.Time
	Memo  string
	Lines []model.Line
}

// Record validates a candidate and, only if valid, appends it to the
// entity's log. Returns the assigned sequence number. On a validation
// failure the journal is untouched and the candidate discarded.
func (s *Service) Record(entityID int, params RecordParams) (int, error) {
	accounts, err := s.catalogs.CatalogFor(entityID)
	if err != nil {
		return 0, fmt.Errorf("resolving catalog: %w", err)
	}

	candidate := model.Entry{
		EntityID: entityID,
		Date:     params.Date,
		Memo:     params.Memo,
		Lines:    params.Lines,
	}

	if err := Validate(candidate, accounts); err != nil {
		return 0, err
	}

	return s.store.Append(entityID, candidate), nil
}
