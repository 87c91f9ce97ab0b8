// Package directory holds the entity and third-party records the
// engine is handed by its caller. Records arrive already validated
// (NIF/IBAN checksums included); the engine only reads them.
package directory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/contafacil-dev/contafacil/internal/journal"
	"github.com/contafacil-dev/contafacil/internal/model"
	"github.com/contafacil-dev/contafacil/internal/plan"
)

// ErrEntityNotFound reports a lookup for an unregistered entity.
var ErrEntityNotFound = errors.New("entity not found")

// PartyKind classifies a third party.
type PartyKind string

const (
	PartyCustomer PartyKind = "cliente"
	PartySupplier PartyKind = "proveedor"
	PartyOwner    PartyKind = "propietario"
)

// Party is a third party (customer, supplier, property owner).
type Party struct {
	ID    int
	TaxID string
	Name  string
	Kind  PartyKind
	IBAN  string
}

// Registry is an in-memory directory of entities and parties.
type Registry struct {
	entities map[int]model.Entity
	parties  []Party
}

// New creates a Registry from caller-supplied records.
func New(entities []model.Entity, parties []Party) *Registry {
	byID := make(map[int]model.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}
	return &Registry{entities: byID, parties: parties}
}

// Entity returns a registered entity.
func (r *Registry) Entity(id int) (model.Entity, error) {
	e, ok := r.entities[id]
	if !ok {
		return model.Entity{}, fmt.Errorf("%w: id %d", ErrEntityNotFound, id)
	}
	return e, nil
}

// Entities returns all registered entities ordered by id.
func (r *Registry) Entities() []model.Entity {
	out := make([]model.Entity, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Parties returns the third parties of one kind.
func (r *Registry) Parties(kind PartyKind) []Party {
	var out []Party
	for _, p := range r.parties {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// CatalogFor resolves the chart of accounts governing an entity's
// journal. Satisfies journal.CatalogResolver.
func (r *Registry) CatalogFor(entityID int) (journal.AccountChecker, error) {
	e, err := r.Entity(entityID)
	if err != nil {
		return nil, err
	}
	return plan.ForEntity(e), nil
}
