// Package radar implements the opportunity scoring and ranking engine: it
// turns an analyst context into a ranked view of the opportunity catalog,
// with inferred demand drivers, planning assumptions, and display filters.
//
// Scoring is pure arithmetic over the context and catalog; ranking is a
// stable sort so catalog order breaks ties deterministically.
package radar

import (
	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

// Engine ranks the opportunity catalog against analyst contexts.
type Engine struct {
	cat *catalog.Catalog
}

// New returns an engine bound to the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog exposes the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Opportunity returns the catalog entry for id.
func (e *Engine) Opportunity(id string) (*types.Opportunity, error) {
	if opp := e.cat.FindOpportunity(id); opp != nil {
		return opp, nil
	}
	return nil, types.ErrOpportunityNotFound
}
