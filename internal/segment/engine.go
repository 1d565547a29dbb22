// Package segment implements the audience rule evaluation engine: coverage
// estimation over boolean rule trees, channel reach projection, guardrail
// checks, impact economics, sample-profile matching, and version diffing.
//
// The engine is deterministic and side-effect free given a catalog; every
// public operation recomputes from the rule tree, never from cached partial
// state. The only cache is a coverage memo keyed by structural signature,
// which is a pure speedup and never changes results.
package segment

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

// coverageMemoSize bounds the coverage memo. Editing sessions revisit the
// same handful of trees while toggling conditions; a few hundred entries
// covers that working set.
const coverageMemoSize = 512

// Engine evaluates rule trees against an immutable catalog.
type Engine struct {
	cat  *catalog.Catalog
	memo *lru.Cache[string, float64]
	now  func() time.Time
}

// New returns an engine bound to the given catalog.
func New(cat *catalog.Catalog) *Engine {
	// lru.New errors only on a non-positive size.
	memo, _ := lru.New[string, float64](coverageMemoSize)
	return &Engine{cat: cat, memo: memo, now: time.Now}
}

// NewWithClock returns an engine with an injected clock, for tests that
// assert on metrics freshness.
func NewWithClock(cat *catalog.Catalog, now func() time.Time) *Engine {
	e := New(cat)
	e.now = now
	return e
}

// Catalog exposes the engine's catalog for callers that need the static
// data alongside evaluation results.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// signature returns a canonical structural encoding of a rule tree. Trees
// that differ only in node ids share a signature; condition order matters
// because reach folding is order-sensitive and coverage keys on the same
// identity for consistency.
func signature(node types.RuleNode) string {
	var b strings.Builder
	writeSignature(&b, node)
	return b.String()
}

func writeSignature(b *strings.Builder, node types.RuleNode) {
	switch n := node.(type) {
	case *types.Condition:
		b.WriteString("c|")
		b.WriteString(string(n.Attribute))
		b.WriteByte('|')
		b.WriteString(string(n.Comparator))
		b.WriteByte('|')
		b.WriteString(n.Value.Canonical())
	case *types.Group:
		b.WriteString("g|")
		b.WriteString(string(n.Combinator))
		b.WriteByte('(')
		for i, child := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSignature(b, child)
		}
		b.WriteByte(')')
	}
}
