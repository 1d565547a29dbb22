// internal/segment/evaluate.go
package segment

import (
	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

/*
 * Coverage estimation.
 *
 * Coverage is the estimated fraction of the base population a rule tree
 * selects, computed by recursive descent:
 *
 *   - Condition leaves map to population fractions via the catalog weight
 *     tables. Unknown (attribute, value) pairs degrade to documented
 *     fallback weights instead of failing; Lint surfaces them.
 *   - AND groups multiply child coverages, with each child clamped to
 *     [0.08, 0.9] so one exotic condition cannot zero out or dominate the
 *     whole conjunction.
 *   - OR groups take the mean of child coverages, capped at 1. The mean
 *     rather than the inclusion-exclusion sum keeps wide OR fans from
 *     saturating instantly.
 *   - Empty groups are unconstrained and cover everything (coverage 1).
 *
 * Raw coverage is memoized by structural signature; the clamp to the
 * catalog's [MinCoverage, MaxCoverage] band happens in Coverage.
 */

// Clamp band applied to each AND child before multiplying.
const (
	andChildFloor = 0.08
	andChildCeil  = 0.9
)

// Coverage returns the clamped coverage estimate for a rule tree. Nil trees
// are treated as unconstrained.
func (e *Engine) Coverage(root *types.Group) float64 {
	raw := e.rawCoverage(root)
	if raw < e.cat.MinCoverage {
		return e.cat.MinCoverage
	}
	if raw > e.cat.MaxCoverage {
		return e.cat.MaxCoverage
	}
	return raw
}

func (e *Engine) rawCoverage(root *types.Group) float64 {
	if root == nil {
		return 1
	}
	key := signature(root)
	if v, ok := e.memo.Get(key); ok {
		return v
	}
	v := e.evalNode(root)
	e.memo.Add(key, v)
	return v
}

func (e *Engine) evalNode(node types.RuleNode) float64 {
	switch n := node.(type) {
	case *types.Condition:
		return e.leafWeight(n)
	case *types.Group:
		return e.evalGroup(n)
	default:
		return 1
	}
}

func (e *Engine) evalGroup(g *types.Group) float64 {
	if len(g.Children) == 0 {
		return 1
	}
	if g.Combinator == types.CombinatorOr {
		sum := 0.0
		for _, child := range g.Children {
			sum += e.evalNode(child)
		}
		mean := sum / float64(len(g.Children))
		if mean > 1 {
			return 1
		}
		return mean
	}
	product := 1.0
	for _, child := range g.Children {
		w := e.evalNode(child)
		if w < andChildFloor {
			w = andChildFloor
		}
		if w > andChildCeil {
			w = andChildCeil
		}
		product *= w
	}
	return product
}

// leafWeight resolves a condition to a population fraction. Zone conditions
// always sum member weights because zones overlap rather than partition the
// base; other in-lists sum member weights too, and scalars look up a single
// entry.
func (e *Engine) leafWeight(c *types.Condition) float64 {
	if c.Attribute == types.AttrZone {
		return sumMemberWeights(e.cat.RangeWeights[types.AttrZone], c.Value.Members())
	}
	if c.Comparator == types.ComparatorIn || c.Value.IsList() {
		members := c.Value.Members()
		table, ok := e.cat.RangeWeights[c.Attribute]
		if !ok {
			return catalog.FallbackPerValueWeight * float64(len(members))
		}
		return sumMemberWeights(table, members)
	}
	if c.Value.IsBool() {
		if table, ok := e.cat.BooleanWeights[c.Attribute]; ok {
			if w, ok := table[c.Value.Scalar()]; ok {
				return w
			}
		}
		if c.Value.Bool {
			return catalog.FallbackTrueWeight
		}
		return catalog.FallbackFalseWeight
	}
	if table, ok := e.cat.RangeWeights[c.Attribute]; ok {
		if w, ok := table[c.Value.Scalar()]; ok {
			return w
		}
	}
	return catalog.FallbackScalarWeight
}

func sumMemberWeights(table map[string]float64, members []string) float64 {
	sum := 0.0
	for _, m := range members {
		if w, ok := table[m]; ok {
			sum += w
		} else {
			sum += catalog.FallbackListMemberWeight
		}
	}
	return sum
}
