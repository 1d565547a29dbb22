// internal/segment/validate.go
package segment

import (
	"fmt"
	"strings"

	"github.com/libertypr/converge/internal/types"
)

/*
 * Rule tree validation and linting.
 *
 * Validate is fail-fast: it walks the tree depth-first and returns the first
 * structural problem wrapped around its sentinel, with the offending node id
 * in the message. Limits (depth, node count, in-list size) are enforced here
 * so evaluation can assume a well-formed tree.
 *
 * Lint is advisory and never fails: it reports every leaf that would resolve
 * through a fallback weight instead of a catalog entry. Evaluation keeps the
 * silent-fallback behavior; Lint exists so the builder UI can flag typos
 * without blocking the analyst.
 */

// Validate checks a rule tree's structure against the closed attribute set,
// comparator/combinator vocabulary, value shapes, and resource limits.
func (e *Engine) Validate(root *types.Group) error {
	if root == nil {
		return types.ErrMissingRoot
	}
	v := &validator{}
	return v.group(root, 1)
}

type validator struct {
	nodes int
}

func (v *validator) group(g *types.Group, depth int) error {
	if depth > types.MaxRuleDepth {
		return fmt.Errorf("group %q at depth %d: %w", g.ID, depth, types.ErrRuleTreeTooDeep)
	}
	if err := v.countNode(g.ID); err != nil {
		return err
	}
	if g.Combinator != types.CombinatorAnd && g.Combinator != types.CombinatorOr {
		return fmt.Errorf("group %q combinator %q: %w", g.ID, g.Combinator, types.ErrInvalidCombinator)
	}
	for _, child := range g.Children {
		switch n := child.(type) {
		case *types.Condition:
			if err := v.condition(n); err != nil {
				return err
			}
		case *types.Group:
			if err := v.group(n, depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("group %q has a nil child: %w", g.ID, types.ErrValueShape)
		}
	}
	return nil
}

func (v *validator) condition(c *types.Condition) error {
	if err := v.countNode(c.ID); err != nil {
		return err
	}
	if !validAttribute(c.Attribute) {
		return fmt.Errorf("condition %q attribute %q: %w", c.ID, c.Attribute, types.ErrUnknownAttribute)
	}
	switch c.Comparator {
	case types.ComparatorEquals:
		if c.Value.IsList() {
			return fmt.Errorf("condition %q: equals requires a scalar value: %w", c.ID, types.ErrValueShape)
		}
	case types.ComparatorIn:
		if !c.Value.IsList() {
			return fmt.Errorf("condition %q: in requires a list value: %w", c.ID, types.ErrValueShape)
		}
		if len(c.Value.List) > types.MaxInValues {
			return fmt.Errorf("condition %q has %d values: %w", c.ID, len(c.Value.List), types.ErrTooManyInValues)
		}
	default:
		return fmt.Errorf("condition %q comparator %q: %w", c.ID, c.Comparator, types.ErrInvalidComparator)
	}
	return nil
}

func (v *validator) countNode(id string) error {
	v.nodes++
	if v.nodes > types.MaxRuleNodes {
		return fmt.Errorf("node %q is node %d: %w", id, v.nodes, types.ErrTooManyRuleNodes)
	}
	return nil
}

func validAttribute(attr types.AttributeKey) bool {
	for _, known := range types.AttributeKeys {
		if attr == known {
			return true
		}
	}
	return false
}

// Lint reports every leaf whose evaluation would fall back to a default
// weight because its (attribute, value) pair is missing from the catalog
// tables. The returned slice is empty, never nil, for a clean tree.
func (e *Engine) Lint(root *types.Group) []types.ValidationWarning {
	warnings := []types.ValidationWarning{}
	if root == nil {
		return warnings
	}
	for _, c := range FlattenConditions(root) {
		warnings = append(warnings, e.lintCondition(c)...)
	}
	return warnings
}

func (e *Engine) lintCondition(c *types.Condition) []types.ValidationWarning {
	var out []types.ValidationWarning
	if c.Attribute == types.AttrZone || c.Comparator == types.ComparatorIn || c.Value.IsList() {
		table := e.cat.RangeWeights[c.Attribute]
		for _, member := range c.Value.Members() {
			if _, ok := table[member]; !ok {
				out = append(out, fallbackWarning(c.Attribute, member))
			}
		}
		return out
	}
	if c.Value.IsBool() {
		if _, ok := e.cat.BooleanWeights[c.Attribute][c.Value.Scalar()]; !ok {
			out = append(out, fallbackWarning(c.Attribute, c.Value.Scalar()))
		}
		return out
	}
	if _, ok := e.cat.RangeWeights[c.Attribute][c.Value.Scalar()]; !ok {
		out = append(out, fallbackWarning(c.Attribute, c.Value.Scalar()))
	}
	return out
}

func fallbackWarning(attr types.AttributeKey, value string) types.ValidationWarning {
	return types.ValidationWarning{
		Attribute: attr,
		Value:     value,
		Message: fmt.Sprintf("No weight entry for %s; evaluation uses a fallback weight.",
			strings.TrimSpace(string(attr)+" = "+value)),
	}
}
