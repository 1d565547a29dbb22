// internal/segment/profiles.go
package segment

import "github.com/libertypr/converge/internal/types"

// maxMatchedProfiles caps the preview panel; three faces is enough to make a
// segment concrete without implying the list is exhaustive.
const maxMatchedProfiles = 3

// MatchProfiles returns up to three catalog sample profiles matching the rule
// tree, in catalog order. Matching compares stringified values on both
// sides: equals requires exact equality, in requires list membership. An
// empty or nil AND root matches everyone; an empty OR group has no
// satisfiable branch and matches no one.
func (e *Engine) MatchProfiles(root *types.Group) []types.SampleProfile {
	matched := []types.SampleProfile{}
	for _, profile := range e.cat.SampleProfiles {
		if profileMatches(root, profile) {
			matched = append(matched, profile)
			if len(matched) == maxMatchedProfiles {
				break
			}
		}
	}
	return matched
}

func profileMatches(node types.RuleNode, profile types.SampleProfile) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *types.Condition:
		return conditionMatches(n, profile)
	case *types.Group:
		if n.Combinator == types.CombinatorOr {
			for _, child := range n.Children {
				if profileMatches(child, profile) {
					return true
				}
			}
			return false
		}
		for _, child := range n.Children {
			if !profileMatches(child, profile) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func conditionMatches(c *types.Condition, profile types.SampleProfile) bool {
	actual := profile.Attributes[c.Attribute]
	if c.Comparator == types.ComparatorIn {
		for _, member := range c.Value.Members() {
			if member == actual {
				return true
			}
		}
		return false
	}
	return c.Value.Scalar() == actual
}
