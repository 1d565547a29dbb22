// internal/segment/diff.go
package segment

import (
	"fmt"
	"strings"

	"github.com/libertypr/converge/internal/types"
)

// FlattenConditions returns every condition leaf under node in depth-first
// order.
func FlattenConditions(node types.RuleNode) []*types.Condition {
	var out []*types.Condition
	flattenInto(&out, node)
	return out
}

func flattenInto(out *[]*types.Condition, node types.RuleNode) {
	switch n := node.(type) {
	case *types.Condition:
		*out = append(*out, n)
	case *types.Group:
		for _, child := range n.Children {
			flattenInto(out, child)
		}
	}
}

// conditionIdentity keys a condition for diffing. Node ids are excluded so a
// rebuilt-but-equivalent condition does not read as a change; value identity
// uses the canonical serialization.
func conditionIdentity(c *types.Condition) string {
	return string(c.Attribute) + "|" + string(c.Comparator) + "|" + c.Value.Canonical()
}

// SummariseChange describes the condition delta between a segment version and
// its predecessor. A nil previous tree marks the first version. Additions and
// removals are counted by condition identity and joined with a separator;
// structural moves that keep the same conditions read as no material change.
func SummariseChange(previous, next *types.Group) string {
	if previous == nil {
		return "Initial configuration"
	}

	prevSet := identitySet(previous)
	nextSet := identitySet(next)

	added := 0
	for id := range nextSet {
		if _, ok := prevSet[id]; !ok {
			added++
		}
	}
	removed := 0
	for id := range prevSet {
		if _, ok := nextSet[id]; !ok {
			removed++
		}
	}

	var parts []string
	if added > 0 {
		parts = append(parts, fmt.Sprintf("Added %d rule(s)", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("Removed %d rule(s)", removed))
	}
	if len(parts) == 0 {
		return "No material changes"
	}
	return strings.Join(parts, " · ")
}

func identitySet(root *types.Group) map[string]struct{} {
	set := make(map[string]struct{})
	if root == nil {
		return set
	}
	for _, c := range FlattenConditions(root) {
		set[conditionIdentity(c)] = struct{}{}
	}
	return set
}
