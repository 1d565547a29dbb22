// internal/segment/impact.go
package segment

import (
	"math"

	"github.com/libertypr/converge/internal/types"
)

// Impact derives the monetary outlook for a segment of the given size.
// Propensity starts at the catalog base and gains a fixed bump for each
// high-intent boolean the tree pins true: bundle eligibility, prepaid, and
// WhatsApp consent. Everything downstream is arithmetic on size and
// propensity; no field is independently settable.
func (e *Engine) Impact(root *types.Group, size int) types.ImpactEstimate {
	econ := e.cat.Economics
	propensity := econ.BasePropensity
	if hasTrueLeaf(root, types.AttrBundleEligible) {
		propensity += econ.BundleEligibleBump
	}
	if hasTrueLeaf(root, types.AttrPrepaid) {
		propensity += econ.PrepaidBump
	}
	if hasTrueLeaf(root, types.AttrConsentWhatsApp) {
		propensity += econ.ConsentWhatsAppBump
	}

	conversions := int(math.Round(float64(size) * propensity))
	revenue := int(math.Round(float64(conversions) * econ.RevenuePerConversion))
	cost := int(math.Round(float64(size) * econ.CostPerHead))

	payback := int(math.Round(econ.PaybackBaseDays - propensity*100))
	if payback < econ.PaybackFloorDays {
		payback = econ.PaybackFloorDays
	}

	return types.ImpactEstimate{
		Propensity:  propensity,
		Conversions: conversions,
		Revenue:     revenue,
		PaybackDays: payback,
		Cost:        cost,
		Margin:      revenue - cost,
	}
}

// hasTrueLeaf reports whether any condition leaf pins the given boolean
// attribute to true.
func hasTrueLeaf(node types.RuleNode, attr types.AttributeKey) bool {
	switch n := node.(type) {
	case *types.Condition:
		return n.Attribute == attr && n.Value.IsBool() && n.Value.Bool
	case *types.Group:
		for _, child := range n.Children {
			if hasTrueLeaf(child, attr) {
				return true
			}
		}
	}
	return false
}
