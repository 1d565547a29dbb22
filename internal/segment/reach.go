// internal/segment/reach.go
package segment

import (
	"math"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

/*
 * Channel reach projection.
 *
 * Reach starts from the catalog's base per-channel ratios and folds the rule
 * tree's condition leaves over them in depth-first order. Each leaf maps to a
 * pure adjustment (ratios in, ratios out); the fold threads an immutable
 * ratios value through the leaves, so adjustment order is exactly leaf order
 * and no step mutates shared state.
 *
 * Adjustments are additive bumps except consent leaves, which raise a floor
 * (max) rather than add, and zone leaves, which only react to list values.
 * Final per-channel reach is round(size * min(cap, ratio)) with caps from the
 * catalog.
 */

// Reach projects per-channel addressable counts for a segment of the given
// size under the given rule tree.
func (e *Engine) Reach(root *types.Group, size int) types.ChannelReach {
	ratios := foldLeaves(e.cat.BaseRatios, root)
	caps := e.cat.Caps
	return types.ChannelReach{
		Email:      channelReach(size, ratios.Email, caps.Email),
		SMS:        channelReach(size, ratios.SMS, caps.SMS),
		WhatsApp:   channelReach(size, ratios.WhatsApp, caps.WhatsApp),
		Retail:     channelReach(size, ratios.Retail, caps.Retail),
		CallCenter: channelReach(size, ratios.CallCenter, caps.CallCenter),
		PaidSocial: channelReach(size, ratios.PaidSocial, caps.PaidSocial),
		Display:    channelReach(size, ratios.Display, caps.Display),
	}
}

func channelReach(size int, ratio, cap float64) int {
	if ratio > cap {
		ratio = cap
	}
	return int(math.Round(float64(size) * ratio))
}

// foldLeaves applies adjustForCondition across condition leaves depth-first.
func foldLeaves(ratios catalog.ChannelRatios, node types.RuleNode) catalog.ChannelRatios {
	switch n := node.(type) {
	case *types.Condition:
		return adjustForCondition(ratios, n)
	case *types.Group:
		for _, child := range n.Children {
			ratios = foldLeaves(ratios, child)
		}
		return ratios
	default:
		return ratios
	}
}

// adjustForCondition returns the ratios after applying one leaf's channel
// adjustment. Conditions on attributes without a channel effect pass the
// ratios through unchanged.
func adjustForCondition(r catalog.ChannelRatios, c *types.Condition) catalog.ChannelRatios {
	switch c.Attribute {
	case types.AttrLanguage:
		if c.Value.Scalar() == string(types.LanguageSpanish) {
			r.WhatsApp += 0.18
			r.SMS += 0.04
		} else {
			r.Email += 0.06
		}
	case types.AttrPlanType:
		switch c.Value.Scalar() {
		case string(types.PlanPrepaid):
			r.SMS += 0.08
			r.WhatsApp += 0.06
		case string(types.PlanBundle):
			r.Retail += 0.10
			r.Email += 0.05
		}
	case types.AttrBundleEligible:
		if c.Value.IsBool() && c.Value.Bool {
			r.Retail += 0.08
			r.PaidSocial += 0.05
		}
	case types.AttrConsentWhatsApp:
		if c.Value.IsBool() && c.Value.Bool {
			r.WhatsApp = math.Max(r.WhatsApp, 0.86)
		}
	case types.AttrConsentSMS:
		if c.Value.IsBool() && c.Value.Bool {
			r.SMS = math.Max(r.SMS, 0.88)
		}
	case types.AttrZone:
		// Zone adjustments react to list values only; a scalar zone equals
		// carries no channel signal.
		if c.Value.IsList() {
			for _, zone := range c.Value.List {
				switch zone {
				case "Mayagüez":
					r.CallCenter += 0.05
				case "San Juan Metro":
					r.Email += 0.04
				}
			}
		}
	}
	return r
}
