// internal/radar/filter.go
package radar

import (
	"github.com/libertypr/converge/internal/segment"
	"github.com/libertypr/converge/internal/types"
)

/*
 * Radar display filtering.
 *
 * Filters narrow the catalog without rescoring: each populated filter
 * dimension must pass, empty dimensions pass everything. Date-range checks
 * use the opportunity's lead lineage entry, the most recently modeled data
 * source. Segment filters pass when any selected segment's rule conditions
 * touch an attribute the opportunity recommends targeting, which is how a
 * saved audience "relates" to a market opening.
 */

// Filter returns the opportunities passing every populated filter dimension,
// in catalog order. Segment filters resolve against both seeded and saved
// definitions via the provided lookup; unknown segment ids simply match
// nothing.
func (e *Engine) Filter(filters types.RadarFilters, lookup func(types.SegmentID) *types.SegmentDefinition) []types.Opportunity {
	out := []types.Opportunity{}
	for _, opp := range e.cat.Opportunities {
		if !passesZones(opp, filters.Zones) {
			continue
		}
		if !passesProducts(opp, filters.Products) {
			continue
		}
		if !passesPlanTypes(opp, filters.PlanTypes) {
			continue
		}
		if !passesDateRange(opp, filters.DateRange) {
			continue
		}
		if !passesSegments(opp, filters.Segments, lookup) {
			continue
		}
		out = append(out, opp)
	}
	return out
}

// RelatedSegments returns the segments whose rule conditions touch any
// attribute the opportunity recommends targeting, preserving input order.
func RelatedSegments(opp types.Opportunity, segments []types.SegmentDefinition) []types.SegmentDefinition {
	related := []types.SegmentDefinition{}
	for _, def := range segments {
		if segmentTouchesOpportunity(&def, opp) {
			related = append(related, def)
		}
	}
	return related
}

func passesZones(opp types.Opportunity, zones []string) bool {
	if len(zones) == 0 {
		return true
	}
	return containsString(zones, opp.Zone)
}

func passesProducts(opp types.Opportunity, products []types.Product) bool {
	if len(products) == 0 {
		return true
	}
	for _, p := range products {
		if p == opp.Product {
			return true
		}
	}
	return false
}

func passesPlanTypes(opp types.Opportunity, planTypes []types.PlanType) bool {
	if len(planTypes) == 0 {
		return true
	}
	for _, p := range planTypes {
		if p == opp.PlanType {
			return true
		}
	}
	return false
}

func passesDateRange(opp types.Opportunity, window types.DateRange) bool {
	if window.From == nil && window.To == nil {
		return true
	}
	if len(opp.Lineage) == 0 {
		return false
	}
	refreshed := opp.Lineage[0].Refreshed
	if window.From != nil && refreshed.Before(*window.From) {
		return false
	}
	if window.To != nil && refreshed.After(*window.To) {
		return false
	}
	return true
}

func passesSegments(opp types.Opportunity, ids []types.SegmentID, lookup func(types.SegmentID) *types.SegmentDefinition) bool {
	if len(ids) == 0 {
		return true
	}
	if lookup == nil {
		return false
	}
	for _, id := range ids {
		def := lookup(id)
		if def == nil {
			continue
		}
		if segmentTouchesOpportunity(def, opp) {
			return true
		}
	}
	return false
}

func segmentTouchesOpportunity(def *types.SegmentDefinition, opp types.Opportunity) bool {
	if def.Rules == nil {
		return false
	}
	for _, c := range segment.FlattenConditions(def.Rules) {
		if recommendsAttribute(opp, c.Attribute) {
			return true
		}
	}
	return false
}
