package catalog

import (
	"time"

	"github.com/libertypr/converge/internal/types"
)

// seededSegments returns the starter segment definitions shipped with the
// console. They power segment-based opportunity filtering and related-segment
// lookup before any analyst has saved a segment of their own.
func seededSegments() []types.SegmentDefinition {
	seededAt := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	return []types.SegmentDefinition{
		{
			ID:          "seed-prepaid-value",
			Name:        "Prepaid value seekers",
			Description: "Low-ARPU prepaid base exposed to affordability lapses.",
			Language:    types.LanguageSpanish,
			Rules: &types.Group{
				ID:         types.RootGroupID,
				Combinator: types.CombinatorAnd,
				Children: []types.RuleNode{
					&types.Condition{
						ID:         "seed-pv-arpu",
						Attribute:  types.AttrARPUBand,
						Comparator: types.ComparatorIn,
						Value:      types.ListValue("<$35", "$35-$55"),
					},
					&types.Condition{
						ID:         "seed-pv-prepaid",
						Attribute:  types.AttrPrepaid,
						Comparator: types.ComparatorEquals,
						Value:      types.BoolValue(true),
					},
				},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:          "seed-storm-south",
			Name:        "Southern storm recovery",
			Description: "Outage-affected southern zones with SMS consent.",
			Language:    types.LanguageSpanish,
			Rules: &types.Group{
				ID:         types.RootGroupID,
				Combinator: types.CombinatorAnd,
				Children: []types.RuleNode{
					&types.Condition{
						ID:         "seed-ss-zone",
						Attribute:  types.AttrZone,
						Comparator: types.ComparatorIn,
						Value:      types.ListValue("Ponce", "Mayagüez", "Arecibo"),
					},
					&types.Condition{
						ID:         "seed-ss-consent",
						Attribute:  types.AttrConsentSMS,
						Comparator: types.ComparatorEquals,
						Value:      types.BoolValue(true),
					},
				},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:          "seed-loop-upsell",
			Name:        "Loop upsell candidates",
			Description: "Bundle-eligible postpaid homes without a converged plan.",
			Language:    types.LanguageEnglish,
			Rules: &types.Group{
				ID:         types.RootGroupID,
				Combinator: types.CombinatorAnd,
				Children: []types.RuleNode{
					&types.Condition{
						ID:         "seed-lu-eligible",
						Attribute:  types.AttrBundleEligible,
						Comparator: types.ComparatorEquals,
						Value:      types.BoolValue(true),
					},
					&types.Condition{
						ID:         "seed-lu-plan",
						Attribute:  types.AttrPlanType,
						Comparator: types.ComparatorEquals,
						Value:      types.StringValue("postpaid"),
					},
				},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}
