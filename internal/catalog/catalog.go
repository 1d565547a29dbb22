// Package catalog provides the static lookup data the engines evaluate
// against: attribute weight tables, channel ratios and caps, guardrail
// thresholds, the macro-zone list, the opportunity catalog, sample member
// profiles, and clarifying prompts.
//
// Everything here is immutable configuration injected into the engines at
// construction time. Tests substitute alternate catalogs without touching
// package state; nothing mutates a catalog after Default() returns it.
package catalog

import "github.com/libertypr/converge/internal/types"

// ChannelRatios holds one fractional value per activation channel. Used both
// for base reach ratios and for per-channel ceilings.
type ChannelRatios struct {
	Email      float64
	SMS        float64
	WhatsApp   float64
	Retail     float64
	CallCenter float64
	PaidSocial float64
	Display    float64
}

// Guardrail is a minimum channel-reach threshold. Reach below the threshold
// flags the segment as at-risk for that channel.
type Guardrail struct {
	Key       string // reach field key (email, paidSocial, display)
	Channel   string // display name (Email, Paid Social, Display)
	Threshold int
}

// Economics holds the fixed unit economics behind impact estimates.
type Economics struct {
	BasePropensity        float64
	BundleEligibleBump    float64
	PrepaidBump           float64
	ConsentWhatsAppBump   float64
	RevenuePerConversion  float64
	CostPerHead           float64
	PaybackBaseDays       float64
	PaybackFloorDays      int
}

// Catalog is the full static data set the engines run against.
type Catalog struct {
	// Population model.
	BasePopulation    int
	AddressableFactor float64 // addressable-subset discount applied to coverage
	MinSegmentSize    int     // floor preventing degenerate zero-size segments
	MinCoverage       float64
	MaxCoverage       float64

	// Leaf weight tables. RangeWeights maps attribute -> value -> population
	// fraction; BooleanWeights maps attribute -> "true"/"false" -> fraction.
	RangeWeights   map[types.AttributeKey]map[string]float64
	BooleanWeights map[types.AttributeKey]map[string]float64

	// Channel model.
	BaseRatios ChannelRatios
	Caps       ChannelRatios
	Guardrails []Guardrail

	Economics Economics

	// Market data.
	MacroZones     []string
	Opportunities  []types.Opportunity
	SampleProfiles []types.SampleProfile
	Segments       []types.SegmentDefinition

	ClarifyingPrompts        []types.ClarifyingPrompt
	DefaultStructuredSignals []string
}

// Fallback weights used when a leaf's (attribute, value) pair has no catalog
// entry. Documented behavior, not an error: unknown combinations degrade to
// these defaults instead of failing evaluation.
const (
	FallbackListMemberWeight = 0.12 // per unmatched member of an in-list
	FallbackPerValueWeight   = 0.1  // per member when the attribute has no table
	FallbackTrueWeight       = 0.52 // boolean true with no table entry
	FallbackFalseWeight      = 0.48 // boolean false with no table entry
	FallbackScalarWeight     = 0.24 // scalar equals with no table entry
)

// Default returns the production catalog for the Puerto Rico market.
func Default() *Catalog {
	zones := macroZones()
	return &Catalog{
		BasePopulation:    120000,
		AddressableFactor: 0.22,
		MinSegmentSize:    1500,
		MinCoverage:       0.02,
		MaxCoverage:       1,

		RangeWeights:   rangeWeights(zones),
		BooleanWeights: booleanWeights(),

		BaseRatios: ChannelRatios{
			Email:      0.76,
			SMS:        0.72,
			WhatsApp:   0.52,
			Retail:     0.35,
			CallCenter: 0.48,
			PaidSocial: 0.84,
			Display:    0.92,
		},
		Caps: ChannelRatios{
			Email:      0.95,
			SMS:        0.95,
			WhatsApp:   0.95,
			Retail:     0.7,
			CallCenter: 0.9,
			PaidSocial: 0.98,
			Display:    1.05,
		},
		Guardrails: []Guardrail{
			{Key: "email", Channel: "Email", Threshold: 2000},
			{Key: "paidSocial", Channel: "Paid Social", Threshold: 5000},
			{Key: "display", Channel: "Display", Threshold: 10000},
		},

		Economics: Economics{
			BasePropensity:       0.17,
			BundleEligibleBump:   0.04,
			PrepaidBump:          0.03,
			ConsentWhatsAppBump:  0.02,
			RevenuePerConversion: 58,
			CostPerHead:          11,
			PaybackBaseDays:      45,
			PaybackFloorDays:     21,
		},

		MacroZones:     zones,
		Opportunities:  opportunities(),
		SampleProfiles: sampleProfiles(),
		Segments:       seededSegments(),

		ClarifyingPrompts:        clarifyingPrompts(),
		DefaultStructuredSignals: []string{"affordability program lapse", "promo change"},
	}
}

// FindOpportunity returns the catalog entry with the given id, or nil.
func (c *Catalog) FindOpportunity(id string) *types.Opportunity {
	for i := range c.Opportunities {
		if c.Opportunities[i].ID == id {
			return &c.Opportunities[i]
		}
	}
	return nil
}

// FindSegment returns the seeded segment with the given id, or nil.
func (c *Catalog) FindSegment(id types.SegmentID) *types.SegmentDefinition {
	for i := range c.Segments {
		if c.Segments[i].ID == id {
			return &c.Segments[i]
		}
	}
	return nil
}
