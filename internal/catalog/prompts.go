package catalog

import "github.com/libertypr/converge/internal/types"

// clarifyingPrompts returns the fixed prompt checklist attached to every
// context interpretation. Prompts never depend on the context; the UI
// decides which to surface.
func clarifyingPrompts() []types.ClarifyingPrompt {
	return []types.ClarifyingPrompt{
		{
			ID:    "plan-type",
			Label: "Should we focus on prepaid or postpaid cohorts?",
			Fields: []types.ClarifyingField{
				{
					Key:   "planType",
					Label: "Preferred plan construct",
					Type:  "select",
					Options: []types.ClarifyingOption{
						{Label: "Prepaid", Value: "prepaid"},
						{Label: "Postpaid", Value: "postpaid"},
						{Label: "Converged bundle", Value: "bundle"},
					},
				},
			},
		},
		{
			ID:    "bundle-eligibility",
			Label: "Are Liberty Loop bundles in scope for this push?",
			Fields: []types.ClarifyingField{
				{Key: "bundleEligible", Label: "Bundle eligible", Type: "toggle"},
			},
		},
		{
			ID:    "language",
			Label: "What language should we lead with?",
			Fields: []types.ClarifyingField{
				{
					Key:   "language",
					Label: "Engagement language",
					Type:  "select",
					Options: []types.ClarifyingOption{
						{Label: "English", Value: "en"},
						{Label: "Spanish", Value: "es"},
					},
				},
			},
		},
	}
}
