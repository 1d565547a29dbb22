package catalog

import "github.com/libertypr/converge/internal/types"

// sampleProfiles returns the synthetic member profiles used by rule preview
// panels, in catalog order. Profile matching returns at most three of these.
// Attribute values are stored stringified because matching compares
// stringified values on both sides.
func sampleProfiles() []types.SampleProfile {
	return []types.SampleProfile{
		{
			ID:   "profile-marisol",
			Name: "Marisol R.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "4-12",
				types.AttrARPUBand:        "$35-$55",
				types.AttrDeviceOS:        "Android",
				types.AttrHasFiberPass:    "true",
				types.AttrPrepaid:         "false",
				types.AttrPlanType:        "postpaid",
				types.AttrBundleEligible:  "true",
				types.AttrLanguage:        "es",
				types.AttrConsentSMS:      "true",
				types.AttrConsentWhatsApp: "true",
				types.AttrZone:            "San Juan Metro",
			},
			Notes: "Postpaid mobile inside a fresh fiber pass; prime Loop candidate.",
		},
		{
			ID:   "profile-hector",
			Name: "Héctor V.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "0-3",
				types.AttrARPUBand:        "<$35",
				types.AttrDeviceOS:        "Android",
				types.AttrHasFiberPass:    "false",
				types.AttrPrepaid:         "true",
				types.AttrPlanType:        "prepaid",
				types.AttrBundleEligible:  "false",
				types.AttrLanguage:        "es",
				types.AttrConsentSMS:      "true",
				types.AttrConsentWhatsApp: "false",
				types.AttrZone:            "Arecibo",
			},
			Notes: "Recent prepaid add on a lapsed affordability subsidy.",
		},
		{
			ID:   "profile-janice",
			Name: "Janice O.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "13-24",
				types.AttrARPUBand:        "$55-$75",
				types.AttrDeviceOS:        "iOS",
				types.AttrHasFiberPass:    "true",
				types.AttrPrepaid:         "false",
				types.AttrPlanType:        "bundle",
				types.AttrBundleEligible:  "true",
				types.AttrLanguage:        "en",
				types.AttrConsentSMS:      "true",
				types.AttrConsentWhatsApp: "false",
				types.AttrZone:            "Caguas",
			},
			Notes: "Existing Loop household; upgrade and cross-sell motions only.",
		},
		{
			ID:   "profile-luis",
			Name: "Luis M.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "24+",
				types.AttrARPUBand:        "$35-$55",
				types.AttrDeviceOS:        "Android",
				types.AttrHasFiberPass:    "false",
				types.AttrPrepaid:         "false",
				types.AttrPlanType:        "postpaid",
				types.AttrBundleEligible:  "false",
				types.AttrLanguage:        "es",
				types.AttrConsentSMS:      "false",
				types.AttrConsentWhatsApp: "true",
				types.AttrZone:            "Ponce",
			},
			Notes: "Long-tenure southern subscriber; storm make-good audience.",
		},
		{
			ID:   "profile-carmen",
			Name: "Carmen T.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "13-24",
				types.AttrARPUBand:        "<$35",
				types.AttrDeviceOS:        "Mixed",
				types.AttrHasFiberPass:    "false",
				types.AttrPrepaid:         "true",
				types.AttrPlanType:        "prepaid",
				types.AttrBundleEligible:  "false",
				types.AttrLanguage:        "es",
				types.AttrConsentSMS:      "true",
				types.AttrConsentWhatsApp: "true",
				types.AttrZone:            "Mayagüez",
			},
			Notes: "Price-sensitive west-coast prepaid; responds to top-up streaks.",
		},
		{
			ID:   "profile-derek",
			Name: "Derek S.",
			Attributes: map[types.AttributeKey]string{
				types.AttrTenureMonths:    "4-12",
				types.AttrARPUBand:        ">$75",
				types.AttrDeviceOS:        "iOS",
				types.AttrHasFiberPass:    "true",
				types.AttrPrepaid:         "false",
				types.AttrPlanType:        "postpaid",
				types.AttrBundleEligible:  "true",
				types.AttrLanguage:        "en",
				types.AttrConsentSMS:      "true",
				types.AttrConsentWhatsApp: "false",
				types.AttrZone:            "Bayamón",
			},
			Notes: "High-ARPU relocator; FWA or fiber attach both viable.",
		},
	}
}
