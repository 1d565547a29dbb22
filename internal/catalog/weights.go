package catalog

import "github.com/libertypr/converge/internal/types"

// macroZones lists the island's marketing macro zones in descending
// population order. Zone leaf weights derive from this ordering.
func macroZones() []string {
	return []string{
		"San Juan Metro",
		"Bayamón",
		"Carolina",
		"Ponce",
		"Caguas",
		"Arecibo",
		"Mayagüez",
		"Humacao",
	}
}

// rangeWeights builds the categorical weight tables. Zone weights step down
// by 0.012 per rank from a 0.18 ceiling so larger zones contribute more
// coverage; zones are not mutually exclusive, so multi-zone conditions sum.
func rangeWeights(zones []string) map[types.AttributeKey]map[string]float64 {
	zoneWeights := make(map[string]float64, len(zones))
	for i, zone := range zones {
		zoneWeights[zone] = 0.18 - float64(i)*0.012
	}
	return map[types.AttributeKey]map[string]float64{
		types.AttrTenureMonths: {
			"0-3":   0.18,
			"4-12":  0.32,
			"13-24": 0.28,
			"24+":   0.22,
		},
		types.AttrARPUBand: {
			"<$35":     0.34,
			"$35-$55":  0.28,
			"$55-$75":  0.2,
			">$75":     0.18,
		},
		types.AttrPlanType: {
			"prepaid":  0.46,
			"postpaid": 0.42,
			"bundle":   0.18,
		},
		types.AttrDeviceOS: {
			"Android": 0.52,
			"iOS":     0.36,
			"Mixed":   0.12,
		},
		types.AttrLanguage: {
			"es": 0.62,
			"en": 0.38,
		},
		types.AttrZone: zoneWeights,
	}
}

// booleanWeights builds the boolean weight tables, keyed "true"/"false".
func booleanWeights() map[types.AttributeKey]map[string]float64 {
	return map[types.AttributeKey]map[string]float64{
		types.AttrHasFiberPass:    {"true": 0.44, "false": 0.56},
		types.AttrPrepaid:         {"true": 0.48, "false": 0.52},
		types.AttrBundleEligible:  {"true": 0.36, "false": 0.64},
		types.AttrConsentSMS:      {"true": 0.71, "false": 0.29},
		types.AttrConsentWhatsApp: {"true": 0.58, "false": 0.42},
	}
}
