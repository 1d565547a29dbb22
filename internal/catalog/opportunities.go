package catalog

import (
	"time"

	"github.com/libertypr/converge/internal/types"
)

func refreshed(day int, hour int) time.Time {
	return time.Date(2025, time.August, day, hour, 0, 0, 0, time.UTC)
}

// opportunities returns the modeled market openings, in catalog order.
// Catalog order is the tie-break order for ranking, so entries are listed
// roughly by estimated value.
func opportunities() []types.Opportunity {
	return []types.Opportunity{
		{
			ID:              "opp-loop-sjm",
			Title:           "Liberty Loop bundle expansion — San Juan Metro",
			Objective:       types.ObjectiveGrow,
			Product:         types.ProductBundle,
			Zone:            "San Juan Metro",
			SubscriberCount: 18400,
			EstimatedValue:  1280000,
			Confidence:      0.84,
			PlanType:        types.PlanPostpaid,
			Language:        types.LanguageSpanish,
			WhyNow:          "Fiber passings in Río Piedras and Santurce unlocked 6k newly bundle-eligible postpaid homes this quarter.",
			Summary:         "Postpaid mobile subscribers inside new fiber passings who qualify for Liberty Loop pricing but have no fixed product.",
			Trend:           types.OpportunityTrend{Direction: "up", Change: 4.2, Period: "WoW"},
			Reachability: types.OpportunityReachability{
				Email: true, SMS: true, WhatsApp: true, Retail: true, CallCenter: true, EligiblePct: 72,
			},
			PreviewAudience: 6200,
			Signals:         []string{"bundle interest", "promo change"},
			Drivers:         []types.Driver{types.DriverBundleEligibility},
			Assumptions: []string{
				"Loop discount absorbs the convergence offer gap against Claro.",
				"Retail footprint in Plaza Las Américas can carry fulfilment volume.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Río Piedras", Intensity: 0.81},
				{Zone: "Santurce", Intensity: 0.74},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "Claro PR", Offer: "Triple play convergente", Price: 89},
				{Competitor: "T-Mobile PR", Offer: "Magenta + Home Internet", Price: 95},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Fiber passings refresh", Refreshed: refreshed(18, 6)},
				{Source: "Bundle eligibility model", Refreshed: refreshed(17, 22)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrBundleEligible, types.AttrPlanType, types.AttrZone,
			},
		},
		{
			ID:              "opp-storm-ponce",
			Title:           "Storm recovery make-goods — Ponce",
			Objective:       types.ObjectiveRetain,
			Product:         types.ProductMobile,
			Zone:            "Ponce",
			SubscriberCount: 9600,
			EstimatedValue:  540000,
			Confidence:      0.78,
			PlanType:        types.PlanPrepaid,
			Language:        types.LanguageSpanish,
			WhyNow:          "Tropical storm outages in the southern region pushed complaint volume 3x above baseline last week.",
			Summary:         "Prepaid subscribers in outage-affected southern barrios with open trouble tickets or credit requests.",
			Trend:           types.OpportunityTrend{Direction: "up", Change: 6.8, Period: "WoW"},
			Reachability: types.OpportunityReachability{
				Email: false, SMS: true, WhatsApp: true, Retail: true, CallCenter: true, EligiblePct: 64,
			},
			PreviewAudience: 4100,
			Signals:         []string{"storm recovery", "network event"},
			Drivers:         []types.Driver{types.DriverOutageImpact},
			Assumptions: []string{
				"Proactive credits reduce churn intent more than reactive ones.",
				"WhatsApp is the dominant support channel post-storm.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Playa de Ponce", Intensity: 0.88},
				{Zone: "Juana Díaz", Intensity: 0.69},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "Claro PR", Offer: "Crédito por interrupción", Price: 15},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Outage impact feed", Refreshed: refreshed(20, 4)},
				{Source: "Care ticket clustering", Refreshed: refreshed(19, 20)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrZone, types.AttrConsentSMS, types.AttrConsentWhatsApp,
			},
		},
		{
			ID:              "opp-prepaid-arecibo",
			Title:           "Prepaid affordability saves — Arecibo",
			Objective:       types.ObjectiveRetain,
			Product:         types.ProductMobile,
			Zone:            "Arecibo",
			SubscriberCount: 7400,
			EstimatedValue:  410000,
			Confidence:      0.72,
			PlanType:        types.PlanPrepaid,
			Language:        types.LanguageSpanish,
			WhyNow:          "ACP-style subsidy lapse hits low-ARPU prepaid accounts at the next top-up cycle.",
			Summary:         "Low-ARPU prepaid subscribers whose affordability subsidy lapsed and who show shortened top-up intervals.",
			Trend:           types.OpportunityTrend{Direction: "up", Change: 2.9, Period: "MoM"},
			Reachability: types.OpportunityReachability{
				Email: false, SMS: true, WhatsApp: true, Retail: true, CallCenter: false, EligiblePct: 58,
			},
			PreviewAudience: 3300,
			Signals:         []string{"affordability program lapse", "churn spike"},
			Drivers:         []types.Driver{types.DriverPriceSensitivity, types.DriverAffordabilityLapse},
			Assumptions: []string{
				"Streak-based top-up bonuses outperform flat discounts for this cohort.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Arecibo Pueblo", Intensity: 0.77},
				{Zone: "Hatillo", Intensity: 0.58},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "T-Mobile PR", Offer: "Prepaid Unlimited promo", Price: 40},
				{Competitor: "Claro PR", Offer: "Prepago recarga doble", Price: 25},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Subsidy roster diff", Refreshed: refreshed(15, 12)},
				{Source: "Top-up cadence model", Refreshed: refreshed(16, 9)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrARPUBand, types.AttrPrepaid,
			},
		},
		{
			ID:              "opp-fiber-caguas",
			Title:           "Fiber upsell along new pass — Caguas",
			Objective:       types.ObjectiveAcquire,
			Product:         types.ProductFiber,
			Zone:            "Caguas",
			SubscriberCount: 5900,
			EstimatedValue:  380000,
			Confidence:      0.69,
			PlanType:        types.PlanPostpaid,
			Language:        types.LanguageEnglish,
			WhyNow:          "Turnpike-corridor build completed ahead of schedule; passings are cold but competitor DSL churn is elevated.",
			Summary:         "Mobile-only postpaid households inside the new Caguas fiber pass with no fixed broadband on file.",
			Trend:           types.OpportunityTrend{Direction: "flat", Change: 0.4, Period: "MoM"},
			Reachability: types.OpportunityReachability{
				Email: true, SMS: true, WhatsApp: false, Retail: true, CallCenter: true, EligiblePct: 66,
			},
			PreviewAudience: 2700,
			Signals:         []string{"promo change"},
			Drivers:         []types.Driver{types.DriverBundleEligibility},
			Assumptions: []string{
				"Last-mile stability is the lead message against DSL incumbents.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Caguas Norte", Intensity: 0.71},
				{Zone: "Gurabo", Intensity: 0.55},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "AeroNet", Offer: "Fixed wireless 300Mbps", Price: 55},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Build completion report", Refreshed: refreshed(12, 15)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrHasFiberPass, types.AttrZone,
			},
		},
		{
			ID:              "opp-fwa-bayamon",
			Title:           "FWA alternative for DSL churners — Bayamón",
			Objective:       types.ObjectiveAcquire,
			Product:         types.ProductFWA,
			Zone:            "Bayamón",
			SubscriberCount: 5200,
			EstimatedValue:  290000,
			Confidence:      0.66,
			PlanType:        types.PlanPostpaid,
			Language:        types.LanguageEnglish,
			WhyNow:          "Competitor DSL degradation complaints doubled after the July network event.",
			Summary:         "Postpaid mobile subscribers in Bayamón with competitor fixed service and strong 5G sector coverage.",
			Trend:           types.OpportunityTrend{Direction: "up", Change: 1.8, Period: "WoW"},
			Reachability: types.OpportunityReachability{
				Email: true, SMS: true, WhatsApp: false, Retail: false, CallCenter: true, EligiblePct: 62,
			},
			PreviewAudience: 2400,
			Signals:         []string{"network event", "promo change"},
			Drivers:         []types.Driver{types.DriverOutageImpact, types.DriverPriceSensitivity},
			Assumptions: []string{
				"Self-install kit removes the truck-roll bottleneck for FWA adds.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Bayamón Centro", Intensity: 0.64},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "T-Mobile PR", Offer: "Home Internet", Price: 50},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Sector capacity scan", Refreshed: refreshed(14, 8)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrZone, types.AttrLanguage,
			},
		},
		{
			ID:              "opp-device-mayaguez",
			Title:           "Device upgrade cycle — Mayagüez",
			Objective:       types.ObjectiveGrow,
			Product:         types.ProductMobile,
			Zone:            "Mayagüez",
			SubscriberCount: 4300,
			EstimatedValue:  240000,
			Confidence:      0.61,
			PlanType:        types.PlanPostpaid,
			Language:        types.LanguageSpanish,
			WhyNow:          "A third of the west-coast Android base is on devices past the 30-month financing mark.",
			Summary:         "Long-tenure postpaid subscribers on aging Android devices eligible for zero-down upgrades.",
			Trend:           types.OpportunityTrend{Direction: "down", Change: 1.1, Period: "MoM"},
			Reachability: types.OpportunityReachability{
				Email: true, SMS: true, WhatsApp: true, Retail: true, CallCenter: false, EligiblePct: 54,
			},
			PreviewAudience: 1900,
			Signals:         []string{"device aging"},
			Drivers:         []types.Driver{types.DriverDeviceAging},
			Assumptions: []string{
				"Trade-in credits beat bill credits for upgrade conversion in the west region.",
			},
			MicroGeo: []types.OpportunityMicroGeo{
				{Zone: "Mayagüez Pueblo", Intensity: 0.6},
			},
			Benchmarks: []types.OpportunityBenchmark{
				{Competitor: "Claro PR", Offer: "Renueva tu equipo", Price: 0},
			},
			Lineage: []types.OpportunityLineage{
				{Source: "Device installment ledger", Refreshed: refreshed(10, 18)},
			},
			RecommendedAttributes: []types.AttributeKey{
				types.AttrDeviceOS, types.AttrTenureMonths,
			},
		},
	}
}
