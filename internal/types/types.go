// Package types provides domain models shared across Converge components.
//
// Zero-dependency design: types.go, rules.go, and errors.go use only the
// standard library so the model can be embedded anywhere (CLI, API handlers,
// tests) without pulling in transport or storage dependencies. ID utilities in
// ids.go import uuid but are isolated for selective inclusion.
package types

import "time"

// Objective is the campaign intent declared by an analyst.
type Objective string

const (
	ObjectiveAcquire Objective = "acquire"
	ObjectiveGrow    Objective = "grow"
	ObjectiveRetain  Objective = "retain"
)

// Product identifies a sellable product line.
type Product string

const (
	ProductFiber  Product = "Fiber"
	ProductMobile Product = "Mobile"
	ProductFWA    Product = "FWA"
	ProductBundle Product = "Bundle"
)

// PlanType is the billing construct a subscriber sits on.
type PlanType string

const (
	PlanPrepaid  PlanType = "prepaid"
	PlanPostpaid PlanType = "postpaid"
	PlanBundle   PlanType = "bundle"
)

// Language is an engagement language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// AttributeKey names a subscriber attribute a rule condition can target.
// The set is closed; Validate rejects conditions outside it.
type AttributeKey string

const (
	AttrTenureMonths    AttributeKey = "tenureMonths"
	AttrARPUBand        AttributeKey = "arpuBand"
	AttrDeviceOS        AttributeKey = "deviceOS"
	AttrHasFiberPass    AttributeKey = "hasFiberPass"
	AttrPrepaid         AttributeKey = "prepaid"
	AttrPlanType        AttributeKey = "planType"
	AttrBundleEligible  AttributeKey = "bundleEligible"
	AttrLanguage        AttributeKey = "language"
	AttrConsentSMS      AttributeKey = "consentSMS"
	AttrConsentWhatsApp AttributeKey = "consentWhatsApp"
	AttrZone            AttributeKey = "zone"
)

// AttributeKeys lists every valid attribute in declaration order.
var AttributeKeys = []AttributeKey{
	AttrTenureMonths,
	AttrARPUBand,
	AttrDeviceOS,
	AttrHasFiberPass,
	AttrPrepaid,
	AttrPlanType,
	AttrBundleEligible,
	AttrLanguage,
	AttrConsentSMS,
	AttrConsentWhatsApp,
	AttrZone,
}

// Severity classifies a guardrail violation.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Driver is a tag explaining why an opportunity or segment is relevant.
type Driver string

const (
	DriverPriceSensitivity   Driver = "price sensitivity"
	DriverOutageImpact       Driver = "outage impact"
	DriverBundleEligibility  Driver = "bundle eligibility"
	DriverDeviceAging        Driver = "device aging"
	DriverAffordabilityLapse Driver = "affordability lapse"
)

// Drivers lists the inferable drivers in evaluation order. Inference reports
// drivers in this order; the first entry doubles as the default when no
// predicate fires.
var Drivers = []Driver{
	DriverPriceSensitivity,
	DriverOutageImpact,
	DriverBundleEligibility,
	DriverDeviceAging,
	DriverAffordabilityLapse,
}

// ChannelReach records estimated addressable counts per activation channel.
type ChannelReach struct {
	Email      int `json:"email"`
	SMS        int `json:"sms"`
	WhatsApp   int `json:"whatsapp"`
	Retail     int `json:"retail"`
	CallCenter int `json:"callCenter"`
	PaidSocial int `json:"paidSocial"`
	Display    int `json:"display"`
}

// GuardrailWarning flags a channel whose reach falls below its activation
// threshold. Severity is critical when actual reach is at or below half the
// threshold.
type GuardrailWarning struct {
	ID        string   `json:"id"`
	Channel   string   `json:"channel"`
	Threshold int      `json:"threshold"`
	Actual    int      `json:"actual"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
}

// ImpactEstimate is the derived monetary outlook for a segment. All fields
// are computed from size and the rule tree; none are independently mutable.
type ImpactEstimate struct {
	Propensity  float64 `json:"propensity"`
	Conversions int     `json:"conversions"`
	Revenue     int     `json:"revenue"`
	PaybackDays int     `json:"paybackDays"`
	Cost        int     `json:"cost"`
	Margin      int     `json:"margin"`
}

// SegmentMetrics is the full metrics snapshot for a rule tree. Recomputed in
// full on every rule change; never partially patched.
type SegmentMetrics struct {
	Size      int                `json:"size"`
	Trend     float64            `json:"trend"`
	Freshness string             `json:"freshness"`
	Reach     ChannelReach       `json:"reach"`
	Warnings  []GuardrailWarning `json:"warnings"`
	Impact    ImpactEstimate     `json:"impact"`
}

// ValidationWarning reports a leaf that resolved through a fallback weight
// instead of a catalog entry. Callers wanting strictness surface these;
// evaluation itself keeps the documented silent-fallback behavior.
type ValidationWarning struct {
	Attribute AttributeKey `json:"attribute"`
	Value     string       `json:"value"`
	Message   string       `json:"message"`
}

// SampleProfile is a synthetic subscriber used for rule preview panels.
// Attribute values are stored stringified; rule matching compares stringified
// values on both sides.
type SampleProfile struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Attributes map[AttributeKey]string `json:"attributes"`
	Notes      string                  `json:"notes"`
}

// SegmentDefinition is a named, persisted audience segment.
type SegmentDefinition struct {
	ID                   SegmentID      `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Language             Language       `json:"language"`
	Rules                *Group         `json:"rules"`
	RestrictedAttributes []AttributeKey `json:"restrictedAttributes,omitempty"`
	Archived             bool           `json:"archived,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// SegmentVersion is one immutable entry in a segment's version history. The
// summary describes the rule delta against the previous version and the
// metrics snapshot freezes the evaluation at save time.
type SegmentVersion struct {
	ID        VersionID      `json:"id"`
	SegmentID SegmentID      `json:"segmentId"`
	Summary   string         `json:"summary"`
	Rules     *Group         `json:"rules"`
	Metrics   SegmentMetrics `json:"metrics"`
	CreatedAt time.Time      `json:"createdAt"`
}

// OpportunityTrend describes week-over-week or month-over-month movement.
type OpportunityTrend struct {
	Direction string  `json:"direction"` // up, down, flat
	Change    float64 `json:"change"`
	Period    string  `json:"period"` // WoW, MoM
}

// OpportunityReachability summarises channel availability for an opportunity.
type OpportunityReachability struct {
	Email       bool `json:"email"`
	SMS         bool `json:"sms"`
	WhatsApp    bool `json:"whatsapp"`
	Retail      bool `json:"retail"`
	CallCenter  bool `json:"callCenter"`
	EligiblePct int  `json:"eligiblePct"`
}

// OpportunityMicroGeo is a zone-level intensity reading.
type OpportunityMicroGeo struct {
	Zone      string  `json:"zone"`
	Intensity float64 `json:"intensity"`
}

// OpportunityBenchmark records a competitor offer for context.
type OpportunityBenchmark struct {
	Competitor string `json:"competitor"`
	Offer      string `json:"offer"`
	Price      int    `json:"price"`
}

// OpportunityLineage records where a data point came from and when it was
// last refreshed.
type OpportunityLineage struct {
	Source    string    `json:"source"`
	Refreshed time.Time `json:"refreshed"`
}

// Opportunity is a static, read-only catalog entry representing a modeled
// market opening. The scoring engine ranks the catalog against a context;
// the catalog itself never changes at runtime.
type Opportunity struct {
	ID                    string                  `json:"id"`
	Title                 string                  `json:"title"`
	Objective             Objective               `json:"objective"`
	Product               Product                 `json:"product"`
	Zone                  string                  `json:"zone"`
	SubscriberCount       int                     `json:"subscriberCount"`
	EstimatedValue        int                     `json:"estimatedValue"`
	Confidence            float64                 `json:"confidence"`
	PlanType              PlanType                `json:"planType,omitempty"`
	Language              Language                `json:"language,omitempty"`
	WhyNow                string                  `json:"whyNow"`
	Summary               string                  `json:"summary"`
	Trend                 OpportunityTrend        `json:"trend"`
	Reachability          OpportunityReachability `json:"reachability"`
	PreviewAudience       int                     `json:"previewAudience"`
	Signals               []string                `json:"signals"`
	Drivers               []Driver                `json:"drivers"`
	Assumptions           []string                `json:"assumptions"`
	MicroGeo              []OpportunityMicroGeo   `json:"microGeo"`
	Benchmarks            []OpportunityBenchmark  `json:"benchmarks"`
	Lineage               []OpportunityLineage    `json:"lineage"`
	RecommendedAttributes []AttributeKey          `json:"recommendedAttributes"`
}

// ContextInput is an analyst-declared targeting brief. It is held by the
// caller and passed by value into the scoring engine; the engine never
// mutates it.
type ContextInput struct {
	Objective      Objective `json:"objective"`
	Market         string    `json:"market"`
	Geography      []string  `json:"geography"`
	Product        Product   `json:"product"`
	PlanType       PlanType  `json:"planType"`
	Language       Language  `json:"language"`
	Signals        []string  `json:"signals"`
	Notes          string    `json:"notes,omitempty"`
	BundleEligible bool      `json:"bundleEligible,omitempty"`
}

// HasSignal reports whether the context declares the given free-text signal.
func (c ContextInput) HasSignal(signal string) bool {
	for _, s := range c.Signals {
		if s == signal {
			return true
		}
	}
	return false
}

// ContextUpdate carries the subset of context fields a clarifying prompt can
// change. Nil fields are left untouched by AdjustContext.
type ContextUpdate struct {
	PlanType       *PlanType `json:"planType,omitempty"`
	Language       *Language `json:"language,omitempty"`
	BundleEligible *bool     `json:"bundleEligible,omitempty"`
}

// ClarifyingOption is one selectable value for a clarifying field.
type ClarifyingOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ClarifyingField describes a single input inside a clarifying prompt.
type ClarifyingField struct {
	Key     string             `json:"key"` // planType, language, bundleEligible
	Label   string             `json:"label"`
	Type    string             `json:"type"` // select, toggle
	Options []ClarifyingOption `json:"options,omitempty"`
}

// ClarifyingPrompt asks the analyst to firm up an ambiguous context field.
type ClarifyingPrompt struct {
	ID     string            `json:"id"`
	Label  string            `json:"label"`
	Fields []ClarifyingField `json:"fields"`
}

// ContextInterpretation is the immutable scoring artifact produced from a
// context. Recomputed from scratch whenever the context changes; there is no
// incremental update path.
type ContextInterpretation struct {
	StructuredSignals    []string           `json:"structuredSignals"`
	InferredDrivers      []Driver           `json:"inferredDrivers"`
	Assumptions          []string           `json:"assumptions"`
	ClarifyingPrompts    []ClarifyingPrompt `json:"clarifyingPrompts"`
	RankedOpportunityIDs []string           `json:"rankedOpportunityIds"`
}

// DateRange bounds a filter window. Nil endpoints are unbounded.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// RadarFilters narrows the opportunity catalog for display.
type RadarFilters struct {
	Zones     []string    `json:"zones"`
	Products  []Product   `json:"products"`
	PlanTypes []PlanType  `json:"planTypes"`
	Segments  []SegmentID `json:"segments"`
	DateRange DateRange   `json:"dateRange"`
}
