package radar

import (
	"testing"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/segment"
	"github.com/libertypr/converge/internal/types"
)

func driverList(drivers ...types.Driver) []types.Driver { return drivers }

func TestInferDrivers(t *testing.T) {
	e := New(catalog.Default())

	tests := []struct {
		name     string
		ctx      types.ContextInput
		expected []types.Driver
	}{
		{
			name:     "empty context defaults to price sensitivity",
			ctx:      types.ContextInput{},
			expected: driverList(types.DriverPriceSensitivity),
		},
		{
			name:     "prepaid plan fires price sensitivity",
			ctx:      types.ContextInput{PlanType: types.PlanPrepaid},
			expected: driverList(types.DriverPriceSensitivity),
		},
		{
			name:     "storm signal fires outage impact",
			ctx:      types.ContextInput{Signals: []string{"storm recovery"}},
			expected: driverList(types.DriverOutageImpact),
		},
		{
			name:     "network event fires outage impact",
			ctx:      types.ContextInput{Signals: []string{"network event"}},
			expected: driverList(types.DriverOutageImpact),
		},
		{
			name: "affordability lapse fires two drivers in fixed order",
			ctx:  types.ContextInput{Signals: []string{"affordability program lapse"}},
			expected: driverList(
				types.DriverPriceSensitivity,
				types.DriverAffordabilityLapse,
			),
		},
		{
			name: "bundle product and churn and device signals",
			ctx: types.ContextInput{
				Product: types.ProductBundle,
				Signals: []string{"churn spike", "device aging"},
			},
			expected: driverList(
				types.DriverBundleEligibility,
				types.DriverDeviceAging,
				types.DriverAffordabilityLapse,
			),
		},
		{
			name:     "bundle eligibility via context flag",
			ctx:      types.ContextInput{BundleEligible: true},
			expected: driverList(types.DriverBundleEligibility),
		},
		{
			name:     "bundle interest signal",
			ctx:      types.ContextInput{Signals: []string{"bundle interest"}},
			expected: driverList(types.DriverBundleEligibility),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.InferDrivers(tt.ctx)
			if len(got) != len(tt.expected) {
				t.Fatalf("InferDrivers() = %v, expected %v", got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("driver[%d] = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestImpliedSegment(t *testing.T) {
	e := New(catalog.Default())

	drivers := driverList(types.DriverPriceSensitivity, types.DriverOutageImpact)
	group := e.ImpliedSegment(drivers)

	if group.ID != "driver-seed" || group.Combinator != types.CombinatorAnd {
		t.Fatalf("group = %s/%s, expected driver-seed/AND", group.ID, group.Combinator)
	}
	if len(group.Children) != 2 {
		t.Fatalf("group has %d children, expected 2", len(group.Children))
	}

	first, ok := group.Children[0].(*types.Condition)
	if !ok || first.Attribute != types.AttrARPUBand || first.Comparator != types.ComparatorIn {
		t.Errorf("child[0] = %+v, expected arpuBand in-list", group.Children[0])
	}
	second, ok := group.Children[1].(*types.Condition)
	if !ok || second.Attribute != types.AttrZone || second.Comparator != types.ComparatorIn {
		t.Errorf("child[1] = %+v, expected zone in-list", group.Children[1])
	}
	if first.ID != "driver-seed-1" || second.ID != "driver-seed-2" {
		t.Errorf("condition ids = %s/%s, expected driver-seed-1/driver-seed-2", first.ID, second.ID)
	}
}

func TestImpliedSegment_PerDriverConditions(t *testing.T) {
	e := New(catalog.Default())

	tests := []struct {
		driver    types.Driver
		attribute types.AttributeKey
	}{
		{types.DriverPriceSensitivity, types.AttrARPUBand},
		{types.DriverOutageImpact, types.AttrZone},
		{types.DriverBundleEligibility, types.AttrBundleEligible},
		{types.DriverDeviceAging, types.AttrDeviceOS},
		{types.DriverAffordabilityLapse, types.AttrPrepaid},
	}
	for _, tt := range tests {
		t.Run(string(tt.driver), func(t *testing.T) {
			group := e.ImpliedSegment(driverList(tt.driver))
			if len(group.Children) != 1 {
				t.Fatalf("group has %d children, expected 1", len(group.Children))
			}
			c := group.Children[0].(*types.Condition)
			if c.Attribute != tt.attribute {
				t.Errorf("attribute = %q, expected %q", c.Attribute, tt.attribute)
			}
		})
	}
}

func TestImpliedSegment_EmptyDriversSeedLanguage(t *testing.T) {
	e := New(catalog.Default())

	group := e.ImpliedSegment(nil)
	if len(group.Children) != 1 {
		t.Fatalf("group has %d children, expected 1", len(group.Children))
	}
	c := group.Children[0].(*types.Condition)
	if c.Attribute != types.AttrLanguage || c.Value.Scalar() != "es" {
		t.Errorf("fallback condition = %+v, expected language = es", c)
	}
}

func TestImpliedSegment_TreesValidate(t *testing.T) {
	rad := New(catalog.Default())
	seg := segment.New(catalog.Default())

	for _, driver := range types.Drivers {
		group := rad.ImpliedSegment(driverList(driver))
		if err := seg.Validate(group); err != nil {
			t.Errorf("implied tree for %q fails validation: %v", driver, err)
		}
	}
	if err := seg.Validate(rad.ImpliedSegment(types.Drivers)); err != nil {
		t.Errorf("implied tree for all drivers fails validation: %v", err)
	}
}
