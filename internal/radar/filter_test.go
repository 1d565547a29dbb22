package radar

import (
	"testing"
	"time"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

func seededLookup(cat *catalog.Catalog) func(types.SegmentID) *types.SegmentDefinition {
	return func(id types.SegmentID) *types.SegmentDefinition {
		return cat.FindSegment(id)
	}
}

func filteredIDs(opps []types.Opportunity) []string {
	ids := make([]string, len(opps))
	for i, opp := range opps {
		ids[i] = opp.ID
	}
	return ids
}

func assertIDs(t *testing.T, got, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("filter returned %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("result[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestFilter_EmptyFiltersPassEverything(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	got := e.Filter(types.RadarFilters{}, seededLookup(cat))
	if len(got) != len(cat.Opportunities) {
		t.Errorf("Filter() = %d entries, expected full catalog of %d", len(got), len(cat.Opportunities))
	}
}

func TestFilter_Dimensions(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	t.Run("zones", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Zones: []string{"Ponce"}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-storm-ponce"})
	})

	t.Run("products", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Products: []types.Product{types.ProductMobile}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-storm-ponce", "opp-prepaid-arecibo", "opp-device-mayaguez"})
	})

	t.Run("plan types", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{PlanTypes: []types.PlanType{types.PlanPrepaid}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-storm-ponce", "opp-prepaid-arecibo"})
	})

	t.Run("dimensions intersect", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{
			Products:  []types.Product{types.ProductMobile},
			PlanTypes: []types.PlanType{types.PlanPostpaid},
		}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-device-mayaguez"})
	})
}

func TestFilter_DateRange(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	from := time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 13, 0, 0, 0, 0, time.UTC)

	t.Run("from bound keeps recently refreshed lineage", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{DateRange: types.DateRange{From: &from}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-loop-sjm", "opp-storm-ponce"})
	})

	t.Run("to bound keeps older lineage", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{DateRange: types.DateRange{To: &to}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-fiber-caguas", "opp-device-mayaguez"})
	})
}

func TestFilter_SegmentOverlap(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	t.Run("storm segment relates through zone targeting", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Segments: []types.SegmentID{"seed-storm-south"}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{
			"opp-loop-sjm", "opp-storm-ponce", "opp-fiber-caguas", "opp-fwa-bayamon",
		})
	})

	t.Run("prepaid segment relates through arpu and prepaid targeting", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Segments: []types.SegmentID{"seed-prepaid-value"}}, seededLookup(cat))
		assertIDs(t, filteredIDs(got), []string{"opp-prepaid-arecibo"})
	})

	t.Run("unknown segment matches nothing", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Segments: []types.SegmentID{"seed-missing"}}, seededLookup(cat))
		if len(got) != 0 {
			t.Errorf("Filter() = %v, expected none", filteredIDs(got))
		}
	})

	t.Run("nil lookup matches nothing when segments set", func(t *testing.T) {
		got := e.Filter(types.RadarFilters{Segments: []types.SegmentID{"seed-storm-south"}}, nil)
		if len(got) != 0 {
			t.Errorf("Filter() = %v, expected none", filteredIDs(got))
		}
	})
}

func TestRelatedSegments(t *testing.T) {
	cat := catalog.Default()
	e := New(cat)

	opp, err := e.Opportunity("opp-prepaid-arecibo")
	if err != nil {
		t.Fatalf("Opportunity() error = %v", err)
	}
	related := RelatedSegments(*opp, cat.Segments)
	if len(related) != 1 || related[0].ID != "seed-prepaid-value" {
		t.Errorf("RelatedSegments() = %v, expected [seed-prepaid-value]", filterSegmentIDs(related))
	}

	loop, err := e.Opportunity("opp-loop-sjm")
	if err != nil {
		t.Fatalf("Opportunity() error = %v", err)
	}
	// Recommends bundleEligible, planType, zone: touches both the storm and
	// loop seeds.
	related = RelatedSegments(*loop, cat.Segments)
	ids := filterSegmentIDs(related)
	expected := []string{"seed-storm-south", "seed-loop-upsell"}
	if len(ids) != len(expected) {
		t.Fatalf("RelatedSegments() = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if string(ids[i]) != expected[i] {
			t.Errorf("related[%d] = %q, expected %q", i, ids[i], expected[i])
		}
	}
}

func filterSegmentIDs(defs []types.SegmentDefinition) []types.SegmentID {
	ids := make([]types.SegmentID, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids
}

func TestOpportunity_NotFound(t *testing.T) {
	e := New(catalog.Default())
	if _, err := e.Opportunity("opp-nope"); err != types.ErrOpportunityNotFound {
		t.Errorf("Opportunity() error = %v, expected %v", err, types.ErrOpportunityNotFound)
	}
}
