package segment

import (
	"testing"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

func profileIDs(profiles []types.SampleProfile) []string {
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}

func TestMatchProfiles(t *testing.T) {
	e := New(catalog.Default())

	tests := []struct {
		name     string
		root     *types.Group
		expected []string
	}{
		{
			name:     "empty tree matches first three in catalog order",
			root:     types.EmptyRoot(),
			expected: []string{"profile-marisol", "profile-hector", "profile-janice"},
		},
		{
			name:     "prepaid plan",
			root:     andGroup(cond("c1", types.AttrPlanType, types.ComparatorEquals, types.StringValue("prepaid"))),
			expected: []string{"profile-hector", "profile-carmen"},
		},
		{
			name:     "western zones",
			root:     andGroup(cond("c1", types.AttrZone, types.ComparatorIn, types.ListValue("Ponce", "Mayagüez"))),
			expected: []string{"profile-luis", "profile-carmen"},
		},
		{
			name:     "bundle eligible caps at three",
			root:     andGroup(cond("c1", types.AttrBundleEligible, types.ComparatorEquals, types.BoolValue(true))),
			expected: []string{"profile-marisol", "profile-janice", "profile-derek"},
		},
		{
			name: "AND narrows",
			root: andGroup(
				cond("c1", types.AttrBundleEligible, types.ComparatorEquals, types.BoolValue(true)),
				cond("c2", types.AttrLanguage, types.ComparatorEquals, types.StringValue("es")),
			),
			expected: []string{"profile-marisol"},
		},
		{
			name: "OR widens",
			root: orGroup(
				cond("c1", types.AttrZone, types.ComparatorEquals, types.StringValue("Ponce")),
				cond("c2", types.AttrZone, types.ComparatorEquals, types.StringValue("Bayamón")),
			),
			expected: []string{"profile-luis", "profile-derek"},
		},
		{
			name:     "no matches",
			root:     andGroup(cond("c1", types.AttrZone, types.ComparatorEquals, types.StringValue("Humacao"))),
			expected: []string{},
		},
		{
			name:     "empty OR group matches no one",
			root:     orGroup(),
			expected: []string{},
		},
		{
			name: "empty OR subgroup blocks an AND branch",
			root: andGroup(
				cond("c1", types.AttrPlanType, types.ComparatorEquals, types.StringValue("prepaid")),
				orGroup(),
			),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profileIDs(e.MatchProfiles(tt.root))
			if len(got) != len(tt.expected) {
				t.Fatalf("MatchProfiles() = %v, expected %v", got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("match[%d] = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMatchProfiles_StringifiedComparison(t *testing.T) {
	e := New(catalog.Default())

	// Boolean rule values compare against stringified profile attributes.
	root := andGroup(cond("c1", types.AttrConsentWhatsApp, types.ComparatorEquals, types.BoolValue(true)))
	got := profileIDs(e.MatchProfiles(root))
	expected := []string{"profile-marisol", "profile-luis", "profile-carmen"}
	if len(got) != len(expected) {
		t.Fatalf("MatchProfiles() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("match[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}
