package segment

import (
	"testing"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/types"
)

func healthyReach() types.ChannelReach {
	return types.ChannelReach{
		Email:      20000,
		SMS:        19000,
		WhatsApp:   14000,
		Retail:     9000,
		CallCenter: 12000,
		PaidSocial: 22000,
		Display:    25000,
	}
}

func TestGuardrails_HealthyReachPasses(t *testing.T) {
	e := New(catalog.Default())
	if got := e.Guardrails(healthyReach()); len(got) != 0 {
		t.Errorf("Guardrails() = %v, expected none", got)
	}
}

func TestGuardrails_ExactThresholdPasses(t *testing.T) {
	e := New(catalog.Default())
	reach := healthyReach()
	reach.Email = 2000
	reach.PaidSocial = 5000
	reach.Display = 10000
	if got := e.Guardrails(reach); len(got) != 0 {
		t.Errorf("Guardrails() at exact thresholds = %v, expected none", got)
	}
}

func TestGuardrails_Severity(t *testing.T) {
	e := New(catalog.Default())

	tests := []struct {
		name     string
		email    int
		severity types.Severity
		message  string
	}{
		{
			name:     "above half threshold is a warning",
			email:    1500,
			severity: types.SeverityWarning,
			message:  "Email reach 1,500 is below PR guardrail of 2,000.",
		},
		{
			name:     "at half threshold is critical",
			email:    1000,
			severity: types.SeverityCritical,
			message:  "Email reach 1,000 is below PR guardrail of 2,000.",
		},
		{
			name:     "below half threshold is critical",
			email:    999,
			severity: types.SeverityCritical,
			message:  "Email reach 999 is below PR guardrail of 2,000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reach := healthyReach()
			reach.Email = tt.email
			got := e.Guardrails(reach)
			if len(got) != 1 {
				t.Fatalf("Guardrails() returned %d warnings, expected 1", len(got))
			}
			w := got[0]
			if w.ID != "email-guardrail" {
				t.Errorf("ID = %q, expected %q", w.ID, "email-guardrail")
			}
			if w.Severity != tt.severity {
				t.Errorf("Severity = %q, expected %q", w.Severity, tt.severity)
			}
			if w.Message != tt.message {
				t.Errorf("Message = %q, expected %q", w.Message, tt.message)
			}
			if w.Threshold != 2000 || w.Actual != tt.email {
				t.Errorf("Threshold/Actual = %d/%d, expected 2000/%d", w.Threshold, w.Actual, tt.email)
			}
		})
	}
}

func TestGuardrails_CatalogOrder(t *testing.T) {
	e := New(catalog.Default())
	reach := healthyReach()
	reach.Email = 100
	reach.PaidSocial = 2600
	reach.Display = 4000

	got := e.Guardrails(reach)
	if len(got) != 3 {
		t.Fatalf("Guardrails() returned %d warnings, expected 3", len(got))
	}

	expected := []struct {
		id       string
		channel  string
		severity types.Severity
	}{
		{"email-guardrail", "Email", types.SeverityCritical},
		{"paidSocial-guardrail", "Paid Social", types.SeverityWarning},
		{"display-guardrail", "Display", types.SeverityCritical},
	}
	for i, exp := range expected {
		if got[i].ID != exp.id || got[i].Channel != exp.channel || got[i].Severity != exp.severity {
			t.Errorf("warning[%d] = %+v, expected %+v", i, got[i], exp)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10201, "10,201"},
		{1234567, "1,234,567"},
		{-12000, "-12,000"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.expected {
			t.Errorf("groupThousands(%d) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
