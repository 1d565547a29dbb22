// internal/segment/guardrails.go
package segment

import (
	"fmt"
	"strconv"

	"github.com/libertypr/converge/internal/types"
)

// Guardrails checks projected reach against the catalog's minimum-activation
// thresholds, in catalog order. Channels at or above threshold produce no
// warning. Severity is warning while actual reach exceeds half the threshold
// and critical at or below it.
func (e *Engine) Guardrails(reach types.ChannelReach) []types.GuardrailWarning {
	warnings := []types.GuardrailWarning{}
	for _, g := range e.cat.Guardrails {
		actual := reachByKey(reach, g.Key)
		if actual >= g.Threshold {
			continue
		}
		severity := types.SeverityCritical
		if float64(actual) > float64(g.Threshold)*0.5 {
			severity = types.SeverityWarning
		}
		warnings = append(warnings, types.GuardrailWarning{
			ID:        g.Key + "-guardrail",
			Channel:   g.Channel,
			Threshold: g.Threshold,
			Actual:    actual,
			Severity:  severity,
			Message: fmt.Sprintf("%s reach %s is below PR guardrail of %s.",
				g.Channel, groupThousands(actual), groupThousands(g.Threshold)),
		})
	}
	return warnings
}

func reachByKey(reach types.ChannelReach, key string) int {
	switch key {
	case "email":
		return reach.Email
	case "sms":
		return reach.SMS
	case "whatsapp":
		return reach.WhatsApp
	case "retail":
		return reach.Retail
	case "callCenter":
		return reach.CallCenter
	case "paidSocial":
		return reach.PaidSocial
	case "display":
		return reach.Display
	default:
		return 0
	}
}

// groupThousands renders n with comma thousands separators, matching the
// console's toLocaleString output for en-US.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
