// internal/radar/score.go
package radar

import (
	"math"
	"sort"

	"github.com/libertypr/converge/internal/types"
)

/*
 * Opportunity scoring.
 *
 * Score is a sum of independent alignment terms on top of a confidence base:
 *
 *   base          round(confidence * 100)
 *   bundle        18 when both context and opportunity are Bundle product;
 *                 otherwise 12 when the context is bundle eligible and the
 *                 opportunity recommends the bundleEligible attribute
 *   plan          10 on exact plan match, 6 when a bundle-plan context meets
 *                 a postpaid opportunity
 *   zone          14 when the context geography contains the zone
 *   language      8 on language match (opportunity language must be set)
 *   signals       16 shared "storm recovery", 9 shared "network event",
 *                 7 context affordability lapse against a price-sensitive
 *                 opportunity; terms accumulate
 *   loop          15 for Bundle opportunities under a bundle-oriented
 *                 context, 5 otherwise
 *   product       9 on exact product match
 *   eligibility   5 when reachable eligibility exceeds 60%
 *
 * A Bundle/Bundle pairing earns the bundle term, the loop term, and the
 * product term together. That stacking is deliberate: converged-bundle
 * motions are the strategic priority and outrank everything at equal
 * confidence.
 */

// Scoring term weights.
const (
	bundleMatchBoost     = 18
	bundleEligibleBoost  = 12
	planExactBoost       = 10
	planBundlePostpaid   = 6
	zoneBoost            = 14
	languageBoost        = 8
	stormSignalBoost     = 16
	networkSignalBoost   = 9
	affordabilityBoost   = 7
	loopOrientedBoost    = 15
	loopBaselineBoost    = 5
	productMatchBoost    = 9
	highEligibilityBoost = 5
)

// highEligibilityPct is the reachability bar for the eligibility term.
const highEligibilityPct = 60

// ScoredOpportunity pairs an opportunity with its score for a context.
type ScoredOpportunity struct {
	Opportunity types.Opportunity `json:"opportunity"`
	Score       int               `json:"score"`
}

// Score computes the alignment score of one opportunity for a context.
func (e *Engine) Score(ctx types.ContextInput, opp types.Opportunity) int {
	score := int(math.Round(opp.Confidence * 100))

	if ctx.Product == types.ProductBundle && opp.Product == types.ProductBundle {
		score += bundleMatchBoost
	} else if ctx.BundleEligible && recommendsAttribute(opp, types.AttrBundleEligible) {
		score += bundleEligibleBoost
	}

	if ctx.PlanType != "" && ctx.PlanType == opp.PlanType {
		score += planExactBoost
	} else if ctx.PlanType == types.PlanBundle && opp.PlanType == types.PlanPostpaid {
		score += planBundlePostpaid
	}

	if containsString(ctx.Geography, opp.Zone) {
		score += zoneBoost
	}

	if opp.Language != "" && ctx.Language == opp.Language {
		score += languageBoost
	}

	if ctx.HasSignal("storm recovery") && oppHasSignal(opp, "storm recovery") {
		score += stormSignalBoost
	}
	if ctx.HasSignal("network event") && oppHasSignal(opp, "network event") {
		score += networkSignalBoost
	}
	if ctx.HasSignal("affordability program lapse") && oppHasDriver(opp, types.DriverPriceSensitivity) {
		score += affordabilityBoost
	}

	if opp.Product == types.ProductBundle {
		if bundleOriented(ctx) {
			score += loopOrientedBoost
		} else {
			score += loopBaselineBoost
		}
	}

	if ctx.Product != "" && ctx.Product == opp.Product {
		score += productMatchBoost
	}

	if opp.Reachability.EligiblePct > highEligibilityPct {
		score += highEligibilityBoost
	}

	return score
}

// Rank scores the whole catalog against the context and returns the full
// permutation, highest score first. The sort is stable so equal scores keep
// catalog order.
func (e *Engine) Rank(ctx types.ContextInput) []ScoredOpportunity {
	ranked := make([]ScoredOpportunity, len(e.cat.Opportunities))
	for i, opp := range e.cat.Opportunities {
		ranked[i] = ScoredOpportunity{Opportunity: opp, Score: e.Score(ctx, opp)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// bundleOriented reports whether the context signals converged-bundle intent
// through product or eligibility. A bundle plan alone does not qualify; plan
// alignment already rewards that separately.
func bundleOriented(ctx types.ContextInput) bool {
	return ctx.Product == types.ProductBundle || ctx.BundleEligible
}

func recommendsAttribute(opp types.Opportunity, attr types.AttributeKey) bool {
	for _, a := range opp.RecommendedAttributes {
		if a == attr {
			return true
		}
	}
	return false
}

func oppHasSignal(opp types.Opportunity, signal string) bool {
	return containsString(opp.Signals, signal)
}

func oppHasDriver(opp types.Opportunity, driver types.Driver) bool {
	for _, d := range opp.Drivers {
		if d == driver {
			return true
		}
	}
	return false
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
