// internal/radar/interpret.go
package radar

import (
	"fmt"

	"github.com/libertypr/converge/internal/types"
)

/*
 * Context interpretation.
 *
 * RunContext is the single entry point the console calls when a brief
 * changes: it recomputes signals, drivers, assumptions, prompts, and the
 * opportunity ranking from scratch. Interpretations are value snapshots;
 * adjusting a context through a clarifying prompt produces a new context and
 * a fresh interpretation, never a patch of the old one.
 */

// RunContext produces the full interpretation for a context.
func (e *Engine) RunContext(ctx types.ContextInput) types.ContextInterpretation {
	ranked := e.Rank(ctx)
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Opportunity.ID
	}
	return types.ContextInterpretation{
		StructuredSignals:    e.StructuredSignals(ctx),
		InferredDrivers:      e.InferDrivers(ctx),
		Assumptions:          e.Assumptions(ctx),
		ClarifyingPrompts:    e.cat.ClarifyingPrompts,
		RankedOpportunityIDs: ids,
	}
}

// StructuredSignals normalises the context's free-text signals. Declared
// signals pass through untouched; otherwise the objective picks a default
// signal pair, with the catalog default covering grow and unset objectives.
func (e *Engine) StructuredSignals(ctx types.ContextInput) []string {
	if len(ctx.Signals) > 0 {
		return ctx.Signals
	}
	switch ctx.Objective {
	case types.ObjectiveRetain:
		return []string{"churn spike", "network event"}
	case types.ObjectiveAcquire:
		return []string{"promo change", "bundle interest"}
	default:
		return e.cat.DefaultStructuredSignals
	}
}

// Assumptions derives the planning assumptions for a context, in fixed
// order: language posture first, then product, bundle, storm, and plan
// conditions as they apply.
func (e *Engine) Assumptions(ctx types.ContextInput) []string {
	language := "English"
	if ctx.Language == types.LanguageSpanish {
		language = "Spanish"
	}
	assumptions := []string{
		fmt.Sprintf("Liberty Puerto Rico prioritises %s motions in %s.", ctx.Objective, language),
	}
	if ctx.Product == types.ProductFiber {
		assumptions = append(assumptions, "Last-mile stability is a differentiator for the cohort.")
	}
	if ctx.Product == types.ProductBundle || ctx.BundleEligible {
		assumptions = append(assumptions, "Liberty Loop bundling incentives can anchor the narrative.")
	}
	if ctx.HasSignal("storm recovery") {
		assumptions = append(assumptions, "Field readiness and proactive credits are expected post-storm.")
	}
	if ctx.PlanType == types.PlanPrepaid {
		assumptions = append(assumptions, "Shorter tenure cohorts respond to streak-based loyalty mechanics.")
	}
	return assumptions
}

// AdjustContext applies a clarifying-prompt update to a context and returns
// the adjusted copy. Nil update fields leave the context untouched.
func (e *Engine) AdjustContext(ctx types.ContextInput, update types.ContextUpdate) types.ContextInput {
	if update.PlanType != nil {
		ctx.PlanType = *update.PlanType
	}
	if update.Language != nil {
		ctx.Language = *update.Language
	}
	if update.BundleEligible != nil {
		ctx.BundleEligible = *update.BundleEligible
	}
	return ctx
}

// Explain lists the human-readable reasons an opportunity scored the way it
// did for a context, in scoring-term order. An opportunity with no firing
// terms explains itself by confidence alone.
func (e *Engine) Explain(ctx types.ContextInput, opp types.Opportunity) []string {
	reasons := []string{
		fmt.Sprintf("Model confidence %d%% anchors the score.", int(opp.Confidence*100+0.5)),
	}
	if ctx.Product == types.ProductBundle && opp.Product == types.ProductBundle {
		reasons = append(reasons, "Converged-bundle motion matches the declared Bundle focus.")
	} else if ctx.BundleEligible && recommendsAttribute(opp, types.AttrBundleEligible) {
		reasons = append(reasons, "Bundle-eligible context lines up with the recommended targeting attributes.")
	}
	if ctx.PlanType != "" && ctx.PlanType == opp.PlanType {
		reasons = append(reasons, fmt.Sprintf("Plan construct matches (%s).", opp.PlanType))
	} else if ctx.PlanType == types.PlanBundle && opp.PlanType == types.PlanPostpaid {
		reasons = append(reasons, "Bundle-plan contexts convert well against postpaid cohorts.")
	}
	if containsString(ctx.Geography, opp.Zone) {
		reasons = append(reasons, fmt.Sprintf("%s sits inside the declared geography.", opp.Zone))
	}
	if opp.Language != "" && ctx.Language == opp.Language {
		reasons = append(reasons, fmt.Sprintf("Engagement language matches (%s).", opp.Language))
	}
	if ctx.HasSignal("storm recovery") && oppHasSignal(opp, "storm recovery") {
		reasons = append(reasons, "Both flag storm recovery.")
	}
	if ctx.HasSignal("network event") && oppHasSignal(opp, "network event") {
		reasons = append(reasons, "Both flag a network event.")
	}
	if ctx.HasSignal("affordability program lapse") && oppHasDriver(opp, types.DriverPriceSensitivity) {
		reasons = append(reasons, "Affordability lapse meets a price-sensitive cohort.")
	}
	if opp.Reachability.EligiblePct > highEligibilityPct {
		reasons = append(reasons, fmt.Sprintf("%d%% of the cohort is reachable and eligible.", opp.Reachability.EligiblePct))
	}
	return reasons
}

// SeedName suggests a segment name for a context: the objective's motion
// word (Stabilise for retain, Capture for acquire, Expand otherwise), the
// product with Bundle rendered as Loop, and the lead geography falling back
// to PR.
func (e *Engine) SeedName(ctx types.ContextInput) string {
	motion := "Expand"
	switch ctx.Objective {
	case types.ObjectiveRetain:
		motion = "Stabilise"
	case types.ObjectiveAcquire:
		motion = "Capture"
	}

	product := string(ctx.Product)
	if ctx.Product == types.ProductBundle {
		product = "Loop"
	}

	zone := "PR"
	if len(ctx.Geography) > 0 {
		zone = ctx.Geography[0]
	}

	return fmt.Sprintf("%s %s – %s", motion, product, zone)
}

// DefaultFilters derives the radar filter preset implied by a context.
func (e *Engine) DefaultFilters(ctx types.ContextInput) types.RadarFilters {
	filters := types.RadarFilters{Zones: append([]string{}, ctx.Geography...)}
	if ctx.Product != "" {
		filters.Products = []types.Product{ctx.Product}
	}
	if ctx.PlanType != "" {
		filters.PlanTypes = []types.PlanType{ctx.PlanType}
	}
	return filters
}
