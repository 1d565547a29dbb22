// internal/radar/drivers.go
package radar

import (
	"fmt"

	"github.com/libertypr/converge/internal/types"
)

/*
 * Demand driver inference.
 *
 * Drivers are evaluated as independent predicates over the context and
 * reported in the fixed types.Drivers order, so the same context always
 * yields the same driver list regardless of signal order. A context firing
 * no predicate defaults to price sensitivity, the broadest motion on the
 * island.
 *
 * ImpliedSegment turns inferred drivers into a starter rule tree: one
 * condition per driver, ANDed under a "driver-seed" group. Driverless input
 * (never produced by InferDrivers, but reachable through the API) seeds a
 * Spanish-language condition since Spanish is the dominant engagement
 * language.
 */

// InferDrivers derives the demand drivers implied by a context.
func (e *Engine) InferDrivers(ctx types.ContextInput) []types.Driver {
	fired := []types.Driver{}
	for _, driver := range types.Drivers {
		if driverApplies(driver, ctx) {
			fired = append(fired, driver)
		}
	}
	if len(fired) == 0 {
		return []types.Driver{types.DriverPriceSensitivity}
	}
	return fired
}

func driverApplies(driver types.Driver, ctx types.ContextInput) bool {
	switch driver {
	case types.DriverPriceSensitivity:
		return ctx.HasSignal("affordability program lapse") || ctx.PlanType == types.PlanPrepaid
	case types.DriverOutageImpact:
		return ctx.HasSignal("storm recovery") || ctx.HasSignal("network event")
	case types.DriverBundleEligibility:
		return ctx.Product == types.ProductBundle || ctx.BundleEligible || ctx.HasSignal("bundle interest")
	case types.DriverDeviceAging:
		return ctx.HasSignal("device aging")
	case types.DriverAffordabilityLapse:
		return ctx.HasSignal("affordability program lapse") || ctx.HasSignal("churn spike")
	default:
		return false
	}
}

// ImpliedSegment builds a starter rule tree from inferred drivers.
func (e *Engine) ImpliedSegment(drivers []types.Driver) *types.Group {
	group := &types.Group{
		ID:         "driver-seed",
		Combinator: types.CombinatorAnd,
		Children:   []types.RuleNode{},
	}
	for i, driver := range drivers {
		if c := driverCondition(driver, i+1); c != nil {
			group.Children = append(group.Children, c)
		}
	}
	if len(group.Children) == 0 {
		group.Children = append(group.Children, &types.Condition{
			ID:         "driver-seed-1",
			Attribute:  types.AttrLanguage,
			Comparator: types.ComparatorEquals,
			Value:      types.StringValue(string(types.LanguageSpanish)),
		})
	}
	return group
}

func driverCondition(driver types.Driver, ordinal int) *types.Condition {
	id := fmt.Sprintf("driver-seed-%d", ordinal)
	switch driver {
	case types.DriverPriceSensitivity:
		return &types.Condition{
			ID:         id,
			Attribute:  types.AttrARPUBand,
			Comparator: types.ComparatorIn,
			Value:      types.ListValue("<$35", "$35-$55"),
		}
	case types.DriverOutageImpact:
		return &types.Condition{
			ID:         id,
			Attribute:  types.AttrZone,
			Comparator: types.ComparatorIn,
			Value:      types.ListValue("Ponce", "Mayagüez", "Arecibo"),
		}
	case types.DriverBundleEligibility:
		return &types.Condition{
			ID:         id,
			Attribute:  types.AttrBundleEligible,
			Comparator: types.ComparatorEquals,
			Value:      types.BoolValue(true),
		}
	case types.DriverDeviceAging:
		return &types.Condition{
			ID:         id,
			Attribute:  types.AttrDeviceOS,
			Comparator: types.ComparatorEquals,
			Value:      types.StringValue("Android"),
		}
	case types.DriverAffordabilityLapse:
		return &types.Condition{
			ID:         id,
			Attribute:  types.AttrPrepaid,
			Comparator: types.ComparatorEquals,
			Value:      types.BoolValue(true),
		}
	default:
		return nil
	}
}
