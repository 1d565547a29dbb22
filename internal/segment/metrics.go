// internal/segment/metrics.go
package segment

import (
	"math"
	"time"

	"github.com/libertypr/converge/internal/types"
)

/*
 * Metrics facade.
 *
 * Metrics recomputes the full snapshot for a rule tree on every call:
 * coverage -> size -> reach -> guardrails -> impact -> trend. Nothing is
 * patched incrementally; two calls with the same tree differ only in the
 * freshness timestamp.
 *
 * Size derivation: base population discounted by the addressable factor and
 * scaled by coverage, floored at the catalog minimum so a tight tree still
 * yields an activatable audience.
 *
 * Trend is a presentation score, not a forecast: coverage scaled to roughly
 * 0-12 with a penalty per guardrail warning, rounded to one decimal.
 */

// Metrics validates the tree and computes its full metrics snapshot.
func (e *Engine) Metrics(root *types.Group) (types.SegmentMetrics, error) {
	if err := e.Validate(root); err != nil {
		return types.SegmentMetrics{}, err
	}

	coverage := e.Coverage(root)
	size := e.segmentSize(coverage)
	reach := e.Reach(root, size)
	warnings := e.Guardrails(reach)
	impact := e.Impact(root, size)

	trend := math.Round((coverage*12-float64(len(warnings))*1.4)*10) / 10

	return types.SegmentMetrics{
		Size:      size,
		Trend:     trend,
		Freshness: e.now().UTC().Format(time.RFC3339),
		Reach:     reach,
		Warnings:  warnings,
		Impact:    impact,
	}, nil
}

func (e *Engine) segmentSize(coverage float64) int {
	size := int(math.Round(float64(e.cat.BasePopulation) * coverage * e.cat.AddressableFactor))
	if size < e.cat.MinSegmentSize {
		return e.cat.MinSegmentSize
	}
	return size
}
