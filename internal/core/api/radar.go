package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libertypr/converge/internal/radar"
	"github.com/libertypr/converge/internal/types"
)

// interpretContext runs the full interpretation pipeline over a campaign
// context: structured signals, inferred drivers, assumptions, clarifying
// prompts and the ranked opportunity list, plus the implied segment seed the
// builder page starts from.
func (s *Service) interpretContext(c *gin.Context) {
	var ctx types.ContextInput
	if err := c.ShouldBindJSON(&ctx); err != nil {
		badRequest(c, err)
		return
	}

	interpretation := s.radar.RunContext(ctx)

	c.JSON(http.StatusOK, gin.H{
		"interpretation": interpretation,
		"impliedSegment": s.radar.ImpliedSegment(interpretation.InferredDrivers),
		"seedName":       s.radar.SeedName(ctx),
		"defaultFilters": s.radar.DefaultFilters(ctx),
	})
}

// adjustRequest pairs a context with the answer to a clarifying prompt.
type adjustRequest struct {
	Context types.ContextInput  `json:"context"`
	Update  types.ContextUpdate `json:"update"`
}

// adjustContext merges a clarifying answer into the context and re-runs the
// interpretation so the caller sees the re-ranked result in one round trip.
func (s *Service) adjustContext(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	merged := s.radar.AdjustContext(req.Context, req.Update)

	c.JSON(http.StatusOK, gin.H{
		"context":        merged,
		"interpretation": s.radar.RunContext(merged),
	})
}

// listOpportunities returns the catalog narrowed by the query-string
// filters. Empty dimensions pass everything.
func (s *Service) listOpportunities(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	opportunities := s.radar.Filter(filters, s.segmentLookup())
	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}

// getOpportunity returns one catalog entry plus the seeded and saved
// segments whose rule attributes overlap its recommended targeting.
func (s *Service) getOpportunity(c *gin.Context) {
	opp, err := s.radar.Opportunity(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	known, err := s.knownSegments()
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"opportunity":     opp,
		"relatedSegments": radar.RelatedSegments(*opp, known),
	})
}

func parseFilters(c *gin.Context) (types.RadarFilters, error) {
	filters := types.RadarFilters{
		Zones: c.QueryArray("zone"),
	}

	for _, p := range c.QueryArray("product") {
		filters.Products = append(filters.Products, types.Product(p))
	}
	for _, p := range c.QueryArray("planType") {
		filters.PlanTypes = append(filters.PlanTypes, types.PlanType(p))
	}
	// Seeded segment ids are slugs, not UUIDs, so filter values pass through
	// unparsed; unknown ids simply match nothing.
	for _, id := range c.QueryArray("segment") {
		filters.Segments = append(filters.Segments, types.SegmentID(id))
	}

	var err error
	if filters.DateRange.From, err = parseFilterTime(c.Query("from")); err != nil {
		return filters, err
	}
	if filters.DateRange.To, err = parseFilterTime(c.Query("to")); err != nil {
		return filters, err
	}
	return filters, nil
}

func parseFilterTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time filter %q: %w", raw, err)
	}
	return &t, nil
}
