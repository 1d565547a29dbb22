// Package api exposes the evaluation and radar engines over HTTP.
//
// Handlers are thin: decode, call an engine or the store, map errors to
// statuses. All domain behavior lives in internal/segment, internal/radar
// and internal/core/store; nothing here is stateful beyond the wiring.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/libertypr/converge/internal/core/auth"
	"github.com/libertypr/converge/internal/core/store"
	"github.com/libertypr/converge/internal/radar"
	"github.com/libertypr/converge/internal/segment"
	"github.com/libertypr/converge/internal/types"
)

// Service wires the engines, store and authenticator into a gin router.
type Service struct {
	segments *segment.Engine
	radar    *radar.Engine
	store    *store.Store
	auth     *auth.Authenticator
	log      zerolog.Logger
	maxBody  int64
}

// NewService creates the console API service.
func NewService(segments *segment.Engine, radarEngine *radar.Engine, st *store.Store, authenticator *auth.Authenticator, log zerolog.Logger, maxBody int64) *Service {
	return &Service{
		segments: segments,
		radar:    radarEngine,
		store:    st,
		auth:     authenticator,
		log:      log,
		maxBody:  maxBody,
	}
}

// Router builds the route table. Read paths are open; mutating segment
// routes go through the token middleware, which is a no-op until tokens are
// configured.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(s.bodyLimit())

	v1 := r.Group("/v1")
	{
		v1.POST("/segments/metrics", s.segmentMetrics)
		v1.POST("/segments/profiles", s.segmentProfiles)

		v1.POST("/context/interpret", s.interpretContext)
		v1.POST("/context/adjust", s.adjustContext)

		v1.GET("/opportunities", s.listOpportunities)
		v1.GET("/opportunities/:id", s.getOpportunity)

		v1.GET("/segments", s.listSegments)
		v1.GET("/segments/:id", s.getSegment)
		v1.GET("/segments/:id/versions", s.listSegmentVersions)
		v1.GET("/segments/:id/versions/latest", s.latestSegmentVersion)

		protected := v1.Group("", s.auth.Middleware())
		{
			protected.POST("/segments", s.createSegment)
			protected.PUT("/segments/:id", s.updateSegment)
			protected.DELETE("/segments/:id", s.archiveSegment)
		}
	}

	return r
}

// segmentLookup resolves a segment id against seeded catalog segments first,
// then saved definitions. Used by the radar segment filter.
func (s *Service) segmentLookup() func(types.SegmentID) *types.SegmentDefinition {
	return func(id types.SegmentID) *types.SegmentDefinition {
		if def := s.radar.Catalog().FindSegment(id); def != nil {
			return def
		}
		def, err := s.store.Get(id)
		if err != nil {
			return nil
		}
		return def
	}
}

// knownSegments returns seeded plus saved segment definitions in that order,
// the universe RelatedSegments searches.
func (s *Service) knownSegments() ([]types.SegmentDefinition, error) {
	seeded := s.radar.Catalog().Segments
	saved, err := s.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]types.SegmentDefinition, 0, len(seeded)+len(saved))
	out = append(out, seeded...)
	out = append(out, saved...)
	return out, nil
}
