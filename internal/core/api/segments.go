package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libertypr/converge/internal/core/store"
	"github.com/libertypr/converge/internal/types"
)

// ruleTreeRequest carries a rule tree posted for evaluation or preview.
type ruleTreeRequest struct {
	Rules *types.Group `json:"rules"`
}

// segmentMetrics evaluates a posted rule tree and returns the full metrics
// block plus lint warnings for every fallback-weight lookup.
func (s *Service) segmentMetrics(c *gin.Context) {
	var req ruleTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	metrics, err := s.segments.Metrics(req.Rules)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics": metrics,
		"lint":    s.segments.Lint(req.Rules),
	})
}

// segmentProfiles returns the sample profiles matching a posted rule tree.
func (s *Service) segmentProfiles(c *gin.Context) {
	var req ruleTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.segments.Validate(req.Rules); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": s.segments.MatchProfiles(req.Rules)})
}

func (s *Service) createSegment(c *gin.Context) {
	var input store.SegmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	def, err := s.store.Create(input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"segment": def})
}

func (s *Service) listSegments(c *gin.Context) {
	segments, err := s.store.List()
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

func (s *Service) getSegment(c *gin.Context) {
	id, err := types.ParseSegmentID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	def, err := s.store.Get(id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segment": def})
}

// updateSegment saves new segment content and appends an immutable version
// carrying the rule delta summary and a metrics snapshot.
func (s *Service) updateSegment(c *gin.Context) {
	id, err := types.ParseSegmentID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var input store.SegmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	def, version, err := s.store.Update(id, input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"segment": def, "version": version})
}

// archiveSegment soft-deletes: the segment drops out of listings but keeps
// its id and version history.
func (s *Service) archiveSegment(c *gin.Context) {
	id, err := types.ParseSegmentID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := s.store.Archive(id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) listSegmentVersions(c *gin.Context) {
	id, err := types.ParseSegmentID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	versions, err := s.store.Versions(id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// latestSegmentVersion returns the most recent version without shipping the
// whole history.
func (s *Service) latestSegmentVersion(c *gin.Context) {
	id, err := types.ParseSegmentID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	version, err := s.store.LatestVersion(id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"version": version})
}
