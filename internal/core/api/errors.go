package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libertypr/converge/internal/core/store"
	"github.com/libertypr/converge/internal/types"
)

// respondError maps domain errors to HTTP statuses. Validation failures are
// the caller's fault (400), missing resources are 404, everything else is a
// 500 logged with the request path.
func (s *Service) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, types.ErrSegmentNotFound),
		errors.Is(err, types.ErrOpportunityNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrMissingRoot),
		errors.Is(err, types.ErrRuleTreeTooDeep),
		errors.Is(err, types.ErrTooManyRuleNodes),
		errors.Is(err, types.ErrTooManyInValues),
		errors.Is(err, types.ErrUnknownAttribute),
		errors.Is(err, types.ErrInvalidComparator),
		errors.Is(err, types.ErrInvalidCombinator),
		errors.Is(err, types.ErrValueShape),
		errors.Is(err, store.ErrMissingName):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// badRequest reports a malformed payload before any engine runs.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
