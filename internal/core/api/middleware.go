package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger emits one structured event per request after the handler
// chain completes.
func (s *Service) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := s.log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = s.log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// bodyLimit caps request body size. Rule trees are small; anything near the
// limit is malformed or hostile.
func (s *Service) bodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.maxBody > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)
		}
		c.Next()
	}
}
