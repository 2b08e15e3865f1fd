package ui

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	config := cors.DefaultConfig()
	if allowsAll(s.opts.CORSAllowOrigins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.opts.CORSAllowOrigins
	}
	s.router.Use(cors.New(config))
}

func allowsAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// requestLogger logs one structured line per request
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
		}
		switch {
		case status >= 500:
			s.logger.Error("request failed", attrs...)
		case status >= 400:
			s.logger.Warn("request rejected", attrs...)
		default:
			s.logger.Debug("request served", attrs...)
		}
	}
}
