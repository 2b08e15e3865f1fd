package ui

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"startupsim/internal/errors"
)

const (
	maxBodyBytes     = 1 << 20
	defaultListLimit = 20
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// handleHealth reports liveness and uptime in seconds
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) handleCreateSimulation(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	report, err := s.service.Simulate(c.Request.Context(), body)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (s *Server) handleCreateBatch(c *gin.Context) {
	runs, err := intQuery(c, "runs", 1)
	if err != nil {
		s.respondError(c, err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	reports, err := s.service.RunBatch(c.Request.Context(), body, runs)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"runs": len(reports), "reports": reports})
}

func (s *Server) handleListSimulations(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultListLimit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	items, err := s.service.List(c.Request.Context(), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"simulations": items})
}

func (s *Server) handleGetSimulation(c *gin.Context) {
	report, err := s.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleGetPersona(c *gin.Context) {
	p, responses, err := s.service.PersonaInterview(c.Request.Context(), c.Param("id"), c.Param("personaId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"persona": p, "responses": responses})
}

func (s *Server) handleExportSimulation(c *gin.Context) {
	id := c.Param("id")
	data, err := s.service.ExportExcel(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="simulation-`+id+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (s *Server) handleSimulationSummary(c *gin.Context) {
	html, err := s.service.RenderSummaryHTML(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) handleProjection(c *gin.Context) {
	months, err := intQuery(c, "months", s.opts.DefaultMonths)
	if err != nil {
		s.respondError(c, err)
		return
	}

	proj, err := s.service.Projection(months)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// respondError writes the {error, code} body with the status mapped from
// the error code
func (s *Server) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request error", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "failed to read request body"))
	}
	return body, nil
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(key + " must be an integer")
	}
	return n, nil
}
