package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/markup"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/render"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/usecase"
)

// DiagnosticHeader carries the fetch failure, if any, on decorated responses
const DiagnosticHeader = "X-CPL-Diagnostic"

// maxMarkupBytes bounds the authored block markup accepted per request
const maxMarkupBytes = 1 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lister *usecase.ListerService
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(lister *usecase.ListerService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{lister: lister, logger: logger.Named("http")}
}

// decorateRequest is the JSON form of a decoration request
type decorateRequest struct {
	Markup      string `json:"markup" binding:"required"`
	PagePath    string `json:"pagePath"`
	ContainerID string `json:"containerId"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cpl-service",
		"version": "1.0.0",
	})
}

// DecorateBlock renders the product lister for posted block markup. The body
// is either raw HTML (page and container in the query) or a JSON request.
func (h *Handler) DecorateBlock(c *gin.Context) {
	if h.lister == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product lister not configured",
		})
		return
	}

	var req decorateRequest
	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request: markup is required",
			})
			return
		}
	} else {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxMarkupBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
			return
		}
		req = decorateRequest{
			Markup:      string(body),
			PagePath:    c.Query("page"),
			ContainerID: c.Query("container"),
		}
	}

	if strings.TrimSpace(req.Markup) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: markup is required"})
		return
	}

	block, err := markup.Parse(req.Markup)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lister.Decorate(c.Request.Context(), usecase.DecorateRequest{
		Block:       block,
		Host:        requestHost(c),
		PagePath:    req.PagePath,
		ContainerID: req.ContainerID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	render.Decorate(block.Root(), result)
	out, err := render.String(block.Root())
	if err != nil {
		h.logger.Error("rendering block failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.Diagnostic != nil {
		c.Header(DiagnosticHeader, result.Diagnostic.Error())
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// ListProducts returns the cards for a folder as JSON
func (h *Handler) ListProducts(c *gin.Context) {
	if h.lister == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product lister not configured",
		})
		return
	}

	var tags domain.TagFilter
	if values := c.QueryArray("tags"); len(values) == 1 {
		tags = domain.ParseTagFilter(values[0])
	} else {
		tags = domain.TagFilter(values)
	}

	result, err := h.lister.List(c.Request.Context(), usecase.ListRequest{
		FolderPath:  c.Query("folder"),
		TagFilter:   tags,
		Host:        requestHost(c),
		PagePath:    c.Query("page"),
		ContainerID: c.Query("container"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, render.NewView(result))
}

// respondError maps service errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("unexpected lister error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requestHost is the host the page is served from, honoring proxies
func requestHost(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.Request.Host
}
