package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rohits2404/Code-Editor/internal/core"
	"github.com/rohits2404/Code-Editor/internal/executor"
	"github.com/rohits2404/Code-Editor/internal/languages"
)

// APIHandlers provides HTTP handlers for REST API endpoints.
type APIHandlers struct {
	registry *core.Registry
	executor *executor.Service
	log      *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(registry *core.Registry, exec *executor.Service, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		registry: registry,
		executor: exec,
		log:      logger,
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Rooms     int    `json:"rooms"`
	Timestamp string `json:"timestamp"`
}

// ExecuteRequest represents the code execution request body.
type ExecuteRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Stdin    string `json:"stdin"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports liveness and the active room count.
// GET /health
func (h *APIHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Rooms:     h.registry.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Languages lists the supported editor languages.
// GET /api/languages
func (h *APIHandlers) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, languages.All())
}

// Execute runs a code snippet through the executor collaborator.
// POST /api/execute
func (h *APIHandlers) Execute(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid execute request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	lang, ok := languages.ByID(req.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown language"})
		return
	}

	result := h.executor.Execute(c.Request.Context(), req.Code, lang.Judge0ID, req.Stdin)

	h.log.Info().Str("language", req.Language).Float64("execution_time", result.ExecutionTime).Msg("code executed")
	c.JSON(http.StatusOK, result)
}
