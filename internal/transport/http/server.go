package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rohits2404/Code-Editor/internal/config"
	"github.com/rohits2404/Code-Editor/internal/core"
	"github.com/rohits2404/Code-Editor/internal/executor"
)

// NewServer builds the HTTP server: liveness, websocket endpoint, and
// the small REST surface for the executor and language catalog.
func NewServer(hub *core.Hub, exec *executor.Service, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	api := NewAPIHandlers(hub.Registry(), exec, logger)
	router.GET("/health", api.Health)
	router.GET("/api/languages", api.Languages)
	router.POST("/api/execute", api.Execute)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
