package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"finledger/internal/config"
	"finledger/internal/http/handlers"
	"finledger/internal/http/middleware"
	"finledger/internal/store"
	"finledger/internal/ws"
)

// RegisterRoutes wires the ledger API onto the gin engine.
func RegisterRoutes(r *gin.Engine, s *store.Guarded, cfg *config.Config, version string) {
	hub := ws.NewHub()
	h := handlers.NewHandler(s, hub, cfg.Currency)
	healthHandler := handlers.NewHealthHandler(s, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Ledger change stream
	r.GET("/ws", h.Events)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second))
	registerAPIRoutes(v1, h)

	// Legacy /api routes kept for backward compatibility
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/transactions", h.List)
	api.GET("/transactions/recent", h.RecentTxs)
	api.POST("/transactions", h.Create)
	api.PATCH("/transactions/:id", h.Update)
	api.DELETE("/transactions/:id", h.Delete)

	api.GET("/summary", h.Summary)
	api.GET("/export", h.Export)
}
