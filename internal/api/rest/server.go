// Package rest exposes the save slots over HTTP.
package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cory-johannsen/paperdoll/internal/config"
)

// NewRouter wires the middleware and routes. The rate limiter's sweeper
// stops when ctx is done.
func NewRouter(ctx context.Context, h *Handler, cfg config.APIConfig, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(logger), Logger(logger))
	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimit(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	r.GET("/healthz", h.Healthz)

	saves := r.Group("/api/saves/:slot")
	saves.GET("/state", h.State)
	saves.GET("/presentation", h.Presentation)
	saves.POST("/move", h.Move)
	saves.POST("/replace", h.Replace)
	saves.POST("/items/:action", h.Item)
	saves.POST("/unequip/:index", h.Unequip)
	saves.POST("/bulk/:action", h.Bulk)
	saves.PUT("/filter", h.SetFilter)
	saves.DELETE("/filter", h.ClearFilter)
	saves.POST("/sets", h.CreateSet)
	saves.PATCH("/sets/:id", h.RenameSet)
	saves.DELETE("/sets/:id", h.RemoveSet)
	saves.POST("/sets/:id/apply", h.ApplySet)
	saves.GET("/sets/:id/preview", h.PreviewSet)
	return r
}

// NewServer returns an http.Server for handler on cfg's address.
func NewServer(cfg config.APIConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
