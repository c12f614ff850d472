package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keyscout/internal/config"
	"keyscout/internal/handlers"
	"keyscout/internal/handlers/api"
	"keyscout/internal/keywords"
)

// RegisterRoutes registers all application routes. options may be nil.
func (s *Server) RegisterRoutes(svc *keywords.Service, options *config.YAMLConfig) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(svc, s.Cfg, options)
	probeHandler := handlers.NewProbeHandler(svc)
	keywordAPI := api.NewKeywordHandler(svc)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	s.App.Get("/api/keyword-ideas", keywordAPI.Ideas)
	s.App.Get("/api/sources", keywordAPI.Sources)

	// Frontend
	s.App.Get("/", pageHandler.Index)
	s.App.Post("/analyze", pageHandler.Analyze)
}
