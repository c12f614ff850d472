package handlers

import (
	"github.com/gofiber/fiber/v3"

	"keyscout/internal/keywords"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	svc *keywords.Service
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(svc *keywords.Service) *ProbeHandler {
	return &ProbeHandler{svc: svc}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// The source is built at startup, so serving requests means ready; the
// response names the active source.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"source": h.svc.SourceName(),
	})
}
