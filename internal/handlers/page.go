package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"keyscout/internal/config"
	"keyscout/internal/keywords"
	"keyscout/internal/metrics"
	"keyscout/internal/ranking"
	"keyscout/internal/validation"
)

// PageHandler renders the keyword research page.
type PageHandler struct {
	svc     *keywords.Service
	cfg     *config.Config
	options *config.YAMLConfig
}

// NewPageHandler creates a new page handler. options may be nil.
func NewPageHandler(svc *keywords.Service, cfg *config.Config, options *config.YAMLConfig) *PageHandler {
	return &PageHandler{svc: svc, cfg: cfg, options: options}
}

// Index renders the search form.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Countries":       h.options.CountryOptions(),
		"Languages":       h.options.LanguageOptions(),
		"DefaultCountry":  h.cfg.DefaultCountry,
		"DefaultLanguage": h.cfg.DefaultLanguage,
		"MinLength":       validation.MinSeedLength,
		"Source":          h.svc.SourceName(),
	}, h.cfg))
}

// Analyze runs a query from the HTMX form and renders the results partial.
func (h *PageHandler) Analyze(c fiber.Ctx) error {
	req := keywords.Request{
		Keyword:  c.FormValue("keyword"),
		Country:  c.FormValue("country"),
		Language: c.FormValue("lang"),
	}

	resp, err := h.svc.Query(c.Context(), req)
	if err != nil {
		var verr *keywords.ValidationError
		if errors.As(err, &verr) {
			return htmxError(c, verr.Message)
		}
		slog.Error("analyze failed", "keyword", req.Keyword, "error", err)
		return htmxError(c, "Failed to load keyword data. Please try again.")
	}

	result := resp.Ranked()
	metrics.RecordGrades(result.CountByGrade())

	return c.Render("partials/results", fiber.Map{
		"Keyword": resp.Keyword,
		"View":    ranking.Format(result, resp.Country, resp.Language),
	}, "")
}
