package source

import (
	"context"
	"log/slog"
	"strings"

	"keyscout/internal/config"
	"keyscout/internal/models"
)

// fallbackSeed stands in for a blank seed keyword.
const fallbackSeed = "테스트"

// Sample template sets. primaryTemplates mirrors keyword planner style
// suggestions, secondaryTemplates a search ad tool.
var (
	primaryTemplates = []config.TemplateConfig{
		{Suffix: " 추천", Volume: 4400, CPC: 720, Competition: 0.35},
		{Suffix: " 후기", Volume: 2900, CPC: 540, Competition: 0.28},
		{Suffix: " 비교", Volume: 1900, CPC: 610, Competition: 0.32},
	}
	secondaryTemplates = []config.TemplateConfig{
		{Suffix: " 가격", Volume: 3500, CPC: 430, Competition: 0.4},
		{Suffix: " 사용법", Volume: 2100, CPC: 280, Competition: 0.25},
	}
)

func templatesFor(deps Deps, name string, fallback []config.TemplateConfig) []config.TemplateConfig {
	if override := deps.Templates.GetSourceByName(name); override != nil && len(override.Templates) > 0 {
		return override.Templates
	}
	return fallback
}

// TemplateSource generates sample rows by appending fixed suffixes to the
// seed keyword. It performs no I/O.
type TemplateSource struct {
	name      string
	templates []config.TemplateConfig
	creds     *config.AdsCredentials
}

// NewTemplateSource creates a template source. creds may be nil; they are
// held for the real API client that will replace the templates.
func NewTemplateSource(name string, templates []config.TemplateConfig, creds *config.AdsCredentials) *TemplateSource {
	if creds != nil {
		slog.Info("ads credentials loaded", "source", name, "client_email", creds.ClientEmail)
	}
	return &TemplateSource{name: name, templates: templates, creds: creds}
}

// Name returns the variant name.
func (s *TemplateSource) Name() string {
	return s.name
}

// FetchRows returns one row per template for the seed keyword.
func (s *TemplateSource) FetchRows(ctx context.Context, q Query) ([]models.RawKeywordRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(s.name, err)
	}

	base := strings.TrimSpace(q.Seed)
	if base == "" {
		base = fallbackSeed
	}

	rows := make([]models.RawKeywordRow, 0, len(s.templates))
	for _, t := range s.templates {
		rows = append(rows, models.RawKeywordRow{
			Keyword:     base + t.Suffix,
			Volume:      t.Volume,
			CPC:         t.CPC,
			Competition: t.Competition,
		})
	}
	return rows, nil
}
