package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"keyscout/internal/keywords"
	"keyscout/internal/metrics"
	"keyscout/internal/models"
	"keyscout/internal/source"
)

// KeywordHandler serves keyword ideas via JSON API.
type KeywordHandler struct {
	svc *keywords.Service
}

// NewKeywordHandler creates a new API keyword handler.
func NewKeywordHandler(svc *keywords.Service) *KeywordHandler {
	return &KeywordHandler{svc: svc}
}

// Ideas returns the raw rows for ?keyword=&country=&lang=. With scored=true
// the rows are also scored and the best pick is included.
func (h *KeywordHandler) Ideas(c fiber.Ctx) error {
	req := keywords.Request{
		Keyword:  c.Query("keyword"),
		Country:  c.Query("country"),
		Language: c.Query("lang"),
	}

	resp, err := h.svc.Query(c.Context(), req)
	if err != nil {
		var verr *keywords.ValidationError
		if errors.As(err, &verr) {
			return jsonError(c, fiber.StatusBadRequest, verr.Message)
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load keyword data")
	}

	payload := models.KeywordIdeasResponse{
		RequestID: resp.RequestID,
		Source:    resp.Source,
		Keyword:   resp.Keyword,
		Country:   resp.Country,
		Language:  resp.Language,
		Items:     resp.Rows,
	}

	if scored, _ := strconv.ParseBool(c.Query("scored")); !scored {
		return jsonSuccess(c, payload)
	}

	result := resp.Ranked()
	metrics.RecordGrades(result.CountByGrade())
	return jsonSuccess(c, models.ScoredKeywordIdeasResponse{
		KeywordIdeasResponse: payload,
		Scored:               result.Rows,
		Best:                 result.Best,
	})
}

// Sources lists the row source variants and marks the active one.
func (h *KeywordHandler) Sources(c fiber.Ctx) error {
	active := h.svc.SourceName()
	names := source.Names()
	infos := make([]models.SourceInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, models.SourceInfo{
			Name:   name,
			Active: name == active || (name == source.Combined && isCombined(active)),
		})
	}
	return jsonSuccess(c, infos)
}

func isCombined(name string) bool {
	return strings.HasPrefix(name, source.Combined+"(")
}
