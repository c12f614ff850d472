package source

import (
	"context"
	"strings"

	"keyscout/internal/models"
)

// CombinedSource concatenates the rows of several sources in order. It
// fails as a whole if any part fails.
type CombinedSource struct {
	parts []Source
}

// NewCombinedSource creates a source that merges parts in the given order.
func NewCombinedSource(parts ...Source) *CombinedSource {
	return &CombinedSource{parts: parts}
}

// Name returns "combined(a+b)".
func (s *CombinedSource) Name() string {
	names := make([]string, len(s.parts))
	for i, p := range s.parts {
		names[i] = p.Name()
	}
	return Combined + "(" + strings.Join(names, "+") + ")"
}

// FetchRows calls each part sequentially and concatenates their rows.
func (s *CombinedSource) FetchRows(ctx context.Context, q Query) ([]models.RawKeywordRow, error) {
	var rows []models.RawKeywordRow
	for _, p := range s.parts {
		partRows, err := p.FetchRows(ctx, q)
		if err != nil {
			return nil, err
		}
		rows = append(rows, partRows...)
	}
	return rows, nil
}
