// Package ranking applies the scoring engine to a result set and picks the
// headline recommendation.
package ranking

import (
	"slices"

	"keyscout/internal/models"
	"keyscout/internal/scoring"
)

// Result is a scored result set in input order plus its best pick.
type Result struct {
	Rows []models.ScoredKeywordRow `json:"rows"`
	Best *models.ScoredKeywordRow  `json:"best"`
}

// Rank scores every row, keeping input order. Best is the first row holding
// the maximal score, or nil when rows is empty. The input is not modified.
func Rank(rows []models.RawKeywordRow) Result {
	scored := make([]models.ScoredKeywordRow, len(rows))
	bestIdx := -1
	for i, row := range rows {
		scored[i] = scoring.ScoreRow(row)
		if bestIdx < 0 || scored[i].Score > scored[bestIdx].Score {
			bestIdx = i
		}
	}

	result := Result{Rows: scored}
	if bestIdx >= 0 {
		best := scored[bestIdx]
		result.Best = &best
	}
	return result
}

// SortedByScore returns a copy of the rows ordered by descending score.
// Rows with equal scores keep their relative order.
func (r Result) SortedByScore() []models.ScoredKeywordRow {
	sorted := slices.Clone(r.Rows)
	slices.SortStableFunc(sorted, func(a, b models.ScoredKeywordRow) int {
		return b.Score - a.Score
	})
	return sorted
}

// CountByGrade tallies rows per grade tier.
func (r Result) CountByGrade() map[models.Grade]int {
	counts := make(map[models.Grade]int, len(models.Grades))
	for _, row := range r.Rows {
		counts[row.Grade]++
	}
	return counts
}
