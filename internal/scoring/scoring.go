// Package scoring turns keyword metrics into a 0-100 score and a grade tier.
//
// Every function here is pure and safe for concurrent use.
package scoring

import (
	"math"

	"keyscout/internal/models"
)

// Term caps and weights. A term reaches its full weight once its metric
// reaches the cap.
const (
	VolumeCap    = 5000
	VolumeWeight = 30

	CPCCap    = 800
	CPCWeight = 40

	CompetitionWeight = 30

	MaxScore = 100
)

// Grade thresholds, inclusive lower bounds.
const (
	TopThreshold    = 80
	GoodThreshold   = 60
	NormalThreshold = 40
)

// Breakdown holds the three weighted terms that make up a raw score.
type Breakdown struct {
	Volume      float64 `json:"volume"`
	CPC         float64 `json:"cpc"`
	Competition float64 `json:"competition"`
}

// Raw returns the unrounded sum of the terms.
func (b Breakdown) Raw() float64 {
	return b.Volume + b.CPC + b.Competition
}

// Terms computes the clamped, weighted terms for the given metrics.
// Negative or NaN volume and cpc count as zero. Competition is clamped into
// [0,1]; NaN competition counts as 1 so it can never raise a score.
func Terms(volume int64, cpc, competition float64) Breakdown {
	v := float64(max(volume, 0))
	if v > VolumeCap {
		v = VolumeCap
	}

	c := cpc
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	if c > CPCCap {
		c = CPCCap
	}

	comp := competition
	if math.IsNaN(comp) {
		comp = 1
	}
	comp = math.Max(0, math.Min(comp, 1))

	// Multiply before dividing so integral metrics give exact terms.
	return Breakdown{
		Volume:      v * VolumeWeight / VolumeCap,
		CPC:         c * CPCWeight / CPCCap,
		Competition: CompetitionWeight - comp*CompetitionWeight,
	}
}

// Score returns the 0-100 keyword score.
//
// The raw sum is rounded half up (79.5 becomes 80) and then clamped to
// [0,100].
func Score(volume int64, cpc, competition float64) int {
	raw := Terms(volume, cpc, competition).Raw()
	score := int(math.Floor(raw + 0.5))
	return min(max(score, 0), MaxScore)
}

// GradeFromScore maps a score onto its tier. It is total over all ints.
func GradeFromScore(score int) models.Grade {
	switch {
	case score >= TopThreshold:
		return models.GradeTop
	case score >= GoodThreshold:
		return models.GradeGood
	case score >= NormalThreshold:
		return models.GradeNormal
	default:
		return models.GradePoor
	}
}

// ScoreRow annotates a raw row with its score and grade.
func ScoreRow(row models.RawKeywordRow) models.ScoredKeywordRow {
	score := Score(row.Volume, row.CPC, row.Competition)
	return models.ScoredKeywordRow{
		RawKeywordRow: row,
		Score:         score,
		Grade:         GradeFromScore(score),
	}
}
