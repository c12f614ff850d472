package models

// RawKeywordRow is one keyword candidate as reported by a row source.
type RawKeywordRow struct {
	Keyword     string  `json:"keyword" yaml:"keyword"`
	Volume      int64   `json:"volume" yaml:"volume"`           // monthly search volume
	CPC         float64 `json:"cpc" yaml:"cpc"`                 // cost per click, minor currency units
	Competition float64 `json:"competition" yaml:"competition"` // 0..1, higher is more crowded
}

// ScoredKeywordRow is a RawKeywordRow annotated with its score and grade.
type ScoredKeywordRow struct {
	RawKeywordRow
	Score int   `json:"score"`
	Grade Grade `json:"grade"`
}
