package models

import "testing"

func TestGradeRank(t *testing.T) {
	tests := []struct {
		grade Grade
		want  int
	}{
		{GradeTop, 0},
		{GradeGood, 1},
		{GradeNormal, 2},
		{GradePoor, 3},
		{Grade("bogus"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			if got := tt.grade.Rank(); got != tt.want {
				t.Errorf("Rank() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		name  string
		grade Grade
		lang  string
		want  string
	}{
		{"korean top", GradeTop, "ko", "황금"},
		{"korean poor", GradePoor, "ko", "비추"},
		{"english good", GradeGood, "en", "Good"},
		{"fallback language", GradeNormal, "de", "Normal"},
		{"unknown grade", Grade("x"), "ko", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grade.Label(tt.lang); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}
