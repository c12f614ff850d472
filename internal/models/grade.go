package models

// Grade is one of the four quality tiers derived from a score.
type Grade string

// Grade tiers, best first.
const (
	GradeTop    Grade = "top"
	GradeGood   Grade = "good"
	GradeNormal Grade = "normal"
	GradePoor   Grade = "poor"
)

// Grades lists every tier from best to worst.
var Grades = []Grade{GradeTop, GradeGood, GradeNormal, GradePoor}

// Rank returns the tier position, 0 for top. Unknown grades sort last.
func (g Grade) Rank() int {
	for i, candidate := range Grades {
		if g == candidate {
			return i
		}
	}
	return len(Grades)
}

// Label returns the display label for the grade in the given language.
func (g Grade) Label(lang string) string {
	if lang == "ko" {
		switch g {
		case GradeTop:
			return "황금"
		case GradeGood:
			return "양호"
		case GradeNormal:
			return "보통"
		case GradePoor:
			return "비추"
		}
	}
	switch g {
	case GradeTop:
		return "Golden"
	case GradeGood:
		return "Good"
	case GradeNormal:
		return "Normal"
	case GradePoor:
		return "Avoid"
	}
	return string(g)
}
