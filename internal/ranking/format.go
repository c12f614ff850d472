package ranking

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"keyscout/internal/models"
)

// currencySymbols maps a country code to the symbol shown before CPC values.
var currencySymbols = map[string]string{
	"KR": "₩",
	"US": "$",
	"JP": "¥",
	"DE": "€",
}

// RowView is a scored row formatted for display.
type RowView struct {
	Keyword     string
	Volume      string
	CPC         string
	Competition string
	Score       int
	Grade       models.Grade
	GradeLabel  string
}

// View is a formatted result set ready for a template or table.
type View struct {
	Rows []RowView
	Best *RowView
}

// Format renders a result with locale-aware number formatting for lang and
// the currency of country.
func Format(result Result, country, lang string) View {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	symbol, ok := currencySymbols[strings.ToUpper(country)]
	if !ok {
		symbol = strings.ToUpper(country)
	}

	view := View{Rows: make([]RowView, 0, len(result.Rows))}
	for _, row := range result.Rows {
		view.Rows = append(view.Rows, formatRow(p, row, symbol, lang))
	}
	if result.Best != nil {
		best := formatRow(p, *result.Best, symbol, lang)
		view.Best = &best
	}
	return view
}

func formatRow(p *message.Printer, row models.ScoredKeywordRow, symbol, lang string) RowView {
	return RowView{
		Keyword:     row.Keyword,
		Volume:      p.Sprintf("%d", row.Volume),
		CPC:         symbol + " " + p.Sprintf("%v", number.Decimal(row.CPC, number.MaxFractionDigits(3))),
		Competition: p.Sprintf("%.2f", row.Competition),
		Score:       row.Score,
		Grade:       row.Grade,
		GradeLabel:  row.Grade.Label(lang),
	}
}
