// ABOUTME: Chart series builder for keyword frequency visualisations
// ABOUTME: Produces bar, line and pie series keyed by keyword in ranking order

package presentation

import (
	"math"

	"textlens-api/core/domain"
)

// BuildCharts derives the chart series from ranked keywords. Bar and line
// carry raw counts, pie carries each keyword's share of the total in percent.
func BuildCharts(keywords []domain.KeywordCount) domain.Charts {
	charts := domain.Charts{
		Bar:  make([]domain.ChartPoint, 0, len(keywords)),
		Line: make([]domain.ChartPoint, 0, len(keywords)),
		Pie:  make([]domain.ChartPoint, 0, len(keywords)),
	}

	total := 0
	for _, kw := range keywords {
		total += kw.Count
	}

	for _, kw := range keywords {
		point := domain.ChartPoint{Label: kw.Keyword, Value: float64(kw.Count)}
		charts.Bar = append(charts.Bar, point)
		charts.Line = append(charts.Line, point)

		share := 0.0
		if total > 0 {
			share = math.Round(float64(kw.Count)/float64(total)*10000) / 100
		}
		charts.Pie = append(charts.Pie, domain.ChartPoint{Label: kw.Keyword, Value: share})
	}
	return charts
}
