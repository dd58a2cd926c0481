// Package export writes analysis results to files: paginated PDF reports,
// PDF bar charts and Excel workbooks with native charts.
package export

import (
	"fmt"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
	"github.com/kdnorth/salesreport/internal/report"
)

const (
	LabelVacation    = "방학 시즌"
	LabelNonVacation = "비방학 시즌"
)

// Chart is a renderer-neutral bar chart.
type Chart struct {
	Title      string
	Series     string
	Labels     []string
	Values     []float64
	Horizontal bool
}

// RankingChart charts merchant totals, rank 1 first.
func RankingChart(r model.RankingResult) Chart {
	c := Chart{
		Title:      fmt.Sprintf("총 매출 기준 상위 %d개 가맹점", len(r.Entries)),
		Series:     "총 매출액",
		Horizontal: true,
	}
	for _, e := range r.Entries {
		c.Labels = append(c.Labels, e.Merchant)
		c.Values = append(c.Values, e.Total.InexactFloat64())
	}
	return c
}

// SeasonChart charts the two season totals with the change rate in the title.
func SeasonChart(r model.SeasonResult) Chart {
	return Chart{
		Title:  fmt.Sprintf("시즌별 매출 비교 (증감률 %s)", report.FormatRate(r.ChangeRate)),
		Series: "매출액",
		Labels: []string{LabelVacation, LabelNonVacation},
		Values: []float64{r.VacationTotal.InexactFloat64(), r.NonVacationTotal.InexactFloat64()},
	}
}

// ChartFor picks the chart for the last analysis.
func ChartFor(mode model.Mode, result any) (Chart, error) {
	switch r := result.(type) {
	case model.RankingResult:
		if mode == model.ModeTopN {
			return RankingChart(r), nil
		}
	case model.SeasonResult:
		if mode == model.ModeSeason {
			return SeasonChart(r), nil
		}
	}
	return Chart{}, apperr.Newf(apperr.KindReport, "cannot chart mode %q with result of type %T", mode, result)
}

func (c Chart) max() float64 {
	var m float64
	for _, v := range c.Values {
		if v > m {
			m = v
		}
	}
	return m
}
