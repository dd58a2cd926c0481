// Package report turns analysis results into the plain text lines shown on
// screen and written into exported documents.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
)

const (
	DefaultOrganization   = "경대북문지기"
	DefaultCurrencySuffix = "원"

	TopNHeader   = "상위 가맹점 매출 분석"
	SeasonHeader = "시즌별 매출 분석"
)

// Options controls presentation only.
type Options struct {
	CurrencySuffix string
}

// DefaultOptions uses the won suffix.
func DefaultOptions() Options {
	return Options{CurrencySuffix: DefaultCurrencySuffix}
}

// Title is the heading used for exported reports.
func Title(org string) string {
	if org == "" {
		org = DefaultOrganization
	}
	return org + " 매출 분석 보고서"
}

// FormatAmount rounds to whole units and adds thousands separators.
func FormatAmount(d decimal.Decimal, suffix string) string {
	return humanize.BigComma(d.RoundBank(0).BigInt()) + suffix
}

// FormatRate renders a percentage with two decimals.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatReport renders result as report lines. The result must match mode:
// a model.RankingResult for ModeTopN and a model.SeasonResult for
// ModeSeason.
func FormatReport(mode model.Mode, result any, opts Options) ([]string, error) {
	switch mode {
	case model.ModeTopN:
		r, ok := result.(model.RankingResult)
		if !ok {
			return nil, mismatch(mode, result)
		}
		return rankingLines(r, opts), nil
	case model.ModeSeason:
		r, ok := result.(model.SeasonResult)
		if !ok {
			return nil, mismatch(mode, result)
		}
		return seasonLines(r, opts), nil
	case model.ModeNone:
		return nil, apperr.New(apperr.KindReport, "no analysis has been run")
	default:
		return nil, apperr.Newf(apperr.KindReport, "unknown analysis mode %q", mode)
	}
}

func mismatch(mode model.Mode, result any) error {
	return apperr.Newf(apperr.KindReport, "mode %q does not match result of type %T", mode, result)
}

func rankingLines(r model.RankingResult, opts Options) []string {
	lines := make([]string, 0, len(r.Entries)+2)
	lines = append(lines, TopNHeader, "")
	for i, e := range r.Entries {
		lines = append(lines, fmt.Sprintf("%d. %s : %s", i+1, e.Merchant, FormatAmount(e.Total, opts.CurrencySuffix)))
	}
	return lines
}

func seasonLines(r model.SeasonResult, opts Options) []string {
	return []string{
		SeasonHeader,
		"",
		"방학 시즌 총 매출액: " + FormatAmount(r.VacationTotal, opts.CurrencySuffix),
		"비방학 시즌 총 매출액: " + FormatAmount(r.NonVacationTotal, opts.CurrencySuffix),
		"매출 증감률: " + FormatRate(r.ChangeRate),
	}
}
