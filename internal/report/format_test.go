package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatReport_TopN(t *testing.T) {
	r := model.RankingResult{
		Entries: []model.MerchantTotal{
			{Merchant: "A", Total: dec("1200000")},
			{Merchant: "B", Total: dec("950000")},
		},
		Requested: 2,
		N:         2,
	}
	lines, err := FormatReport(model.ModeTopN, r, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"상위 가맹점 매출 분석",
		"",
		"1. A : 1,200,000원",
		"2. B : 950,000원",
	}, lines)
}

func TestFormatReport_Season(t *testing.T) {
	r := model.SeasonResult{
		VacationTotal:    dec("300"),
		NonVacationTotal: dec("50"),
		ChangeRate:       dec("500"),
	}
	lines, err := FormatReport(model.ModeSeason, r, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"시즌별 매출 분석",
		"",
		"방학 시즌 총 매출액: 300원",
		"비방학 시즌 총 매출액: 50원",
		"매출 증감률: 500.00%",
	}, lines)
}

func TestFormatReport_CustomSuffix(t *testing.T) {
	r := model.RankingResult{Entries: []model.MerchantTotal{{Merchant: "A", Total: dec("1500")}}, Requested: 1, N: 1}
	lines, err := FormatReport(model.ModeTopN, r, Options{CurrencySuffix: " KRW"})
	require.NoError(t, err)
	assert.Equal(t, "1. A : 1,500 KRW", lines[2])
}

func TestFormatReport_Mismatch(t *testing.T) {
	_, err := FormatReport(model.ModeTopN, model.SeasonResult{}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindReport))

	_, err = FormatReport(model.ModeSeason, model.RankingResult{}, DefaultOptions())
	assert.True(t, apperr.Is(err, apperr.KindReport))

	_, err = FormatReport(model.ModeSeason, nil, DefaultOptions())
	assert.True(t, apperr.Is(err, apperr.KindReport))
}

func TestFormatReport_NoMode(t *testing.T) {
	_, err := FormatReport(model.ModeNone, nil, DefaultOptions())
	assert.True(t, apperr.Is(err, apperr.KindReport))

	_, err = FormatReport(model.Mode("pie"), nil, DefaultOptions())
	assert.True(t, apperr.Is(err, apperr.KindReport))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0원"},
		{"999", "999원"},
		{"1000", "1,000원"},
		{"1234567.4", "1,234,567원"},
		{"2560000", "2,560,000원"},
		{"-3060000", "-3,060,000원"},
		{"20000000000000000000", "20,000,000,000,000,000,000원"},
		{"123456789012345678901234.6", "123,456,789,012,345,678,901,235원"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(dec(tt.in), "원"), "FormatAmount(%s)", tt.in)
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "-16.34%", FormatRate(dec("-16.339869281045752")))
	assert.Equal(t, "0.00%", FormatRate(decimal.Zero))
	assert.Equal(t, "500.00%", FormatRate(dec("500")))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "경대북문지기 매출 분석 보고서", Title(""))
	assert.Equal(t, "북문상권 매출 분석 보고서", Title("북문상권"))
}
