package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
)

// DefaultTopN is the ranking size offered before the user picks one.
const DefaultTopN = 10

// ParseN reads the requested ranking size from user input.
func ParseN(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, apperr.Newf(apperr.KindInput, "N must be a positive integer, got %q", text)
	}
	return n, nil
}

// MerchantTotals sums amounts per merchant, sorted by total descending and
// then by merchant name. Rows with an empty merchant name are skipped.
func MerchantTotals(ds *model.Dataset) []model.MerchantTotal {
	sums := make(map[string]decimal.Decimal)
	ds.Each(func(r model.Record) {
		if r.Merchant == "" {
			return
		}
		sums[r.Merchant] = sums[r.Merchant].Add(r.Amount)
	})

	totals := make([]model.MerchantTotal, 0, len(sums))
	for name, sum := range sums {
		totals = append(totals, model.MerchantTotal{Merchant: name, Total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].Merchant < totals[j].Merchant
	})
	return totals
}

// RankTopN returns the n merchants with the highest total sales. When n
// exceeds the number of merchants it is reduced to fit; the result's
// Adjusted method reports that.
func RankTopN(ds *model.Dataset, n int) (model.RankingResult, error) {
	if n <= 0 {
		return model.RankingResult{}, apperr.Newf(apperr.KindInput, "N must be a positive integer, got %d", n)
	}
	if ds == nil {
		return model.RankingResult{}, apperr.New(apperr.KindNoData, "no dataset loaded")
	}

	totals := MerchantTotals(ds)
	if len(totals) == 0 {
		return model.RankingResult{}, apperr.New(apperr.KindNoData, "dataset has no merchant rows")
	}

	clamped := n
	if clamped > len(totals) {
		clamped = len(totals)
	}
	return model.RankingResult{
		Entries:   totals[:clamped],
		Requested: n,
		N:         clamped,
	}, nil
}
