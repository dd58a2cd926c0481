package model

import "github.com/shopspring/decimal"

// Mode identifies which analysis produced the current result.
type Mode string

const (
	ModeNone   Mode = ""
	ModeTopN   Mode = "top_n"
	ModeSeason Mode = "season"
)

// MerchantTotal is one ranked merchant.
type MerchantTotal struct {
	Merchant string
	Total    decimal.Decimal
}

// RankingResult is the Top-N merchant ranking, descending by Total.
type RankingResult struct {
	Entries   []MerchantTotal
	Requested int // N as asked for
	N         int // N after clamping to the distinct merchant count
}

// Adjusted reports whether N was reduced to fit the merchant count.
func (r RankingResult) Adjusted() bool {
	return r.N != r.Requested
}

// SeasonResult compares vacation and non-vacation month sales.
type SeasonResult struct {
	VacationTotal    decimal.Decimal
	NonVacationTotal decimal.Decimal
	ChangeRate       decimal.Decimal // percent, 0 when NonVacationTotal is 0
}
