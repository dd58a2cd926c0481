package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
)

// Season is one side of the vacation/non-vacation split.
type Season string

const (
	SeasonVacation    Season = "vacation"
	SeasonNonVacation Season = "non_vacation"
)

// vacationMonths are January, February, July and August. Every other month
// is non-vacation, so the two seasons partition the year.
var vacationMonths = [13]bool{1: true, 2: true, 7: true, 8: true}

// SeasonOf classifies a month number (1-12).
func SeasonOf(month int) Season {
	if month >= 1 && month <= 12 && vacationMonths[month] {
		return SeasonVacation
	}
	return SeasonNonVacation
}

// Months lists the months of a season in calendar order.
func Months(s Season) []int {
	var out []int
	for m := 1; m <= 12; m++ {
		if SeasonOf(m) == s {
			out = append(out, m)
		}
	}
	return out
}

var hundred = decimal.NewFromInt(100)

// ChangeRate returns (vac - non) / non * 100, or zero when non is zero.
func ChangeRate(vac, non decimal.Decimal) decimal.Decimal {
	if non.IsZero() {
		return decimal.Zero
	}
	return vac.Sub(non).Div(non).Mul(hundred)
}

// CompareSeasons totals sales in vacation and non-vacation months. Both
// seasons must have at least one record.
func CompareSeasons(ds *model.Dataset) (model.SeasonResult, error) {
	if ds == nil {
		return model.SeasonResult{}, apperr.New(apperr.KindNoData, "no dataset loaded")
	}

	vac, non := decimal.Zero, decimal.Zero
	var vacRows, nonRows int
	ds.Each(func(r model.Record) {
		if SeasonOf(r.Month) == SeasonVacation {
			vac = vac.Add(r.Amount)
			vacRows++
			return
		}
		non = non.Add(r.Amount)
		nonRows++
	})

	switch {
	case vacRows == 0 && nonRows == 0:
		return model.SeasonResult{}, apperr.New(apperr.KindInsufficientData, "dataset has no rows")
	case vacRows == 0:
		return model.SeasonResult{}, apperr.New(apperr.KindInsufficientData, "no rows in vacation months (1, 2, 7, 8)")
	case nonRows == 0:
		return model.SeasonResult{}, apperr.New(apperr.KindInsufficientData, "no rows in non-vacation months")
	}

	return model.SeasonResult{
		VacationTotal:    vac,
		NonVacationTotal: non,
		ChangeRate:       ChangeRate(vac, non),
	}, nil
}
