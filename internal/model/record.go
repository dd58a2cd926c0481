package model

import (
	"github.com/shopspring/decimal"

	"github.com/kdnorth/salesreport/internal/yearmonth"
)

// Record is one parsed sales row.
type Record struct {
	Merchant string
	Period   yearmonth.YearMonth
	Month    int // 1-12, always int(Period.Month)
	Amount   decimal.Decimal
}

// NewRecord builds a Record, deriving Month from the period.
func NewRecord(merchant string, period yearmonth.YearMonth, amount decimal.Decimal) Record {
	return Record{
		Merchant: merchant,
		Period:   period,
		Month:    int(period.Month),
		Amount:   amount,
	}
}

// Dataset is a loaded, validated sales table. It is never modified after
// construction; accessors hand out copies.
type Dataset struct {
	source  string
	columns []string
	records []Record
}

// NewDataset copies columns and records into a new Dataset.
func NewDataset(source string, columns []string, records []Record) *Dataset {
	return &Dataset{
		source:  source,
		columns: append([]string(nil), columns...),
		records: append([]Record(nil), records...),
	}
}

// Source names where the data came from (file path or "table").
func (d *Dataset) Source() string { return d.source }

// Columns returns the original header.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Records returns a copy of all rows in input order.
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Each calls fn for every record in input order without copying the slice.
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Merchants returns distinct non-blank merchant names in first-seen order.
func (d *Dataset) Merchants() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range d.records {
		if r.Merchant != "" && !seen[r.Merchant] {
			seen[r.Merchant] = true
			names = append(names, r.Merchant)
		}
	}
	return names
}

// Total sums every amount in the dataset.
func (d *Dataset) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range d.records {
		total = total.Add(r.Amount)
	}
	return total
}

// Span returns the earliest and latest periods. Both are zero for an
// empty dataset.
func (d *Dataset) Span() (first, last yearmonth.YearMonth) {
	for i, r := range d.records {
		if i == 0 || r.Period.Before(first) {
			first = r.Period
		}
		if i == 0 || last.Before(r.Period) {
			last = r.Period
		}
	}
	return first, last
}
