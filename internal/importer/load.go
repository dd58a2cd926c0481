package importer

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/model"
	"github.com/kdnorth/salesreport/internal/yearmonth"
)

// Columns names the three required header cells.
type Columns struct {
	Merchant  string
	YearMonth string
	Amount    string
}

// DefaultColumns returns the header names used by the card-sales export.
func DefaultColumns() Columns {
	return Columns{
		Merchant:  "가맹점명",
		YearMonth: "연월",
		Amount:    "매출액",
	}
}

// Options controls LoadFile.
type Options struct {
	Encoding string
	Columns  Columns
}

// LoadFile opens path, parses it with the parser for its extension and
// validates it into a Dataset.
func LoadFile(path string, opts Options) (*model.Dataset, error) {
	parser, err := DefaultRegistry(opts.Encoding).ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	ds, err := Load(path, table, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}

// Load validates a RawTable and builds a Dataset. The checks run in order:
// required columns, then every year-month value, then every amount. Any
// failure rejects the whole table.
func Load(source string, table RawTable, cols Columns) (*model.Dataset, error) {
	idx := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	var missing []string
	for _, name := range []string{cols.Merchant, cols.YearMonth, cols.Amount} {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Newf(apperr.KindSchema, "missing required columns: %s", strings.Join(missing, ", "))
	}
	colMerchant := idx[cols.Merchant]
	colPeriod := idx[cols.YearMonth]
	colAmount := idx[cols.Amount]

	periods := make([]yearmonth.YearMonth, len(table.Rows))
	var bad badCells
	for i, row := range table.Rows {
		ym, err := yearmonth.Parse(cell(row, colPeriod))
		if err != nil {
			bad.add(i+2, cell(row, colPeriod))
			continue
		}
		periods[i] = ym
	}
	if bad.count > 0 {
		return nil, apperr.New(apperr.KindDateParse, bad.message(cols.YearMonth))
	}

	amounts := make([]decimal.Decimal, len(table.Rows))
	for i, row := range table.Rows {
		amt, err := ParseAmount(cell(row, colAmount))
		if err != nil {
			bad.add(i+2, cell(row, colAmount))
			continue
		}
		amounts[i] = amt
	}
	if bad.count > 0 {
		return nil, apperr.New(apperr.KindAmountParse, bad.message(cols.Amount))
	}

	records := make([]model.Record, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = model.NewRecord(strings.TrimSpace(cell(row, colMerchant)), periods[i], amounts[i])
	}
	return model.NewDataset(source, table.Header, records), nil
}

// ParseAmount reads a sales amount. Thousands separators, surrounding
// whitespace and a trailing 원 are tolerated; a blank cell is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSpace(strings.TrimSuffix(v, "원"))
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// badCells collects invalid values so one error can describe all of them.
type badCells struct {
	count    int
	firstRow int
	firstVal string
}

func (b *badCells) add(row int, val string) {
	if b.count == 0 {
		b.firstRow = row
		b.firstVal = val
	}
	b.count++
}

func (b *badCells) message(column string) string {
	if b.count == 1 {
		return fmt.Sprintf("row %d: cannot parse %s %q", b.firstRow, column, b.firstVal)
	}
	return fmt.Sprintf("%d rows with unparseable %s (first: row %d %q)", b.count, column, b.firstRow, b.firstVal)
}
