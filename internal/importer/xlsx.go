package importer

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kdnorth/salesreport/internal/apperr"
)

// XLSXParser reads the first worksheet of an Excel workbook.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse returns the first sheet's header and rows. Blank rows are skipped
// and short rows are padded to the header width.
func (p *XLSXParser) Parse(r io.Reader) (RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return RawTable{}, apperr.Wrap(apperr.KindSchema, err, "opening workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return RawTable{}, apperr.New(apperr.KindSchema, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return RawTable{}, apperr.Wrap(apperr.KindSchema, err, "reading sheet "+sheets[0])
	}

	var kept [][]string
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) == 0 {
		return RawTable{}, apperr.New(apperr.KindSchema, "no header row")
	}

	header := trimAll(kept[0])
	data := make([][]string, 0, len(kept)-1)
	for _, row := range kept[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		data = append(data, row)
	}
	return RawTable{Header: header, Rows: data}, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
