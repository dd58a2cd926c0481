package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kdnorth/salesreport/internal/apperr"
)

const (
	chartSheet  = "Chart"
	reportSheet = "Report"
)

// XLSXChart writes a workbook holding the chart data and a native Excel
// bar chart built from it.
func XLSXChart(path string, c Chart) error {
	return XLSXReport(path, "", nil, c)
}

// XLSXReport writes the report lines to a "Report" sheet (when lines is
// non-empty) followed by the chart sheet.
func XLSXReport(path, title string, lines []string, c Chart) error {
	if len(c.Values) == 0 {
		return apperr.New(apperr.KindReport, "chart has no values")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), chartSheet); err != nil {
		return wrapXLSX(err)
	}
	if err := fillChartSheet(f, c); err != nil {
		return wrapXLSX(err)
	}

	if len(lines) > 0 {
		idx, err := f.NewSheet(reportSheet)
		if err != nil {
			return wrapXLSX(err)
		}
		if err := fillReportSheet(f, title, lines); err != nil {
			return wrapXLSX(err)
		}
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return apperr.Wrap(apperr.KindReport, err, fmt.Sprintf("writing %s", path))
	}
	return nil
}

func wrapXLSX(err error) error {
	return apperr.Wrap(apperr.KindReport, err, "building workbook")
}

func fillChartSheet(f *excelize.File, c Chart) error {
	if err := f.SetSheetRow(chartSheet, "A1", &[]any{"항목", c.Series}); err != nil {
		return err
	}
	for i, label := range c.Labels {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(chartSheet, cell, &[]any{label, c.Values[i]}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(chartSheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(chartSheet, "B", "B", 16); err != nil {
		return err
	}

	last := len(c.Values) + 1
	chartType := excelize.Col
	if c.Horizontal {
		chartType = excelize.Bar
	}
	return f.AddChart(chartSheet, "D2", &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", chartSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", chartSheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", chartSheet, last),
		}},
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{Position: "none"},
		PlotArea: excelize.ChartPlotArea{
			ShowVal: true,
		},
		// rank 1 at the top of a horizontal bar chart
		XAxis:     excelize.ChartAxis{ReverseOrder: c.Horizontal},
		Dimension: excelize.ChartDimension{Width: 640, Height: 400},
	})
}

func fillReportSheet(f *excelize.File, title string, lines []string) error {
	row := 1
	if title != "" {
		if err := f.SetCellValue(reportSheet, "A1", title); err != nil {
			return err
		}
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(reportSheet, "A1", "A1", style); err != nil {
			return err
		}
		row = 3
	}
	for _, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cell, line); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(reportSheet, "A", "A", 48)
}
