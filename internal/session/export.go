package session

import (
	"path/filepath"
	"strings"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/export"
)

// Chart builds the chart for the last result.
func (s *Session) Chart() (export.Chart, error) {
	if s.dataset == nil || s.result == nil {
		return export.Chart{}, apperr.New(apperr.KindNoData, "no chart to save; run an analysis first")
	}
	return export.ChartFor(s.mode, s.result)
}

func (s *Session) pdfOptions() export.PDFOptions {
	return export.PDFOptions{FontPath: s.cfg.Report.FontPath, FontSize: s.cfg.Report.FontSize}
}

// SaveReport writes the report to path. The extension picks the format:
// .pdf for a text report, .xlsx for a workbook with the report and chart.
func (s *Session) SaveReport(path string) error {
	lines, err := s.Report()
	if err != nil {
		return err
	}
	switch ext(path) {
	case ".pdf":
		err = export.PDFReport(path, s.Title(), lines, s.pdfOptions())
	case ".xlsx":
		var c export.Chart
		if c, err = s.Chart(); err == nil {
			err = export.XLSXReport(path, s.Title(), lines, c)
		}
	default:
		return apperr.Newf(apperr.KindInput, "report must be saved as .pdf or .xlsx, got %q", path)
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("file", path).Str("mode", string(s.mode)).Msg("report saved")
	return nil
}

// SaveChart writes the chart to path as .pdf or .xlsx.
func (s *Session) SaveChart(path string) error {
	c, err := s.Chart()
	if err != nil {
		return err
	}
	switch ext(path) {
	case ".pdf":
		err = export.PDFChart(path, c, s.pdfOptions())
	case ".xlsx":
		err = export.XLSXChart(path, c)
	default:
		return apperr.Newf(apperr.KindInput, "chart must be saved as .pdf or .xlsx, got %q", path)
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("file", path).Str("mode", string(s.mode)).Msg("chart saved")
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
