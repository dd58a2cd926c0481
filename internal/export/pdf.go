package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/signintech/gopdf"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/report"
)

const (
	fontName   = "hangul"
	pageMargin = 50.0

	defaultFontSize = 12
)

// PDFOptions selects the font used for every page.
type PDFOptions struct {
	FontPath string
	FontSize float64
}

func (o PDFOptions) size() float64 {
	if o.FontSize <= 0 {
		return defaultFontSize
	}
	return o.FontSize
}

func newPDF(opts PDFOptions) (*gopdf.GoPdf, error) {
	font, err := FindFont(opts.FontPath)
	if err != nil {
		return nil, err
	}
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFont(fontName, font); err != nil {
		return nil, apperr.Wrap(apperr.KindReport, err, fmt.Sprintf("loading font %s", font))
	}
	pdf.AddPage()
	if err := pdf.SetFont(fontName, "", opts.size()); err != nil {
		return nil, apperr.Wrap(apperr.KindReport, err, "setting font")
	}
	return pdf, nil
}

func writePDF(pdf *gopdf.GoPdf, path string) error {
	if err := pdf.WritePdf(path); err != nil {
		return apperr.Wrap(apperr.KindReport, err, fmt.Sprintf("writing %s", path))
	}
	return nil
}

// PDFReport writes title and lines to an A4 document, starting a new page
// whenever the next line would cross the bottom margin.
func PDFReport(path, title string, lines []string, opts PDFOptions) error {
	pdf, err := newPDF(opts)
	if err != nil {
		return err
	}

	size := opts.size()
	lineHeight := size * 1.6
	bottom := gopdf.PageSizeA4.H - pageMargin
	y := pageMargin

	text := append([]string{title, ""}, lines...)
	for _, line := range text {
		if y+lineHeight > bottom {
			pdf.AddPage()
			y = pageMargin
		}
		if line != "" {
			pdf.SetXY(pageMargin, y)
			if err := pdf.Cell(nil, line); err != nil {
				return apperr.Wrap(apperr.KindReport, err, fmt.Sprintf("rendering %q", line))
			}
		}
		y += lineHeight
	}
	return writePDF(pdf, path)
}

// PDFChart draws c as a bar chart on a single A4 page. Horizontal charts
// list one bar per row; vertical charts place bars side by side.
func PDFChart(path string, c Chart, opts PDFOptions) error {
	if len(c.Values) == 0 {
		return apperr.New(apperr.KindReport, "chart has no values")
	}
	pdf, err := newPDF(opts)
	if err != nil {
		return err
	}

	pdf.SetXY(pageMargin, pageMargin)
	if err := pdf.Cell(nil, c.Title); err != nil {
		return apperr.Wrap(apperr.KindReport, err, "rendering chart title")
	}

	if c.Horizontal {
		err = drawHorizontal(pdf, c, opts.size())
	} else {
		err = drawVertical(pdf, c, opts.size())
	}
	if err != nil {
		return apperr.Wrap(apperr.KindReport, err, "drawing chart")
	}
	return writePDF(pdf, path)
}

func barLength(v, peak, span float64) float64 {
	if peak <= 0 || v <= 0 {
		return 0
	}
	return v / peak * span
}

func valueLabel(v float64) string {
	return report.FormatAmount(decimal.NewFromFloat(v), "")
}

func drawHorizontal(pdf *gopdf.GoPdf, c Chart, size float64) error {
	const labelWidth = 140.0
	width := gopdf.PageSizeA4.W - 2*pageMargin - labelWidth - 80
	rowHeight := size * 2.2
	// bars shrink to keep every row on the page
	avail := gopdf.PageSizeA4.H - 2*pageMargin - 3*size
	if rows := float64(len(c.Values)); rowHeight*rows > avail {
		rowHeight = avail / rows
	}

	peak := c.max()
	y := pageMargin + 3*size
	for i, v := range c.Values {
		pdf.SetTextColor(45, 52, 54)
		pdf.SetXY(pageMargin, y)
		if err := pdf.Cell(nil, c.Labels[i]); err != nil {
			return err
		}
		bar := barLength(v, peak, width)
		pdf.SetFillColor(70, 130, 180)
		pdf.RectFromUpperLeftWithStyle(pageMargin+labelWidth, y, bar, rowHeight*0.6, "F")
		pdf.SetXY(pageMargin+labelWidth+bar+6, y)
		if err := pdf.Cell(nil, valueLabel(v)); err != nil {
			return err
		}
		y += rowHeight
	}
	return nil
}

func drawVertical(pdf *gopdf.GoPdf, c Chart, size float64) error {
	const height = 400.0
	baseline := pageMargin + 3*size + height
	slot := (gopdf.PageSizeA4.W - 2*pageMargin) / float64(len(c.Values))
	barWidth := slot * 0.5

	peak := c.max()
	for i, v := range c.Values {
		x := pageMargin + float64(i)*slot + (slot-barWidth)/2
		bar := barLength(v, peak, height)
		pdf.SetFillColor(70, 130, 180)
		pdf.RectFromUpperLeftWithStyle(x, baseline-bar, barWidth, bar, "F")

		pdf.SetTextColor(45, 52, 54)
		pdf.SetXY(x, baseline-bar-size*1.5)
		if err := pdf.Cell(nil, valueLabel(v)); err != nil {
			return err
		}
		pdf.SetXY(x, baseline+size*0.5)
		if err := pdf.Cell(nil, c.Labels[i]); err != nil {
			return err
		}
	}
	pdf.SetStrokeColor(45, 52, 54)
	pdf.Line(pageMargin, baseline, gopdf.PageSizeA4.W-pageMargin, baseline)
	return nil
}
