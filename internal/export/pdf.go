// Package export renders read-only projections of an aggregate into
// document artifacts. Projections are pure and local: no network, no side
// effects, and they never feed back into the aggregate.
package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// fontMap maps the aggregate's font family to a core PDF font.
var fontMap = map[model.FontFamily]string{
	model.FontSerif: "Times",
	model.FontSans:  "Helvetica",
	model.FontMono:  "Courier",
}

const (
	pdfMargin     = 40.0
	pdfLineHeight = 18.0
	pdfBlockGap   = 6.0
)

// RenderPDF produces the paginated document stream: title, subtitle,
// optional quote, then the full narrative word-wrapped to the page width,
// adding pages as vertical space runs out.
func RenderPDF(d *model.AutobiographyData) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	font, ok := fontMap[d.Customizations.FontFamily]
	if !ok {
		font = fontMap[model.FontSerif]
	}
	pageW, pageH := pdf.GetPageSize()
	maxLineWidth := pageW - pdfMargin*2
	cursorY := pdfMargin

	writeLine := func(text string, size float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(font, style, size)
		for _, line := range pdf.SplitText(text, maxLineWidth) {
			if cursorY > pageH-pdfMargin {
				pdf.AddPage()
				cursorY = pdfMargin
			}
			pdf.Text(pdfMargin, cursorY, tr(line))
			cursorY += pdfLineHeight
		}
		cursorY += pdfBlockGap
	}

	writeLine(d.Customizations.Title, 26, true)
	writeLine(d.Customizations.Subtitle, 14, false)
	if d.Customizations.Quote != "" {
		writeLine(`"`+d.Customizations.Quote+`"`, 12, false)
	}
	writeLine("", 12, false)
	writeLine(d.GeneratedStory, 12, false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
