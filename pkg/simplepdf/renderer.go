package simplepdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

// Result describes a rendered document.
type Result struct {
	PageCount    int
	ColumnWidths []float64
}

// Renderer lays out a header row and body rows as a paginated table.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a Renderer. The layout is assumed valid.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render writes the table as a PDF to w. Every row must have len(headers)
// cells. The header row is repeated at the top of every page and a row that
// does not fit the rest of a page continues on the next one.
func (r *Renderer) Render(w io.Writer, headers []string, rows [][]string) (*Result, error) {
	l := r.layout
	pdf := gofpdf.New(strings.ToUpper(l.Orientation), "pt", l.PageSize, "")
	pdf.SetMargins(l.MarginLeft, l.MarginTop, l.MarginRight)
	pdf.SetAutoPageBreak(false, l.MarginBottom)
	pdf.SetCellMargin(0)
	pdf.SetCreator("sheetpdf", true)

	pageWidth, pageHeight := pdf.GetPageSize()
	widths := FitToWidth(
		ColumnWidths(headers, rows, l.MinColumnWidth, l.CharWidth),
		l.UsableWidth(pageWidth),
	)

	t := &tableWriter{
		pdf:    pdf,
		layout: l,
		widths: widths,
		bottom: pageHeight - l.MarginBottom,
	}
	t.headerFill, _ = parseHexColor(l.HeaderFill)
	t.headerText, _ = parseHexColor(l.HeaderText)
	t.bodyText, _ = parseHexColor(l.BodyText)
	t.grid, _ = parseHexColor(l.GridColor)

	t.header = t.split(headers, true)
	t.newPage()
	for _, row := range rows {
		t.writeRow(t.split(row, false))
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to lay out pdf: %w", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return &Result{PageCount: pdf.PageCount(), ColumnWidths: widths}, nil
}

// tableWriter tracks the cursor while a table is drawn onto pages.
type tableWriter struct {
	pdf        *gofpdf.Fpdf
	layout     Layout
	widths     []float64
	bottom     float64
	header     [][]string
	rowsOnPage int

	headerFill, headerText, bodyText, grid rgb
}

func (t *tableWriter) setFont(header bool) {
	style := ""
	if header {
		style = "B"
	}
	t.pdf.SetFont(t.layout.FontFamily, style, t.layout.FontSize)
}

// split wraps every cell's text to its column's inner width.
func (t *tableWriter) split(cells []string, header bool) [][]string {
	t.setFont(header)
	out := make([][]string, len(t.widths))
	for i := range t.widths {
		text := ""
		if i < len(cells) {
			text = encodeWinAnsi(cells[i])
		}
		inner := t.widths[i] - 2*t.layout.CellPaddingX
		if inner < 1 {
			inner = 1
		}
		var lines []string
		for _, line := range t.pdf.SplitLines([]byte(text), inner) {
			lines = append(lines, string(line))
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		out[i] = lines
	}
	return out
}

func (t *tableWriter) newPage() {
	t.pdf.AddPage()
	t.pdf.SetXY(t.layout.MarginLeft, t.layout.MarginTop)
	t.rowsOnPage = 0
	t.draw(t.header, lineCount(t.header), true)
}

// writeRow draws a body row, continuing it on new pages while it does not fit.
func (t *tableWriter) writeRow(cells [][]string) {
	l := t.layout
	for {
		n := lineCount(cells)
		fit := int((t.bottom - t.pdf.GetY() - 2*l.CellPaddingY) / l.LineHeight)
		if fit >= n {
			t.draw(cells, n, false)
			return
		}
		if fit < 1 && t.rowsOnPage == 0 {
			// a lone header already fills the page
			t.draw(cells, n, false)
			return
		}
		if fit >= 1 {
			t.draw(cells, fit, false)
			cells = dropLines(cells, fit)
		}
		t.newPage()
	}
}

// draw renders the first n lines of every cell as one table row.
func (t *tableWriter) draw(cells [][]string, n int, header bool) {
	l := t.layout
	pdf := t.pdf
	y := pdf.GetY()
	h := float64(n)*l.LineHeight + 2*l.CellPaddingY

	t.setFont(header)
	pdf.SetLineWidth(l.GridWidth)
	pdf.SetDrawColor(t.grid.r, t.grid.g, t.grid.b)
	rectStyle := "D"
	text := t.bodyText
	if header {
		pdf.SetFillColor(t.headerFill.r, t.headerFill.g, t.headerFill.b)
		rectStyle = "FD"
		text = t.headerText
	}
	pdf.SetTextColor(text.r, text.g, text.b)

	x := l.MarginLeft
	for i, w := range t.widths {
		pdf.Rect(x, y, w, h, rectStyle)
		for j, line := range cells[i] {
			if j >= n {
				break
			}
			pdf.SetXY(x, y+l.CellPaddingY+float64(j)*l.LineHeight)
			pdf.CellFormat(w, l.LineHeight, line, "", 0, "C", false, 0, "")
		}
		x += w
	}
	pdf.SetXY(l.MarginLeft, y+h)
	if !header {
		t.rowsOnPage++
	}
}

func lineCount(cells [][]string) int {
	n := 1
	for _, lines := range cells {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

func dropLines(cells [][]string, n int) [][]string {
	out := make([][]string, len(cells))
	for i, lines := range cells {
		if n < len(lines) {
			out[i] = lines[n:]
		} else {
			out[i] = []string{""}
		}
	}
	return out
}

// encodeWinAnsi converts text to the single-byte encoding of the core PDF
// fonts; characters outside it become '?'.
func encodeWinAnsi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
