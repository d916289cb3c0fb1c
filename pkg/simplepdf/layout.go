package simplepdf

import "unicode/utf8"

// ColumnWidths sizes every column from its longest cell, header included:
// max(minWidth, runes*charWidth). This approximates a proportional font
// without measuring glyphs.
func ColumnWidths(headers []string, rows [][]string, minWidth, charWidth float64) []float64 {
	widths := make([]float64, len(headers))
	for i, h := range headers {
		maxLen := utf8.RuneCountInString(h)
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			if n := utf8.RuneCountInString(row[i]); n > maxLen {
				maxLen = n
			}
		}
		w := float64(maxLen) * charWidth
		if w < minWidth {
			w = minWidth
		}
		widths[i] = w
	}
	return widths
}

// FitToWidth shrinks all widths by the same ratio when their sum exceeds
// usable. Narrower tables are returned unchanged.
func FitToWidth(widths []float64, usable float64) []float64 {
	out := make([]float64, len(widths))
	copy(out, widths)

	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total <= usable || total == 0 {
		return out
	}
	scale := usable / total
	for i := range out {
		out[i] *= scale
	}
	return out
}

// UsableWidth is the page width left between the side margins.
func (l Layout) UsableWidth(pageWidth float64) float64 {
	return pageWidth - l.MarginLeft - l.MarginRight
}
