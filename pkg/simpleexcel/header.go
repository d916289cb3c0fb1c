package simpleexcel

// LocateHeader returns the 1-based index of the row most likely to hold the
// column titles: the row with the most filled cells, the earliest on ties.
// Sheets often carry title or blank rows above the real header, and those
// are sparser than the header itself. An empty sheet yields row 1.
func LocateHeader(s *Sheet) int {
	headerRow, maxFilled := 1, 0
	for r := 1; r <= s.RowCount(); r++ {
		filled := 0
		for _, cell := range s.rows[r-1] {
			if cell.IsFilled() {
				filled++
			}
		}
		if filled > maxFilled {
			maxFilled = filled
			headerRow = r
		}
	}
	return headerRow
}

// BuildTable turns a sheet into display strings: the header row's cells
// become the headers and every row below it becomes a body row. Rows above
// the header are dropped. Every row is padded to the sheet's column count.
func BuildTable(s *Sheet) (headers []string, rows [][]string) {
	headerRow := LocateHeader(s)
	headers = formatRow(s.Row(headerRow))
	rows = make([][]string, 0, max(s.RowCount()-headerRow, 0))
	for r := headerRow + 1; r <= s.RowCount(); r++ {
		rows = append(rows, formatRow(s.Row(r)))
	}
	return headers, rows
}

func formatRow(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = FormatDisplay(c)
	}
	return out
}
