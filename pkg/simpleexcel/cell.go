package simpleexcel

import "time"

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindNumber
	KindText
	KindDate
	KindTime
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Cell is a single worksheet cell: the stored value plus the number format
// a spreadsheet viewer would apply to it.
type Cell struct {
	Kind         CellKind
	Number       float64
	Text         string
	Time         time.Time
	NumberFormat string
}

// IsFilled reports whether the cell holds a value other than nothing or "".
func (c Cell) IsFilled() bool {
	switch c.Kind {
	case KindEmpty:
		return false
	case KindText:
		return c.Text != ""
	default:
		return true
	}
}

func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

func NumberCell(v float64, numFmt string) Cell {
	return Cell{Kind: KindNumber, Number: v, NumberFormat: numFmt}
}

func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s, NumberFormat: "General"}
}

func DateCell(t time.Time, numFmt string) Cell {
	return Cell{Kind: KindDate, Time: t, NumberFormat: numFmt}
}

func TimeCell(t time.Time, numFmt string) Cell {
	return Cell{Kind: KindTime, Time: t, NumberFormat: numFmt}
}

// Sheet is an immutable grid of cells. Rows may be ragged; missing cells
// read as empty.
type Sheet struct {
	Name  string
	rows  [][]Cell
	width int
}

// NewSheet builds a Sheet from rows of cells. The rows are not copied.
func NewSheet(name string, rows [][]Cell) *Sheet {
	s := &Sheet{Name: name, rows: rows}
	for _, r := range rows {
		if len(r) > s.width {
			s.width = len(r)
		}
	}
	return s
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int { return len(s.rows) }

// ColCount returns the widest row's length.
func (s *Sheet) ColCount() int { return s.width }

// Cell returns the cell at the 1-based row and column.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 1 || row > len(s.rows) {
		return EmptyCell()
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return EmptyCell()
	}
	return r[col-1]
}

// Row returns the 1-based row padded to ColCount cells.
func (s *Sheet) Row(row int) []Cell {
	out := make([]Cell, s.width)
	for c := range out {
		out[c] = s.Cell(row, c+1)
	}
	return out
}
