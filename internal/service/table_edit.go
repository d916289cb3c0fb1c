package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/locvowork/sheetpdf/internal/domain"
	"github.com/locvowork/sheetpdf/pkg/simpleexcel"
)

// TableEdits are the column and row tools applied to a table before it is
// rendered. Indices refer to the table as received.
type TableEdits struct {
	Columns    []domain.ColumnEdit
	RemoveRows []int
	SumColumn  *int
}

func (e TableEdits) empty() bool {
	return e.Columns == nil && len(e.RemoveRows) == 0 && e.SumColumn == nil
}

func editsFromRequest(req *domain.RenderRequest) TableEdits {
	return TableEdits{Columns: req.Columns, RemoveRows: req.RemoveRows, SumColumn: req.SumColumn}
}

// ApplyEdits returns a new table with rows removed, an optional sum row
// appended and the column selection applied, in that order. The input table
// must already be valid.
func ApplyEdits(t *domain.DisplayTable, edits TableEdits) (*domain.DisplayTable, error) {
	if edits.empty() {
		return t, nil
	}
	width := len(t.Headers)

	rows, err := removeRows(t.Rows, edits.RemoveRows)
	if err != nil {
		return nil, err
	}

	if edits.SumColumn != nil {
		col := *edits.SumColumn
		if col < 0 || col >= width {
			return nil, fmt.Errorf("%w: sum column %d", domain.ErrColumnOutOfRange, col)
		}
		sum, err := sumColumn(rows, col)
		if err != nil {
			return nil, err
		}
		sumRow := make([]string, width)
		sumRow[col] = simpleexcel.FormatNumber(sum)
		rows = append(rows, sumRow)
	}

	headers := t.Headers
	if edits.Columns != nil {
		if len(edits.Columns) == 0 {
			return nil, domain.ErrEmptySelection
		}
		headers, rows, err = selectColumns(headers, rows, edits.Columns)
		if err != nil {
			return nil, err
		}
	}
	return &domain.DisplayTable{Headers: headers, Rows: rows}, nil
}

func removeRows(rows [][]string, indices []int) ([][]string, error) {
	if len(indices) == 0 {
		return rows, nil
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(rows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrRowOutOfRange, i)
		}
		drop[i] = true
	}
	kept := make([][]string, 0, len(rows)-len(drop))
	for i, row := range rows {
		if !drop[i] {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

// sumColumn adds every cell of col that parses as a number. Blank cells and
// text are skipped.
func sumColumn(rows [][]string, col int) (float64, error) {
	var sum float64
	found := false
	for _, row := range rows {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		sum += n
		found = true
	}
	if !found {
		return 0, fmt.Errorf("%w: %d", domain.ErrNoNumericValues, col)
	}
	return sum, nil
}

func selectColumns(headers []string, rows [][]string, cols []domain.ColumnEdit) ([]string, [][]string, error) {
	seen := make(map[int]bool, len(cols))
	outHeaders := make([]string, len(cols))
	for i, c := range cols {
		if c.Index < 0 || c.Index >= len(headers) {
			return nil, nil, fmt.Errorf("%w: %d", domain.ErrColumnOutOfRange, c.Index)
		}
		if seen[c.Index] {
			return nil, nil, fmt.Errorf("column %d selected twice", c.Index)
		}
		seen[c.Index] = true
		outHeaders[i] = headers[c.Index]
		if c.Name != "" {
			outHeaders[i] = c.Name
		}
	}

	outRows := make([][]string, len(rows))
	for r, row := range rows {
		out := make([]string, len(cols))
		for i, c := range cols {
			out[i] = row[c.Index]
		}
		outRows[r] = out
	}
	return outHeaders, outRows, nil
}

