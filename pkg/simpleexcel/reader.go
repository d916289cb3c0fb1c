package simpleexcel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// isoDateLayouts are the layouts used by cells stored with t="d".
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// sheetReader converts excelize cells into typed Cells for one sheet.
type sheetReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	styleCache map[int]string
}

// ReadActiveSheet parses an xlsx document and returns its active sheet.
func ReadActiveSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return ReadSheet(f, f.GetSheetName(f.GetActiveSheetIndex()))
}

// ReadActiveSheetFile opens the workbook at path and returns its active sheet.
func ReadActiveSheetFile(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return ReadSheet(f, f.GetSheetName(f.GetActiveSheetIndex()))
}

// ReadSheet loads every cell of the named sheet with its number format.
func ReadSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	if sheetName == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidWorkbook)
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	sr := &sheetReader{
		f:          f,
		sheet:      sheetName,
		styleCache: make(map[int]string),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		sr.date1904 = *props.Date1904
	}

	rows := make([][]Cell, len(raw))
	for r, values := range raw {
		cells := make([]Cell, len(values))
		for c, value := range values {
			if value == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			cell, err := sr.readCell(ref, value)
			if err != nil {
				return nil, &CellError{SheetName: sheetName, Ref: ref, Err: err}
			}
			cells[c] = cell
		}
		rows[r] = cells
	}
	return NewSheet(sheetName, rows), nil
}

func (sr *sheetReader) readCell(ref, value string) (Cell, error) {
	cellType, err := sr.f.GetCellType(sr.sheet, ref)
	if err != nil {
		return Cell{}, err
	}
	numFmt, err := sr.numberFormat(ref)
	if err != nil {
		return Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return Cell{Kind: KindText, Text: value, NumberFormat: numFmt}, nil
	case excelize.CellTypeBool:
		return NumberCell(boolNumber(value), numFmt), nil
	case excelize.CellTypeDate:
		for _, layout := range isoDateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return DateCell(t, numFmt), nil
			}
		}
		return Cell{Kind: KindText, Text: value, NumberFormat: numFmt}, nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Cell{Kind: KindText, Text: value, NumberFormat: numFmt}, nil
	}
	if !IsDateFormat(numFmt) || isElapsedFormat(numFmt) {
		return NumberCell(v, numFmt), nil
	}
	t, err := excelize.ExcelDateToTime(v, sr.date1904)
	if err != nil {
		// out-of-range serials stay numbers
		return NumberCell(v, numFmt), nil
	}
	t = t.Round(time.Microsecond)
	if v >= 0 && v < 1 {
		return TimeCell(t, numFmt), nil
	}
	return DateCell(t, numFmt), nil
}

// numberFormat resolves the format code applied to the cell at ref.
func (sr *sheetReader) numberFormat(ref string) (string, error) {
	styleID, err := sr.f.GetCellStyle(sr.sheet, ref)
	if err != nil {
		return "", err
	}
	if code, ok := sr.styleCache[styleID]; ok {
		return code, nil
	}
	code := "General"
	if styleID > 0 {
		style, err := sr.f.GetStyle(styleID)
		if err != nil {
			return "", err
		}
		if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
			code = *style.CustomNumFmt
		} else {
			code = BuiltinNumFmt(style.NumFmt)
		}
	}
	sr.styleCache[styleID] = code
	return code, nil
}

func boolNumber(value string) float64 {
	switch strings.ToUpper(value) {
	case "1", "TRUE":
		return 1
	}
	return 0
}
