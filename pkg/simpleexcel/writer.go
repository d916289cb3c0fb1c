package simpleexcel

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	DefaultExportSheet  = "Export"
	DefaultHeaderFill   = "808080"
	DefaultHeaderFont   = "F5F5F5"
	maxExportColumnWide = 60.0
)

// TableExporter streams a header row and body rows of display text into a
// single-sheet workbook.
type TableExporter struct {
	file      *excelize.File
	stream    *excelize.StreamWriter
	headerID  int
	bodyID    int
	columns   int
	nextRow   int
	headerSet bool
	closed    bool
}

// NewTableExporter creates an exporter writing to a sheet named sheetName.
// The caller must finish with Close or Discard.
func NewTableExporter(sheetName string) (_ *TableExporter, err error) {
	if sheetName == "" {
		sheetName = DefaultExportSheet
	}
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			f.Close()
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	headerID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: DefaultHeaderFont},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{DefaultHeaderFill}},
		Border:    border,
		Alignment: center,
	})
	if err != nil {
		return nil, err
	}
	bodyID, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: center,
		NumFmt:    49,
	})
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, err
	}
	return &TableExporter{
		file:     f,
		stream:   sw,
		headerID: headerID,
		bodyID:   bodyID,
		nextRow:  1,
	}, nil
}

// WriteHeader writes the header row and sizes the columns from the header
// and the rows that will follow.
func (e *TableExporter) WriteHeader(headers []string, rows [][]string) error {
	if e.headerSet {
		return fmt.Errorf("header already written")
	}
	for i := range headers {
		width := float64(utf8.RuneCountInString(headers[i]))
		for _, row := range rows {
			if i < len(row) {
				if n := float64(utf8.RuneCountInString(row[i])); n > width {
					width = n
				}
			}
		}
		width += 2
		if width > maxExportColumnWide {
			width = maxExportColumnWide
		}
		if err := e.stream.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}
	e.columns = len(headers)
	e.headerSet = true
	return e.writeRow(headers, e.headerID)
}

// WriteRow appends one body row.
func (e *TableExporter) WriteRow(row []string) error {
	if !e.headerSet {
		return fmt.Errorf("header must be written before data")
	}
	if len(row) != e.columns {
		return fmt.Errorf("row %d has %d cells, want %d", e.nextRow, len(row), e.columns)
	}
	return e.writeRow(row, e.bodyID)
}

func (e *TableExporter) writeRow(values []string, styleID int) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = excelize.Cell{StyleID: styleID, Value: v}
	}
	axis, err := excelize.CoordinatesToCellName(1, e.nextRow)
	if err != nil {
		return err
	}
	if err := e.stream.SetRow(axis, cells); err != nil {
		return err
	}
	e.nextRow++
	return nil
}

// Close flushes the stream and writes the workbook to w. The exporter
// cannot be used afterwards.
func (e *TableExporter) Close(w io.Writer) error {
	if e.closed {
		return fmt.Errorf("exporter already closed")
	}
	e.closed = true
	defer e.file.Close()
	if err := e.stream.Flush(); err != nil {
		return err
	}
	_, err := e.file.WriteTo(w)
	return err
}

// Discard releases the workbook without writing it. It does nothing once
// Close or Discard has run.
func (e *TableExporter) Discard() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.file.Close()
}

// ExportTable writes headers and rows as a workbook to w.
func ExportTable(w io.Writer, headers []string, rows [][]string) error {
	exporter, err := NewTableExporter(DefaultExportSheet)
	if err != nil {
		return fmt.Errorf("failed to create exporter: %w", err)
	}
	defer exporter.Discard()

	if err := exporter.WriteHeader(headers, rows); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := exporter.WriteRow(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return exporter.Close(w)
}
