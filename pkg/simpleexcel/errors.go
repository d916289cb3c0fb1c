package simpleexcel

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkbook indicates the input could not be parsed as an xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// CellError reports a failure while reading one cell of a sheet.
type CellError struct {
	SheetName string
	Ref       string
	Err       error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("read error in sheet %q cell %s: %v", e.SheetName, e.Ref, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
