package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMissingField        = errors.New("missing field")
	ErrEmptyHeaders        = errors.New("headers must not be empty")
	ErrRaggedRows          = errors.New("row length does not match headers")
	ErrEmptySelection      = errors.New("at least one column must be selected")
	ErrColumnOutOfRange    = errors.New("column index out of range")
	ErrRowOutOfRange       = errors.New("row index out of range")
	ErrNoNumericValues     = errors.New("no numeric values found in column")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrInvalidArtifactName = errors.New("invalid artifact name")
)

// DisplayTable is the browser-facing shape of a sheet: one header row and
// body rows of display text, every row as long as Headers.
type DisplayTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Validate checks the shape invariant. Rows may be empty, headers may not.
func (t *DisplayTable) Validate() error {
	if len(t.Headers) == 0 {
		return ErrEmptyHeaders
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), len(t.Headers))
		}
	}
	return nil
}

// ColumnEdit selects a source column by index and optionally renames it.
type ColumnEdit struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// RenderRequest is the body of the generate endpoints.
type RenderRequest struct {
	Headers    []string     `json:"headers"`
	Rows       []RequestRow `json:"rows"`
	Columns    []ColumnEdit `json:"columns,omitempty"`
	RemoveRows []int        `json:"remove_rows,omitempty"`
	SumColumn  *int         `json:"sum_column,omitempty"`
}

// RequestRow is a row as sent by the client. Cells may be strings, numbers
// or null.
type RequestRow []string

func (r *RequestRow) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	row := make(RequestRow, len(raw))
	for i, cell := range raw {
		v, err := cellText(cell)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		row[i] = v
	}
	*r = row
	return nil
}

func cellText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return "", err
		}
		if b {
			return "true", nil
		}
		return "false", nil
	case '[', '{':
		return "", fmt.Errorf("unsupported cell value %s", trimmed)
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Table converts the request into a DisplayTable. Headers and rows must both
// be present; the shape is not validated here.
func (r *RenderRequest) Table() (*DisplayTable, error) {
	if r.Headers == nil {
		return nil, fmt.Errorf("%w: headers", ErrMissingField)
	}
	if r.Rows == nil {
		return nil, fmt.Errorf("%w: rows", ErrMissingField)
	}
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = []string(row)
	}
	return &DisplayTable{Headers: r.Headers, Rows: rows}, nil
}

type PDFResponse struct {
	PDF string `json:"pdf"`
}

type XLSXResponse struct {
	XLSX string `json:"xlsx"`
}

// ArtifactRepository stores uploads and generated documents.
type ArtifactRepository interface {
	SaveUpload(ctx context.Context, r io.Reader) (string, error)
	RemoveUpload(ctx context.Context, path string) error
	CreateOutput(ctx context.Context, ext string, write func(w io.Writer) error) (string, error)
	OutputPath(ctx context.Context, name string) (string, error)
}
