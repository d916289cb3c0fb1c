package simpleexcel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTableRoundTrip(t *testing.T) {
	headers := []string{"Name", "Amount", "Date"}
	rows := [][]string{
		{"Al", "30", "2024-01-05"},
		{"Bo", "2.5", ""},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportTable(&buf, headers, rows))
	require.NotZero(t, buf.Len())

	s, err := ReadActiveSheet(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultExportSheet, s.Name)

	gotHeaders, gotRows := BuildTable(s)
	assert.Equal(t, headers, gotHeaders)
	assert.Equal(t, rows, gotRows)
	// body cells are stored as text so the display strings survive untouched
	assert.Equal(t, KindText, s.Cell(2, 2).Kind)
}

func TestTableExporterRejectsRaggedRows(t *testing.T) {
	e, err := NewTableExporter("")
	require.NoError(t, err)

	assert.Error(t, e.WriteRow([]string{"a"}))
	require.NoError(t, e.WriteHeader([]string{"A", "B"}, nil))
	assert.Error(t, e.WriteHeader([]string{"A", "B"}, nil))
	assert.Error(t, e.WriteRow([]string{"only one"}))
	assert.NoError(t, e.WriteRow([]string{"1", "2"}))

	var buf bytes.Buffer
	assert.NoError(t, e.Close(&buf))
}

func TestExportTableFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := ExportTable(&buf, []string{"A", "B"}, [][]string{{"1", "2"}, {"3"}})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestTableExporterDiscard(t *testing.T) {
	e, err := NewTableExporter("Data")
	require.NoError(t, err)
	require.NoError(t, e.WriteHeader([]string{"A"}, nil))
	assert.Error(t, e.WriteRow([]string{"1", "2"}))

	require.NoError(t, e.Discard())
	assert.True(t, e.closed)
	assert.NoError(t, e.Discard())
	assert.Error(t, e.Close(&bytes.Buffer{}))
}

func TestTableExporterCloseOnce(t *testing.T) {
	e, err := NewTableExporter("")
	require.NoError(t, err)
	require.NoError(t, e.WriteHeader([]string{"A"}, [][]string{{"1"}}))
	require.NoError(t, e.WriteRow([]string{"1"}))

	var buf bytes.Buffer
	require.NoError(t, e.Close(&buf))
	assert.NotZero(t, buf.Len())
	assert.NoError(t, e.Discard())
	assert.Error(t, e.Close(&buf))
}

func TestNewTableExporterInvalidSheetName(t *testing.T) {
	_, err := NewTableExporter("bad/name")
	assert.Error(t, err)
}
