package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/locvowork/sheetpdf/internal/domain"
	"github.com/locvowork/sheetpdf/internal/repository"
	"github.com/locvowork/sheetpdf/pkg/simpleexcel"
	"github.com/locvowork/sheetpdf/pkg/simplepdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newService(t *testing.T, keepUploads bool) (TableService, string) {
	t.Helper()
	root := t.TempDir()
	repo, err := repository.NewFileRepository(filepath.Join(root, "uploads"), filepath.Join(root, "output"))
	require.NoError(t, err)
	return NewTableService(repo, simplepdf.NewRenderer(simplepdf.DefaultLayout()), keepUploads), root
}

func inventoryWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Inventory"))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Item", "Qty", "Price"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Bolt", 10, 0.25}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"Nut", 12, 0.1}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestPreview(t *testing.T) {
	svc, root := newService(t, true)

	table, err := svc.Preview(context.Background(), inventoryWorkbook(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Item", "Qty", "Price"}, table.Headers)
	assert.Equal(t, [][]string{{"Bolt", "10", "0.25"}, {"Nut", "12", "0.1"}}, table.Rows)
	assert.Equal(t, 1, countFiles(t, filepath.Join(root, "uploads")))
}

func TestPreviewRemovesUpload(t *testing.T) {
	svc, root := newService(t, false)

	_, err := svc.Preview(context.Background(), inventoryWorkbook(t))
	require.NoError(t, err)
	assert.Equal(t, 0, countFiles(t, filepath.Join(root, "uploads")))
}

func TestPreviewInvalidWorkbook(t *testing.T) {
	svc, _ := newService(t, false)

	_, err := svc.Preview(context.Background(), strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, simpleexcel.ErrInvalidWorkbook)
}

func TestRenderPDF(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()

	name, err := svc.RenderPDF(ctx, &domain.RenderRequest{
		Headers: []string{"A", "B"},
		Rows:    []domain.RequestRow{{"1", "2"}, {"3", "4"}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	path, err := svc.ArtifactPath(ctx, name)
	require.NoError(t, err)
	info, err := simplepdf.InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, info.PageCount)
	assert.Contains(t, info.FirstPageText, "4")
}

func TestRenderPDFWithEdits(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()
	sum := 1

	name, err := svc.RenderPDF(ctx, &domain.RenderRequest{
		Headers:    []string{"Item", "Qty"},
		Rows:       []domain.RequestRow{{"Bolt", "10"}, {"Nut", "12"}, {"Washer", "5"}},
		Columns:    []domain.ColumnEdit{{Index: 1, Name: "Quantity"}, {Index: 0}},
		RemoveRows: []int{2},
		SumColumn:  &sum,
	})
	require.NoError(t, err)

	path, err := svc.ArtifactPath(ctx, name)
	require.NoError(t, err)
	info, err := simplepdf.InspectFile(path)
	require.NoError(t, err)
	assert.Contains(t, info.FirstPageText, "Quantity")
	assert.Contains(t, info.FirstPageText, "22")
	assert.NotContains(t, info.FirstPageText, "Washer")
}

func TestRenderPDFRejectsInvalidTables(t *testing.T) {
	svc, root := newService(t, true)
	ctx := context.Background()

	tests := map[string]struct {
		req  *domain.RenderRequest
		want error
	}{
		"MissingRows":  {&domain.RenderRequest{Headers: []string{"A"}}, domain.ErrMissingField},
		"EmptyHeaders": {&domain.RenderRequest{Headers: []string{}, Rows: []domain.RequestRow{}}, domain.ErrEmptyHeaders},
		"Ragged":       {&domain.RenderRequest{Headers: []string{"A", "B"}, Rows: []domain.RequestRow{{"1"}}}, domain.ErrRaggedRows},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.RenderPDF(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, countFiles(t, filepath.Join(root, "output")))
}

func TestRenderXLSX(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()

	name, err := svc.RenderXLSX(ctx, &domain.RenderRequest{
		Headers: []string{"A", "B"},
		Rows:    []domain.RequestRow{{"x", "2024-01-05"}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))

	path, err := svc.ArtifactPath(ctx, name)
	require.NoError(t, err)
	sheet, err := simpleexcel.ReadActiveSheetFile(path)
	require.NoError(t, err)
	table := TableFromSheet(sheet)
	assert.Equal(t, []string{"A", "B"}, table.Headers)
	assert.Equal(t, [][]string{{"x", "2024-01-05"}}, table.Rows)
}
