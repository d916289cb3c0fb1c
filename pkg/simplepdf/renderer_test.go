package simplepdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageText(t *testing.T, data []byte, page int) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	text, err := r.Page(page).GetPlainText(nil)
	require.NoError(t, err)
	return text
}

func TestRenderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	res, err := NewRenderer(DefaultLayout()).Render(&buf, []string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.PageCount)
	assert.Equal(t, []float64{60, 60}, res.ColumnWidths)

	data := buf.Bytes()
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	info, err := InspectBytes(data)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, info.PageCount, 1)
	assert.Contains(t, info.FirstPageText, "A")
	assert.Contains(t, info.FirstPageText, "B")
	assert.Contains(t, info.FirstPageText, "4")
}

func TestRenderRepeatsHeaderOnEveryPage(t *testing.T) {
	headers := []string{"Name", "Quantity", "Warehouse"}
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Item %03d", i+1), fmt.Sprint(i * 3), "WH-A"}
	}

	var buf bytes.Buffer
	res, err := NewRenderer(DefaultLayout()).Render(&buf, headers, rows)
	require.NoError(t, err)
	require.Greater(t, res.PageCount, 1)

	info, err := InspectBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, res.PageCount, info.PageCount)

	for p := 1; p <= res.PageCount; p++ {
		assert.Contains(t, pageText(t, buf.Bytes(), p), "Warehouse", "page %d", p)
	}
	assert.Contains(t, pageText(t, buf.Bytes(), res.PageCount), "Item 120")
}

func TestRenderWrapsAndSplitsTallRows(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor sit amet ", 400)

	var buf bytes.Buffer
	res, err := NewRenderer(DefaultLayout()).Render(&buf, []string{"Notes", "Id"}, [][]string{{long, "1"}})
	require.NoError(t, err)
	// the single row is taller than a page and continues on the next
	assert.Greater(t, res.PageCount, 1)

	total := 0.0
	for _, w := range res.ColumnWidths {
		total += w
	}
	assert.InDelta(t, 801.89, total, 0.01)
}

func TestRenderScalesWideTables(t *testing.T) {
	headers := make([]string, 12)
	row := make([]string, 12)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column %d", i)
		row[i] = strings.Repeat("w", 30)
	}

	var buf bytes.Buffer
	res, err := NewRenderer(DefaultLayout()).Render(&buf, headers, [][]string{row})
	require.NoError(t, err)
	for _, w := range res.ColumnWidths {
		assert.Less(t, w, 180.0)
		assert.InDelta(t, 801.89/12, w, 0.01)
	}
}

func TestRenderNonLatinText(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRenderer(DefaultLayout()).Render(&buf, []string{"Café", "名前"}, [][]string{{"naïve", "東京"}})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestEncodeWinAnsi(t *testing.T) {
	assert.Equal(t, "Caf\xe9", encodeWinAnsi("Café"))
	assert.Equal(t, "??", encodeWinAnsi("東京"))
	assert.Equal(t, "\x80", encodeWinAnsi("€"))
}

func TestRendererLayout(t *testing.T) {
	layout := DefaultLayout()
	layout.Orientation = "P"
	assert.Equal(t, layout, NewRenderer(layout).Layout())
}
