package simplepdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info is what a reader sees when it opens a rendered document.
type Info struct {
	PageCount     int
	FirstPageText string
}

// Inspect reads a PDF back and extracts its page count and the plain text
// of its first page.
func Inspect(r io.ReaderAt, size int64) (*Info, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	info := &Info{PageCount: reader.NumPage()}
	if info.PageCount == 0 {
		return info, nil
	}

	page := reader.Page(1)
	if page.V.IsNull() {
		return info, nil
	}
	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf page 1: %w", err)
	}
	info.FirstPageText = strings.TrimSpace(text)
	return info, nil
}

// InspectBytes is Inspect over an in-memory document.
func InspectBytes(data []byte) (*Info, error) {
	return Inspect(bytes.NewReader(data), int64(len(data)))
}

// InspectFile is Inspect over a document on disk.
func InspectFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Inspect(f, st.Size())
}
