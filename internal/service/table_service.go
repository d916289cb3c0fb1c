package service

import (
	"context"
	"fmt"
	"io"

	"github.com/locvowork/sheetpdf/internal/domain"
	"github.com/locvowork/sheetpdf/internal/logger"
	"github.com/locvowork/sheetpdf/pkg/simpleexcel"
	"github.com/locvowork/sheetpdf/pkg/simplepdf"
)

type TableService interface {
	// Preview stores the uploaded workbook and returns its active sheet as a
	// DisplayTable.
	Preview(ctx context.Context, r io.Reader) (*domain.DisplayTable, error)
	RenderPDF(ctx context.Context, req *domain.RenderRequest) (string, error)
	RenderXLSX(ctx context.Context, req *domain.RenderRequest) (string, error)
	ArtifactPath(ctx context.Context, name string) (string, error)
}

type tableService struct {
	repo        domain.ArtifactRepository
	renderer    *simplepdf.Renderer
	keepUploads bool
}

func NewTableService(repo domain.ArtifactRepository, renderer *simplepdf.Renderer, keepUploads bool) TableService {
	return &tableService{repo: repo, renderer: renderer, keepUploads: keepUploads}
}

func (s *tableService) Preview(ctx context.Context, r io.Reader) (*domain.DisplayTable, error) {
	path, err := s.repo.SaveUpload(ctx, r)
	if err != nil {
		return nil, err
	}
	if !s.keepUploads {
		defer func() {
			if err := s.repo.RemoveUpload(ctx, path); err != nil {
				logger.WarnLog(ctx, "%v", err)
			}
		}()
	}

	sheet, err := simpleexcel.ReadActiveSheetFile(path)
	if err != nil {
		return nil, err
	}
	table := TableFromSheet(sheet)
	logger.InfoLog(ctx, "parsed sheet %q: %d columns, %d rows", sheet.Name, len(table.Headers), len(table.Rows))
	return table, nil
}

// TableFromSheet locates the header row of sheet and formats every cell from
// it downwards.
func TableFromSheet(sheet *simpleexcel.Sheet) *domain.DisplayTable {
	headers, rows := simpleexcel.BuildTable(sheet)
	if headers == nil {
		headers = []string{}
	}
	if rows == nil {
		rows = [][]string{}
	}
	return &domain.DisplayTable{Headers: headers, Rows: rows}
}

// prepare turns a request into a validated, edited table.
func prepare(req *domain.RenderRequest) (*domain.DisplayTable, error) {
	table, err := req.Table()
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return ApplyEdits(table, editsFromRequest(req))
}

func (s *tableService) RenderPDF(ctx context.Context, req *domain.RenderRequest) (string, error) {
	table, err := prepare(req)
	if err != nil {
		return "", err
	}

	var pages int
	name, err := s.repo.CreateOutput(ctx, "pdf", func(w io.Writer) error {
		res, err := s.renderer.Render(w, table.Headers, table.Rows)
		if err != nil {
			return fmt.Errorf("failed to render pdf: %w", err)
		}
		pages = res.PageCount
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.InfoLog(ctx, "rendered %s: %d rows on %d pages", name, len(table.Rows), pages)
	return name, nil
}

func (s *tableService) RenderXLSX(ctx context.Context, req *domain.RenderRequest) (string, error) {
	table, err := prepare(req)
	if err != nil {
		return "", err
	}

	name, err := s.repo.CreateOutput(ctx, "xlsx", func(w io.Writer) error {
		if err := simpleexcel.ExportTable(w, table.Headers, table.Rows); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.InfoLog(ctx, "exported %s: %d rows", name, len(table.Rows))
	return name, nil
}

func (s *tableService) ArtifactPath(ctx context.Context, name string) (string, error) {
	return s.repo.OutputPath(ctx, name)
}
