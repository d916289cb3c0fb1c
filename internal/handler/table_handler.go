package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/sheetpdf/internal/domain"
	"github.com/locvowork/sheetpdf/internal/logger"
	"github.com/locvowork/sheetpdf/internal/service"
	"github.com/locvowork/sheetpdf/internal/service/serviceutils"
)

type TableHandler struct {
	svc service.TableService
}

func NewTableHandler(svc service.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

// HealthHandler handles GET /healthz
func (h *TableHandler) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// UploadHandler handles POST /upload
func (h *TableHandler) UploadHandler(c echo.Context) error {
	ctx := c.Request().Context()
	fh, err := c.FormFile("file")
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "No file uploaded", fmt.Errorf("%w: file", domain.ErrMissingField))
	}
	src, err := fh.Open()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to read upload", err)
	}
	defer src.Close()

	table, err := h.svc.Preview(ctx, src)
	if err != nil {
		logger.ErrorLog(ctx, "failed to preview %s: %v", fh.Filename, err)
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to read spreadsheet", err)
	}
	return c.JSON(http.StatusOK, table)
}

// GeneratePDFHandler handles POST /generate_pdf
func (h *TableHandler) GeneratePDFHandler(c echo.Context) error {
	ctx := c.Request().Context()
	var req domain.RenderRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	name, err := h.svc.RenderPDF(ctx, &req)
	if err != nil {
		logger.ErrorLog(ctx, "failed to generate pdf: %v", err)
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to generate PDF", err)
	}
	return c.JSON(http.StatusOK, domain.PDFResponse{PDF: name})
}

// GenerateXLSXHandler handles POST /generate_xlsx
func (h *TableHandler) GenerateXLSXHandler(c echo.Context) error {
	ctx := c.Request().Context()
	var req domain.RenderRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	name, err := h.svc.RenderXLSX(ctx, &req)
	if err != nil {
		logger.ErrorLog(ctx, "failed to generate xlsx: %v", err)
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to generate Excel file", err)
	}
	return c.JSON(http.StatusOK, domain.XLSXResponse{XLSX: name})
}

// DownloadHandler handles GET /download/:filename
func (h *TableHandler) DownloadHandler(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("filename")

	path, err := h.svc.ArtifactPath(ctx, name)
	if err != nil {
		logger.WarnLog(ctx, "download %q: %v", name, err)
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "File not available", err)
	}
	return c.Attachment(path, name)
}
