package serviceutils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/sheetpdf/internal/domain"
	"github.com/locvowork/sheetpdf/pkg/simpleexcel"
)

type GenericResponse struct {
	Success bool
	Message string
	Data    interface{}
	Error   string
}

func ResponseError(c echo.Context, code int, msg string, err error) error {
	resp := GenericResponse{
		Success: false,
		Message: msg,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(code, resp)
}

// StatusFor maps a service error to the HTTP status reported to the client.
// Anything unrecognised is a server-side failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, simpleexcel.ErrInvalidWorkbook),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrEmptyHeaders),
		errors.Is(err, domain.ErrRaggedRows),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrColumnOutOfRange),
		errors.Is(err, domain.ErrRowOutOfRange),
		errors.Is(err, domain.ErrNoNumericValues),
		errors.Is(err, domain.ErrInvalidArtifactName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrArtifactNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
