package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the index is out of range for the template"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrTemplateVersionConflict) || errors.Is(err, models.ErrEmailNotUnique) {
		return http.StatusConflict
	}

	if errors.Is(err, auth.ErrUnauthenticated) || errors.Is(err, auth.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errDateMissing      = errors.New("the date of the entry must be set")
	errTemplateBody     = errors.New("send either a list of items or a single item")
	errIndexMissing     = errors.New("the index of the item to delete must be set")
	errReportFormat     = errors.New("the format must be one of json, csv or xlsx")
	errReportMissing    = errors.New("the report parameter must be set")
	errNameOrEmailEmpty = errors.New("name and e-mail address must be set")
)
