package donorform

import (
	"net/http"

	"github.com/dmitrymomot/donorkit/handler"
)

var (
	ErrMissingField  = handler.NewHTTPError(http.StatusBadRequest, "validation.missing_field")
	ErrUnknownKind   = handler.NewHTTPError(http.StatusBadRequest, "validation.unknown_kind")
	ErrInvalidDate   = handler.NewHTTPError(http.StatusUnprocessableEntity, "validation.date")
	ErrUnknownFormat = handler.NewHTTPError(http.StatusBadRequest, "export.unknown_format")
	ErrNoData        = handler.NewHTTPError(http.StatusUnprocessableEntity, "export.no_data")
)
