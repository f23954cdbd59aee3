package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the ErrorHandler configured in Wrap.
//
//	if errors.Is(err, export.ErrUnknownFormat) {
//		return handler.Error(handler.NewHTTPError(http.StatusBadRequest, "export.unknown_format"))
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
