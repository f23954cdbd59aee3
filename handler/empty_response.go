package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if e.status != 0 {
		w.WriteHeader(e.status)
	}
	return nil
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates an empty response with a custom status code.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// Written is returned by handlers that already produced their output
// through ctx.SSE(). It writes nothing.
func Written() Response {
	return emptyResponse{}
}
