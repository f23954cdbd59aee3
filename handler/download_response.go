package handler

import (
	"mime"
	"net/http"
	"strconv"
)

type fileResponse struct {
	body        []byte
	contentType string
	filename    string
	disposition string
}

func (f fileResponse) Render(w http.ResponseWriter, r *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", f.contentType)
	h.Set("Content-Length", strconv.Itoa(len(f.body)))
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	if f.filename != "" {
		h.Set("Content-Disposition", mime.FormatMediaType(f.disposition, map[string]string{"filename": f.filename}))
	} else {
		h.Set("Content-Disposition", f.disposition)
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(f.body)
	return err
}

// Download makes the browser save body as filename.
//
//	return handler.Download(payload.Body, payload.MIMEType, payload.Filename)
func Download(body []byte, contentType, filename string) Response {
	return fileResponse{body: body, contentType: contentType, filename: filename, disposition: "attachment"}
}

// Inline serves body for display in the browser, e.g. a print view opened
// in a new window.
func Inline(body []byte, contentType string) Response {
	return fileResponse{body: body, contentType: contentType, disposition: "inline"}
}
