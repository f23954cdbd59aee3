package donorform

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/export"
	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
)

// export renders the caller's records as CSV, Excel, clipboard text or a
// print view. Plain requests receive the file; Datastar requests get the
// browser to save, copy or print it, followed by a toast.
func (s *Service) export(ctx handler.Context, req ExportRequest) handler.Response {
	format, err := export.ParseFormat(chi.URLParam(ctx.Request(), "format"))
	if err != nil {
		return handler.Error(errors.Join(ErrUnknownFormat, err))
	}

	datastar := handler.IsDataStar(ctx.Request())
	var sid string
	if datastar {
		sid = s.session(ctx)
	}

	start := time.Now()
	payload, err := export.Render(format, req.table(), export.Options{
		Filename: req.Filename,
		Title:    req.Title,
		Headers:  req.Headers,
		Now:      s.calc.Now(),
	})
	switch {
	case errors.Is(err, export.ErrNoData):
		s.metrics.ObserveExport(string(format), "empty", 0, time.Since(start))
		if !datastar {
			return handler.JSONError(ErrNoData)
		}
		c, _, err := s.chromeFor(ctx)
		if err != nil {
			return handler.Error(err)
		}
		key, fallback := "export.no_data", "No data to export"
		if format == export.FormatClipboard {
			key, fallback = "export.no_data_copy", "No data to copy"
		}
		s.toast(ctx, c, sid, notifications.TypeError, "export.failure_title", key, fallback)
		return handler.Written()
	case err != nil:
		s.metrics.ObserveExport(string(format), "error", 0, time.Since(start))
		return handler.Error(err)
	}
	s.metrics.ObserveExport(string(format), "ok", payload.Rows, time.Since(start))
	s.log.DebugContext(ctx, "export rendered",
		logger.Component("donorform"),
		logger.ExportFormat(string(format)),
		logger.Rows(payload.Rows),
	)

	if !datastar {
		if format.IsDownload() {
			return handler.Download(payload.Body, payload.MIMEType, payload.Filename)
		}
		return handler.Inline(payload.Body, payload.MIMEType)
	}

	c, _, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	var (
		title    string
		fallback string
	)
	switch format {
	case export.FormatCSV, export.FormatExcel:
		err = c.TriggerDownload(ctx, string(payload.Body), payload.MIMEType, payload.Filename)
		title = "export.success_title"
		fallback = "File downloaded successfully!"
	case export.FormatClipboard:
		err = chrome.CopyText(ctx, c, string(payload.Body))
		fallback = "Data copied to clipboard!"
	case export.FormatPrint:
		err = c.OpenPrintView(ctx, string(payload.Body))
		fallback = "Print dialog opened"
	}
	if err != nil {
		s.toast(ctx, c, sid, notifications.TypeError, "export.failure_title", "export.failed", "Error exporting data")
		return handler.Error(err)
	}
	s.toast(ctx, c, sid, notifications.TypeSuccess, title, format.MessageKey(), fallback)
	return handler.Written()
}

// SearchResponse is the plain-request answer of /search.
type SearchResponse struct {
	Count   int          `json:"count"`
	Message string       `json:"message"`
	Records export.Table `json:"records"`
}

// search filters the caller's rows as the user types.
func (s *Service) search(ctx handler.Context, req SearchRequest) handler.Response {
	matches := export.Filter(req.Records, req.Term)
	if matches == nil {
		matches = export.Table{}
	}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		n := len(matches)
		return handler.JSON(SearchResponse{
			Count:   n,
			Message: s.text(ctx, "search.results", strconv.Itoa(n)+" results found", map[string]any{"count": n}),
			Records: matches,
		})
	}
	if err := c.ShowResultsCount(ctx, len(matches)); err != nil {
		return handler.Error(err)
	}
	if err := c.SetSignals(ctx, map[string]any{"results": matches}); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}
