package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/requestid"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// ErrorPageParams is the data of a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data of an error toast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders plain HTML requests. Without it the message is
	// written as text.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders Datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	ToastTarget string                    // default "#toast-container"
	ToastMode   datastar.ElementPatchMode // default PatchPrepend

	// Translate resolves HTTPError keys to user-facing text. When nil or
	// when it returns the key unchanged, the status text is used.
	Translate func(ctx context.Context, key string) string
}

// ErrorInfo is the client-facing classification of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Type       string
	LogLevel   slog.Level
}

// ClassifyError maps err to a status code, a user-facing message and a
// log level. Validation failures win over HTTP errors.
func ClassifyError(ctx context.Context, err error, translate func(context.Context, string) string) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
		if translate != nil {
			if msg := translate(ctx, httpErr.Key); msg != "" && msg != httpErr.Key {
				info.Message = msg
			}
		}
	}

	if ve, ok := asValidationError(err); ok {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = joinMessages(ve)
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type, info.LogLevel = "error", slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	default:
		info.Type, info.LogLevel = "info", slog.LevelWarn
	}
	return info
}

func asValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return ValidationErrorFrom(fieldErrs, nil), true
	}
	return nil, false
}

func joinMessages(ve ValidationError) string {
	var messages []string
	for _, field := range ve.Fields() {
		messages = append(messages, ve[field]...)
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, " ")
}

// NewErrorHandler returns an ErrorHandler that answers in the shape the
// client asked for: a toast patch for Datastar requests, the JSON error
// envelope for JSON clients and an error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}
	eh := &errorResponder{cfg: cfg, log: log.With(logger.Component("error_handler"))}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(ctx, err, cfg.Translate)
		rid := requestid.FromContext(r.Context())

		eh.log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(rid),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		switch {
		case IsDataStar(r):
			eh.toast(ctx, info, rid)
		case wantsJSON(r):
			eh.json(ctx, err, info)
		default:
			eh.page(ctx, info, rid)
		}
	}
}

type errorResponder struct {
	cfg ErrorHandlerConfig
	log *slog.Logger
}

// SSE responses keep status 200 so the client applies the patch.
func (eh *errorResponder) toast(ctx Context, info ErrorInfo, rid string) {
	if eh.cfg.ErrorToast == nil {
		eh.log.Warn("no error toast component configured for Datastar request", logger.RequestID(rid))
		return
	}
	c := eh.cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: rid})
	resp := Templ(c, WithTarget(eh.cfg.ToastTarget), WithPatchMode(eh.cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		eh.log.Error("failed to render error toast", logger.RequestID(rid), logger.Error(err), logger.Event("render_error_toast"))
	}
}

func (eh *errorResponder) json(ctx Context, err error, info ErrorInfo) {
	resp := JSONError(err)
	if _, ok := asValidationError(err); !ok {
		resp = JSON(&ErrorDetail{Code: info.Code, Message: info.Message}, WithJSONStatus(info.StatusCode))
	}
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		eh.log.Error("failed to render json error", logger.Error(err), logger.Event("render_error_json"))
	}
}

func (eh *errorResponder) page(ctx Context, info ErrorInfo, rid string) {
	if eh.cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}
	c := eh.cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  rid,
		RetryURL:   ctx.Request().URL.Path,
	})
	if err := TemplWithStatus(info.StatusCode, Patch(c)).Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		eh.log.Error("failed to render error page", logger.RequestID(rid), logger.Error(err), logger.Event("render_error_page"))
	}
}

func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}
