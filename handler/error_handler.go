package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/profiler/pkg/clientip"
	"github.com/dmitrymomot/profiler/pkg/logger"
	"github.com/dmitrymomot/profiler/pkg/requestid"
)

const (
	defaultToastTarget   = "#toast-container"
	defaultErrorMessage  = "An error occurred processing your request"
	errorHandlerName     = "error_handler"
	toastSeverityError   = "error"
	toastSeverityWarning = "warning"
	toastSeverityInfo    = "info"
)

// ErrorPageParams is passed to the full-page error component.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast component used for DataStar requests.
// Type is one of "error", "warning" or "info".
type ErrorToastParams struct {
	Message   string
	Type      string
	RequestID string
}

// ErrorHandlerConfig selects the components NewErrorHandler renders with.
// A nil ErrorPage falls back to plain text; a nil ErrorToast writes nothing.
type ErrorHandlerConfig struct {
	ErrorPage   func(ErrorPageParams) templ.Component
	ErrorToast  func(ErrorToastParams) templ.Component
	ToastTarget string // default "#toast-container"
	ToastMode   datastar.ElementPatchMode
}

// failure is the outcome of mapping an error onto an HTTP response.
type failure struct {
	err       error
	status    int
	message   string
	requestID string
}

func newFailure(ctx context.Context, err error) failure {
	f := failure{
		err:       err,
		status:    http.StatusInternalServerError,
		message:   defaultErrorMessage,
		requestID: requestid.FromContext(ctx),
	}

	var verr ValidationError
	var herr HTTPError
	switch {
	case errors.As(err, &verr):
		f.status = http.StatusUnprocessableEntity
		f.message = verr.Error()
	case errors.As(err, &herr):
		f.status = herr.Code
		f.message = herr.Key
	}
	return f
}

func (f failure) clientFault() bool {
	return f.status >= http.StatusBadRequest && f.status < http.StatusInternalServerError
}

func (f failure) severity() string {
	switch {
	case f.clientFault():
		return toastSeverityWarning
	case f.status >= http.StatusInternalServerError:
		return toastSeverityError
	default:
		return toastSeverityInfo
	}
}

func (f failure) level() slog.Level {
	if f.clientFault() {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func (f failure) log(log *slog.Logger, r *http.Request) {
	log.LogAttrs(r.Context(), f.level(), "request error",
		logger.RequestID(f.requestID),
		logger.ClientIP(clientip.FromContext(r.Context())),
		logger.Error(f.err),
		slog.Int("status_code", f.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component(errorHandlerName),
	)
}

// NewErrorHandler returns the error handler for HTML routes. Regular requests
// get a full error page with the mapped status code; DataStar requests get a
// toast patched into ToastTarget over a 200 SSE stream.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = defaultToastTarget
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		f := newFailure(r.Context(), err)
		f.log(log, r)

		event, render := "render_error_page", cfg.page
		if IsDataStar(r) {
			event = "render_error_toast"
			render = func(ctx Context, f failure) error { return cfg.toast(ctx, f, log) }
		}
		if renderErr := render(ctx, f); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(f.requestID),
				logger.Error(renderErr),
				logger.Component(errorHandlerName),
				logger.Event(event),
			)
		}
	}
}

func (cfg ErrorHandlerConfig) toast(ctx Context, f failure, log *slog.Logger) error {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for DataStar request",
			logger.RequestID(f.requestID),
			logger.Component(errorHandlerName),
		)
		return nil
	}
	component := cfg.ErrorToast(ErrorToastParams{
		Message:   f.message,
		Type:      f.severity(),
		RequestID: f.requestID,
	})
	return Templ(component, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode)).
		Render(ctx.ResponseWriter(), ctx.Request())
}

func (cfg ErrorHandlerConfig) page(ctx Context, f failure) error {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, f.message, f.status)
		return nil
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(f.status)
	return cfg.ErrorPage(ErrorPageParams{
		Error:      f.message,
		StatusCode: f.status,
		RequestID:  f.requestID,
		RetryURL:   ctx.Request().URL.Path,
	}).Render(ctx.Request().Context(), w)
}

// NewJSONErrorHandler returns the error handler for API routes. It writes the
// {"error": {...}} envelope produced by JSONError.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		f := newFailure(r.Context(), err)
		f.log(log, r)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render json error",
				logger.RequestID(f.requestID),
				logger.Error(renderErr),
				logger.Component(errorHandlerName),
				logger.Event("render_json_error"),
			)
		}
	}
}
