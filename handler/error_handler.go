package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RetryURL   string
}

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full error page for HTML requests.
	// When nil, the handler falls back to http.Error.
	ErrorPage func(ErrorPageParams) templ.Component
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to log levels. Client mistakes
// are routine and logged at warn; everything else is an error.
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError analyzes the error and returns structured error information.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	// Validation failures reaching the error handler mean a handler chose
	// not to render them itself; report them as 422.
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = verrs.Error()
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Component("error_handler"),
	)
}

// WantsJSON reports whether the client asked for a JSON response.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// NewErrorHandler creates the default error handler. JSON clients get the
// error envelope; browser requests get the configured error page, or a
// plain http.Error when none is set. Configure once in main.go and pass to
// every module router.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		if WantsJSON(ctx.Request()) {
			resp := JSONError(err)
			if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
				log.Error("failed to render error response",
					logger.Error(renderErr),
					logger.Component("error_handler"),
				)
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		component := cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RetryURL:   ctx.Request().URL.Path,
		})

		resp := Templ(component, WithStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error page",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
			http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
		}
	}
}
