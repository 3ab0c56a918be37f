package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "ezytutor/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that escape the handlers. Recoverable
// outcomes are rendered into their forms by the handlers themselves; anything
// arriving here is a request-level failure and gets the error page.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// errorPageData feeds the error page template.
type errorPageData struct {
	Message string
	Details string
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.renderErrorPage(c, appErr.HTTPCode(), errorPageData{
			Message: appErr.Message(),
			Details: appErr.Details(),
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		m.renderErrorPage(c, httpErr.Code, errorPageData{Message: message})

		return
	}

	// Default to internal error, log error and return generic error page
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.renderErrorPage(c, http.StatusInternalServerError, errorPageData{
		Message: "Internal server error",
	})
}

func (m *ErrorMiddleware) renderErrorPage(c echo.Context, code int, data errorPageData) {
	if err := c.Render(code, "error.html", data); err != nil {
		// The error page itself failed to render; fall back to plain text.
		m.logger.Error("Failed to render error page", slog.String("error", err.Error()))

		if writeErr := c.String(code, data.Message); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.String("error", writeErr.Error()))
		}
	}
}
