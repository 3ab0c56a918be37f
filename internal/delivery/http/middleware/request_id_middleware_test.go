package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ezytutor/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	next := func(c echo.Context) error {
		seenID = deliverycontext.GetRequestID(c)

		return nil
	}

	require.NoError(t, m.Process(next)(c))

	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var scopedLogger *slog.Logger
	next := func(c echo.Context) error {
		scopedLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)

		return nil
	}

	require.NoError(t, m.Process(next)(c))

	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotNil(t, scopedLogger)
}
