package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/reqcontext"
)

func TestContext(t *testing.T) {
	e := echo.New()

	t.Run("stamps tenant id and generates a request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
		req.Header.Set(HeaderTenantID, "tenant-a")
		c := e.NewContext(req, httptest.NewRecorder())

		var gotTenantID, gotRequestID string
		handler := Context()(func(c echo.Context) error {
			ctx := c.Request().Context()
			gotTenantID = reqcontext.GetTenantID(ctx)
			gotRequestID = reqcontext.GetRequestID(ctx)
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, "tenant-a", gotTenantID)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("keeps the request id sent by the caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		c := e.NewContext(req, httptest.NewRecorder())

		var gotRequestID string
		handler := Context()(func(c echo.Context) error {
			gotRequestID = reqcontext.GetRequestID(c.Request().Context())
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, "req-123", gotRequestID)
	})
}

func TestLogger(t *testing.T) {
	e := echo.New()

	lines := 0
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) { lines++ })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handled := false
	handler := Logger(logger)(func(c echo.Context) error {
		handled = true
		return c.NoContent(http.StatusCreated)
	})

	require.NoError(t, handler(c))
	assert.True(t, handled)
	assert.Equal(t, 1, lines)
}
