package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demobank/internal/errors"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.7")
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	// Burst of 2 passes, the third request is rejected
	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemRateLimitExceeded), resp.Error.Code)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1").Code)

	// A different client has its own budget
	assert.Equal(t, http.StatusOK, send("198.51.100.2").Code)
}
