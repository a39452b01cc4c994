//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"storezee/internal/handler/httperr"
	"storezee/internal/handler/middleware"
	"storezee/internal/pkg/config"
	"storezee/internal/pkg/errs"
	"storezee/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(mw...)
	return e
}

func TestRateLimiter_PerClientBucket(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})
	e := newEngine()
	e.POST("/limited", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := range 2 {
		rec := httptest.PerformMultipart(t, e, "/limited", nil, nil, "10.0.0.1:1234")
		require.Equal(t, http.StatusNoContent, rec.Code, "request %d", i)
	}

	rec := httptest.PerformMultipart(t, e, "/limited", nil, nil, "10.0.0.1:1234")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})

	other := httptest.PerformMultipart(t, e, "/limited", nil, nil, "10.0.0.2:1234")
	assert.Equal(t, http.StatusNoContent, other.Code)
}

func TestRateLimiter_NonPositiveRPSDisablesLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0, Burst: 1})
	e := newEngine()
	e.POST("/open", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 5 {
		rec := httptest.PerformMultipart(t, e, "/open", nil, nil, "10.0.0.1:1234")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestCustomRecovery(t *testing.T) {
	e := newEngine(middleware.CustomRecovery())
	e.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, e, http.MethodGet, "/panic", nil)

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	e := newEngine(middleware.ErrorHandler())
	e.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errs.New("hidden cause"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "conflict", nil),
		})
	})
	e.GET("/silent", func(*gin.Context) {})
	e.GET("/status", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	t.Run("public error meta is rendered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "conflict")
		assert.NotContains(t, rec.Body.String(), "hidden cause")
	})

	t.Run("handler that writes nothing is a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, e, http.MethodGet, "/status", nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	e := newEngine(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	e.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetRequestID(c))
		c.Status(http.StatusNoContent)
	})

	rec := httptest.PerformRequest(t, e, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	e := newEngine(middleware.LoggingMiddleware(slog.Default(), config.NewTestConfig().Log))
	e.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := nethttptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestCORSMiddleware_ExposesRequestID(t *testing.T) {
	e := newEngine(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
	e.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := nethttptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}
