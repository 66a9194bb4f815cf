package middleware_test

import (
	"errors"
	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		err       error
		code      int
		remaining string
	}{
		{name: "first request", count: 1, code: http.StatusOK, remaining: "1"},
		{name: "last allowed request", count: 2, code: http.StatusOK, remaining: "0"},
		{name: "over the limit", count: 3, code: http.StatusTooManyRequests, remaining: "0"},
		{name: "store unavailable lets the request through", err: errors.New("dial tcp: refused"), code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			redis.EXPECT().Incr(gomock.Any(), "limiter:203.0.113.7:frontdesk-app", 60).Return(tt.count, tt.err)

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), redis)
			handler := mw.RateLimit()(http.HandlerFunc(okHandler))

			req := httptest.NewRequest(http.MethodGet, "/v1/availability", nil)
			req.RemoteAddr = "203.0.113.7:51234"
			req.Header.Set("User-Agent", "frontdesk-app")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))

	rec := httptest.NewRecorder()
	mw.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://frontdesk.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	ctrl := gomock.NewController(t)
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))
	handler := mw.CORS()(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/v1/room-types", nil)
	req.Header.Set("Origin", "https://frontdesk.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://frontdesk.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://elsewhere.example.com")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := otelMocks.NewRecorder()
	mw := middleware.NewAppMiddleware(recorder, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))

	failing := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	failing.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

	span, ok := recorder.Find("POST /v1/bookings")
	require.True(t, ok)
	assert.True(t, span.Ended)
	assert.Equal(t, http.StatusServiceUnavailable, span.Attrs["http.status_code"])
	assert.Len(t, span.Errors, 1)
}
