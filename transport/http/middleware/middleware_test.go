package middleware_test

import (
	"kasaglow/config"
	"kasaglow/infras/otel/mocks"
	"kasaglow/shared/cache"
	"kasaglow/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterConfig(enable bool, maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "kasaglow"
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func call(handler http.Handler, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.Header.Set("User-Agent", "test-agent")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit(t *testing.T) {
	redisCache, server := newCache(t)
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 2), redisCache).RateLimit()(ok)

	first := call(handler, "10.0.0.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", first.Header().Get("X-RateLimit-Window"))

	assert.Equal(t, http.StatusOK, call(handler, "10.0.0.1, 172.16.0.1").Code)

	limited := call(handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, call(handler, "10.0.0.2").Code)

	server.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, call(handler, "10.0.0.1").Code)
}

func TestRateLimit_PassThrough(t *testing.T) {
	redisCache, server := newCache(t)

	tests := []struct {
		name    string
		cfg     *config.Config
		cache   cache.RedisCache
		arrange func()
	}{
		{name: "disabled", cfg: limiterConfig(false, 1), cache: redisCache},
		{name: "no cache configured", cfg: limiterConfig(true, 1), cache: nil},
		{name: "cache down", cfg: limiterConfig(true, 1), cache: redisCache, arrange: server.Close},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.arrange != nil {
				tt.arrange()
			}

			handler := middleware.NewAppMiddleware(mocks.NewOtel(), tt.cfg, tt.cache).RateLimit()(ok)

			for range 3 {
				assert.Equal(t, http.StatusOK, call(handler, "10.0.0.9").Code)
			}
		})
	}
}

func TestTracingAndLogging(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false, 0), nil)

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := call(app.Tracing(app.Logging(teapot)), "10.0.0.1")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
