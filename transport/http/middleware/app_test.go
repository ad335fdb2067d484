package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"gomoto/config"
	"gomoto/infras/metrics"
	"gomoto/infras/otel/mocks"
	"gomoto/shared/cache"
	cacheMocks "gomoto/shared/cache/mocks"
	"gomoto/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			wantCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:probe", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
				c.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:probe", 1, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						count, _ := value.(*int)
						*count = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache outage lets the request through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			if tt.setupMock != nil {
				tt.setupMock(c)
			}

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), c)

			req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/all", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			req.Header.Set("User-Agent", "probe")

			rec := httptest.NewRecorder()
			mw.RateLimit(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestMetrics(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), nil)

	r := chi.NewRouter()
	r.Use(mw.Tracing, mw.Metrics)
	r.Get("/v1/vehicles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/vehicles/{id}", strconv.Itoa(http.StatusNotFound))
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/vehicles/42", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
