package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gomoto/config"
	"gomoto/infras/metrics"
	"gomoto/infras/otel"
	"gomoto/shared"
	"gomoto/shared/cache"
	"gomoto/shared/constant"
	"gomoto/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
	unmatchedRoute    = "unmatched"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Metrics(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens the request span; handler scopes become its children.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", request.Method, request.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		ww := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		next.ServeHTTP(ww, request.WithContext(ctx))

		scope.SetAttribute("http.status_code", ww.Status())

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(errors.New(http.StatusText(ww.Status())))
		}
	})
}

// Metrics records the request counter and latency labelled by route pattern.
func (a *appMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(ww, request)

		route := unmatchedRoute
		if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.RoutePattern() != constant.Empty {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := []string{request.Method, route, strconv.Itoa(status)}
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// RateLimit counts requests per client and user agent in fixed redis windows.
// A cache failure lets the request through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request), userAgent(request))

		var count int

		err := a.cache.Get(ctx, cacheKey, &count)

		switch {
		case errors.Is(err, cache.Nil):
			count = 1
		case err != nil:
			log.Warn().Err(err).Msg("rate limiter cache unavailable")
			next.ServeHTTP(writer, request)

			return
		default:
			count++
		}

		if count > limiter.MaxRequests {
			response.WithRequestLimitExceeded(writer)

			return
		}

		if err = a.cache.Save(ctx, cacheKey, count, limiter.WindowSeconds); err != nil {
			log.Warn().Err(err).Msg("failed to store rate limit counter")
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

		next.ServeHTTP(writer, request)
	})
}

func userAgent(request *http.Request) string {
	if ua := request.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

// clientIP prefers proxy headers, then the socket address without its port.
func clientIP(request *http.Request) string {
	if xff := request.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := request.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}

	return request.RemoteAddr
}
