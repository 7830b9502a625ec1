package httpapi

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/buzznav/internal/ctxlog"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buzznav_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "buzznav_http_request_duration_seconds",
		Help:    "HTTP request duration by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// requestContext assigns a request id, puts a request-scoped logger into the
// request context and writes one access record per request.
func requestContext(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)

		log := base.With(slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), log))

		began := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(began).Seconds())

		level := slog.LevelInfo
		if code >= 500 {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", code),
			slog.Duration("elapsed", time.Since(began)),
		)
	}
}
