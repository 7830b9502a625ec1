package navigator

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("buzznav.navigator")

var (
	// requestsTotal counts requests by kind (navigate, tour) and outcome.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buzznav_requests_total",
		Help: "Routing requests by kind and outcome",
	}, []string{"kind", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "buzznav_request_duration_seconds",
		Help:    "Routing request duration",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"kind"})

	routeDistance = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "buzznav_route_distance_meters",
		Help:    "Total distance of successful routes",
		Buckets: prometheus.ExponentialBuckets(50, 2, 10),
	})
)

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// finish records metrics and closes span for a request of the given kind.
func finish(span trace.Span, kind string, began time.Time, res *Result, err error) {
	outcome := Classify(err)
	requestsTotal.WithLabelValues(kind, string(outcome)).Inc()
	requestDuration.WithLabelValues(kind).Observe(time.Since(began).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(outcome))
	} else {
		routeDistance.Observe(res.Distance)
		span.SetAttributes(
			attribute.Float64("route.distance_m", res.Distance),
			attribute.Int("route.nodes", len(res.Path)),
		)
		span.SetStatus(codes.Ok, "route computed")
	}
	span.End()
}
