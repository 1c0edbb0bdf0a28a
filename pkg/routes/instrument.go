package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	metricsNamespace = "routefs"
	tracerName       = "github.com/vango-dev/routefs/pkg/routes"
)

// metrics holds the per-route request metrics.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of requests served by mounted routes",
		}, []string{"route", "method", "code"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Request duration of mounted routes in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}
}

func (m *metrics) wrap(path string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"route": path}
	return promhttp.InstrumentHandlerDuration(
		m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), h),
	)
}

// WithTracing is WithTracer using the global tracer provider.
func WithTracing() Option {
	return WithTracer(otel.Tracer(tracerName))
}

func traced(tracer trace.Tracer, path string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "route "+path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.route", path),
				attribute.String("http.method", r.Method),
			),
		)
		defer span.End()

		h.ServeHTTP(w, r.WithContext(ctx))
	})
}
