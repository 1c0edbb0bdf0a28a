package routes

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingTracer records span names and otherwise behaves like noop.
type recordingTracer struct {
	noop.Tracer
	spans []string
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.spans = append(t.spans, name)
	return t.Tracer.Start(ctx, name, opts...)
}

func TestMountWithMetrics(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"user.go":  "package api\n",
		"order.go": "package api\n",
	})

	reg := NewRegistry()
	reg.Register("user.go", Configure(func(router chi.Router) {
		router.Get("/", text("users"))
	}))
	reg.Register("order.go", HandlerFunc(text("orders")))

	promReg := prometheus.NewRegistry()
	app := chi.NewRouter()
	m := NewMounter(root, reg, WithLogger(quietLogger()), WithMetrics(promReg))
	if err := m.MountOn(app); err != nil {
		t.Fatal(err)
	}

	serve(t, app, "GET", "/user")
	serve(t, app, "GET", "/user")
	serve(t, app, "GET", "/order")

	if got := testutil.ToFloat64(m.metrics.requests.WithLabelValues("/user", "get", "200")); got != 2 {
		t.Errorf("/user requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.metrics.requests.WithLabelValues("/order", "get", "200")); got != 1 {
		t.Errorf("/order requests = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.metrics.duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestMountWithTracer(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"user.go": "package api\n"})

	reg := NewRegistry()
	reg.Register("user.go", HandlerFunc(text("users")))

	tracer := &recordingTracer{}
	app := chi.NewRouter()
	if _, err := Mount(app, root, reg, WithLogger(quietLogger()), WithTracer(tracer)); err != nil {
		t.Fatal(err)
	}

	rec := serve(t, app, "GET", "/user")
	if rec.Body.String() != "users" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "users")
	}
	if len(tracer.spans) != 1 || tracer.spans[0] != "route /user" {
		t.Errorf("spans = %v, want [route /user]", tracer.spans)
	}
}

func TestMountWithTracing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"user.go": "package api\n"})

	reg := NewRegistry()
	reg.Register("user.go", HandlerFunc(text("users")))

	app := chi.NewRouter()
	if _, err := Mount(app, root, reg, WithLogger(quietLogger()), WithTracing()); err != nil {
		t.Fatal(err)
	}

	if rec := serve(t, app, "GET", "/user"); rec.Body.String() != "users" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "users")
	}
}
