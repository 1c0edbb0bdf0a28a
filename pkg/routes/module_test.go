package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHandler, "handler"},
		{KindConfigure, "configure"},
		{KindInvalid, "invalid"},
		{Kind(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestModuleBuild(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("handler", func(t *testing.T) {
		m := Handler(ok)
		if m.Kind() != KindHandler {
			t.Fatalf("Kind() = %v, want handler", m.Kind())
		}
		h, err := m.build()
		if err != nil {
			t.Fatal(err)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Body.String() != "ok" {
			t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
		}
	})

	t.Run("configure runs once per build", func(t *testing.T) {
		calls := 0
		m := Configure(func(router chi.Router) {
			calls++
			router.Get("/", ok)
		})
		if m.Kind() != KindConfigure {
			t.Fatalf("Kind() = %v, want configure", m.Kind())
		}
		h, err := m.build()
		if err != nil {
			t.Fatal(err)
		}
		if calls != 1 {
			t.Errorf("configure called %d times, want 1", calls)
		}
		if _, isRouter := h.(chi.Router); !isRouter {
			t.Errorf("built handler is %T, want chi.Router", h)
		}
	})

	invalid := []struct {
		name string
		m    Module
	}{
		{"zero", Module{}},
		{"nil handler", Handler(nil)},
		{"nil handler func", HandlerFunc(nil)},
		{"nil configure", Configure(nil)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.build(); !errors.Is(err, ErrInvalidModule) {
				t.Errorf("build() error = %v, want ErrInvalidModule", err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("user.go", Handler(http.NotFoundHandler()))
	reg.Register(`order\detail.go`, Configure(func(chi.Router) {}))

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	if m, ok := reg.Lookup("./user.go"); !ok || m.Kind() != KindHandler {
		t.Errorf("Lookup(./user.go) = %v, %v", m.Kind(), ok)
	}
	if m, ok := reg.Lookup("order/detail.go"); !ok || m.Kind() != KindConfigure {
		t.Errorf("Lookup(order/detail.go) = %v, %v", m.Kind(), ok)
	}
	if _, ok := reg.Lookup("missing.go"); ok {
		t.Error("Lookup(missing.go) should fail")
	}

	want := []string{"order/detail.go", "user.go"}
	if got := reg.Sources(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register("user.go", Handler(http.NotFoundHandler()))

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	reg.Register("./user.go", Handler(http.NotFoundHandler()))
}

func TestNilRegistryLookup(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Lookup("user.go"); ok {
		t.Error("nil registry should not find modules")
	}
}
