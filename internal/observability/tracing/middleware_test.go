package tracing

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installProvider points the global provider and the package tracer at an
// in-memory exporter. Tracers are bound at creation time, so the package
// tracer must be re-bound after every provider swap.
func installProvider(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("db-rilis")
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("db-rilis")
	})
	return exporter
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter := installProvider(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/trends", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /dashboard/trends" {
		t.Errorf("unexpected span name %q", span.Name)
	}

	got := map[string]any{}
	for _, attr := range span.Attributes {
		got[string(attr.Key)] = attr.Value.AsInterface()
	}
	if got["http.method"] != "GET" {
		t.Errorf("http.method = %v", got["http.method"])
	}
	if got["http.path"] != "/dashboard/trends" {
		t.Errorf("http.path = %v", got["http.path"])
	}
	if got["http.status_code"] != int64(200) {
		t.Errorf("http.status_code = %v", got["http.status_code"])
	}
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	installProvider(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	traceID := rr.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("X-Trace-Id header missing")
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(traceID) {
		t.Errorf("trace ID %q is not 32 hex chars", traceID)
	}
}

func TestMiddleware_MarksServerErrors(t *testing.T) {
	exporter := installProvider(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	var flagged bool
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "error" && attr.Value.AsBool() {
			flagged = true
		}
	}
	if !flagged {
		t.Error("5xx response did not set error attribute")
	}
}
