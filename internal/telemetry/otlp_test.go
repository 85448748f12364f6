package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: expected nil, got %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Error("Setup: expected global provider to be left alone when disabled")
	}
}

func TestSetup_EnabledInstallsProvider(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://127.0.0.1:4318")
	t.Setenv("OTEL_SERVICE_NAME", "dynui-test")
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: unexpected error: %v", err)
	}
	if otel.GetTracerProvider() == before {
		t.Error("Setup: expected a new global provider")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestTracer_NotNil(t *testing.T) {
	if Tracer() == nil {
		t.Error("Tracer: expected a tracer")
	}
}
