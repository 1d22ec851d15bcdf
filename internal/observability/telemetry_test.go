package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/kickoff-api/internal/config"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "kickoff-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	telemetry, err := Start(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if telemetry.pprof != nil {
		t.Fatalf("pprof server must not start when disabled")
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}
}

func TestStart_TracingNeedsDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "kickoff-api"}

	shutdown := initTracing(cfg, logging.NewNop())
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown without DSN, got %v", err)
	}
}

func TestTelemetry_NilShutdown(t *testing.T) {
	var telemetry *Telemetry
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil telemetry shutdown: %v", err)
	}
}
