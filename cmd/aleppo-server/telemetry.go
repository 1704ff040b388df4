package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"aleppo/lib/serviceutil"
	"aleppo/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	err := telemetry.SetupFromEnv(ctx, "aleppo-server")
	if errors.Is(err, os.ErrNotExist) {
		slog.InfoContext(ctx, "no telemetry.json5 found, telemetry stays off")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		telemetry.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
