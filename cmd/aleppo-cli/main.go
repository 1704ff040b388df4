package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"aleppo/cmd/aleppo-cli/commands"
	"aleppo/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	err := telemetry.SetupFromEnv(context.Background(), "aleppo-cli")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	commands.ExecuteContext(context.Background())
}
