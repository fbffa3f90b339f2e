package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pseudomuto/sqlindent/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.Run(ctx, cmd.Version{Version: version, Commit: commit, Timestamp: date}, os.Args)
	stop()

	if err != nil {
		slog.Error("Error running command", "err", err)
		os.Exit(1)
	}
}
