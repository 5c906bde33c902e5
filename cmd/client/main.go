package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"TimeCapsule/internal/cli/commands"
	"TimeCapsule/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

// run возвращает код завершения, чтобы отложенные вызовы отработали до os.Exit.
func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("TimeCapsule CLI %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
		return commands.ExitOK
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
