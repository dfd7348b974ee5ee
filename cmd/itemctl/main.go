package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.LoadTool()
	if err != nil {
		PrintError(os.Stderr, "%v", err)
		return 1
	}

	// diagnostics go to stderr so command output stays clean
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logger.InitLoggerWithWriter(logCfg, os.Stderr)

	registry := newRegistry(cfg)
	if len(args) == 0 {
		registry.PrintHelp(os.Stderr)
		return 2
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError(os.Stderr, "unknown command %q", args[0])
		registry.PrintHelp(os.Stderr)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		PrintError(os.Stderr, "%s: %v", cmd.Name(), err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func newRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()
	for _, cmd := range []Command{
		&ListCommand{cfg: cfg},
		&TooltipCommand{cfg: cfg},
		&ExportCommand{cfg: cfg},
		&ScanCommand{cfg: cfg},
		&ValidateCommand{cfg: cfg},
		&SyncCommand{cfg: cfg},
	} {
		r.Register(cmd)
	}
	return r
}

