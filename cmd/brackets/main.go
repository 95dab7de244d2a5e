// # cmd/brackets/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"brackets/internal/config"
	"brackets/internal/observability"
)

var (
	configPath = flag.String("config", "./brackets.toml", "Path to config file")
	watch      = flag.Bool("watch", false, "Keep running and rescan when the target file changes")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("brackets v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging. Stdout carries the diagnostic records and must stay
	// clean, so logs go to stderr.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load config. A missing config file is fine when the target comes
	// from the command line.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath == "./brackets.toml" && os.IsNotExist(err) && flag.NArg() > 0 {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		cfg.File = flag.Arg(0)
	}
	if cfg.File == "" {
		fmt.Fprintln(os.Stderr, "no target file: pass a path argument or set file in brackets.toml")
		os.Exit(1)
	}

	app := NewApp(cfg)

	res, err := app.Scan()
	if err != nil {
		slog.Error("scan failed", "path", cfg.File, "error", err)
		os.Exit(1)
	}

	if !*watch {
		if res.Final.Balanced() {
			os.Exit(0)
		}
		// Imbalance exit code, distinct from runtime failures.
		os.Exit(2)
	}

	// Watch mode
	if cfg.Metrics.Addr != "" {
		srv := observability.NewServer(cfg.Metrics.Addr, app.Health)
		if err := srv.Start(context.Background()); err != nil {
			slog.Error("failed to start observability server", "error", err)
			os.Exit(1)
		}
	}

	// The watcher is never closed, it runs for the process lifetime.
	if _, err := app.StartWatcher(); err != nil {
		slog.Error("failed to start watcher", "path", cfg.File, "error", err)
		os.Exit(1)
	}

	fmt.Println(renderStatus(res.Final))
	slog.Info("watching for changes", "path", cfg.File)

	// Block forever
	select {}
}
