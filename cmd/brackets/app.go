// # cmd/brackets/app.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"brackets/internal/config"
	"brackets/internal/observability"
	"brackets/internal/report"
	"brackets/internal/scanner"
	"brackets/internal/watcher"
)

type App struct {
	Config *config.Config
	Out    io.Writer

	mu        sync.Mutex
	lastScan  time.Time
	lastFinal scanner.Counts
	scanned   bool
}

func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Out:    os.Stdout,
	}
}

// Scan runs one full pass over the target file: read it into memory, count
// brackets, print the per-line trace and the final summary.
func (a *App) Scan() (scanner.Result, error) {
	start := time.Now()

	res, err := scanner.ScanFile(a.Config.File)
	if err != nil {
		observability.ScanErrorsTotal.Inc()
		return scanner.Result{}, err
	}

	if err := report.Render(a.Out, res); err != nil {
		return scanner.Result{}, err
	}

	a.recordScan(res, time.Since(start))
	return res, nil
}

func (a *App) recordScan(res scanner.Result, duration time.Duration) {
	observability.ScansTotal.Inc()
	observability.ScanDuration.Observe(duration.Seconds())
	observability.LinesScanned.Add(float64(len(res.Lines)))
	observability.FinalCount.WithLabelValues("paren").Set(float64(res.Final.Paren))
	observability.FinalCount.WithLabelValues("brace").Set(float64(res.Final.Brace))
	observability.FinalCount.WithLabelValues("brack").Set(float64(res.Final.Brack))
	if res.Final.Balanced() {
		observability.Balanced.Set(1)
	} else {
		observability.Balanced.Set(0)
	}

	a.mu.Lock()
	a.lastScan = time.Now()
	a.lastFinal = res.Final
	a.scanned = true
	a.mu.Unlock()
}

// HandleChange reruns the scan after the watcher reports a change to the
// target file.
func (a *App) HandleChange() {
	slog.Info("target changed, rescanning", "path", a.Config.File)

	fmt.Fprintln(a.Out, strings.Repeat("-", 40))

	res, err := a.Scan()
	if err != nil {
		// The file may be mid-replace or briefly gone; keep watching.
		slog.Warn("rescan failed", "path", a.Config.File, "error", err)
		return
	}

	fmt.Fprintln(a.Out, renderStatus(res.Final))

	if a.Config.Alerts.Beep && !res.Final.Balanced() {
		fmt.Fprint(a.Out, "\a")
	}
}

func (a *App) StartWatcher() (*watcher.Watcher, error) {
	w, err := watcher.NewWatcher(
		a.Config.File,
		a.Config.Watch.Debounce,
		a.Config.Watch.MaxRescansPerSec,
		a.Config.Watch.Burst,
		a.HandleChange,
	)
	if err != nil {
		return nil, err
	}

	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

func (a *App) Health() observability.Health {
	a.mu.Lock()
	defer a.mu.Unlock()

	status := "up"
	if !a.scanned {
		status = "starting"
	}
	return observability.Health{
		Status:   status,
		LastScan: a.lastScan,
		Balanced: a.lastFinal.Balanced(),
	}
}
