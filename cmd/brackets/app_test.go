// # cmd/brackets/app_test.go
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brackets/internal/config"
)

func TestAppScan(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "apptest")
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "source.kt")
	os.WriteFile(target, []byte("fun main() {\n    val x = listOf(1, 2)\n}\n"), 0644)

	cfg := config.Default()
	cfg.File = target

	app := NewApp(cfg)
	var buf strings.Builder
	app.Out = &buf

	res, err := app.Scan()
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(res.Lines))
	}
	if !res.Final.Balanced() {
		t.Errorf("Expected balanced, got %+v", res.Final)
	}

	out := buf.String()
	if !strings.Contains(out, "   1: paren=  0 brace=  1 brack=  0 | fun main() {") {
		t.Errorf("Missing line 1 record in output:\n%s", out)
	}
	if !strings.HasSuffix(out, "\nFINAL COUNTS: paren 0 brace 0 brack 0\n") {
		t.Errorf("Missing final summary in output:\n%s", out)
	}
}

func TestAppScanDeterministic(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "appdet")
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "source.kt")
	os.WriteFile(target, []byte("({[\n)}]\n"), 0644)

	cfg := config.Default()
	cfg.File = target

	var first, second strings.Builder

	app := NewApp(cfg)
	app.Out = &first
	if _, err := app.Scan(); err != nil {
		t.Fatal(err)
	}

	app.Out = &second
	if _, err := app.Scan(); err != nil {
		t.Fatal(err)
	}

	if first.String() != second.String() {
		t.Error("Two scans of an unchanged file produced different output")
	}
}

func TestAppScanMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.File = "/nonexistent/source.kt"

	app := NewApp(cfg)
	var buf strings.Builder
	app.Out = &buf

	_, err := app.Scan()
	if err == nil {
		t.Fatal("Expected error for missing target")
	}
	if buf.Len() != 0 {
		t.Errorf("No output expected before the file is read, got %q", buf.String())
	}
}

func TestAppHandleChange(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "appchange")
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "source.kt")
	os.WriteFile(target, []byte("(\n"), 0644)

	cfg := config.Default()
	cfg.File = target
	cfg.Alerts.Beep = true

	app := NewApp(cfg)
	var buf strings.Builder
	app.Out = &buf

	app.HandleChange()

	out := buf.String()
	if !strings.Contains(out, strings.Repeat("-", 40)) {
		t.Error("Expected a separator before the rescan trace")
	}
	if !strings.Contains(out, "FINAL COUNTS: paren 1 brace 0 brack 0") {
		t.Errorf("Expected rescan summary in output:\n%s", out)
	}
	if !strings.Contains(out, "\a") {
		t.Error("Expected a beep on imbalance")
	}

	// A vanished target must not panic; the watcher keeps running.
	os.Remove(target)
	app.HandleChange()
}

func TestAppHealth(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "apphealth")
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "source.kt")
	os.WriteFile(target, []byte("()\n"), 0644)

	cfg := config.Default()
	cfg.File = target

	app := NewApp(cfg)
	var buf strings.Builder
	app.Out = &buf

	h := app.Health()
	if h.Status != "starting" {
		t.Errorf("Expected starting before first scan, got %s", h.Status)
	}

	if _, err := app.Scan(); err != nil {
		t.Fatal(err)
	}

	h = app.Health()
	if h.Status != "up" {
		t.Errorf("Expected up after scan, got %s", h.Status)
	}
	if !h.Balanced {
		t.Error("Expected balanced health snapshot")
	}
}
