package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kview-dev/kview/internal/config"
	"github.com/kview-dev/kview/pkg/metrics"
)

func TestServerConfig(t *testing.T) {
	cfg := config.New()
	cfg.Name = "demo"
	cfg.Server.Port = 9000
	cfg.Server.PingInterval = "5s"
	cfg.Render.Sync = true
	cfg.Metrics.Enabled = true

	sc := serverConfig(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), true)

	if sc.Address != "localhost:9000" {
		t.Errorf("Address = %q", sc.Address)
	}
	if sc.Title != "demo" {
		t.Errorf("Title = %q", sc.Title)
	}
	if !sc.SyncMode || !sc.Debug {
		t.Errorf("SyncMode = %v, Debug = %v", sc.SyncMode, sc.Debug)
	}
	if sc.PingInterval != 5*time.Second {
		t.Errorf("PingInterval = %v", sc.PingInterval)
	}
	if sc.WSPath != config.DefaultWSPath || sc.MetricsPath != config.DefaultMetricsPath {
		t.Errorf("paths = %q, %q", sc.WSPath, sc.MetricsPath)
	}
	if _, ok := sc.Observer.(*metrics.Recorder); !ok {
		t.Errorf("Observer = %T, want *metrics.Recorder", sc.Observer)
	}
	if sc.Tracer == nil {
		t.Error("Tracer not set")
	}
}

func TestServerConfigWithoutMetrics(t *testing.T) {
	sc := serverConfig(config.New(), slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	if sc.Observer != nil {
		t.Errorf("Observer = %T, want nil", sc.Observer)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")

	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"--dir", dir, "export", "--out", out}, io.Discard, &stderr); code != 0 {
		t.Fatalf("export exited %d: %s", code, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(data), "kview showcase") {
		t.Errorf("exported page does not contain the showcase:\n%.200s", data)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	if code := run(context.Background(), []string{"version", "--short"}, &buf, io.Discard); code != 0 {
		t.Fatalf("version exited %d", code)
	}
	if got := strings.TrimSpace(buf.String()); got != version {
		t.Errorf("version = %q, want %q", got, version)
	}
}

func TestConfigErrorReport(t *testing.T) {
	dir := t.TempDir()
	bad := "{\n  \"server\": {\n    \"port\": \"x\"\n  }\n}\n"
	if err := os.WriteFile(filepath.Join(dir, config.JSONFileName), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "text",
			args: []string{"--dir", dir, "--no-color", "export"},
			want: []string{"E120 Invalid configuration file", config.JSONFileName, "see https://kview.dev/docs/errors/E120"},
		},
		{
			name: "json",
			args: []string{"--dir", dir, "--error-format", "json", "export"},
			want: []string{`"code":"E120"`, `"category":"config"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(context.Background(), tt.args, io.Discard, &stderr); code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			out := stderr.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("stderr missing %q:\n%s", want, out)
				}
			}
			if strings.Contains(out, "\033[") {
				t.Errorf("stderr contains ANSI escapes:\n%s", out)
			}
		})
	}
}

func TestInvalidServeFlagsReport(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--dir", t.TempDir(), "--no-color", "serve", "--port", "70000"}, io.Discard, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "E121") {
		t.Errorf("stderr = %q, want an E121 report", stderr.String())
	}
}
