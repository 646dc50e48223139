package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kview-dev/kview/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.WSPath != DefaultWSPath {
		t.Errorf("Server.WSPath = %q, want %q", cfg.Server.WSPath, DefaultWSPath)
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, DefaultMetricsPath)
	}
	if cfg.Export.Dir != DefaultExportDir {
		t.Errorf("Export.Dir = %q, want %q", cfg.Export.Dir, DefaultExportDir)
	}
	if cfg.PingInterval() != 30*time.Second {
		t.Errorf("PingInterval() = %v, want 30s", cfg.PingInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E141") {
		t.Fatalf("Load() on empty dir error = %v, want E141", err)
	}

	writeFile(t, tmpDir, JSONFileName, `{
  "name": "demo",
  "server": {"host": "0.0.0.0", "port": 9000, "pingInterval": "5s"},
  "render": {"sync": true},
  "metrics": {"enabled": true},
  "log": {"level": "debug", "format": "json"}
}
`)
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Address() != "0.0.0.0:9000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if !cfg.Render.Sync {
		t.Error("Render.Sync should be true")
	}
	if cfg.PingInterval() != 5*time.Second {
		t.Errorf("PingInterval() = %v, want 5s", cfg.PingInterval())
	}
	if cfg.Server.WSPath != DefaultWSPath {
		t.Errorf("WSPath default not applied: %q", cfg.Server.WSPath)
	}
	if cfg.Title() != "demo" {
		t.Errorf("Title() = %q, want demo", cfg.Title())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, YAMLFileName, `
name: yamlapp
server:
  port: 7000
render:
  title: Showcase
export:
  bucket: site-bucket
  prefix: preview/
  region: eu-west-1
`)
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Title() != "Showcase" {
		t.Errorf("Title() = %q, want Showcase", cfg.Title())
	}
	if cfg.Export.Bucket != "site-bucket" || cfg.Export.Prefix != "preview/" {
		t.Errorf("Export = %+v", cfg.Export)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, JSONFileName, `{"server": {"port": 1111}}`)
	writeFile(t, tmpDir, YAMLFileName, "server:\n  port: 2222\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 1111 {
		t.Errorf("Server.Port = %d, want the JSON value 1111", cfg.Server.Port)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
	}{
		{"invalid_json", "bad.json", `{"server": `, "E120"},
		{"invalid_yaml", "bad.yaml", "server:\n  port: [1,\n", "E120"},
		{"port_range", "port.json", `{"server": {"port": 70000}}`, "E121"},
		{"ws_path", "ws.json", `{"server": {"wsPath": "ws"}}`, "E121"},
		{"duration", "dur.yaml", "server:\n  readTimeout: soon\n", "E121"},
		{"log_level", "level.json", `{"log": {"level": "loud"}}`, "E121"},
		{"log_format", "format.json", `{"log": {"format": "xml"}}`, "E121"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tc.file, tc.content)
			_, err := LoadFile(path)
			if !errors.HasCode(err, tc.wantCode) {
				t.Errorf("LoadFile() error = %v, want %s", err, tc.wantCode)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.json")); !errors.HasCode(err, "E141") {
		t.Errorf("LoadFile(missing) error = %v, want E141", err)
	}
}

func TestYAMLErrorLocation(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, YAMLFileName, "name: x\nserver:\n  port: [1,\n")

	_, err := LoadFile(path)
	var ke *errors.KViewError
	if !asKViewError(err, &ke) {
		t.Fatalf("LoadFile() error = %v, want KViewError", err)
	}
	if ke.Location == nil || ke.Location.Line == 0 {
		t.Errorf("Location = %v, want a line number", ke.Location)
	}
}

func asKViewError(err error, target **errors.KViewError) bool {
	ke, ok := err.(*errors.KViewError)
	if ok {
		*target = ke
	}
	return ok
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			cfg := New()
			cfg.Server.Port = 4321
			cfg.Metrics.Enabled = true
			path := filepath.Join(tmpDir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q, want %q", cfg.Path(), path)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if loaded.Server.Port != 4321 || !loaded.Metrics.Enabled {
				t.Errorf("loaded = %+v", loaded)
			}
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("Save() without path should fail")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, YAMLFileName, "name: root\n")
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	if root != tmpDir {
		t.Errorf("FindProjectRoot() = %q, want %q", root, tmpDir)
	}

	cfg, err := LoadOrDefault(nested)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Name != "root" {
		t.Errorf("Name = %q, want root", cfg.Name)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Server.Port != DefaultPort || cfg.Path() != "" {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
}

func TestExportPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, JSONFileName, `{"export": {"dir": "out"}}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.ExportPath(), filepath.Join(tmpDir, "out"); got != want {
		t.Errorf("ExportPath() = %q, want %q", got, want)
	}

	cfg.Export.Dir = "/abs/out"
	if cfg.ExportPath() != "/abs/out" {
		t.Errorf("ExportPath() = %q, want /abs/out", cfg.ExportPath())
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		format    string
		level     string
		wantDebug bool
		wantJSON  bool
	}{
		{"text", "info", false, false},
		{"text", "debug", true, false},
		{"json", "warn", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.format+"_"+tc.level, func(t *testing.T) {
			cfg := New()
			cfg.Log.Format = tc.format
			cfg.Log.Level = tc.level

			var buf bytes.Buffer
			logger := cfg.Logger(&buf)
			logger.Debug("dbg")
			logger.Warn("wrn", "root", "main")

			out := buf.String()
			if got := strings.Contains(out, "dbg"); got != tc.wantDebug {
				t.Errorf("debug logged = %v, want %v (%q)", got, tc.wantDebug, out)
			}
			if got := strings.HasPrefix(out, "{"); got != tc.wantJSON {
				t.Errorf("json output = %v, want %v (%q)", got, tc.wantJSON, out)
			}
		})
	}
}
