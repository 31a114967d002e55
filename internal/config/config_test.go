package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse([]byte(""), "config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("empty config should equal defaults, got %+v", cfg)
	}
}

func TestParse_Overrides(t *testing.T) {
	src := `
port: 9000
max_body_bytes: 2048
read_timeout: 2s
`
	cfg, err := Parse([]byte(src), "config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 {
		t.Errorf("want port 9000, got %d", cfg.Port)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Errorf("want max_body_bytes 2048, got %d", cfg.MaxBodyBytes)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("want read_timeout 2s, got %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("write_timeout should default, got %s", cfg.WriteTimeout)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"port: 70000":        "out of range",
		"max_body_bytes: -1": "max_body_bytes",
		"idle_timeout: -5s":  "idle_timeout",
		"port: [1":           "parsing config.yaml",
		"read_timeout: soon": "parsing config.yaml",
	}
	for src, want := range cases {
		_, err := Parse([]byte(src), "config.yaml")
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("Parse(%q): want error containing %q, got %v", src, want, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("port: 8181\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8181 {
		t.Errorf("want port 8181, got %d", cfg.Port)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file should fail")
	}
}
