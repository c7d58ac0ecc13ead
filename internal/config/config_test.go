//go:build !integration

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Locale.Default != "en" {
		t.Errorf("default language = %q, want en", cfg.Locale.Default)
	}
	if len(cfg.Locale.RTL) != 1 || cfg.Locale.RTL[0] != "ar" {
		t.Errorf("rtl = %v, want [ar]", cfg.Locale.RTL)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Store.DocumentID != "preferences" {
		t.Errorf("document id = %q", cfg.Store.DocumentID)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
}

func TestParse_ExplicitEmptyRTLTableIsKept(t *testing.T) {
	cfg, err := Parse([]byte("locale:\n  rtl: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Locale.RTL) != 0 {
		t.Fatalf("rtl = %v, want empty", cfg.Locale.RTL)
	}
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"bad default", "locale:\n  default: \"not a tag!\"\n", "locale.default"},
		{"bad rtl", "locale:\n  rtl: [\"??\"]\n", "locale.rtl"},
		{"postgres without url", "store:\n  backend: postgres\n", "database.url"},
		{"redis without url", "store:\n  backend: redis\n", "redis.url"},
		{"unknown backend", "store:\n  backend: couch\n", "unknown store.backend"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
locale:
  default: es
  rtl: [ar, fa]
store:
  backend: Redis
redis:
  url: localhost:6379
  db: 2
http:
  port: 9090
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Runtime.Dev {
		t.Error("dev flag not propagated")
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("backend = %q", cfg.Store.Backend)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("redis db = %d", cfg.Redis.DB)
	}
	if cfg.HTTP.Port != 9090 || cfg.Locale.Default != "es" || len(cfg.Locale.RTL) != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml"), false); err == nil {
		t.Error("expected error for missing file")
	}
}
