package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// envKeys lists every variable Parse reads.
var envKeys = []string{
	"PREFIX", "DEVELOPERS", "RATE_EVERY", "RATE_BURST",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "LOG_COLORS", "LOG_FILE",
	"LOG_MAX_SIZE", "LOG_MAX_BACKUPS", "LOG_MAX_AGE", "LOG_COMPRESS",
}

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParse_Defaults(t *testing.T) {
	unsetEnv(t, envKeys...)

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Prefix != "!" {
		t.Errorf("Prefix = %q, want !", cfg.Prefix)
	}
	if len(cfg.Developers) != 0 {
		t.Errorf("Developers = %v, want none", cfg.Developers)
	}
	if cfg.RateBurst != 1 || cfg.RateEvery != 0 {
		t.Errorf("rate = %s/%d, want 0s/1", cfg.RateEvery, cfg.RateBurst)
	}
	if cfg.Log.Level != "info" || cfg.Log.Output != "stdout" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("PREFIX", "?")
	t.Setenv("DEVELOPERS", "111, 222,,333 ")
	t.Setenv("RATE_EVERY", "3s")
	t.Setenv("RATE_BURST", "2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Prefix != "?" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	if !reflect.DeepEqual(cfg.Developers, []string{"111", "222", "333"}) {
		t.Errorf("Developers = %#v", cfg.Developers)
	}
	if cfg.RateEvery != 3*time.Second || cfg.RateBurst != 2 {
		t.Errorf("rate = %s/%d", cfg.RateEvery, cfg.RateBurst)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	cc := cfg.Command()
	if cc.Prefix != "?" || !cc.IsDeveloper("222") || cc.IsDeveloper("444") || cc.RateEvery != 3*time.Second || cc.RateBurst != 2 {
		t.Errorf("Command() = %+v", cc)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"RATE_BURST": "0",
		"RATE_EVERY": "-1s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Parse(); err == nil {
				t.Errorf("Parse() with %s=%s succeeded", key, value)
			}
		})
	}

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("RATE_EVERY", "soon")
		if _, err := Parse(); err == nil {
			t.Error("Parse() accepted a malformed duration")
		}
	})
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PREFIX=>>\nDEVELOPERS=42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set.
	t.Setenv("PREFIX", "")
	os.Unsetenv("PREFIX")
	t.Setenv("DEVELOPERS", "")
	os.Unsetenv("DEVELOPERS")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Prefix != ">>" || !reflect.DeepEqual(cfg.Developers, []string{"42"}) {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load() with a missing file: %v", err)
	}
}
