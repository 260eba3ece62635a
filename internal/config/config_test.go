package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	yaml := `
sources:
  urls:
    - http://mirror-a.example.com/djia/
    - http://mirror-b.example.com/djia/
  timeout: 2s
logging:
  level: debug
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantURLs := []string{
		"http://mirror-a.example.com/djia/",
		"http://mirror-b.example.com/djia/",
	}
	if diff := cmp.Diff(wantURLs, cfg.Sources.URLs); diff != "" {
		t.Errorf("Sources.URLs mismatch (-want +got):\n%s", diff)
	}
	if cfg.Sources.Timeout.Std() != 2*time.Second {
		t.Errorf("Sources.Timeout = %v, want %v", cfg.Sources.Timeout.Std(), 2*time.Second)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DJIA_MIRROR", "http://internal-mirror.example.com/djia/")

	yaml := `
sources:
  urls:
    - ${TEST_DJIA_MIRROR}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Sources.URLs) != 1 || cfg.Sources.URLs[0] != "http://internal-mirror.example.com/djia/" {
		t.Errorf("Sources.URLs = %v, want the expanded mirror", cfg.Sources.URLs)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "logging:\n  level: warn\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if len(cfg.Sources.URLs) != 4 {
		t.Errorf("len(Sources.URLs) = %d, want the 4 default mirrors", len(cfg.Sources.URLs))
	}
	if cfg.Sources.Timeout != DefaultTimeout {
		t.Errorf("Sources.Timeout = %v, want default %v", cfg.Sources.Timeout, DefaultTimeout)
	}
	// Explicit fields survive
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Sources: SourcesConfig{
			URLs:    []string{"http://geo.crox.net/djia/"},
			Timeout: Duration(5 * time.Second),
		},
		Logging: LoggingConfig{Level: "info"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "no mirrors",
			mutate:  func(c *Config) { c.Sources.URLs = nil },
			wantErr: "sources.urls must list at least one mirror",
		},
		{
			name:    "relative mirror url",
			mutate:  func(c *Config) { c.Sources.URLs = []string{"djia/"} },
			wantErr: `sources.urls entry "djia/" must be an absolute http(s) URL`,
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.Sources.URLs = []string{"ftp://geo.crox.net/djia/"} },
			wantErr: `sources.urls entry "ftp://geo.crox.net/djia/" must be an absolute http(s) URL`,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Sources.Timeout = 0 },
			wantErr: "sources.timeout must be positive",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: `logging.level must be one of debug, info, warn, error, got "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Sources.URLs = append([]string(nil), valid.Sources.URLs...)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func TestDurationUnmarshal(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		path := writeTempFile(t, "sources:\n  timeout: fast\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error for unparseable duration, got nil")
		}
	})

	t.Run("sub-second duration", func(t *testing.T) {
		path := writeTempFile(t, "sources:\n  timeout: 250ms\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Sources.Timeout.Std() != 250*time.Millisecond {
			t.Errorf("Timeout = %v, want 250ms", cfg.Sources.Timeout.Std())
		}
	})
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
