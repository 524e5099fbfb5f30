package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantError string
	}{
		{
			name:      "defaults",
			mutate:    func(cfg *Config) {},
			wantError: "",
		},
		{
			name:      "negative workers",
			mutate:    func(cfg *Config) { cfg.Search.Workers = -2 },
			wantError: "invalid search workers",
		},
		{
			name:      "unknown index",
			mutate:    func(cfg *Config) { cfg.Search.Index = "quadtree" },
			wantError: "allowed: prefix, scan",
		},
		{
			name:      "unknown format",
			mutate:    func(cfg *Config) { cfg.Output.Format = "xml" },
			wantError: "invalid output format",
		},
		{
			name:      "unknown log level",
			mutate:    func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantError: "invalid logging level",
		},
		{
			name:      "upper case log level",
			mutate:    func(cfg *Config) { cfg.Logging.Level = "DEBUG" },
			wantError: "",
		},
		{
			name:      "negative rotation",
			mutate:    func(cfg *Config) { cfg.Logging.MaxBackups = -1 },
			wantError: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantError)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Search: SearchConfig{Workers: 4}}
	ApplyDefaults(cfg)

	if cfg.Search.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Search.Workers)
	}
	if cfg.Search.Index != "scan" {
		t.Errorf("Index = %q, want scan", cfg.Search.Index)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load("absent.yaml")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Search.Workers != 1 || cfg.Search.Index != "scan" {
			t.Errorf("Load() = %+v, want defaults", cfg.Search)
		}
	})

	t.Run("file values", func(t *testing.T) {
		content := `search:
  workers: 3
  index: prefix
  allow_diagonal_edges: true
output:
  format: yaml
logging:
  level: debug
`
		if err := os.WriteFile("tilerect.yaml", []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(DefaultPath)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Search.Workers != 3 || cfg.Search.Index != "prefix" || !cfg.Search.AllowDiagonalEdges {
			t.Errorf("Search = %+v", cfg.Search)
		}
		if cfg.Output.Format != "yaml" || cfg.Logging.Level != "debug" {
			t.Errorf("Output = %+v, Logging = %+v", cfg.Output, cfg.Logging)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if err := os.WriteFile("broken.yaml", []byte("search: [1, 2"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load("broken.yaml"); err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("Load() error = %v, want parse error", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() expected validation error")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(".env", []byte("TILERECT_INDEX=prefix\nTILERECT_WORKERS=2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Process environment wins over .env.
	t.Setenv("TILERECT_WORKERS", "6")
	t.Setenv("TILERECT_ALLOW_DIAGONAL", "true")
	t.Setenv("TILERECT_LOG_LEVEL", "warn")
	// godotenv sets TILERECT_INDEX on the process; clear it after the test.
	t.Setenv("TILERECT_INDEX", "")
	os.Unsetenv("TILERECT_INDEX")

	cfg := &Config{}
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Search.Index != "prefix" {
		t.Errorf("Index = %q, want prefix", cfg.Search.Index)
	}
	if cfg.Search.Workers != 6 {
		t.Errorf("Workers = %d, want 6", cfg.Search.Workers)
	}
	if !cfg.Search.AllowDiagonalEdges {
		t.Error("AllowDiagonalEdges = false, want true")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TILERECT_WORKERS", "many")

	err := ApplyEnv(&Config{})
	if err == nil || !strings.Contains(err.Error(), "TILERECT_WORKERS") {
		t.Errorf("ApplyEnv() error = %v, want TILERECT_WORKERS error", err)
	}
}
