package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.SimulatedDelay != 2*time.Second {
		t.Errorf("Expected simulated delay 2s, got %s", opts.SimulatedDelay)
	}
	if opts.StatusClearDelay != 3*time.Second {
		t.Errorf("Expected status clear delay 3s, got %s", opts.StatusClearDelay)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Default options should validate: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	opts, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults, got %+v", opts)
	}

	opts, err = LoadFile("")
	if err != nil || opts != DefaultOptions() {
		t.Errorf("Empty path should yield defaults, got %+v, %v", opts, err)
	}
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, "download:\n  simulated_delay: 500ms\n  status_clear_delay: 1s\n")

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if opts.SimulatedDelay != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %s", opts.SimulatedDelay)
	}
	if opts.StatusClearDelay != time.Second {
		t.Errorf("Expected 1s, got %s", opts.StatusClearDelay)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "download:\n  simulated_delay: 10ms\n")

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if opts.StatusClearDelay != DefaultStatusClearDelay {
		t.Errorf("Expected default status clear delay, got %s", opts.StatusClearDelay)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "download: [", "parse config"},
		{"bad duration", "download:\n  simulated_delay: soon\n", "download.simulated_delay"},
		{"negative", "download:\n  status_clear_delay: -1s\n", "out of range"},
		{"too long", "download:\n  simulated_delay: 2m\n", "out of range"},
	}

	for _, test := range tests {
		_, err := LoadFile(writeConfig(t, test.body))
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: expected error containing %q, got %v", test.name, test.want, err)
		}
	}
}
