package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want 8080", cfg.Port)
	}
	// Client paths already carry the /api prefix; the base URL is host-only.
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://localhost:5000")
	}
	if cfg.StatePath != "artha-web.db" {
		t.Fatalf("StatePath = %q, want %q", cfg.StatePath, "artha-web.db")
	}
}

func TestParseConfigOverridePort(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Port != 9002 {
		t.Fatalf("Port = %d, want 9002", cfg.Port)
	}
}

func TestParseConfigOverrideAPIBaseURL(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-api-base-url", "https://api.example.com"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "https://api.example.com")
	}
}

func TestParseConfigOverrideStatePath(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-state-path", "/tmp/state.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StatePath != "/tmp/state.db" {
		t.Fatalf("StatePath = %q, want %q", cfg.StatePath, "/tmp/state.db")
	}
}
