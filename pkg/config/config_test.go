package config

import (
	"testing"
	"time"
)

// TestConfigValidate_AppliesDefaults verifies that Validate defaults the
// environment to Test and derives the base URL from it.
func TestConfigValidate_AppliesDefaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.Environment != Test {
		t.Fatalf("unexpected environment: %s", cfg.Environment)
	}
	if cfg.APIBaseURL != TestBaseURL {
		t.Fatalf("unexpected base URL: %s", cfg.APIBaseURL)
	}
}

// TestConfigValidate_ProdBaseURL verifies the production base URL is derived
// when Environment is Prod and no override is given.
func TestConfigValidate_ProdBaseURL(t *testing.T) {
	cfg := &Config{Environment: Prod}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.APIBaseURL != ProdBaseURL {
		t.Fatalf("unexpected base URL: %s", cfg.APIBaseURL)
	}
}

// TestConfigValidate_KeepsOverride verifies an explicit APIBaseURL survives
// validation untouched.
func TestConfigValidate_KeepsOverride(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://localhost:8088/"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8088/" {
		t.Fatalf("override was replaced: %s", cfg.APIBaseURL)
	}
}

// TestConfigValidate_RejectsUnknownEnvironment verifies unknown environments
// are rejected instead of silently defaulting.
func TestConfigValidate_RejectsUnknownEnvironment(t *testing.T) {
	cfg := &Config{Environment: "staging"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

// TestTimeoutsWithDefaults verifies zero values are replaced and explicit
// values are kept.
func TestTimeoutsWithDefaults(t *testing.T) {
	tt := Timeouts{}.WithDefaults()
	if tt.Connect != 5*time.Second || tt.Request != 15*time.Second {
		t.Fatalf("unexpected defaults: %+v", tt)
	}

	tt = Timeouts{Request: time.Minute}.WithDefaults()
	if tt.Request != time.Minute {
		t.Fatalf("explicit request timeout replaced: %v", tt.Request)
	}
	if tt.Connect != 5*time.Second {
		t.Fatalf("connect default missing: %v", tt.Connect)
	}
}
