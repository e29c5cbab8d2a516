// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"API_BASE_URL",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	}
	// envOrDefault treats empty the same as unset, so blanking the vars is
	// enough to exercise the defaults (t.Setenv restores them afterwards).
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "3000")
	check("Env", cfg.Env, "development")
	check("APIBaseURL", cfg.APIBaseURL, "http://localhost:8000")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
}

// TestLoad_EnvOverrides verifies that environment variables override the
// default values.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":        "127.0.0.1",
		"APP_PORT":        "9090",
		"APP_ENV":         "testing",
		"API_BASE_URL":    "https://api.souarteemcuidados.com.br",
		"VALKEY_HOST":     "cache.internal",
		"VALKEY_PORT":     "6380",
		"VALKEY_PASSWORD": "secret",
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != "9090" || cfg.Env != "testing" {
		t.Errorf("server settings not overridden: %+v", cfg)
	}
	if cfg.APIBaseURL != "https://api.souarteemcuidados.com.br" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.ValkeyHost != "cache.internal" || cfg.ValkeyPort != "6380" || cfg.ValkeyPassword != "secret" {
		t.Errorf("valkey settings not overridden: %+v", cfg)
	}
}

// TestLoad_ProductionRequiresAPIBaseURL verifies the production guard rail.
func TestLoad_ProductionRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail in production without API_BASE_URL")
	} else if !strings.Contains(err.Error(), "API_BASE_URL") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}

	t.Setenv("API_BASE_URL", "https://api.souarteemcuidados.com.br")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() with API_BASE_URL set: %v", err)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: "3000"}
	if got := cfg.Addr(); got != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestIsDev(t *testing.T) {
	if !(&Config{Env: "development"}).IsDev() {
		t.Error("development should be dev")
	}
	if (&Config{Env: "production"}).IsDev() {
		t.Error("production should not be dev")
	}
}
