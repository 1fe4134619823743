package config

import (
	"os"
	"testing"
)

func TestLoadConfig_DefaultValues(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	cfg := LoadConfig()

	if cfg.CacheTTLRuns != 20 {
		t.Errorf("Expected CacheTTLRuns 20, got %d", cfg.CacheTTLRuns)
	}
	if cfg.DebugSQL {
		t.Errorf("Expected DebugSQL false by default")
	}
	if cfg.CachePath == "" {
		t.Errorf("Expected a non-empty default CachePath")
	}
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("CAND_CACHE_PATH", "/tmp/custom-cand-cache.db")
	os.Setenv("CAND_CACHE_TTL_RUNS", "50")
	os.Setenv("CAND_DEBUG_SQL", "true")

	cfg := LoadConfig()

	if cfg.CachePath != "/tmp/custom-cand-cache.db" {
		t.Errorf("Expected CachePath '/tmp/custom-cand-cache.db', got '%s'", cfg.CachePath)
	}
	if cfg.CacheTTLRuns != 50 {
		t.Errorf("Expected CacheTTLRuns 50, got %d", cfg.CacheTTLRuns)
	}
	if !cfg.DebugSQL {
		t.Errorf("Expected DebugSQL true")
	}
}

func TestLoadConfig_InvalidIntegerFallsBackToDefault(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("CAND_CACHE_TTL_RUNS", "not-a-number")

	cfg := LoadConfig()

	if cfg.CacheTTLRuns != 20 {
		t.Errorf("Expected CacheTTLRuns 20 (default), got %d", cfg.CacheTTLRuns)
	}
}

func TestLoadConfig_NegativeTTLFallsBackToDefault(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("CAND_CACHE_TTL_RUNS", "-5")

	cfg := LoadConfig()

	if cfg.CacheTTLRuns != 20 {
		t.Errorf("Expected CacheTTLRuns 20 (default for negative), got %d", cfg.CacheTTLRuns)
	}
}

func TestLoadConfig_ZeroTTLIsAccepted(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("CAND_CACHE_TTL_RUNS", "0")

	cfg := LoadConfig()

	if cfg.CacheTTLRuns != 0 {
		t.Errorf("Expected CacheTTLRuns 0, got %d", cfg.CacheTTLRuns)
	}
}

func TestLoadConfig_InvalidDebugSQLFallsBackToDefault(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("CAND_DEBUG_SQL", "not-a-bool")

	cfg := LoadConfig()

	if cfg.DebugSQL {
		t.Errorf("Expected DebugSQL false (default) for unparsable value")
	}
}

func clearConfigEnvVars() {
	envVars := []string{
		"CAND_CACHE_PATH",
		"CAND_CACHE_TTL_RUNS",
		"CAND_DEBUG_SQL",
	}
	for _, envVar := range envVars {
		os.Unsetenv(envVar)
	}
}
