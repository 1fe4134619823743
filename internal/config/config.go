package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds cand's ambient configuration, read once at startup.
type Config struct {
	CachePath     string
	CacheTTLRuns  int // loaded from CAND_CACHE_TTL_RUNS; the build cache does not evict rows, so nothing reads it
	DebugSQL      bool
}

// LoadConfig loads configuration from environment variables, falling back
// to sane defaults for anything unset or unparsable.
func LoadConfig() *Config {
	cfg := &Config{
		CachePath:    os.Getenv("CAND_CACHE_PATH"),
		CacheTTLRuns: 20, // default value
	}

	if cfg.CachePath == "" {
		cfg.CachePath = defaultCachePath()
	}

	if ttlStr := os.Getenv("CAND_CACHE_TTL_RUNS"); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl >= 0 {
			cfg.CacheTTLRuns = ttl
		}
	}

	if debugStr := os.Getenv("CAND_DEBUG_SQL"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.DebugSQL = debug
		}
	}

	return cfg
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".cand-cache.db"
	}
	return filepath.Join(dir, "cand", "build-cache.db")
}
