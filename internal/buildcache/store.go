// Package buildcache persists lexed token vectors across builds, keyed by
// the SHA1 digest of each file's source bytes, so an unchanged #include
// dependency doesn't pay the lexer twice in a row. It is the orchestrator's
// ambient addition: internal/build calls it, but never depends on it to
// produce correct results — a cold or corrupt cache degrades to a full
// relex, never to a wrong answer.
package buildcache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the cache database connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite cache file at path, creating its parent
// directory and running migrations as needed. path == ":memory:" opens an
// ephemeral in-process cache, used by tests.
func Open(path string, debug bool) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("buildcache: create cache directory: %w", err)
		}
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("buildcache: connect: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}, &Run{}); err != nil {
		return nil, fmt.Errorf("buildcache: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
