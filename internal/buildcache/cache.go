package buildcache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayxg/cand/internal/token"
)

// Lookup returns the cached token vector for digest, and whether it was
// found. A found entry has its LastUsedAt and HitCount bumped.
func (s *Store) Lookup(digest string) ([]token.Token, bool, error) {
	var e Entry
	err := s.db.Where("digest = ?", digest).First(&e).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("buildcache: lookup: %w", err)
	}

	var toks []token.Token
	if err := json.Unmarshal([]byte(e.Tokens), &toks); err != nil {
		return nil, false, fmt.Errorf("buildcache: decode cached tokens: %w", err)
	}

	s.db.Model(&e).Updates(map[string]any{
		"hit_count":    e.HitCount + 1,
		"last_used_at": time.Now(),
	})
	return toks, true, nil
}

// Store records toks under digest, keyed to path for reporting. A digest
// already present is left untouched: byte-identical source always lexes to
// the same token vector, so the row is already correct (spec.md §8
// invariant 3).
func (s *Store) Store(digest, path string, toks []token.Token) error {
	encoded, err := json.Marshal(toks)
	if err != nil {
		return fmt.Errorf("buildcache: encode tokens: %w", err)
	}
	e := &Entry{
		Digest:     digest,
		Path:       path,
		Tokens:     string(encoded),
		LastUsedAt: time.Now(),
	}
	return s.db.Where(Entry{Digest: digest}).FirstOrCreate(e).Error
}

// StartRun records the beginning of one orchestrator invocation and
// returns its generated run ID.
func (s *Store) StartRun(root string) (string, error) {
	run := &Run{ID: uuid.NewString(), Root: root}
	if err := s.db.Create(run).Error; err != nil {
		return "", fmt.Errorf("buildcache: start run: %w", err)
	}
	return run.ID, nil
}

// FinishRun stamps a run's end time and hit/miss counts.
func (s *Store) FinishRun(id string, hits, misses int) error {
	now := time.Now()
	return s.db.Model(&Run{}).Where("id = ?", id).Updates(map[string]any{
		"ended_at":   now,
		"files_hit":  hits,
		"files_miss": misses,
	}).Error
}

// Stats summarizes the cache for reporting (cand cache stat).
type Stats struct {
	Entries   int64
	TotalSize int64
	OldestRow time.Time
	NewestRow time.Time
}

func (s *Store) Stats() (Stats, error) {
	var st Stats
	if err := s.db.Model(&Entry{}).Count(&st.Entries).Error; err != nil {
		return st, fmt.Errorf("buildcache: stats: %w", err)
	}
	var rows []Entry
	if err := s.db.Find(&rows).Error; err != nil {
		return st, fmt.Errorf("buildcache: stats: %w", err)
	}
	for i, e := range rows {
		st.TotalSize += int64(len(e.Tokens))
		if i == 0 || e.CreatedAt.Before(st.OldestRow) {
			st.OldestRow = e.CreatedAt
		}
		if i == 0 || e.CreatedAt.After(st.NewestRow) {
			st.NewestRow = e.CreatedAt
		}
	}
	return st, nil
}

// String renders stats the way "cand cache stat" prints them: byte counts
// and ages in human terms rather than raw numbers.
func (st Stats) String() string {
	if st.Entries == 0 {
		return "cache is empty"
	}
	return fmt.Sprintf("%d entries, %s, oldest %s, newest %s",
		st.Entries, humanize.Bytes(uint64(st.TotalSize)),
		humanize.Time(st.OldestRow), humanize.Time(st.NewestRow))
}
