package buildcache

import "time"

// Entry is one cached file's lexed token vector, keyed by the SHA1 digest
// of its source bytes. A cache hit on Digest means the file's tokens can be
// reused without re-lexing, the same byte-content producing the same
// token vector every time (spec.md §8 invariant 3).
type Entry struct {
	Digest     string `gorm:"primaryKey;type:varchar(40)"`
	Path       string `gorm:"type:text;index"`
	Tokens     string `gorm:"type:text"` // JSON-encoded []token.Token
	HitCount   int    `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	LastUsedAt time.Time
}

// Run records one invocation of the orchestrator, the way the teacher's
// Session record tracked one MCP session's statistics.
type Run struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Root      string `gorm:"type:text"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time
	FilesHit  int
	FilesMiss int
}

func (Entry) TableName() string { return "cache_entries" }
func (Run) TableName() string   { return "runs" }
