package buildcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayxg/cand/internal/token"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupMiss(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Lookup(Digest([]byte("def int@x;")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreThenLookupHit(t *testing.T) {
	s := openTestStore(t)
	src := []byte("def int@x;")
	digest := Digest(src)
	toks := []token.Token{
		token.NewLiteral(token.KindIdent, "x", token.Span{Line: 1, Col: 5}),
	}

	require.NoError(t, s.Store(digest, "x.cand", toks))

	got, ok, err := s.Lookup(digest)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, toks, got)
}

func TestStoreIsIdempotentForSameDigest(t *testing.T) {
	s := openTestStore(t)
	digest := Digest([]byte("same bytes"))
	toks := []token.Token{token.NewLiteral(token.KindIdent, "a", token.Span{})}

	require.NoError(t, s.Store(digest, "first.cand", toks))
	require.NoError(t, s.Store(digest, "second.cand", toks))

	var count int64
	s.db.Model(&Entry{}).Where("digest = ?", digest).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRunLifecycle(t *testing.T) {
	s := openTestStore(t)
	id, err := s.StartRun("/tmp/root.cand")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.FinishRun(id, 2, 1))

	var run Run
	require.NoError(t, s.db.First(&run, "id = ?", id).Error)
	assert.Equal(t, 2, run.FilesHit)
	assert.Equal(t, 1, run.FilesMiss)
	assert.NotNil(t, run.EndedAt)
}

func TestStatsOnEmptyCache(t *testing.T) {
	s := openTestStore(t)
	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Entries)
	assert.Equal(t, "cache is empty", st.String())
}

func TestStatsAfterStore(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Store(Digest([]byte("a")), "a.cand", []token.Token{
		token.NewLiteral(token.KindIdent, "a", token.Span{}),
	}))

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Entries)
	assert.NotEqual(t, "cache is empty", st.String())
}
