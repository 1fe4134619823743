package build

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayxg/cand/internal/buildcache"
	"github.com/ayxg/cand/internal/cerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestBuildIncludeTransitivity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cand", "def int@b;")
	writeFile(t, dir, "a.cand", "#include 'b.cand'\ndef int@a;")
	root := writeFile(t, dir, "root.cand", "#include 'a.cand'\ndef int@r;")

	res, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("got %d files, want 3", len(res.Files))
	}
	wantOrder := []string{"b.cand", "a.cand", "root.cand"}
	for i, want := range wantOrder {
		if got := filepath.Base(res.Files[i].Path); got != want {
			t.Fatalf("file %d: got %q, want %q", i, got, want)
		}
		if res.Files[i].Index != i+1 {
			t.Fatalf("file %d: got index %d, want %d", i, res.Files[i].Index, i+1)
		}
	}
	for _, tk := range res.Tokens {
		if tk.Span.FileIndex < 1 || tk.Span.FileIndex > 3 {
			t.Fatalf("token %+v has unexpected file index", tk)
		}
	}
	// a's tokens precede root's.
	firstAIdx, firstRootIdx := -1, -1
	for i, tk := range res.Tokens {
		if tk.Span.FileIndex == 2 && firstAIdx == -1 {
			firstAIdx = i
		}
		if tk.Span.FileIndex == 3 && firstRootIdx == -1 {
			firstRootIdx = i
		}
	}
	if !(firstAIdx < firstRootIdx) {
		t.Fatalf("expected a.cand's tokens before root.cand's")
	}
}

func TestBuildCircularIncludeDetection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cand", "#include 'a.cand'\n")
	root := writeFile(t, dir, "a.cand", "#include 'b.cand'\n")

	_, err := Build(root)
	if err == nil {
		t.Fatal("expected a circular dependency error")
	}
	if !errors.Is(err, cerr.ErrCircularDependency) {
		t.Fatalf("got %v, want cerr.ErrCircularDependency", err)
	}
}

func TestBuildSelfInclusionRejected(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "self.cand", "#include 'self.cand'\n")

	_, err := Build(root)
	if !errors.Is(err, cerr.ErrSelfInclude) {
		t.Fatalf("got %v, want cerr.ErrSelfInclude", err)
	}
}

func TestBuildDiamondIncludeIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.cand", "def int@s;")
	writeFile(t, dir, "a.cand", "#include 'shared.cand'\ndef int@a;")
	writeFile(t, dir, "b.cand", "#include 'shared.cand'\ndef int@b;")
	root := writeFile(t, dir, "root.cand", "#include 'a.cand'\n#include 'b.cand'\n")

	res, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Files) != 4 {
		t.Fatalf("got %d files, want 4 (shared.cand resolved once)", len(res.Files))
	}
}

func TestBuildWrongExtensionRejected(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.txt", "def int@x;")

	_, err := Build(root)
	var cerrErr *cerr.Error
	if !errors.As(err, &cerrErr) || cerrErr.Kind != cerr.KindInclusionFailure {
		t.Fatalf("got %v, want a KindInclusionFailure error", err)
	}
}

func TestBuildForbiddenSourceByteRejected(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.cand", "def int@x\x01;")

	_, err := Build(root)
	var cerrErr *cerr.Error
	if !errors.As(err, &cerrErr) || cerrErr.Kind != cerr.KindForbiddenSourceChar {
		t.Fatalf("got %v, want a KindForbiddenSourceChar error", err)
	}
}

func TestBuildWithCacheReusesTokensOnSecondBuild(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.cand", "def int@x;")

	cache, err := buildcache.Open(":memory:", false)
	if err != nil {
		t.Fatalf("buildcache.Open: %v", err)
	}
	defer cache.Close()

	absRoot, _ := filepath.Abs(root)
	r1 := &resolver{root: absRoot, files: map[string]*File{}, visiting: map[string]bool{}, cache: cache}
	if err := r1.resolve(absRoot, ""); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if r1.CacheMisses != 1 || r1.CacheHits != 0 {
		t.Fatalf("first build: got hits=%d misses=%d, want 0/1", r1.CacheHits, r1.CacheMisses)
	}

	r2 := &resolver{root: absRoot, files: map[string]*File{}, visiting: map[string]bool{}, cache: cache}
	if err := r2.resolve(absRoot, ""); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if r2.CacheHits != 1 || r2.CacheMisses != 0 {
		t.Fatalf("second build: got hits=%d misses=%d, want 1/0", r2.CacheHits, r2.CacheMisses)
	}
}

func TestBuildMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Build(filepath.Join(dir, "missing.cand"))
	var cerrErr *cerr.Error
	if !errors.As(err, &cerrErr) || cerrErr.Kind != cerr.KindInclusionFailure {
		t.Fatalf("got %v, want a KindInclusionFailure error", err)
	}
}
