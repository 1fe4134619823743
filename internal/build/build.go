// Package build implements the orchestrator of spec.md §4.E: it resolves
// a root source file's transitive #include graph and flattens every
// file's tokens into one ordered stream the parser can consume.
package build

import (
	"os"
	"path/filepath"

	"github.com/ayxg/cand/internal/buildcache"
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/charset"
	"github.com/ayxg/cand/internal/lexer"
	"github.com/ayxg/cand/internal/token"
)

const sourceExtension = ".cand"

// File is one resolved source file's record.
type File struct {
	Path     string
	Index    int // 1-based position in the flattened order; 0 until Build finishes.
	Tokens   []token.Token
	Includes []string
}

// Result is the orchestrator's output: the flat token stream ready for
// the parser, plus the per-file records in flattening order (leaves
// first, root last; spec.md §4.E step 6).
type Result struct {
	Tokens []token.Token
	Files  []*File
}

// Build resolves root's #include graph and returns the flattened token
// stream, with no cache. root is interpreted relative to the current
// working directory if not absolute.
func Build(root string) (*Result, error) {
	return BuildWithCache(root, nil)
}

// BuildWithCache is Build, but consults cache for each file's lexed
// tokens before re-lexing, and stores freshly-lexed files back into it.
// A nil cache behaves exactly like Build. A cache failure (open error,
// corrupt row) never fails the build — it only costs a re-lex, since
// cache correctness is not load-bearing for compiler correctness.
func BuildWithCache(root string, cache *buildcache.Store) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, cerr.Wrap(cerr.CategoryBuild, cerr.KindInclusionFailure,
			"cannot resolve root path", cerr.Location{File: root}, err)
	}

	r := &resolver{
		root:     absRoot,
		files:    make(map[string]*File),
		visiting: make(map[string]bool),
		cache:    cache,
	}
	if err := r.resolve(absRoot, ""); err != nil {
		return nil, err
	}

	result := &Result{Files: r.order}
	for i, f := range r.order {
		f.Index = i + 1
		for j := range f.Tokens {
			f.Tokens[j].SetFileIndex(f.Index)
		}
		result.Tokens = append(result.Tokens, f.Tokens...)
	}
	return result, nil
}

// resolver walks the include graph with a DFS: files are appended to
// order in post-order, so by construction every dependency precedes its
// dependent (spec.md §8 invariant 6) without needing the "reposition an
// already-placed file" step the prose describes — post-order DFS and
// that repositioning scheme produce the same final order.
type resolver struct {
	root     string
	files    map[string]*File
	visiting map[string]bool // files currently on the DFS stack (cycle detection)
	order    []*File
	cache    *buildcache.Store
	CacheHits, CacheMisses int
}

// resolve lexes path (if not already resolved) and recurses into its
// includes. includedFrom is the including file's path, or "" for the
// root.
func (r *resolver) resolve(path, includedFrom string) error {
	if includedFrom != "" && path == includedFrom {
		return cerr.Wrap(cerr.CategoryBuild, cerr.KindInclusionFailure,
			"a file may not include itself: "+path, cerr.Location{File: includedFrom}, cerr.ErrSelfInclude)
	}
	if existing, ok := r.files[path]; ok && existing != nil {
		// Still on the DFS stack: this include closes a cycle back to an
		// ancestor, the root included (spec.md §8 scenario 5: "must fail
		// with ... Circular dependency").
		if r.visiting[path] {
			return cerr.Wrap(cerr.CategoryBuild, cerr.KindInclusionFailure,
				"circular dependency between "+includedFrom+" and "+path,
				cerr.Location{File: includedFrom}, cerr.ErrCircularDependency)
		}
		// Already fully resolved. Diamond-including a non-root file is
		// fine; re-including the root after it has already been flattened
		// is its own distinct failure mode.
		if path == r.root {
			return cerr.Wrap(cerr.CategoryBuild, cerr.KindInclusionFailure,
				"a file may not re-include the root: "+path, cerr.Location{File: includedFrom}, cerr.ErrRootReinclude)
		}
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return cerr.Wrap(cerr.CategoryBuild, cerr.KindInclusionFailure,
			"file does not exist: "+path, cerr.Location{File: path}, err)
	}
	if !info.Mode().IsRegular() {
		return cerr.At(cerr.CategoryBuild, cerr.KindInclusionFailure,
			"not a regular file: "+path, cerr.Location{File: path})
	}
	if filepath.Ext(path) != sourceExtension {
		return cerr.At(cerr.CategoryBuild, cerr.KindInclusionFailure,
			"expected a "+sourceExtension+" file, got "+path, cerr.Location{File: path})
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return cerr.Wrap(cerr.CategoryBuild, cerr.KindFailedToReadFile,
			"cannot open "+path, cerr.Location{File: path}, err)
	}
	for i, b := range src {
		if !charset.IsValidSourceByte(b) {
			return cerr.At(cerr.CategoryBuild, cerr.KindForbiddenSourceChar,
				"forbidden source byte 0x"+byteHex(b)+" in "+path, cerr.Location{File: path, Line: 1, Col: i + 1})
		}
	}

	toks, err := r.lex(path, src)
	if err != nil {
		return err
	}

	rec := &File{Path: path}
	r.files[path] = rec
	r.visiting[path] = true

	dir := filepath.Dir(path)
	for i := 0; i < len(toks); i++ {
		if toks[i].Kind != token.KindDirInclude {
			continue
		}
		if i+1 >= len(toks) || toks[i+1].Kind != token.KindStringLit {
			return cerr.At(cerr.CategoryBuild, cerr.KindInclusionFailure,
				"#include must be followed by a string literal", cerr.Location{
					File: path, Line: toks[i].Span.Line, Col: toks[i].Span.Col,
				})
		}
		incPath := toks[i+1].Literal
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(dir, incPath)
		}
		rec.Includes = append(rec.Includes, incPath)
		if err := r.resolve(incPath, path); err != nil {
			return err
		}
	}

	delete(r.visiting, path)
	rec.Tokens = toks
	r.order = append(r.order, rec)
	return nil
}

// lex returns path's token vector, consulting the cache first when one is
// configured. A forbidden-byte pass has already run on src by the caller,
// so a cache hit is always safe to trust without re-validating.
func (r *resolver) lex(path string, src []byte) ([]token.Token, error) {
	if r.cache == nil {
		return lexer.New(src, 0).Run()
	}

	digest := buildcache.Digest(src)
	if toks, ok, err := r.cache.Lookup(digest); err == nil && ok {
		r.CacheHits++
		return toks, nil
	}

	toks, err := lexer.New(src, 0).Run()
	if err != nil {
		return nil, err
	}
	r.CacheMisses++
	_ = r.cache.Store(digest, path, toks) // best-effort: a failed write only costs the next build a re-lex.
	return toks, nil
}

const hexDigits = "0123456789abcdef"

func byteHex(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}
