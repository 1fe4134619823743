// Command cand drives the build orchestrator and parser over a root
// source file and prints either the resulting concrete syntax tree or the
// first diagnostic encountered (spec.md §6).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayxg/cand/internal/build"
	"github.com/ayxg/cand/internal/buildcache"
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/config"
	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/cstprint"
	"github.com/ayxg/cand/internal/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadConfig()

	var (
		jsonOutput bool
		noCache    bool
		tree       bool
		cachePath  string
		debugSQL   bool
	)

	root := &cobra.Command{
		Use:          "cand",
		Short:        "Parse a cand source file and its #include graph",
		SilenceUsage: true,
	}

	buildCmd := &cobra.Command{
		Use:   "build <root-file>",
		Short: "Resolve includes, lex, and parse a cand program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], buildOptions{
				jsonOutput: jsonOutput,
				noCache:    noCache,
				tree:       tree,
				cachePath:  cachePath,
				debugSQL:   debugSQL,
			})
		},
	}
	buildCmd.Flags().BoolVar(&jsonOutput, "json", false, "print diagnostics as JSON (the CST is still printed as text)")
	buildCmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the lexed-token cache")
	buildCmd.Flags().BoolVar(&tree, "tree", false, "print the CST as an indented tree instead of an S-expression")
	buildCmd.Flags().StringVar(&cachePath, "cache", cfg.CachePath, "path to the build cache database")
	buildCmd.Flags().BoolVar(&debugSQL, "debug-sql", cfg.DebugSQL, "log cache SQL statements")

	cacheCmd := &cobra.Command{Use: "cache", Short: "Inspect the build cache"}
	statCmd := &cobra.Command{
		Use:   "stat",
		Short: "Print cache size and age",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheStat(cachePath)
		},
	}
	statCmd.Flags().StringVar(&cachePath, "cache", cfg.CachePath, "path to the build cache database")
	cacheCmd.AddCommand(statCmd)

	root.AddCommand(buildCmd, cacheCmd)
	return root
}

type buildOptions struct {
	jsonOutput bool
	noCache    bool
	tree       bool
	cachePath  string
	debugSQL   bool
}

func runBuild(rootFile string, opts buildOptions) error {
	var cache *buildcache.Store
	if !opts.noCache {
		c, err := buildcache.Open(opts.cachePath, opts.debugSQL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: build cache unavailable, continuing without it: %v\n", err)
		} else {
			cache = c
			defer cache.Close()
		}
	}

	var runID string
	if cache != nil {
		if id, err := cache.StartRun(rootFile); err == nil {
			runID = id
		}
	}

	res, err := build.BuildWithCache(rootFile, cache)
	if err != nil {
		if cache != nil && runID != "" {
			_ = cache.FinishRun(runID, 0, 0)
		}
		return report(err, opts.jsonOutput)
	}

	var t cst.Tree
	treeRoot, err := parser.ParseProgram(res.Tokens, &t)
	if cache != nil && runID != "" {
		_ = cache.FinishRun(runID, len(res.Files), 0)
	}
	if err != nil {
		return report(err, opts.jsonOutput)
	}

	if opts.tree {
		fmt.Println(cstprint.SprintIndented(&t, treeRoot))
	} else {
		fmt.Println(cstprint.Sprint(&t, treeRoot))
	}
	return nil
}

func runCacheStat(cachePath string) error {
	cache, err := buildcache.Open(cachePath, false)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	stats, err := cache.Stats()
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}
	fmt.Println(stats.String())
	return nil
}

// report prints err the way spec.md §6 specifies: a human string to
// stderr, or (with --json) the cerr.Error's JSON payload.
func report(err error, jsonOutput bool) error {
	var ce *cerr.Error
	if errors.As(err, &ce) && jsonOutput {
		fmt.Println(ce.JSON())
		return err
	}
	fmt.Fprintln(os.Stderr, err.Error())
	return err
}
