// Package glob resolves include and exclude pattern lists to a deterministic
// set of paths under a base directory.
package glob

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Config lists the include and exclude patterns of a Resolver.
type Config struct {
	Include []string `yaml:"include" json:"include"`
	Exclude []string `yaml:"exclude" json:"exclude"`
}

// Resolver expands a fixed set of compiled patterns against any number of
// base directories. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	include []Pattern
	exclude []Pattern
}

// NewResolver compiles every pattern in cfg. A malformed pattern fails here,
// not at resolution time.
func NewResolver(cfg Config) (*Resolver, error) {
	include, err := compileAll(cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}
	exclude, err := compileAll(cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}
	return &Resolver{include: include, exclude: exclude}, nil
}

func compileAll(raw []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		p, err := Compile(r)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// Resolve returns the matching paths under dir. An empty dir means the
// process working directory.
func (r *Resolver) Resolve(dir string) []string {
	return r.ResolveDetailed(dir).Files
}

// ResolveDetailed resolves dir and reports whether any include patterns
// were configured.
//
// The resolution process:
//  1. dir is made absolute (the working directory if empty)
//  2. the tree is walked (symlinks below the root are not followed);
//     excluded directories are skipped entirely
//  3. every entry matching an include and no exclude is collected
//  4. paths are strictly sorted lexicographically
//
// Filesystem errors never surface: a missing root, an unreadable subtree or
// an entry removed mid-walk contribute no matches.
func (r *Resolver) ResolveDetailed(dir string) *Result {
	res := &Result{Files: []string{}, HasPatterns: len(r.include) > 0}

	root, err := absRoot(dir)
	if err != nil {
		return res
	}
	res.Root = root
	if !res.HasPatterns {
		return res
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return res
	}

	_ = fs.WalkDir(os.DirFS(root), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil || rel == "." {
			return nil
		}
		isDir := d.IsDir()

		if r.excluded(rel, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if r.included(rel, isDir) {
			res.Files = append(res.Files, filepath.Join(root, filepath.FromSlash(rel)))
		}
		return nil
	})

	// WalkDir order is per-directory; sort explicitly for a total order.
	sort.Strings(res.Files)
	return res
}

func (r *Resolver) included(rel string, isDir bool) bool {
	for _, p := range r.include {
		if p.dirOnly != isDir {
			continue
		}
		if p.Match(rel) {
			return true
		}
	}
	return false
}

// excluded applies gitignore conventions: a pattern without a trailing '/'
// excludes files and directories alike, and excluding a directory excludes
// everything beneath it.
func (r *Resolver) excluded(rel string, isDir bool) bool {
	for _, p := range r.exclude {
		if p.dirOnly && !isDir {
			continue
		}
		if p.Match(rel) {
			return true
		}
	}
	return false
}

func absRoot(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}
