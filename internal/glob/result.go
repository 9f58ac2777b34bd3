package glob

import (
	"path/filepath"
)

// Result is the outcome of resolving one base directory.
type Result struct {
	// Root is the absolute base directory, empty if it could not be determined.
	Root string

	// Files holds absolute, cleaned paths in lexicographic order, without
	// duplicates.
	Files []string

	// HasPatterns is true when at least one include pattern was configured.
	// Together with IsEmpty it separates "nothing requested" from
	// "requested but nothing matched".
	HasPatterns bool
}

// IsEmpty reports whether no path matched.
func (r *Result) IsEmpty() bool {
	return len(r.Files) == 0
}

// Relative returns Files as slash-separated paths relative to Root.
func (r *Result) Relative() []string {
	rel := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		p, err := filepath.Rel(r.Root, f)
		if err != nil {
			p = f
		}
		rel = append(rel, filepath.ToSlash(p))
	}
	return rel
}
