package glob

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is the kind of every pattern compilation failure.
var ErrBadPattern = errors.New("bad glob pattern")

// PatternError reports a pattern that cannot be compiled.
type PatternError struct {
	Pattern string
	Msg     string
}

func (e *PatternError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %s", ErrBadPattern.Error(), e.Pattern, e.Msg)
}

func (e *PatternError) Unwrap() error { return ErrBadPattern }

func badPatternf(pattern, format string, args ...any) error {
	return &PatternError{Pattern: pattern, Msg: fmt.Sprintf(format, args...)}
}

// Pattern is a compiled glob pattern, relative to a base directory.
//
// Syntax is doublestar's: '*', '?', '[...]' and '{a,b}' within a segment,
// and a "**" segment matching zero or more whole segments. A trailing '/'
// restricts the pattern to directories.
type Pattern struct {
	raw     string
	pattern string
	dirOnly bool
}

// Compile parses a pattern. It fails on malformed syntax, on empty
// patterns, and on ".." segments, which would escape the base directory.
func Compile(raw string) (Pattern, error) {
	p := filepath.ToSlash(strings.TrimSpace(raw))

	dirOnly := strings.HasSuffix(p, "/")
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			return Pattern{}, badPatternf(raw, "'..' escapes the base directory")
		case "**":
			// Consecutive ** segments are equivalent to one.
			if n := len(segments); n > 0 && segments[n-1] == "**" {
				continue
			}
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return Pattern{}, badPatternf(raw, "pattern is empty")
	}

	pattern := strings.Join(segments, "/")
	if !doublestar.ValidatePattern(pattern) {
		return Pattern{}, badPatternf(raw, "%v", doublestar.ErrBadPattern)
	}
	return Pattern{raw: raw, pattern: pattern, dirOnly: dirOnly}, nil
}

// String returns the pattern as written.
func (p Pattern) String() string { return p.raw }

// DirOnly reports whether the pattern only matches directories.
func (p Pattern) DirOnly() bool { return p.dirOnly }

// Match reports whether a slash-separated path relative to the base
// directory matches the pattern, ignoring the directory restriction.
func (p Pattern) Match(rel string) bool {
	// Compile validated the pattern, so err is always nil.
	ok, _ := doublestar.Match(p.pattern, rel)
	return ok
}
