package glob

import (
	"errors"
	"testing"
)

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.txt", "a.txt", true},
		{"*.txt", "dir/a.txt", false},
		{"**", "a/b/c", true},
		{"**/c", "c", true},
		{"**/c", "a/b/c", true},
		{"a/**", "a/b/c", true},
		{"a/**", "ab/c", false},
		{"a/**/z", "a/z", true},
		{"a/**/z", "a/b/c/z", true},
		{"a/**/z", "a/b/c/y", false},
		{"a/**/**/z", "a/b/z", true},
		{"team-*/**/build-?", "team-a/sub/build-x", true},
		{"/abs/x", "abs/x", true},
		{"./x/./y", "x/y", true},
		{"src//main.go", "src/main.go", true},
		{"*.{go,mod}", "go.mod", true},
		{"*.{go,mod}", "go.sum", false},
	}
	for _, tt := range tests {
		p, err := Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.pattern, err)
		}
		if got := p.Match(tt.path); got != tt.want {
			t.Errorf("%q.Match(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestCompile_DirOnly(t *testing.T) {
	p, err := Compile("build/")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !p.DirOnly() || p.String() != "build/" {
		t.Fatalf("DirOnly=%v String=%q", p.DirOnly(), p.String())
	}
	p, err = Compile("build")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.DirOnly() {
		t.Fatal("pattern without trailing separator should not be directory-only")
	}
}

func TestCompile_Invalid(t *testing.T) {
	for _, raw := range []string{"[abc", "a/{b,c", "", "./", "../x", "a/../../b"} {
		if _, err := Compile(raw); !errors.Is(err, ErrBadPattern) {
			t.Errorf("Compile(%q) error = %v, want ErrBadPattern", raw, err)
		}
	}
}
