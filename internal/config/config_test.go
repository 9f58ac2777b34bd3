package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "globs.yaml", `
directory: src
include:
  - "**/*.go"
  - "go.mod"
exclude:
  - "**/*_test.go"
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(f.Include, []string{"**/*.go", "go.mod"}) {
		t.Errorf("Include = %q", f.Include)
	}
	if !reflect.DeepEqual(f.Exclude, []string{"**/*_test.go"}) {
		t.Errorf("Exclude = %q", f.Exclude)
	}
	if want := filepath.Join(filepath.Dir(path), "src"); f.Directory != want {
		t.Errorf("Directory = %q, want %q", f.Directory, want)
	}
}

func TestLoad_JSONC(t *testing.T) {
	path := writeConfig(t, "globs.jsonc", `{
  // Sources only.
  "directory": "/abs/root",
  "include": ["*.txt", "docs/**",],
  /* nothing excluded yet */
  "exclude": [],
}`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(f.Include, []string{"*.txt", "docs/**"}) {
		t.Errorf("Include = %q", f.Include)
	}
	if len(f.Exclude) != 0 {
		t.Errorf("Exclude = %q", f.Exclude)
	}
	if f.Directory != "/abs/root" {
		t.Errorf("Directory = %q", f.Directory)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	f, err := Load(writeConfig(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Include) != 0 || len(f.Exclude) != 0 || f.Directory != "" {
		t.Fatalf("expected zero config, got %+v", f)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	for name, content := range map[string]string{
		"typo.yaml": "includes:\n  - '*.go'\n",
		"typo.json": `{"excludes": ["x"]}`,
	} {
		if _, err := Load(writeConfig(t, name, content)); err == nil {
			t.Errorf("%s: expected error for unknown field", name)
		}
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "globs.toml", "include = []"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
}
