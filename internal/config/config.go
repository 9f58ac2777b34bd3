// Package config loads glob resolver configuration from disk.
//
// Two formats are accepted, selected by file extension:
//   - .yaml / .yml
//   - .json / .jsonc (JSON extended with comments and trailing commas)
//
// Unknown fields are rejected so a misspelled key fails loudly instead of
// silently resolving nothing.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"actionkit/internal/glob"
)

// ErrUnsupportedFormat is returned for files whose extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the on-disk configuration.
type File struct {
	// Directory is the base directory to resolve against. Relative values
	// are resolved against the directory containing the config file.
	Directory string `yaml:"directory" json:"directory"`

	glob.Config `yaml:",inline"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = ParseYAML(data)
	case ".json", ".jsonc":
		f, err = ParseJSONC(data)
	default:
		return nil, fmt.Errorf("%w: %q (expected .yaml, .yml, .json or .jsonc)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f.Directory != "" && !filepath.IsAbs(f.Directory) {
		f.Directory = filepath.Join(filepath.Dir(path), f.Directory)
	}
	return f, nil
}

// ParseYAML parses YAML configuration.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml config: %w", err)
	}
	return &f, nil
}

// ParseJSONC strips comments and trailing commas, then parses the result
// as JSON.
func ParseJSONC(data []byte) (*File, error) {
	var f File
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing json config: %w", err)
	}
	return &f, nil
}
