package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasbundler/internal/fileutil"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// Format selects the serialization of bundled output.
type Format string

const (
	// FormatYAML writes <base>.yaml.
	FormatYAML Format = "yaml"
	// FormatJSON writes <base>.json.
	FormatJSON Format = "json"
	// FormatBoth writes both files.
	FormatBoth Format = "both"
)

// DefaultOutputBase is the output file name used when none is given.
const DefaultOutputBase = "openapi.bundled"

// ParseFormat parses a format name case-insensitively. An empty string is
// FormatYAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "both":
		return FormatBoth, nil
	}
	return "", formatError(s)
}

func formatError(s string) error {
	return &oaserrors.ConfigError{Option: "output format", Value: s, Message: "must be yaml, json, or both"}
}

// singles returns the single formats f expands to.
func (f Format) singles() []Format {
	if f == FormatBoth {
		return []Format{FormatYAML, FormatJSON}
	}
	return []Format{f}
}

// OutputNames returns the file names written for base and format. A
// trailing .json, .yaml or .yml on base is stripped; a .yml extension is
// kept for the YAML file.
func OutputNames(base string, format Format) []string {
	if base == "" {
		base = DefaultOutputBase
	}
	yamlExt := ".yaml"
	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".yml":
		yamlExt = ".yml"
		base = strings.TrimSuffix(base, filepath.Ext(base))
	case ".yaml", ".json":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var names []string
	for _, f := range format.singles() {
		if f == FormatJSON {
			names = append(names, base+".json")
		} else {
			names = append(names, base+yamlExt)
		}
	}
	return names
}

// WriteFiles writes the bundled document into dir, creating it when
// missing, and returns the absolute paths written. Existing files are
// overwritten; symlinks are refused.
func (r *Result) WriteFiles(dir, base string, format Format) ([]string, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = filepath.Dir(r.SourcePath)
	}
	if strings.ContainsAny(base, `/\`) {
		return nil, &oaserrors.ConfigError{Option: "output file", Value: base, Message: "must be a file name, not a path"}
	}
	if err := os.MkdirAll(dir, fileutil.OutputDir); err != nil {
		return nil, fmt.Errorf("bundler: create output directory: %w", err)
	}

	names := OutputNames(base, format)
	written := make([]string, 0, len(names))
	for i, f := range format.singles() {
		path, err := pathutil.SanitizeOutputPath(filepath.Join(dir, names[i]))
		if err != nil {
			return written, fmt.Errorf("bundler: %w", err)
		}
		if path == r.SourcePath {
			return written, &oaserrors.ConfigError{Option: "output file", Value: names[i], Message: "would overwrite the input document"}
		}
		data, err := r.Marshal(f)
		if err != nil {
			return written, fmt.Errorf("bundler: %w", err)
		}
		if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
			return written, fmt.Errorf("bundler: write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
