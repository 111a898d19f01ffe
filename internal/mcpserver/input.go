package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasbundler/oaserrors"
)

// inputDir resolves the directory a bundle call reads from. It must exist.
func inputDir(dir string) (string, error) {
	if dir == "" {
		return "", &oaserrors.ConfigError{Option: "input_dir", Message: "is required"}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &oaserrors.ConfigError{Option: "input_dir", Value: dir, Cause: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &oaserrors.ConfigError{Option: "input_dir", Value: dir, Message: "cannot access directory", Cause: err}
	}
	if !info.IsDir() {
		return "", &oaserrors.ConfigError{Option: "input_dir", Value: dir, Message: "is not a directory"}
	}
	return abs, nil
}

// inputFiles cleans the file list of a validate call. The list must be
// non-empty, hold no blank entries, and stay within cfg.MaxFiles.
func inputFiles(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, &oaserrors.ConfigError{Option: "files", Message: "at least one file is required"}
	}
	if len(files) > cfg.MaxFiles {
		return nil, &oaserrors.ConfigError{
			Option:  "files",
			Value:   len(files),
			Message: fmt.Sprintf("at most %d files per call", cfg.MaxFiles),
		}
	}
	out := make([]string, 0, len(files))
	for i, f := range files {
		if f == "" {
			return nil, &oaserrors.ConfigError{Option: fmt.Sprintf("files[%d]", i), Message: "cannot be empty"}
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: fmt.Sprintf("files[%d]", i), Value: f, Cause: err}
		}
		out = append(out, abs)
	}
	return out, nil
}
