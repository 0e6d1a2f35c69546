package static

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errOutsideRoot = errors.New("invalid path: outside root directory")

// validatePathSecurity ensures requestPath stays inside root.
func validatePathSecurity(root, requestPath string) error {
	cleanPath := filepath.Clean(requestPath)
	cleanRoot := filepath.Clean(root)
	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return errOutsideRoot
	}
	return nil
}

// validateStartup checks that a file or directory exists so handlers fail at startup.
func validateStartup(path string, mustBeDir bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustBeDir {
				return fmt.Errorf("directory does not exist: %s", path)
			}
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}
	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// Ready returns a readiness check that fails while the index file is missing.
func Ready(cfg Config) func(context.Context) error {
	index := filepath.Join(cfg.Root, cfg.IndexFile)
	return func(context.Context) error {
		return validateStartup(index, false)
	}
}
