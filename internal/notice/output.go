// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputPath is the amendment PDF expected for cycle under dir.
func InputPath(dir, cycle string) string {
	return filepath.Join(dir, "AIRAC_"+cycle+".pdf")
}

// OutputPath is the notice file written for cycle under dir.
func OutputPath(dir, cycle string) string {
	return filepath.Join(dir, "ciclo"+cycle+".txt")
}

// WriteDocument writes content to path through a temporary file in the
// same directory, replacing any existing file. On failure nothing is left
// at path.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".notice-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.WriteString(content)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing notice: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
