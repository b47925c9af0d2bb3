// Package testhelpers provides testing utilities for the pdfmerge CLI,
// including a scene system, PDF fixture generation, and custom assertions.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory holding PDF
// fixtures.
type Scene struct {
	Dir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "pdfmerge-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	scene := &Scene{Dir: tmpDir}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// Path resolves a filename against the scene directory.
func (s *Scene) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// WritePDF writes a valid PDF with the given number of empty pages into the
// scene directory and returns its path.
func (s *Scene) WritePDF(name string, pages int) (string, error) {
	path := s.Path(name)
	if err := os.WriteFile(path, MinimalPDF(pages), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes arbitrary bytes into the scene directory and returns the
// file's path. Used for non-PDF and corrupt fixtures.
func (s *Scene) WriteFile(name string, data []byte) (string, error) {
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
