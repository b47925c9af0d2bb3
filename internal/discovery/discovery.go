// Package discovery enumerates the PDF files in a directory that are
// eligible for merging.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pdfmerge.dev/pdfmerge/internal/errors"
)

// Candidate is a discovered PDF file eligible for merging.
type Candidate struct {
	// Path is the absolute path to the file
	Path string

	// Name is the bare filename within the scanned directory
	Name string

	// Index is the 1-based display index shown to the user
	Index int

	// Size is the file size in bytes
	Size int64
}

// Scan lists the PDF files directly inside dir, skipping subdirectories,
// dotfiles, and the reserved output filename. The result is sorted
// lexicographically by name so repeated runs present an identical listing,
// with display indices assigned in that order.
func Scan(dir, reservedOutput string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !IsPDFName(name) {
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.EqualFold(name, reservedOutput) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File disappeared between ReadDir and Info; skip it
			continue
		}

		absPath, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, Candidate{
			Path: absPath,
			Name: name,
			Size: info.Size(),
		})
	}

	if len(candidates) == 0 {
		return nil, errors.ErrNoCandidates
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})
	for i := range candidates {
		candidates[i].Index = i + 1
	}

	return candidates, nil
}

// IsPDFName reports whether a filename carries a .pdf extension. Matching is
// by extension only; content validation happens later, when the file is
// actually selected.
func IsPDFName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Names returns the bare filenames of candidates, in display order.
func Names(candidates []Candidate) []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return names
}
