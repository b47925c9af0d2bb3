// Package selection parses and validates the user's ordered choice of
// candidate files. The order of the selection is the page order of the
// merged output.
package selection

import (
	"fmt"
	"strconv"
	"strings"

	"pdfmerge.dev/pdfmerge/internal/discovery"
	"pdfmerge.dev/pdfmerge/internal/errors"
)

// ParseIndices parses a comma-separated list of 1-based display indices,
// e.g. "2,1,3". Every index must be within [1, max]. Duplicate indices are
// rejected: merging the same file twice is almost always a typo, and the
// user can rerun with the file duplicated on disk if they really mean it.
func ParseIndices(input string, max int) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.NewInvalidSelectionError("", "selection is empty")
	}

	seen := make(map[int]bool)
	var indices []int
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, errors.NewInvalidSelectionError(input, "empty entry in list")
		}
		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, errors.NewInvalidSelectionError(input, fmt.Sprintf("%q is not a number", token))
		}
		if idx < 1 || idx > max {
			return nil, errors.NewInvalidSelectionError(input, fmt.Sprintf("index %d is out of range (1-%d)", idx, max))
		}
		if seen[idx] {
			return nil, errors.NewInvalidSelectionError(input, fmt.Sprintf("index %d appears more than once", idx))
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	return indices, nil
}

// Build resolves parsed indices against the candidate list, preserving the
// order the indices were given in.
func Build(candidates []discovery.Candidate, indices []int) ([]discovery.Candidate, error) {
	if len(indices) == 0 {
		return nil, errors.NewInvalidSelectionError("", "selection is empty")
	}

	selected := make([]discovery.Candidate, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(candidates) {
			return nil, errors.NewInvalidSelectionError("", fmt.Sprintf("index %d is out of range (1-%d)", idx, len(candidates)))
		}
		selected = append(selected, candidates[idx-1])
	}
	return selected, nil
}

// Parse is the one-shot path: parse the index list and resolve it against
// the candidates in one call.
func Parse(input string, candidates []discovery.Candidate) ([]discovery.Candidate, error) {
	indices, err := ParseIndices(input, len(candidates))
	if err != nil {
		return nil, err
	}
	return Build(candidates, indices)
}
