// Package pdf wraps the pdfcpu library, which handles all byte-level PDF
// work: validation, page counting, and page concatenation. Nothing else in
// the application touches PDF internals.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfmerge.dev/pdfmerge/internal/errors"
)

// configuration returns the pdfcpu configuration used for all operations.
// Relaxed validation accepts the slightly out-of-spec files that office
// suites and scanners routinely produce.
func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Validate checks that the file at path can be opened and parsed as a PDF.
func Validate(path string) error {
	if err := api.ValidateFiles([]string{path}, configuration()); err != nil {
		return errors.NewUnreadableInputError(path, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, errors.NewUnreadableInputError(path, err)
	}
	return count, nil
}

// Merge concatenates the pages of inFiles, in order, into a new PDF at
// outPath. The merge is written to a temporary file in the same directory
// and renamed into place on success, so a failure never leaves a partial
// file at outPath.
func Merge(inFiles []string, outPath string) error {
	if len(inFiles) == 0 {
		return errors.NewInvalidSelectionError("", "selection is empty")
	}

	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".pdfmerge-*.pdf.tmp")
	if err != nil {
		return errors.NewWriteFailureError(outPath, fmt.Errorf("cannot create temporary file: %w", err))
	}
	tmpPath := tmp.Name()
	// pdfcpu writes by path; it only needs the name reserved
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewWriteFailureError(outPath, err)
	}

	if err := api.MergeCreateFile(inFiles, tmpPath, false, configuration()); err != nil {
		os.Remove(tmpPath)
		return errors.NewWriteFailureError(outPath, err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return errors.NewWriteFailureError(outPath, err)
	}

	return nil
}
