package actions

import (
	"fmt"
	"strings"

	"pdfmerge.dev/pdfmerge/internal/discovery"
	"pdfmerge.dev/pdfmerge/internal/errors"
	"pdfmerge.dev/pdfmerge/internal/pdf"
	"pdfmerge.dev/pdfmerge/internal/runtime"
)

// ListOptions configures the list action
type ListOptions struct {
	// NoProbe skips opening each file for a page count, listing names and
	// sizes only
	NoProbe bool
}

// List prints the candidate table: display index, filename, page count and
// size. Files that cannot be read as PDFs stay in the listing with the error
// shown inline; they only fail a run if actually selected.
func List(ctx *runtime.Context, opts ListOptions) error {
	candidates, err := discovery.Scan(ctx.Dir, ctx.Config.Output)
	if err != nil {
		if errors.Is(err, errors.ErrNoCandidates) {
			return fmt.Errorf("no PDF files found in %s", ctx.Dir)
		}
		return err
	}

	divider := strings.Repeat("-", 64)
	ctx.Splog.Info("PDF files in %s:", ctx.Dir)
	ctx.Splog.Info(divider)
	ctx.Splog.Info("%-4s%-40s%-8s%s", "No.", "Filename", "Pages", "Size")
	ctx.Splog.Info(divider)

	for _, c := range candidates {
		pages := "-"
		if !opts.NoProbe {
			n, err := pdf.PageCount(c.Path)
			if err != nil {
				ctx.Splog.Info("%-4d%-40sError: %v", c.Index, c.Name, err)
				continue
			}
			pages = fmt.Sprintf("%d", n)
		}
		ctx.Splog.Info("%-4d%-40s%-8s%s", c.Index, c.Name, pages, formatSize(c.Size))
	}
	ctx.Splog.Info(divider)

	return nil
}

// formatSize renders a byte count the way the listing shows it
func formatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb {
		return fmt.Sprintf("%.1fMB", float64(bytes)/mb)
	}
	return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
}
