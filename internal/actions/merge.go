package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdfmerge.dev/pdfmerge/internal/config"
	"pdfmerge.dev/pdfmerge/internal/discovery"
	"pdfmerge.dev/pdfmerge/internal/errors"
	"pdfmerge.dev/pdfmerge/internal/pdf"
	"pdfmerge.dev/pdfmerge/internal/runtime"
	"pdfmerge.dev/pdfmerge/internal/selection"
	"pdfmerge.dev/pdfmerge/internal/tui"
)

// MergeOptions configures the merge action
type MergeOptions struct {
	// Select is a one-shot comma-separated index list. When set, no
	// interactive prompt is shown.
	Select string

	// AssumeYes suppresses the overwrite confirmation prompt
	AssumeYes bool
}

// SkippedFile records a selected file dropped by the skip-invalid policy
type SkippedFile struct {
	Candidate discovery.Candidate
	Err       error
}

// MergeResult describes a completed merge
type MergeResult struct {
	OutputPath string
	Merged     []discovery.Candidate
	Skipped    []SkippedFile
	TotalPages int
}

// Merge runs the full workflow: discover candidates, obtain the user's
// ordered selection, validate the selected files, and concatenate their
// pages into the output file.
func Merge(ctx *runtime.Context, opts MergeOptions) (*MergeResult, error) {
	candidates, err := discovery.Scan(ctx.Dir, ctx.Config.Output)
	if err != nil {
		if errors.Is(err, errors.ErrNoCandidates) {
			return nil, fmt.Errorf("no PDF files found in %s", ctx.Dir)
		}
		return nil, err
	}

	selected, err := obtainSelection(ctx, opts, candidates)
	if err != nil {
		return nil, err
	}

	outPath, err := resolveOutputPath(ctx, opts)
	if err != nil {
		return nil, err
	}

	selected, skipped, err := validateSelection(ctx, selected)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	paths := make([]string, len(selected))
	for i, c := range selected {
		pages, err := pdf.PageCount(c.Path)
		if err != nil {
			return nil, err
		}
		totalPages += pages
		paths[i] = c.Path
	}

	ctx.Splog.Info("Merging %d files...", len(selected))
	if err := pdf.Merge(paths, outPath); err != nil {
		return nil, err
	}

	result := &MergeResult{
		OutputPath: outPath,
		Merged:     selected,
		Skipped:    skipped,
		TotalPages: totalPages,
	}
	reportResult(ctx, result)
	return result, nil
}

// obtainSelection resolves the ordered selection from the --select flag, the
// interactive TUI, or a single prompted line when no TTY is available.
func obtainSelection(ctx *runtime.Context, opts MergeOptions, candidates []discovery.Candidate) ([]discovery.Candidate, error) {
	if opts.Select != "" {
		return selection.Parse(opts.Select, candidates)
	}

	names := discovery.Names(candidates)

	if tui.IsTTY() {
		if err := checkInteractiveAllowed(); err != nil {
			return nil, err
		}
		order, err := tui.RunSelectTUI(names)
		if err != nil {
			return nil, err
		}
		indices := make([]int, len(order))
		for i, idx := range order {
			indices[i] = idx + 1
		}
		return selection.Build(candidates, indices)
	}

	line, err := promptSelectionLine(ctx, names)
	if err != nil {
		return nil, err
	}
	return selection.Parse(line, candidates)
}

// resolveOutputPath applies the overwrite policy when the configured output
// file already exists.
func resolveOutputPath(ctx *runtime.Context, opts MergeOptions) (string, error) {
	outPath := ctx.OutputPath()
	if _, err := os.Stat(outPath); os.IsNotExist(err) {
		return outPath, nil
	}

	switch ctx.Config.Overwrite {
	case config.OverwriteTimestamp:
		return timestampedPath(outPath, time.Now()), nil

	case config.OverwriteReplace:
		if opts.AssumeYes || !tui.IsTTY() {
			return outPath, nil
		}
		ok, err := promptConfirmOverwrite(ctx.Config.Output)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.ErrCanceled
		}
		return outPath, nil

	case config.OverwriteFail:
		return "", fmt.Errorf("%w: %s (overwrite policy is %q)", errors.ErrOutputExists, outPath, config.OverwriteFail)
	}

	return "", fmt.Errorf("unknown overwrite policy %q", ctx.Config.Overwrite)
}

// timestampedPath inserts a timestamp before the extension, e.g.
// merged_output.pdf -> merged_output_20240131_154500.pdf
func timestampedPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", base, now.Format("20060102_150405"), ext)
}

// validateSelection checks every selected file up front. The default policy
// aborts the run listing every unreadable file; with SkipInvalid the bad
// files are dropped and reported, and the merge continues with the rest.
func validateSelection(ctx *runtime.Context, selected []discovery.Candidate) ([]discovery.Candidate, []SkippedFile, error) {
	var good []discovery.Candidate
	var bad []SkippedFile
	for _, c := range selected {
		if err := pdf.Validate(c.Path); err != nil {
			bad = append(bad, SkippedFile{Candidate: c, Err: err})
			continue
		}
		good = append(good, c)
	}

	if len(bad) == 0 {
		return selected, nil, nil
	}

	if !ctx.Config.SkipInvalid {
		for _, s := range bad {
			ctx.Splog.Error("%v", s.Err)
		}
		return nil, nil, fmt.Errorf("%w: %d of %d selected files are unreadable; nothing was merged", errors.ErrUnreadableInput, len(bad), len(selected))
	}

	for _, s := range bad {
		ctx.Splog.Warn("skipping %s: %v", s.Candidate.Name, s.Err)
	}
	if len(good) == 0 {
		return nil, nil, fmt.Errorf("%w: every selected file is unreadable", errors.ErrUnreadableInput)
	}
	return good, bad, nil
}

func reportResult(ctx *runtime.Context, result *MergeResult) {
	ctx.Splog.Newline()
	ctx.Splog.Info("Success! Merged %d files (%d pages total):", len(result.Merged), result.TotalPages)
	for i, c := range result.Merged {
		ctx.Splog.Info("  %d. %s", i+1, c.Name)
	}
	if len(result.Skipped) > 0 {
		ctx.Splog.Warn("Skipped %d unreadable files:", len(result.Skipped))
		for _, s := range result.Skipped {
			ctx.Splog.Info("  - %s", s.Candidate.Name)
		}
	}
	ctx.Splog.Info("Output saved as: %s", result.OutputPath)
}
