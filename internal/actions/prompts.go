package actions

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"pdfmerge.dev/pdfmerge/internal/errors"
	"pdfmerge.dev/pdfmerge/internal/runtime"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via PDFMERGE_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (PDFMERGE_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("PDFMERGE_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// promptConfirmOverwrite asks whether an existing output file may be replaced
func promptConfirmOverwrite(path string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite it?", path),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, errors.ErrCanceled
	}
	return confirmed, nil
}

// promptSelectionLine prints the candidate listing and reads one line of
// comma-separated indices from stdin. Used when no TTY is available for the
// selection TUI; a single exchange, no re-prompting, so piped input cannot
// loop forever.
func promptSelectionLine(ctx *runtime.Context, names []string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ctx.Splog.Info("Available PDF files:")
	for i, name := range names {
		ctx.Splog.Info("  %d. %s", i+1, name)
	}
	ctx.Splog.Newline()
	ctx.Splog.Page("Enter file numbers in merge order (e.g. 2,1,3): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.ErrCanceled
	}
	return strings.TrimSpace(line), nil
}
