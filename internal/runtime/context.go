// Package runtime provides a context type that holds the target directory,
// resolved configuration and logger for use throughout the application.
// This avoids passing multiple parameters.
package runtime

import (
	"fmt"
	"os"
	"path/filepath"

	"pdfmerge.dev/pdfmerge/internal/config"
	"pdfmerge.dev/pdfmerge/internal/tui"
)

// Context provides access to the target directory, configuration and output
// for commands
type Context struct {
	Dir    string
	Config *config.Config
	Splog  *tui.Splog
}

// NewContext resolves dir (empty means the current working directory),
// loads the per-directory configuration, and builds a context around them.
func NewContext(dir string) (*Context, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	cfg, err := config.Load(abs)
	if err != nil {
		return nil, err
	}

	return &Context{
		Dir:    abs,
		Config: cfg,
		Splog:  tui.NewSplog(),
	}, nil
}

// OutputPath returns the configured output filename resolved against the
// target directory.
func (c *Context) OutputPath() string {
	return filepath.Join(c.Dir, c.Config.Output)
}
