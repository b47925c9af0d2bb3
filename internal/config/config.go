// Package config provides per-directory configuration management,
// including reading and writing the pdfmerge configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutput is the reserved output filename used when no override is
// configured. Discovery always excludes it from the candidate list.
const DefaultOutput = "merged_output.pdf"

// ConfigFileName is the optional per-directory configuration file.
const ConfigFileName = ".pdfmerge.json"

// OverwritePolicy controls what happens when the output file already exists.
type OverwritePolicy string

const (
	// OverwriteTimestamp writes to a timestamped variant of the output name,
	// leaving the existing file untouched. This is the default.
	OverwriteTimestamp OverwritePolicy = "timestamp"

	// OverwriteReplace silently replaces the existing output file.
	OverwriteReplace OverwritePolicy = "overwrite"

	// OverwriteFail refuses to run when the output file already exists.
	OverwriteFail OverwritePolicy = "fail"
)

// ParseOverwritePolicy validates a policy string.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch OverwritePolicy(s) {
	case OverwriteTimestamp, OverwriteReplace, OverwriteFail:
		return OverwritePolicy(s), nil
	}
	return "", fmt.Errorf("unknown overwrite policy %q (expected %s, %s or %s)",
		s, OverwriteTimestamp, OverwriteReplace, OverwriteFail)
}

// FileConfig represents the on-disk configuration file. All fields are
// optional; absent fields fall back to defaults.
type FileConfig struct {
	Output      *string `json:"output,omitempty"`
	Overwrite   *string `json:"overwrite,omitempty"`
	SkipInvalid *bool   `json:"skipInvalid,omitempty"`
}

// Config is the resolved configuration for one run.
type Config struct {
	// Output is the output filename, relative to the target directory
	Output string

	// Overwrite is the policy applied when Output already exists
	Overwrite OverwritePolicy

	// SkipInvalid skips unreadable selected files instead of aborting
	SkipInvalid bool
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		Overwrite: OverwriteTimestamp,
	}
}

// Load reads the configuration file from dir, if present, layered over the
// defaults. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		// Config doesn't exist - return defaults
		return cfg, nil
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	if fc.Output != nil && *fc.Output != "" {
		cfg.Output = *fc.Output
	}
	if fc.Overwrite != nil && *fc.Overwrite != "" {
		policy, err := ParseOverwritePolicy(*fc.Overwrite)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
		}
		cfg.Overwrite = policy
	}
	if fc.SkipInvalid != nil {
		cfg.SkipInvalid = *fc.SkipInvalid
	}

	return cfg, nil
}

// Save writes the configuration file to dir.
func Save(dir string, fc *FileConfig) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
