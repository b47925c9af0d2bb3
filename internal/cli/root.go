package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdfmerge",
		Short: "Pdfmerge combines multiple PDF files into a single document",
		Long: `Pdfmerge combines multiple PDF files into a single document.

It lists the PDF files in a directory, lets you pick which ones to merge
and in what order, and writes the result as one file. Original files are
never modified.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add subcommands
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}
