package cli

import (
	"github.com/spf13/cobra"

	"pdfmerge.dev/pdfmerge/internal/actions"
	"pdfmerge.dev/pdfmerge/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var noProbe bool

	cmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   "List the PDF files eligible for merging, with page counts and sizes",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, err := runtime.NewContext(dir)
			if err != nil {
				return err
			}

			return actions.List(ctx, actions.ListOptions{NoProbe: noProbe})
		},
	}

	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "Do not open files to count pages; list names and sizes only")

	return cmd
}
