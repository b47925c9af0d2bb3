package cli

import (
	"github.com/spf13/cobra"

	"pdfmerge.dev/pdfmerge/internal/actions"
	"pdfmerge.dev/pdfmerge/internal/config"
	"pdfmerge.dev/pdfmerge/internal/runtime"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	var (
		selectList  string
		output      string
		overwrite   string
		skipInvalid bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:     "merge [dir]",
		Short:   "Select PDF files in a directory and merge them into one",
		Aliases: []string{"m"},
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

			// Flags override the directory config file
			if output != "" {
				ctx.Config.Output = output
			}
			if overwrite != "" {
				policy, err := config.ParseOverwritePolicy(overwrite)
				if err != nil {
					return err
				}
				ctx.Config.Overwrite = policy
			}
			if cmd.Flags().Changed("skip-invalid") {
				ctx.Config.SkipInvalid = skipInvalid
			}

			_, err = actions.Merge(ctx, actions.MergeOptions{
				Select:    selectList,
				AssumeYes: assumeYes,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&selectList, "select", "s", "", "Merge these file numbers, in order, without prompting (e.g. 2,1,3)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&overwrite, "overwrite", "", "What to do when the output file exists: timestamp, overwrite or fail")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip unreadable selected files instead of aborting")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to the overwrite confirmation")

	return cmd
}
