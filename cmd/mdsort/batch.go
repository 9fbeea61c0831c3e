package main

import (
	"fmt"

	"github.com/dgallion1/mdsort/internal/pipeline"
	"github.com/spf13/cobra"
)

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var batch pipeline.BatchOptions

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Sort many files in place concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd.ErrOrStderr())
			results, err := opts.pipeline().SortFiles(cmd.Context(), args, batch, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Status == pipeline.StatusFailed {
					failed++
					fmt.Fprintf(out, "%-9s %s: %s\n", r.Status, r.Path, r.Error)
					continue
				}
				fmt.Fprintf(out, "%-9s %s\n", r.Status, r.Path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVarP(&batch.Workers, "workers", "j", 4, "Maximum number of files sorted at once")
	cmd.Flags().BoolVar(&batch.DryRun, "dry-run", false, "Report which files would change without writing them")
	return cmd
}
