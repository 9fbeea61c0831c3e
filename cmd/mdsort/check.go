package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report sections that are out of order without changing files",
		Long: `Check parses each file and lists every pair of adjacent sibling sections
whose titles are out of order. It exits with status 1 if any file is unsorted,
which makes it suitable for CI.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.pipeline()
			out := cmd.OutOrStdout()
			unsorted := 0

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				violations := p.Check(string(data))
				if len(violations) == 0 {
					continue
				}
				unsorted++
				for _, v := range violations {
					fmt.Fprintf(out, "%s: %s\n", path, v)
				}
			}

			if unsorted > 0 {
				fmt.Fprintf(out, "%d of %d files need sorting\n", unsorted, len(args))
				return errUnsorted
			}
			return nil
		},
	}
}
