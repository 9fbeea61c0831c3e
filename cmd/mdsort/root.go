package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dgallion1/mdsort/internal/pipeline"
	"github.com/dgallion1/mdsort/internal/render"
	"github.com/dgallion1/mdsort/internal/sorter"
	"github.com/spf13/cobra"
)

// errUnsorted signals that check found violations. The message has already
// been printed.
var errUnsorted = errors.New("document is not sorted")

type rootOptions struct {
	fold    bool
	html    bool
	stdout  bool
	verbose bool
}

func (o *rootOptions) pipeline() *pipeline.Pipeline {
	mode := sorter.ModeLower
	if o.fold {
		mode = sorter.ModeFold
	}
	return pipeline.New(pipeline.Options{CaseMode: mode})
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mdsort <input> [output]",
		Short: "Sort Markdown sections alphabetically at every level",
		Long: `mdsort reorders the sections of a Markdown document alphabetically by
title, case-insensitively, at every heading level. Content under each heading
stays with it and keeps its order. Text before the first heading is kept at
the top.

If output is omitted the input file is overwritten.

Examples:
  mdsort notes.md
  mdsort notes.md sorted.md
  mdsort --html notes.md preview.html
  mdsort check docs/*.md`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.fold, "fold", false, "Compare titles with Unicode case folding instead of lowercasing")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Write an HTML preview of the sorted document")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the result instead of writing a file")

	cmd.AddCommand(newCheckCmd(opts), newBatchCmd(opts))
	return cmd
}

func runSort(cmd *cobra.Command, opts *rootOptions, args []string) error {
	log := opts.logger(cmd.ErrOrStderr())
	input := args[0]
	output := input
	if len(args) > 1 {
		output = args[1]
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	result := opts.pipeline().Sort(string(data))
	log.Debug("sorted document", "input", input, "bytes", len(result))

	var out bytes.Buffer
	if opts.html {
		if err := render.HTML(&out, result); err != nil {
			return err
		}
	} else {
		out.WriteString(result)
	}

	if opts.stdout {
		_, err := cmd.OutOrStdout().Write(out.Bytes())
		return err
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(output); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(output, out.Bytes(), perm); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sorted Markdown sections in %s\n", output)
	return nil
}
