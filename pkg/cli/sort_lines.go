// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bufio"
	"fmt"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/utillib/pkg/cli/cliflags"
	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/cockroachdb/utillib/pkg/util/container/poslist"
	"github.com/cockroachdb/utillib/pkg/util/log"
	"github.com/spf13/cobra"
)

func newSortLinesCmd(cliCtx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort-lines [file...]",
		Short: "print input lines in sorted order",
		Long: `
Reads every line of the given files, or of standard input, and prints them
in ascending order. Lines that compare equal keep their input order.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliCtx.runSortLines(cmd, args)
		},
	}
	f := cmd.Flags()
	BoolFlag(f, &cliCtx.sortLines.unique, cliflags.Unique, false)
	BoolFlag(f, &cliCtx.sortLines.foldCase, cliflags.FoldCase, false)
	BoolFlag(f, &cliCtx.sortLines.reverse, cliflags.Reverse, false)
	return cmd
}

func (c *cliContext) sortLinesFuncs() (callback.SortFunc[string], callback.DuplicateFunc[string]) {
	opts := c.sortLines
	sortFn := callback.SortFunc[string](callback.Ordered[string])
	dupFn := callback.DuplicateFunc[string](callback.Equal[string])
	if opts.foldCase {
		sortFn, dupFn = callback.CompareFold, callback.EqualFold
	}
	if !opts.unique {
		dupFn = nil
	}
	return sortFn, dupFn
}

func (c *cliContext) runSortLines(cmd *cobra.Command, args []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", "sort-lines")
	sortFn, dupFn := c.sortLinesFuncs()

	var lines poslist.List[string]
	rejected := 0
	n, err := c.forEachInputLine(ctx, cmd, args, func(line string, _ any) bool {
		if !lines.AddSorted(line, sortFn, dupFn) {
			rejected++
			log.VEventf(ctx, 2, "dropping duplicate line %q", line)
		}
		return true
	})
	if err != nil {
		return err
	}
	log.VEventf(ctx, 1, "read %d lines, kept %d", n, lines.Len())
	if rejected > 0 {
		log.Infof(ctx, "dropped %d duplicate lines", rejected)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	step, pos := lines.Next, lines.HeadPosition()
	if c.sortLines.reverse {
		step, pos = lines.Prev, lines.TailPosition()
	}
	for pos.Valid() {
		line, err := step(&pos)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
