// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bufio"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/utillib/pkg/cli/cliflags"
	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/cockroachdb/utillib/pkg/util/container/dynarray"
	"github.com/cockroachdb/utillib/pkg/util/log"
	"github.com/spf13/cobra"
)

func newLookupCmd(cliCtx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup --key <line> [--key <line>...] [file...]",
		Short: "report which keys occur among the input lines",
		Long: `
Loads every line of the given files, or of standard input, sorts them and
prints one "<key>\t<found|missing>" line per key, in the order the keys
were given.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliCtx.runLookup(cmd, args)
		},
	}
	f := cmd.Flags()
	StringSliceFlag(f, &cliCtx.lookup.keys, cliflags.Keys, nil)
	IntFlag(f, &cliCtx.lookup.chunkSize, cliflags.ChunkSize, dynarray.DefaultChunkSize)
	return cmd
}

func (c *cliContext) runLookup(cmd *cobra.Command, args []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", "lookup")
	if len(c.lookup.keys) == 0 {
		return errors.Newf("at least one --%s is required", cliflags.Keys.Name)
	}
	lines, err := dynarray.New[string](dynarray.WithChunkSize(c.lookup.chunkSize))
	if err != nil {
		return errors.Wrapf(err, "--%s", cliflags.ChunkSize.Name)
	}
	if _, err := c.forEachInputLine(ctx, cmd, args, func(line string, _ any) bool {
		lines.PushBack(line)
		return true
	}); err != nil {
		return err
	}
	lines.Sort(callback.Ordered[string])
	log.VEventf(ctx, 1, "loaded %d lines, capacity %d", lines.Len(), lines.Cap())

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, key := range c.lookup.keys {
		result := "missing"
		if _, ok := lines.Find(key, callback.Ordered[string]); ok {
			result = "found"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, result)
	}
	return w.Flush()
}
