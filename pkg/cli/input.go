// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"

	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/cockroachdb/utillib/pkg/util/lineio"
	"github.com/spf13/cobra"
)

// forEachInputLine calls fn for every line of the named files in order, or
// of standard input when there are none. The name "-" also means standard
// input.
func (c *cliContext) forEachInputLine(
	ctx context.Context, cmd *cobra.Command, files []string, fn callback.ApplyFunc,
) (int, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	total := 0
	for _, name := range files {
		var n int
		var err error
		if name == "-" {
			n, err = lineio.ForEachLine(ctx, cmd.InOrStdin(), fn, nil)
		} else {
			n, err = lineio.ForEachLineInFile(ctx, c.fs, name, fn, nil)
		}
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
