// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/utillib/pkg/cli/cliflags"
	"github.com/cockroachdb/utillib/pkg/util/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Main is the entry point for the qblocks command-line program.
func Main() {
	if err := Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// Run executes the qblocks command tree with the given arguments, reading
// files from the OS filesystem.
func Run(ctx context.Context, args []string) error {
	cliCtx := newCLIContext(afero.NewOsFs())
	cmd := newRootCmd(cliCtx)
	cmd.SetArgs(args)
	return cliCtx.execute(ctx, cmd)
}

// execute runs cmd and undoes the logging setup afterwards, also when the
// command fails.
func (c *cliContext) execute(ctx context.Context, cmd *cobra.Command) error {
	defer c.teardown()
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(cliCtx *cliContext) *cobra.Command {
	root := &cobra.Command{
		Use:   "qblocks [command] (flags)",
		Short: "qblocks sorts and searches lines of text",
		Long: `
qblocks reads lines from files, or from standard input when no file is given,
and either prints them sorted or reports which keys are present among them.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cliCtx.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	StringFlag(pf, &cliCtx.configPath, cliflags.Config, "")
	BoolFlag(pf, &cliCtx.verbose, cliflags.Verbose, false)

	root.AddCommand(
		newSortLinesCmd(cliCtx),
		newLookupCmd(cliCtx),
	)
	return root
}

// setup resolves the flag values of cmd and installs the logger. Flags given
// on the command line win over the environment, which wins over the config
// file.
func (c *cliContext) setup(cmd *cobra.Command) error {
	if err := setFlagsFromEnv(cmd.Flags()); err != nil {
		return err
	}
	if c.configPath != "" {
		values, err := loadConfigFile(c.fs, c.configPath)
		if err != nil {
			return err
		}
		if err := applyConfig(cmd, values); err != nil {
			return err
		}
	}

	logger, err := c.newLogger(c.verbose)
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	c.restoreLogging = append(c.restoreLogging, log.SetLogger(logger))
	if c.verbose {
		c.restoreLogging = append(c.restoreLogging, log.SetVerbosity(2))
	}
	return nil
}

func (c *cliContext) teardown() {
	_ = log.Logger().Sync()
	for i := len(c.restoreLogging) - 1; i >= 0; i-- {
		c.restoreLogging[i]()
	}
	c.restoreLogging = nil
}
