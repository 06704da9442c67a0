// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"github.com/cockroachdb/utillib/pkg/util/container/dynarray"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cliContext holds the parameters of one invocation of the qblocks command
// tree. The flags write directly into it.
type cliContext struct {
	// fs is where input files and the config file are read from.
	fs afero.Fs

	configPath string
	verbose    bool

	sortLines sortLinesContext
	lookup    lookupContext

	// newLogger builds the logger installed for the duration of a command.
	newLogger func(verbose bool) (*zap.Logger, error)

	// restoreLogging undoes the logging setup done before the command ran.
	restoreLogging []func()
}

type sortLinesContext struct {
	unique   bool
	foldCase bool
	reverse  bool
}

type lookupContext struct {
	keys      []string
	chunkSize int
}

func newCLIContext(fs afero.Fs) *cliContext {
	return &cliContext{
		fs:        fs,
		newLogger: productionLogger,
		lookup: lookupContext{
			chunkSize: dynarray.DefaultChunkSize,
		},
	}
}

// productionLogger logs JSON to stderr, at debug level when verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
