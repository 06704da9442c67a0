// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import "strings"

// FlagInfo contains the static information for a CLI flag.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// may also be set (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns the flag description, followed by the environment variable
// if there is one.
func (f FlagInfo) Usage() string {
	var s strings.Builder
	s.WriteString(strings.TrimSpace(f.Description))
	if f.EnvVar != "" {
		s.WriteString("\nEnvironment variable: ")
		s.WriteString(f.EnvVar)
	}
	return s.String()
}

// Global flags.
var (
	Config = FlagInfo{
		Name:      "config",
		Shorthand: "c",
		EnvVar:    "QBLOCKS_CONFIG",
		Description: `
Path to a YAML file providing defaults for any flag, keyed by flag name.
Values given on the command line or through the environment take
precedence.`,
	}

	Verbose = FlagInfo{
		Name:        "verbose",
		Shorthand:   "v",
		EnvVar:      "QBLOCKS_VERBOSE",
		Description: `Enable debug logging to stderr.`,
	}
)

// Flags for sort-lines.
var (
	Unique = FlagInfo{
		Name:        "unique",
		Shorthand:   "u",
		EnvVar:      "QBLOCKS_UNIQUE",
		Description: `Drop lines that duplicate a line already read.`,
	}

	FoldCase = FlagInfo{
		Name:        "fold-case",
		Shorthand:   "f",
		EnvVar:      "QBLOCKS_FOLD_CASE",
		Description: `Compare lines case-insensitively, for ordering and for --unique.`,
	}

	Reverse = FlagInfo{
		Name:        "reverse",
		Shorthand:   "r",
		EnvVar:      "QBLOCKS_REVERSE",
		Description: `Print the sorted lines from last to first.`,
	}
)

// Flags for lookup.
var (
	Keys = FlagInfo{
		Name:      "key",
		Shorthand: "k",
		EnvVar:    "QBLOCKS_KEYS",
		Description: `
Line to look up. May be repeated, or given as a comma-separated list.`,
	}

	ChunkSize = FlagInfo{
		Name:        "chunk-size",
		EnvVar:      "QBLOCKS_CHUNK_SIZE",
		Description: `Number of slots the line buffer grows by when it fills up.`,
	}
)
