// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/utillib/pkg/cli/cliflags"
	"github.com/spf13/pflag"
)

// envVarAnnotation is the flag annotation naming the environment variable
// that can set the flag.
const envVarAnnotation = "qblocks_envvar"

// registerEnvVar records the environment variable of flagInfo on the flag.
// The variable is read by setFlagsFromEnv once the command line is parsed,
// so that explicitly passed flags win.
func registerEnvVar(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if err := f.SetAnnotation(flagInfo.Name, envVarAnnotation, []string{flagInfo.EnvVar}); err != nil {
			panic(err)
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	registerEnvVar(f, flagInfo)
}

// StringSliceFlag creates a string slice flag and registers it with the
// FlagSet.
func StringSliceFlag(
	f *pflag.FlagSet, valPtr *[]string, flagInfo cliflags.FlagInfo, defaultVal []string,
) {
	f.StringSliceVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	registerEnvVar(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	registerEnvVar(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	registerEnvVar(f, flagInfo)
}

// setFlagsFromEnv sets every flag that was not given on the command line
// from its environment variable, if that is set.
func setFlagsFromEnv(f *pflag.FlagSet) error {
	var err error
	f.VisitAll(func(fl *pflag.Flag) {
		if err != nil || fl.Changed {
			return
		}
		envVar := fl.Annotations[envVarAnnotation]
		if len(envVar) == 0 {
			return
		}
		if value, set := os.LookupEnv(envVar[0]); set {
			if setErr := f.Set(fl.Name, value); setErr != nil {
				err = errors.Wrapf(setErr, "invalid value for %s", envVar[0])
			}
		}
	})
	return err
}
