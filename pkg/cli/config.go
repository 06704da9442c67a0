// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// loadConfigFile reads the YAML file at path. The file is a mapping from
// flag names to values; a list value sets a slice flag.
func loadConfigFile(fs afero.Fs, path string) (map[string]interface{}, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	var values map[string]interface{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return values, nil
}

// applyConfig sets each flag of cmd that is still at its default from
// values. Keys that name no flag anywhere in the command tree are an error;
// keys for flags of other commands are ignored.
func applyConfig(cmd *cobra.Command, values map[string]interface{}) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := cmd.Flags()
	for _, k := range keys {
		fl := f.Lookup(k)
		if fl == nil {
			if !knownFlag(cmd.Root(), k) {
				return errors.Newf("config file: unknown flag %q", k)
			}
			continue
		}
		if fl.Changed {
			continue
		}
		if err := setFromConfig(f, k, values[k]); err != nil {
			return errors.Wrapf(err, "config file: flag %q", k)
		}
	}
	return nil
}

func setFromConfig(f *pflag.FlagSet, name string, v interface{}) error {
	if list, ok := v.([]interface{}); ok {
		for _, item := range list {
			if err := f.Set(name, fmt.Sprint(item)); err != nil {
				return err
			}
		}
		return nil
	}
	return f.Set(name, fmt.Sprint(v))
}

func knownFlag(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Lookup(name) != nil || cmd.PersistentFlags().Lookup(name) != nil {
		return true
	}
	for _, sub := range cmd.Commands() {
		if knownFlag(sub, name) {
			return true
		}
	}
	return false
}
