// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dynarray

type config struct {
	chunkSize int
}

// Option configures an Array constructed through New.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// WithChunkSize sets the number of slots added on each growth step. It must
// be positive.
func WithChunkSize(n int) Option {
	return optionFunc(func(cfg *config) {
		cfg.chunkSize = n
	})
}
