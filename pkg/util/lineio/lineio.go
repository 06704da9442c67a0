// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package lineio drives a callback.ApplyFunc over the lines of a reader or
// a file.
package lineio

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/utillib/pkg/util/container/callback"
	"github.com/cockroachdb/utillib/pkg/util/log"
	"github.com/spf13/afero"
)

// MaxLineLength is the longest line ForEachLine accepts.
const MaxLineLength = 1 << 20

// ForEachLine calls fn for every line of r, with the line terminator
// ("\n" or "\r\n") stripped, passing data through unchanged. It stops early
// when fn returns false or ctx is done, and returns the number of lines
// delivered to fn.
func ForEachLine(
	ctx context.Context, r io.Reader, fn callback.ApplyFunc, data any,
) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineLength)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		n++
		if !fn(strings.TrimSuffix(sc.Text(), "\r"), data) {
			return n, nil
		}
	}
	if err := sc.Err(); err != nil {
		return n, errors.Wrapf(err, "line %d", n+1)
	}
	return n, nil
}

// ForEachLineInFile is ForEachLine over the file at path in fs.
func ForEachLineInFile(
	ctx context.Context, fs afero.Fs, path string, fn callback.ApplyFunc, data any,
) (int, error) {
	ctx = logtags.AddTag(ctx, "file", path)
	f, err := fs.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	n, err := ForEachLine(ctx, f, fn, data)
	if err != nil {
		return n, errors.Wrapf(err, "reading %s", path)
	}
	log.VEventf(ctx, 2, "read %d lines", n)
	return n, nil
}
