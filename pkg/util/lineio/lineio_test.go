// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package lineio

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/utillib/pkg/util/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func collect(lines *[]string) func(string, any) bool {
	return func(line string, _ any) bool {
		*lines = append(*lines, line)
		return true
	}
}

func TestForEachLine(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "\n\nx\n", []string{"", "", "x"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			n, err := ForEachLine(ctx, strings.NewReader(tc.input), collect(&got), nil)
			require.NoError(t, err)
			require.Equal(t, len(tc.want), n)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestForEachLineStops(t *testing.T) {
	var got []string
	n, err := ForEachLine(context.Background(), strings.NewReader("a\nstop\nc\n"),
		func(line string, data any) bool {
			got = append(got, line)
			return line != data.(string)
		}, "stop")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []string{"a", "stop"}, got)
}

func TestForEachLineCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n, err := ForEachLine(ctx, strings.NewReader("a\nb\nc\n"), func(string, any) bool {
		cancel()
		return true
	}, nil)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 1, n)
}

func TestForEachLineInFile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer log.SetLogger(zap.New(core))()
	defer log.SetVerbosity(2)()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in.txt", []byte("x\ny\n"), 0644))

	var got []string
	n, err := ForEachLineInFile(context.Background(), fs, "/in.txt", collect(&got), nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []string{"x", "y"}, got)

	entries := logs.FilterMessage("read 2 lines").All()
	require.Len(t, entries, 1)
	require.Equal(t, "/in.txt", entries[0].ContextMap()["file"])
}

func TestForEachLineInFileMissing(t *testing.T) {
	_, err := ForEachLineInFile(context.Background(), afero.NewMemMapFs(), "/nope", collect(new([]string)), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), "opening /nope")
}

func TestForEachLineTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxLineLength+1)
	_, err := ForEachLine(context.Background(), strings.NewReader("ok\n"+long), collect(new([]string)), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
