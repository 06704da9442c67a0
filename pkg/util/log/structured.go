// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/logtags"
	"go.uber.org/zap"
)

// FormatWithContextTags formats the string and prepends the context
// tags, as in "[file=a.txt,n1] message".
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	formatTags(ctx, &buf)
	fmt.Fprintf(&buf, format, args...)
	return buf.String()
}

func formatTags(ctx context.Context, buf *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return
	}
	buf.WriteByte('[')
	for i, t := range tags.Get() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if t.Value() != nil {
			buf.WriteByte('=')
			buf.WriteString(t.ValueStr())
		}
	}
	buf.WriteString("] ")
}

// tagFields converts the context log tags into zap fields. A tag without a
// value becomes a boolean true field.
func tagFields(ctx context.Context) []zap.Field {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return nil
	}
	list := tags.Get()
	fields := make([]zap.Field, 0, len(list))
	for _, t := range list {
		if v := t.Value(); v != nil {
			fields = append(fields, zap.Any(t.Key(), v))
		} else {
			fields = append(fields, zap.Bool(t.Key(), true))
		}
	}
	return fields
}
