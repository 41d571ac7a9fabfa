// Package extract provides topic extractors for JSON-shaped messages.
package extract

import (
	"log/slog"

	"github.com/casualjim/broker"
	"github.com/casualjim/broker/pkg/jsonx"
	"github.com/casualjim/broker/pkg/slogx"
	"github.com/tidwall/gjson"
)

// Path returns an extractor that reads the topic from the message's JSON form
// at the given gjson path, e.g. "type" or "meta.kind".
//
// Byte slices and strings holding JSON are read as-is, any other message is
// marshaled first. A missing path, or a message that cannot be encoded,
// yields "" which no subscription can match.
func Path[T any](path string) broker.Extractor[T] {
	return func(msg T) string {
		raw, err := jsonx.Bytes(msg)
		if err != nil {
			slog.Debug("topic extraction failed", slog.String("path", path), slogx.Error(err))
			return ""
		}
		return gjson.GetBytes(raw, path).String()
	}
}

// FirstOf returns an extractor trying each path in order and using the first
// non-empty result.
func FirstOf[T any](paths ...string) broker.Extractor[T] {
	return func(msg T) string {
		raw, err := jsonx.Bytes(msg)
		if err != nil {
			slog.Debug("topic extraction failed", slog.Any("paths", paths), slogx.Error(err))
			return ""
		}
		for _, res := range gjson.GetManyBytes(raw, paths...) {
			if topic := res.String(); topic != "" {
				return topic
			}
		}
		return ""
	}
}
