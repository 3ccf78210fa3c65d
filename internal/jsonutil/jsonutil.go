// Package jsonutil provides shared helpers for decoding JSON API payloads:
// context-wrapped errors and tolerant field extraction for error bodies.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadBody reads at most 1 MiB from r.
func ReadBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxBodyBytes))
}

// GetString safely extracts a string value from a map[string]any.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// MessageOr returns the "message" field of a JSON object body, or fallback
// when the body is not an object or has no non-empty string message.
func MessageOr(data []byte, fallback string) string {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return fallback
	}
	if msg := GetString(obj, "message"); msg != "" {
		return msg
	}
	return fallback
}
