package vectorsearch

import (
	"encoding/base64"
	"encoding/json"
)

// Cursor codec.
//
// Cursors are JSON serialized and base64url encoded. The encoding is an
// implementation detail: callers must treat the string as opaque and pass it
// back unchanged.

// EncodeCursor serializes a cursor into its opaque string form.
func EncodeCursor(c Cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		// Cursor contains only a float and a string; marshaling cannot fail
		// for finite scores.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses an opaque cursor string. Any malformed or tampered
// input yields nil, never an error: the executor treats nil as "no cursor"
// and restarts pagination from the first page.
func DecodeCursor(s string) *Cursor {
	if s == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil
	}
	if c.ID == "" {
		return nil
	}
	return &c
}
