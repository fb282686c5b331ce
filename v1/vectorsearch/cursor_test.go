package vectorsearch

import (
	"strings"
	"testing"
)

func TestCursorRoundTrip(t *testing.T) {
	cases := []Cursor{
		{Score: 0.8, ID: "b"},
		{Score: 0, ID: "00000000-0000-0000-0000-000000000001"},
		{Score: -1.25, ID: "row-with-dashes"},
	}

	for _, c := range cases {
		encoded := EncodeCursor(c)
		if encoded == "" {
			t.Fatalf("encode returned empty string for %+v", c)
		}
		decoded := DecodeCursor(encoded)
		if decoded == nil {
			t.Fatalf("decode returned nil for %+v", c)
		}
		if *decoded != c {
			t.Errorf("round-trip mismatch: got %+v, want %+v", *decoded, c)
		}
	}
}

func TestDecodeCursor_OpaqueEncoding(t *testing.T) {
	encoded := EncodeCursor(Cursor{Score: 0.5, ID: "x"})
	if strings.ContainsAny(encoded, "+/=") {
		t.Errorf("cursor must be URL-safe without padding, got %q", encoded)
	}
}

func TestDecodeCursor_MalformedInputYieldsNil(t *testing.T) {
	inputs := []string{
		"",
		"not base64 at all!!!",
		"garbage",
		"eyJub3QiOiJqc29uIg", // valid base64, truncated JSON
		"bnVsbA",             // base64 of "null"
		"e30",                // base64 of "{}" - no id
	}

	for _, in := range inputs {
		if got := DecodeCursor(in); got != nil {
			t.Errorf("DecodeCursor(%q) = %+v, want nil", in, got)
		}
	}
}

func TestDecodeCursor_TamperedCursorYieldsNil(t *testing.T) {
	encoded := EncodeCursor(Cursor{Score: 0.5, ID: "x"})
	tampered := "A" + encoded[1:] + "!"
	if got := DecodeCursor(tampered); got != nil {
		t.Errorf("tampered cursor should decode to nil, got %+v", got)
	}
}
