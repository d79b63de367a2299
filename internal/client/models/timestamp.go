package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are tried in order when decoding. The backend emits naive
// datetimes (no zone) for most records, RFC 3339 for a few, and demo data
// sometimes carries a bare date.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02",
}

// Timestamp is a backend datetime. It keeps the raw wire string so values
// round-trip unchanged, and exposes the parsed time via Time. A string in an
// unknown layout decodes without error: Raw is kept and Time is zero.
type Timestamp struct {
	time.Time
	Raw string
}

// ParseTimestamp parses s with any supported layout. Naive values are
// interpreted as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, Raw: s}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unsupported timestamp %q", s)
}

// NewTimestamp wraps t, rendering it the way the backend does.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Raw: t.UTC().Format("2006-01-02T15:04:05.000000")}
}

// String returns the raw wire value.
func (t Timestamp) String() string {
	return t.Raw
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		// kept verbatim; Time stays zero
		*t = Timestamp{Raw: s}
		return nil
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw == "" && t.Time.IsZero() {
		return []byte("null"), nil
	}
	raw := t.Raw
	if raw == "" {
		raw = NewTimestamp(t.Time).Raw
	}
	return json.Marshal(raw)
}
