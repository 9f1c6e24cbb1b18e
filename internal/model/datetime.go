package model

import (
	"fmt"
	"strings"
	"time"
)

// DateTime is a timestamp as emitted by the backend. The service stores
// datetimes in SQLite and serializes them in several shapes depending on the
// column ("2006-01-02 15:04:05", ISO 8601 with or without fraction, bare
// dates), so decoding tries each known layout in turn.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes a backend timestamp. Null and empty strings decode to
// the zero value.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON encodes the timestamp in the ISO 8601 shape the backend accepts.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02T15:04:05") + `"`), nil
}

// NewDateTime wraps a time.Time.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}
