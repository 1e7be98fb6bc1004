// Package timefmt renders response timestamps in ISO-8601 with millisecond
// precision and a fixed numeric UTC offset, applied uniformly regardless of
// the host's local zone.
package timefmt

import (
	"fmt"
	"time"
)

const layout = "2006-01-02T15:04:05.000-07:00"

// Formatter formats timestamps in one fixed UTC offset.
type Formatter struct {
	loc *time.Location
}

// New parses an offset of the form "-03:00" or "+05:30" and returns a
// formatter pinned to that offset. "Z" and "+00:00" mean UTC.
func New(offset string) (*Formatter, error) {
	if offset == "" || offset == "Z" || offset == "+00:00" || offset == "-00:00" {
		return &Formatter{loc: time.UTC}, nil
	}
	var sign byte
	var hours, minutes int
	if _, err := fmt.Sscanf(offset, "%c%02d:%02d", &sign, &hours, &minutes); err != nil {
		return nil, fmt.Errorf("invalid utc offset %q: %w", offset, err)
	}
	if (sign != '+' && sign != '-') || hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("invalid utc offset %q", offset)
	}
	secs := hours*3600 + minutes*60
	if sign == '-' {
		secs = -secs
	}
	return &Formatter{loc: time.FixedZone(offset, secs)}, nil
}

// Format renders t in the formatter's fixed offset,
// e.g. 2024-01-15T09:30:00.000-03:00.
func (f *Formatter) Format(t time.Time) string {
	return t.In(f.loc).Format(layout)
}
