package atom

import "time"

// Timestamp is an Atom date construct: an RFC 3339 instant with optional
// fractional seconds. The zero value means "absent"; use IsZero to test
// for it. Compare Timestamps with Equal, not ==, since two equal instants
// may carry different time zone representations.
type Timestamp struct {
	t time.Time
}

// NewTimestamp wraps t as a Timestamp.
// The monotonic clock reading, if any, is stripped so that formatting and
// re-parsing reproduces an equal value.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Round(0)}
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now().UTC())
}

// ParseTimestamp parses RFC 3339 text into a Timestamp.
// Fractional seconds are accepted but not required. Parse errors from the
// time package are returned unchanged.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t: t}, nil
}

// Time returns the wrapped instant.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the Timestamp is absent.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Equal reports whether two Timestamps represent the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// String formats the Timestamp as RFC 3339 text, preserving fractional
// seconds when the instant carries them.
func (ts Timestamp) String() string {
	if ts.t.Nanosecond() != 0 {
		return ts.t.Format(time.RFC3339Nano)
	}
	return ts.t.Format(time.RFC3339)
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
