package atom

import "net/mail"

// Email is a validated RFC 5322 addr-spec, stored opaquely.
// The zero value means "absent".
type Email struct {
	addr string
}

// ParseEmail validates s as an email address.
// Display names are tolerated on input but only the addr-spec is kept, so
// the textual round trip is over the bare address. Parse errors from
// net/mail are returned unchanged.
func ParseEmail(s string) (Email, error) {
	a, err := mail.ParseAddress(s)
	if err != nil {
		return Email{}, err
	}
	return Email{addr: a.Address}, nil
}

// String returns the addr-spec text.
func (e Email) String() string {
	return e.addr
}

// IsZero reports whether the Email is absent.
func (e Email) IsZero() bool {
	return e.addr == ""
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.addr), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := ParseEmail(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
