// Package iri provides a validated IRI (internationalized resource identifier)
// value type used throughout the Atom model for feed IDs, links, icons and
// base references. An IRI is opaque once constructed: equality is by the
// underlying string, and the zero value means "absent".
package iri

import (
	"errors"
	"net/url"
)

// Sentinel errors for IRI validation.
var (
	// ErrEmptyInput indicates that an empty string was given where an IRI is required.
	ErrEmptyInput = errors.New("iri: empty input")

	// ErrNotAbsolute indicates that the input has no scheme.
	// Atom identifiers and link targets must be absolute IRI references.
	ErrNotAbsolute = errors.New("iri: missing scheme")
)

// IRI is a validated internationalized resource identifier.
// The zero value is the absent IRI; use IsZero to test for it.
type IRI struct {
	raw string
}

// Parse validates s and returns it as an IRI.
// It fails on empty input, input net/url cannot parse, and relative
// references. Errors from net/url are returned unchanged.
func Parse(s string) (IRI, error) {
	if s == "" {
		return IRI{}, ErrEmptyInput
	}
	u, err := url.Parse(s)
	if err != nil {
		return IRI{}, err
	}
	if u.Scheme == "" {
		return IRI{}, ErrNotAbsolute
	}
	return IRI{raw: s}, nil
}

// Unchecked wraps s as an IRI without validation.
//
// This is a trust boundary: it exists for values that are already known to be
// valid, such as identifiers this library previously serialized or
// compile-time constants. Arbitrary input must go through Parse.
func Unchecked(s string) IRI {
	return IRI{raw: s}
}

// FromURL converts an already-parsed URL into an IRI.
// A nil or empty URL converts to the zero IRI.
func FromURL(u *url.URL) IRI {
	if u == nil {
		return IRI{}
	}
	return IRI{raw: u.String()}
}

// String returns the textual form of the IRI.
func (i IRI) String() string {
	return i.raw
}

// IsZero reports whether the IRI is absent.
func (i IRI) IsZero() bool {
	return i.raw == ""
}

// MarshalText implements encoding.TextMarshaler.
func (i IRI) MarshalText() ([]byte, error) {
	return []byte(i.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Input is revalidated through Parse; decode paths are untrusted.
func (i *IRI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
