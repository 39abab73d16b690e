package atom

import (
	"encoding/json"
	"io"
)

// The model types carry json tags and the scalar types implement the text
// marshaler interfaces, so aggregates round-trip through encoding/json
// directly. Absent optional fields are omitted rather than encoded as null.

// EncodeFeedJSON writes f as an indented JSON document.
func EncodeFeedJSON(w io.Writer, f Feed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// DecodeFeedJSON reads a JSON feed document and returns the validated Feed.
// Identifier, timestamp and email fields are revalidated during decoding,
// and the aggregate rules are re-checked.
func DecodeFeedJSON(r io.Reader) (Feed, error) {
	var f Feed
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Feed{}, err
	}
	if err := f.Validate(); err != nil {
		return Feed{}, err
	}
	return f, nil
}

// EncodeEntryJSON writes e as an indented JSON document.
func EncodeEntryJSON(w io.Writer, e Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// DecodeEntryJSON reads a JSON entry document and returns the validated Entry.
func DecodeEntryJSON(r io.Reader) (Entry, error) {
	var e Entry
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return Entry{}, err
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}
