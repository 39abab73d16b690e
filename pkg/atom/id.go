package atom

import (
	"github.com/google/uuid"

	"atomfeed/pkg/iri"
)

// NewID mints a unique urn:uuid identifier for a feed or entry.
// The urn scheme is self-contained, so the result needs no validation.
func NewID() iri.IRI {
	return iri.Unchecked("urn:uuid:" + uuid.NewString())
}
