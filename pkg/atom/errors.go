package atom

import "errors"

// Sentinel errors for aggregate construction.
var (
	// ErrEntryIncomplete indicates that an entry fails a completeness rule:
	// it has neither inline content nor an alternate link, or it carries
	// out-of-line or binary content without a summary.
	ErrEntryIncomplete = errors.New("atom: entry incomplete")

	// ErrFeedIncomplete indicates that a feed fails the attribution rule:
	// it declares no feed-level authors while at least one of its entries
	// also declares none.
	ErrFeedIncomplete = errors.New("atom: feed incomplete")
)
