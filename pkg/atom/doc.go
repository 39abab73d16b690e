// Package atom defines the typed data model for the Atom Syndication Format
// (RFC 4287): text, person, link, category, generator, content and source
// constructs, and the Feed and Entry aggregates built from them.
//
// Validation happens at construction time. NewEntry and NewFeed enforce the
// aggregate-level rules of the format (an entry must carry content or an
// alternate link, out-of-line and binary content requires a summary, a feed
// must be attributable) and fail atomically: a failing construction yields no
// partially-built value. Everything is an immutable value type; "updating" a
// feed means building a new one.
//
// Wire encoding is provided for Atom XML documents via EncodeFeed/DecodeFeed
// and their entry-document counterparts, and all scalar types round-trip
// through encoding/json. Decoding revalidates every identifier, timestamp,
// email and aggregate invariant, so a decoded value is as trustworthy as a
// constructed one.
package atom
