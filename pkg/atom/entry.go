package atom

import (
	"fmt"
	"slices"

	"atomfeed/pkg/iri"
)

// Entry is an Atom entry: a single item of a feed. Construct entries with
// NewEntry, which enforces the completeness rules; a decoded or hand-built
// Entry can be re-checked with Validate.
type Entry struct {
	ID           iri.IRI       `json:"id"`
	Title        Text          `json:"title"`
	Updated      Timestamp     `json:"updated"`
	Authors      []Author      `json:"authors,omitempty"`
	Categories   []Category    `json:"categories,omitempty"`
	Content      Content       `json:"content,omitzero"`
	Contributors []Contributor `json:"contributors,omitempty"`
	Links        []Link        `json:"links,omitempty"`
	Published    Timestamp     `json:"published,omitzero"`
	Rights       Text          `json:"rights,omitzero"`
	Source       Source        `json:"source,omitzero"`
	Summary      Text          `json:"summary,omitzero"`
	Base         iri.IRI       `json:"base,omitzero"`
	Lang         string        `json:"lang,omitempty"`
}

// EntryOption supplies an optional entry field to NewEntry.
type EntryOption func(*Entry)

// EntryAuthors sets the entry's authors.
func EntryAuthors(authors ...Author) EntryOption {
	return func(e *Entry) { e.Authors = slices.Clone(authors) }
}

// EntryCategories sets the entry's categories.
func EntryCategories(categories ...Category) EntryOption {
	return func(e *Entry) { e.Categories = slices.Clone(categories) }
}

// EntryContent sets the entry's content.
func EntryContent(c Content) EntryOption {
	return func(e *Entry) { e.Content = c }
}

// EntryContributors sets the entry's contributors.
func EntryContributors(contributors ...Contributor) EntryOption {
	return func(e *Entry) { e.Contributors = slices.Clone(contributors) }
}

// EntryLinks sets the entry's links.
func EntryLinks(links ...Link) EntryOption {
	return func(e *Entry) { e.Links = slices.Clone(links) }
}

// EntryPublished sets the entry's initial publication instant.
func EntryPublished(ts Timestamp) EntryOption {
	return func(e *Entry) { e.Published = ts }
}

// EntryRights sets the entry's rights statement.
func EntryRights(t Text) EntryOption {
	return func(e *Entry) { e.Rights = t }
}

// EntrySource sets the provenance snapshot of the feed the entry was
// copied from.
func EntrySource(s Source) EntryOption {
	return func(e *Entry) { e.Source = s }
}

// EntrySummary sets the entry's summary.
func EntrySummary(t Text) EntryOption {
	return func(e *Entry) { e.Summary = t }
}

// EntryBase sets the entry's base IRI.
func EntryBase(base iri.IRI) EntryOption {
	return func(e *Entry) { e.Base = base }
}

// EntryLang sets the entry's language tag.
func EntryLang(lang string) EntryOption {
	return func(e *Entry) { e.Lang = lang }
}

// NewEntry builds a validated entry from its required fields and options.
// It fails with ErrEntryIncomplete when the entry has neither content nor a
// link whose effective relation is alternate, or when its content is out of
// line or binary and no summary is given. A failing construction returns
// the zero Entry.
func NewEntry(id iri.IRI, title Text, updated Timestamp, opts ...EntryOption) (Entry, error) {
	e := Entry{ID: id, Title: title, Updated: updated}
	for _, opt := range opts {
		opt(&e)
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Validate checks the entry's completeness rules. It is the same check
// NewEntry applies, exposed for the decode path.
func (e Entry) Validate() error {
	if e.ID.IsZero() {
		return fmt.Errorf("%w: missing id", ErrEntryIncomplete)
	}
	if e.Title.IsZero() {
		return fmt.Errorf("%w: missing title", ErrEntryIncomplete)
	}
	if e.Updated.IsZero() {
		return fmt.Errorf("%w: missing updated", ErrEntryIncomplete)
	}

	hasContent := !e.Content.IsZero()
	hasAlternate := slices.ContainsFunc(e.Links, Link.IsAlternate)
	if !hasContent && !hasAlternate {
		return fmt.Errorf("%w: no content and no alternate link", ErrEntryIncomplete)
	}

	if hasContent {
		if e.Content.IsOutOfLine() && e.Content.Value != "" {
			return fmt.Errorf("%w: content carries both a value and a src", ErrEntryIncomplete)
		}
		summaryRequired := e.Content.IsOutOfLine() || e.Content.Kind.IsBinary()
		if summaryRequired && e.Summary.IsZero() {
			return fmt.Errorf("%w: out-of-line or binary content requires a summary", ErrEntryIncomplete)
		}
	}
	return nil
}
