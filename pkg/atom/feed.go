package atom

import (
	"fmt"
	"slices"

	"atomfeed/pkg/iri"
)

// Feed is a top-level Atom document. Construct feeds with NewFeed, which
// enforces the attribution rule; a decoded or hand-built Feed can be
// re-checked with Validate.
type Feed struct {
	ID           iri.IRI       `json:"id"`
	Title        Text          `json:"title"`
	Updated      Timestamp     `json:"updated"`
	Authors      []Author      `json:"authors,omitempty"`
	Categories   []Category    `json:"categories,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
	Generator    Generator     `json:"generator,omitzero"`
	Icon         iri.IRI       `json:"icon,omitzero"`
	Links        []Link        `json:"links,omitempty"`
	Logo         iri.IRI       `json:"logo,omitzero"`
	Rights       Text          `json:"rights,omitzero"`
	Subtitle     Text          `json:"subtitle,omitzero"`
	Entries      []Entry       `json:"entries,omitempty"`
	Base         iri.IRI       `json:"base,omitzero"`
	Lang         string        `json:"lang,omitempty"`
}

// FeedOption supplies an optional feed field to NewFeed.
type FeedOption func(*Feed)

// FeedAuthors sets the feed-level authors, inherited by entries that
// declare none of their own.
func FeedAuthors(authors ...Author) FeedOption {
	return func(f *Feed) { f.Authors = slices.Clone(authors) }
}

// FeedCategories sets the feed's categories.
func FeedCategories(categories ...Category) FeedOption {
	return func(f *Feed) { f.Categories = slices.Clone(categories) }
}

// FeedContributors sets the feed's contributors.
func FeedContributors(contributors ...Contributor) FeedOption {
	return func(f *Feed) { f.Contributors = slices.Clone(contributors) }
}

// FeedGenerator sets the generating agent.
func FeedGenerator(g Generator) FeedOption {
	return func(f *Feed) { f.Generator = g }
}

// FeedIcon sets the feed's icon IRI.
func FeedIcon(icon iri.IRI) FeedOption {
	return func(f *Feed) { f.Icon = icon }
}

// FeedLinks sets the feed's links.
func FeedLinks(links ...Link) FeedOption {
	return func(f *Feed) { f.Links = slices.Clone(links) }
}

// FeedLogo sets the feed's logo IRI.
func FeedLogo(logo iri.IRI) FeedOption {
	return func(f *Feed) { f.Logo = logo }
}

// FeedRights sets the feed's rights statement.
func FeedRights(t Text) FeedOption {
	return func(f *Feed) { f.Rights = t }
}

// FeedSubtitle sets the feed's subtitle.
func FeedSubtitle(t Text) FeedOption {
	return func(f *Feed) { f.Subtitle = t }
}

// FeedEntries sets the feed's entries, in order.
func FeedEntries(entries ...Entry) FeedOption {
	return func(f *Feed) { f.Entries = slices.Clone(entries) }
}

// FeedBase sets the feed's base IRI.
func FeedBase(base iri.IRI) FeedOption {
	return func(f *Feed) { f.Base = base }
}

// FeedLang sets the feed's language tag.
func FeedLang(lang string) FeedOption {
	return func(f *Feed) { f.Lang = lang }
}

// NewFeed builds a validated feed from its required fields and options.
// It fails with ErrFeedIncomplete when the feed declares no authors while
// some entry also declares none; a feed with no entries has nothing to
// attribute and passes trivially. A failing construction returns the zero
// Feed.
func NewFeed(id iri.IRI, title Text, updated Timestamp, opts ...FeedOption) (Feed, error) {
	f := Feed{ID: id, Title: title, Updated: updated}
	for _, opt := range opts {
		opt(&f)
	}
	if err := f.Validate(); err != nil {
		return Feed{}, err
	}
	return f, nil
}

// Validate checks the feed's attribution rule and revalidates every entry.
func (f Feed) Validate() error {
	if f.ID.IsZero() {
		return fmt.Errorf("%w: missing id", ErrFeedIncomplete)
	}
	if f.Title.IsZero() {
		return fmt.Errorf("%w: missing title", ErrFeedIncomplete)
	}
	if f.Updated.IsZero() {
		return fmt.Errorf("%w: missing updated", ErrFeedIncomplete)
	}

	if len(f.Authors) == 0 {
		for _, e := range f.Entries {
			if len(e.Authors) == 0 {
				return fmt.Errorf("%w: no feed-level authors and entry %q has none", ErrFeedIncomplete, e.ID)
			}
		}
	}

	for _, e := range f.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
