// Package ingest converts feeds parsed by the gofeed library into validated
// Atom model values. It performs no fetching of its own; callers hand it the
// result of a gofeed parse.
package ingest

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"atomfeed/pkg/atom"
	"atomfeed/pkg/iri"
)

// FromGofeed maps a parsed feed into a validated atom.Feed.
//
// Lossy inputs are papered over the way a crawler would: a feed or item
// without a usable identifier gets a fresh urn:uuid, a missing updated
// instant falls back to the published instant and then to now, and item
// bodies land in content as HTML with the description as summary. Entries
// that still fail validation abort the conversion.
func FromGofeed(src *gofeed.Feed) (atom.Feed, error) {
	if src == nil {
		return atom.Feed{}, fmt.Errorf("ingest: nil feed")
	}

	opts := []atom.FeedOption{}
	authors, err := personsToAuthors(src.Authors)
	if err != nil {
		return atom.Feed{}, err
	}
	if len(authors) > 0 {
		opts = append(opts, atom.FeedAuthors(authors...))
	}
	if src.Language != "" {
		opts = append(opts, atom.FeedLang(src.Language))
	}
	if src.Description != "" {
		opts = append(opts, atom.FeedSubtitle(atom.PlainText(src.Description)))
	}
	if src.Copyright != "" {
		opts = append(opts, atom.FeedRights(atom.PlainText(src.Copyright)))
	}
	if src.Generator != "" {
		opts = append(opts, atom.FeedGenerator(atom.NewGenerator(src.Generator)))
	}
	if categories := termsToCategories(src.Categories); len(categories) > 0 {
		opts = append(opts, atom.FeedCategories(categories...))
	}

	var links []atom.Link
	if alt, err := iri.Parse(src.Link); err == nil {
		links = append(links, atom.AlternateLink(alt))
	}
	if self, err := iri.Parse(src.FeedLink); err == nil {
		links = append(links, atom.NewLink(self).WithRel(atom.RelSelf))
	}
	if len(links) > 0 {
		opts = append(opts, atom.FeedLinks(links...))
	}

	entries := make([]atom.Entry, 0, len(src.Items))
	for _, item := range src.Items {
		e, err := entryFromItem(item, src)
		if err != nil {
			return atom.Feed{}, err
		}
		entries = append(entries, e)
	}
	if len(entries) > 0 {
		opts = append(opts, atom.FeedEntries(entries...))
	}

	return atom.NewFeed(
		feedID(src),
		atom.PlainText(src.Title),
		updatedAt(src.UpdatedParsed, src.PublishedParsed),
		opts...,
	)
}

func entryFromItem(item *gofeed.Item, src *gofeed.Feed) (atom.Entry, error) {
	opts := []atom.EntryOption{}
	authors, err := personsToAuthors(item.Authors)
	if err != nil {
		return atom.Entry{}, err
	}
	if len(authors) > 0 {
		opts = append(opts, atom.EntryAuthors(authors...))
	}
	if categories := termsToCategories(item.Categories); len(categories) > 0 {
		opts = append(opts, atom.EntryCategories(categories...))
	}
	if alt, err := iri.Parse(item.Link); err == nil {
		opts = append(opts, atom.EntryLinks(atom.AlternateLink(alt)))
	}
	if item.Content != "" {
		opts = append(opts, atom.EntryContent(atom.InlineContent(atom.ContentHTML, item.Content)))
	}
	if item.Description != "" {
		opts = append(opts, atom.EntrySummary(atom.HTMLText(item.Description)))
	}
	if item.PublishedParsed != nil {
		opts = append(opts, atom.EntryPublished(atom.NewTimestamp(*item.PublishedParsed)))
	}

	updated := item.UpdatedParsed
	if updated == nil {
		updated = item.PublishedParsed
	}
	if updated == nil {
		updated = src.UpdatedParsed
	}

	return atom.NewEntry(
		itemID(item),
		atom.PlainText(item.Title),
		updatedAt(updated, nil),
		opts...,
	)
}

func feedID(src *gofeed.Feed) iri.IRI {
	if id, err := iri.Parse(src.FeedLink); err == nil {
		return id
	}
	if id, err := iri.Parse(src.Link); err == nil {
		return id
	}
	return atom.NewID()
}

func itemID(item *gofeed.Item) iri.IRI {
	if id, err := iri.Parse(item.GUID); err == nil {
		return id
	}
	if id, err := iri.Parse(item.Link); err == nil {
		return id
	}
	return atom.NewID()
}

func personsToAuthors(persons []*gofeed.Person) ([]atom.Author, error) {
	if len(persons) == 0 {
		return nil, nil
	}
	out := make([]atom.Author, 0, len(persons))
	for _, p := range persons {
		if p == nil {
			continue
		}
		person := atom.NewPerson(p.Name)
		if p.Email != "" {
			email, err := atom.ParseEmail(p.Email)
			if err != nil {
				return nil, err
			}
			person = person.WithEmail(email)
		}
		out = append(out, atom.AsAuthor(person))
	}
	return out, nil
}

func termsToCategories(terms []string) []atom.Category {
	if len(terms) == 0 {
		return nil
	}
	out := make([]atom.Category, 0, len(terms))
	for _, term := range terms {
		out = append(out, atom.NewCategory(term))
	}
	return out
}

func updatedAt(updated, published *time.Time) atom.Timestamp {
	if updated != nil {
		return atom.NewTimestamp(*updated)
	}
	if published != nil {
		return atom.NewTimestamp(*published)
	}
	return atom.Now()
}
