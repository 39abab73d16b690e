package atom

import (
	"slices"

	"atomfeed/pkg/iri"
)

// Source is a snapshot of feed-level metadata carried inside an entry to
// preserve provenance when the entry is copied between feeds. Every field
// is optional, so a Source has no invariants of its own.
type Source struct {
	ID           iri.IRI       `json:"id,omitzero"`
	Title        Text          `json:"title,omitzero"`
	Updated      Timestamp     `json:"updated,omitzero"`
	Authors      []Author      `json:"authors,omitempty"`
	Categories   []Category    `json:"categories,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
	Generator    Generator     `json:"generator,omitzero"`
	Icon         iri.IRI       `json:"icon,omitzero"`
	Links        []Link        `json:"links,omitempty"`
	Logo         iri.IRI       `json:"logo,omitzero"`
	Rights       Text          `json:"rights,omitzero"`
	Subtitle     Text          `json:"subtitle,omitzero"`
	Base         iri.IRI       `json:"base,omitzero"`
	Lang         string        `json:"lang,omitempty"`
}

// SourceFromFeed snapshots f's metadata for carrying inside a copied entry.
// Entries are not part of the snapshot.
func SourceFromFeed(f Feed) Source {
	return Source{
		ID:           f.ID,
		Title:        f.Title,
		Updated:      f.Updated,
		Authors:      slices.Clone(f.Authors),
		Categories:   slices.Clone(f.Categories),
		Contributors: slices.Clone(f.Contributors),
		Generator:    f.Generator,
		Icon:         f.Icon,
		Links:        slices.Clone(f.Links),
		Logo:         f.Logo,
		Rights:       f.Rights,
		Subtitle:     f.Subtitle,
		Base:         f.Base,
		Lang:         f.Lang,
	}
}

// IsZero reports whether the source is absent.
func (s Source) IsZero() bool {
	return s.ID.IsZero() && s.Title.IsZero() && s.Updated.IsZero() &&
		len(s.Authors) == 0 && len(s.Categories) == 0 && len(s.Contributors) == 0 &&
		s.Generator.IsZero() && s.Icon.IsZero() && len(s.Links) == 0 &&
		s.Logo.IsZero() && s.Rights.IsZero() && s.Subtitle.IsZero() &&
		s.Base.IsZero() && s.Lang == ""
}
