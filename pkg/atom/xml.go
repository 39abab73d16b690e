package atom

import (
	"encoding/xml"
	"io"

	"atomfeed/pkg/iri"
)

// NamespaceURI is the Atom XML namespace.
const NamespaceURI = "http://www.w3.org/2005/Atom"

// Wire structs for the Atom document format. XHTML and HTML text values are
// carried as escaped character data, so any Value string survives the
// encode/decode round trip unchanged.

type xmlText struct {
	Type string `xml:"type,attr,omitempty"`
	Base string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Body string `xml:",chardata"`
}

type xmlPerson struct {
	Base  string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Name  string `xml:"name"`
	URI   string `xml:"uri,omitempty"`
	Email string `xml:"email,omitempty"`
}

type xmlLink struct {
	Href     string `xml:"href,attr"`
	Rel      string `xml:"rel,attr,omitempty"`
	Type     string `xml:"type,attr,omitempty"`
	HrefLang string `xml:"hreflang,attr,omitempty"`
	Title    string `xml:"title,attr,omitempty"`
	Length   int64  `xml:"length,attr,omitempty"`
	Base     string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang     string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

type xmlCategory struct {
	Term   string `xml:"term,attr"`
	Scheme string `xml:"scheme,attr,omitempty"`
	Label  string `xml:"label,attr,omitempty"`
	Base   string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang   string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

type xmlGenerator struct {
	URI     string `xml:"uri,attr,omitempty"`
	Version string `xml:"version,attr,omitempty"`
	Base    string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang    string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Name    string `xml:",chardata"`
}

type xmlContent struct {
	Type string `xml:"type,attr,omitempty"`
	Src  string `xml:"src,attr,omitempty"`
	Base string `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Body string `xml:",chardata"`
}

type xmlSource struct {
	Base         string        `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang         string        `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	ID           string        `xml:"id,omitempty"`
	Title        *xmlText      `xml:"title"`
	Updated      string        `xml:"updated,omitempty"`
	Authors      []xmlPerson   `xml:"author"`
	Categories   []xmlCategory `xml:"category"`
	Contributors []xmlPerson   `xml:"contributor"`
	Generator    *xmlGenerator `xml:"generator"`
	Icon         string        `xml:"icon,omitempty"`
	Links        []xmlLink     `xml:"link"`
	Logo         string        `xml:"logo,omitempty"`
	Rights       *xmlText      `xml:"rights"`
	Subtitle     *xmlText      `xml:"subtitle"`
}

type xmlEntry struct {
	Base         string        `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang         string        `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	ID           string        `xml:"id"`
	Title        xmlText       `xml:"title"`
	Updated      string        `xml:"updated"`
	Authors      []xmlPerson   `xml:"author"`
	Categories   []xmlCategory `xml:"category"`
	Content      *xmlContent   `xml:"content"`
	Contributors []xmlPerson   `xml:"contributor"`
	Links        []xmlLink     `xml:"link"`
	Published    string        `xml:"published,omitempty"`
	Rights       *xmlText      `xml:"rights"`
	Source       *xmlSource    `xml:"source"`
	Summary      *xmlText      `xml:"summary"`
}

type xmlEntryDoc struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/Atom entry"`
	xmlEntry
}

type xmlFeed struct {
	XMLName      xml.Name      `xml:"http://www.w3.org/2005/Atom feed"`
	Base         string        `xml:"http://www.w3.org/XML/1998/namespace base,attr,omitempty"`
	Lang         string        `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	ID           string        `xml:"id"`
	Title        xmlText       `xml:"title"`
	Updated      string        `xml:"updated"`
	Authors      []xmlPerson   `xml:"author"`
	Categories   []xmlCategory `xml:"category"`
	Contributors []xmlPerson   `xml:"contributor"`
	Generator    *xmlGenerator `xml:"generator"`
	Icon         string        `xml:"icon,omitempty"`
	Links        []xmlLink     `xml:"link"`
	Logo         string        `xml:"logo,omitempty"`
	Rights       *xmlText      `xml:"rights"`
	Subtitle     *xmlText      `xml:"subtitle"`
	Entries      []xmlEntry    `xml:"entry"`
}

// EncodeFeed writes f as an Atom feed document, indented, with an XML
// declaration.
func EncodeFeed(w io.Writer, f Feed) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(feedToWire(f)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeFeed reads an Atom feed document and returns the validated Feed.
// Identifiers, timestamps and email addresses are revalidated, and the
// aggregate rules are re-checked; a document that would not have been
// constructible is rejected.
func DecodeFeed(r io.Reader) (Feed, error) {
	var x xmlFeed
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return Feed{}, err
	}
	f, err := wireToFeed(x)
	if err != nil {
		return Feed{}, err
	}
	if err := f.Validate(); err != nil {
		return Feed{}, err
	}
	return f, nil
}

// EncodeEntry writes e as a standalone Atom entry document.
func EncodeEntry(w io.Writer, e Entry) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(xmlEntryDoc{xmlEntry: entryToWire(e)}); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeEntry reads a standalone Atom entry document and returns the
// validated Entry.
func DecodeEntry(r io.Reader) (Entry, error) {
	var x xmlEntryDoc
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return Entry{}, err
	}
	e, err := wireToEntry(x.xmlEntry)
	if err != nil {
		return Entry{}, err
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// model → wire

func feedToWire(f Feed) xmlFeed {
	return xmlFeed{
		Base:         f.Base.String(),
		Lang:         f.Lang,
		ID:           f.ID.String(),
		Title:        textToWire(f.Title),
		Updated:      f.Updated.String(),
		Authors:      authorsToWire(f.Authors),
		Categories:   categoriesToWire(f.Categories),
		Contributors: contributorsToWire(f.Contributors),
		Generator:    generatorToWire(f.Generator),
		Icon:         f.Icon.String(),
		Links:        linksToWire(f.Links),
		Logo:         f.Logo.String(),
		Rights:       optTextToWire(f.Rights),
		Subtitle:     optTextToWire(f.Subtitle),
		Entries:      entriesToWire(f.Entries),
	}
}

func entryToWire(e Entry) xmlEntry {
	x := xmlEntry{
		Base:         e.Base.String(),
		Lang:         e.Lang,
		ID:           e.ID.String(),
		Title:        textToWire(e.Title),
		Updated:      e.Updated.String(),
		Authors:      authorsToWire(e.Authors),
		Categories:   categoriesToWire(e.Categories),
		Contributors: contributorsToWire(e.Contributors),
		Links:        linksToWire(e.Links),
		Rights:       optTextToWire(e.Rights),
		Summary:      optTextToWire(e.Summary),
	}
	if !e.Content.IsZero() {
		x.Content = &xmlContent{
			Type: string(e.Content.Kind),
			Src:  e.Content.Src.String(),
			Base: e.Content.Base.String(),
			Lang: e.Content.Lang,
			Body: e.Content.Value,
		}
	}
	if !e.Published.IsZero() {
		x.Published = e.Published.String()
	}
	if !e.Source.IsZero() {
		x.Source = sourceToWire(e.Source)
	}
	return x
}

func entriesToWire(entries []Entry) []xmlEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]xmlEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToWire(e))
	}
	return out
}

func sourceToWire(s Source) *xmlSource {
	x := &xmlSource{
		Base:         s.Base.String(),
		Lang:         s.Lang,
		ID:           s.ID.String(),
		Title:        optTextToWire(s.Title),
		Authors:      authorsToWire(s.Authors),
		Categories:   categoriesToWire(s.Categories),
		Contributors: contributorsToWire(s.Contributors),
		Generator:    generatorToWire(s.Generator),
		Icon:         s.Icon.String(),
		Links:        linksToWire(s.Links),
		Logo:         s.Logo.String(),
		Rights:       optTextToWire(s.Rights),
		Subtitle:     optTextToWire(s.Subtitle),
	}
	if !s.Updated.IsZero() {
		x.Updated = s.Updated.String()
	}
	return x
}

func textToWire(t Text) xmlText {
	kind := t.Kind
	if kind == "" {
		kind = TextPlain
	}
	return xmlText{
		Type: string(kind),
		Base: t.Base.String(),
		Lang: t.Lang,
		Body: t.Value,
	}
}

func optTextToWire(t Text) *xmlText {
	if t.IsZero() {
		return nil
	}
	x := textToWire(t)
	return &x
}

func personToWire(p Person) xmlPerson {
	return xmlPerson{
		Base:  p.Base.String(),
		Lang:  p.Lang,
		Name:  p.Name,
		URI:   p.URI.String(),
		Email: p.Email.String(),
	}
}

func authorsToWire(authors []Author) []xmlPerson {
	if len(authors) == 0 {
		return nil
	}
	out := make([]xmlPerson, 0, len(authors))
	for _, a := range authors {
		out = append(out, personToWire(a.Person))
	}
	return out
}

func contributorsToWire(contributors []Contributor) []xmlPerson {
	if len(contributors) == 0 {
		return nil
	}
	out := make([]xmlPerson, 0, len(contributors))
	for _, c := range contributors {
		out = append(out, personToWire(c.Person))
	}
	return out
}

func linksToWire(links []Link) []xmlLink {
	if len(links) == 0 {
		return nil
	}
	out := make([]xmlLink, 0, len(links))
	for _, l := range links {
		out = append(out, xmlLink{
			Href:     l.Href.String(),
			Rel:      string(l.Rel),
			Type:     l.Type,
			HrefLang: l.HrefLang,
			Title:    l.Title,
			Length:   l.Length,
			Base:     l.Base.String(),
			Lang:     l.Lang,
		})
	}
	return out
}

func categoriesToWire(categories []Category) []xmlCategory {
	if len(categories) == 0 {
		return nil
	}
	out := make([]xmlCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, xmlCategory{
			Term:   c.Term,
			Scheme: c.Scheme.String(),
			Label:  c.Label,
			Base:   c.Base.String(),
			Lang:   c.Lang,
		})
	}
	return out
}

func generatorToWire(g Generator) *xmlGenerator {
	if g.IsZero() {
		return nil
	}
	return &xmlGenerator{
		URI:     g.URI.String(),
		Version: g.Version,
		Base:    g.Base.String(),
		Lang:    g.Lang,
		Name:    g.Name,
	}
}

// wire → model
//
// Collaborator errors (net/url, net/mail, time parse errors) are returned
// unchanged to preserve the original diagnostic.

func wireToFeed(x xmlFeed) (Feed, error) {
	id, err := iri.Parse(x.ID)
	if err != nil {
		return Feed{}, err
	}
	updated, err := ParseTimestamp(x.Updated)
	if err != nil {
		return Feed{}, err
	}
	title, err := wireToText(x.Title)
	if err != nil {
		return Feed{}, err
	}
	authors, err := wireToAuthors(x.Authors)
	if err != nil {
		return Feed{}, err
	}
	categories, err := wireToCategories(x.Categories)
	if err != nil {
		return Feed{}, err
	}
	contributors, err := wireToContributors(x.Contributors)
	if err != nil {
		return Feed{}, err
	}
	generator, err := wireToGenerator(x.Generator)
	if err != nil {
		return Feed{}, err
	}
	icon, err := parseOptIRI(x.Icon)
	if err != nil {
		return Feed{}, err
	}
	links, err := wireToLinks(x.Links)
	if err != nil {
		return Feed{}, err
	}
	logo, err := parseOptIRI(x.Logo)
	if err != nil {
		return Feed{}, err
	}
	rights, err := wireToOptText(x.Rights)
	if err != nil {
		return Feed{}, err
	}
	subtitle, err := wireToOptText(x.Subtitle)
	if err != nil {
		return Feed{}, err
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Feed{}, err
	}

	entries := make([]Entry, 0, len(x.Entries))
	for _, xe := range x.Entries {
		e, err := wireToEntry(xe)
		if err != nil {
			return Feed{}, err
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		entries = nil
	}

	return Feed{
		ID:           id,
		Title:        title,
		Updated:      updated,
		Authors:      authors,
		Categories:   categories,
		Contributors: contributors,
		Generator:    generator,
		Icon:         icon,
		Links:        links,
		Logo:         logo,
		Rights:       rights,
		Subtitle:     subtitle,
		Entries:      entries,
		Base:         base,
		Lang:         x.Lang,
	}, nil
}

func wireToEntry(x xmlEntry) (Entry, error) {
	id, err := iri.Parse(x.ID)
	if err != nil {
		return Entry{}, err
	}
	updated, err := ParseTimestamp(x.Updated)
	if err != nil {
		return Entry{}, err
	}
	title, err := wireToText(x.Title)
	if err != nil {
		return Entry{}, err
	}
	authors, err := wireToAuthors(x.Authors)
	if err != nil {
		return Entry{}, err
	}
	categories, err := wireToCategories(x.Categories)
	if err != nil {
		return Entry{}, err
	}
	contributors, err := wireToContributors(x.Contributors)
	if err != nil {
		return Entry{}, err
	}
	links, err := wireToLinks(x.Links)
	if err != nil {
		return Entry{}, err
	}
	rights, err := wireToOptText(x.Rights)
	if err != nil {
		return Entry{}, err
	}
	summary, err := wireToOptText(x.Summary)
	if err != nil {
		return Entry{}, err
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:           id,
		Title:        title,
		Updated:      updated,
		Authors:      authors,
		Categories:   categories,
		Contributors: contributors,
		Links:        links,
		Rights:       rights,
		Summary:      summary,
		Base:         base,
		Lang:         x.Lang,
	}

	if x.Content != nil {
		src, err := parseOptIRI(x.Content.Src)
		if err != nil {
			return Entry{}, err
		}
		cbase, err := parseOptIRI(x.Content.Base)
		if err != nil {
			return Entry{}, err
		}
		kind := ContentKind(x.Content.Type)
		if kind == "" {
			kind = ContentText
		}
		e.Content = Content{
			Kind:  kind,
			Value: x.Content.Body,
			Src:   src,
			Base:  cbase,
			Lang:  x.Content.Lang,
		}
	}
	if x.Published != "" {
		published, err := ParseTimestamp(x.Published)
		if err != nil {
			return Entry{}, err
		}
		e.Published = published
	}
	if x.Source != nil {
		source, err := wireToSource(*x.Source)
		if err != nil {
			return Entry{}, err
		}
		e.Source = source
	}
	return e, nil
}

func wireToSource(x xmlSource) (Source, error) {
	id, err := parseOptIRI(x.ID)
	if err != nil {
		return Source{}, err
	}
	title, err := wireToOptText(x.Title)
	if err != nil {
		return Source{}, err
	}
	authors, err := wireToAuthors(x.Authors)
	if err != nil {
		return Source{}, err
	}
	categories, err := wireToCategories(x.Categories)
	if err != nil {
		return Source{}, err
	}
	contributors, err := wireToContributors(x.Contributors)
	if err != nil {
		return Source{}, err
	}
	generator, err := wireToGenerator(x.Generator)
	if err != nil {
		return Source{}, err
	}
	icon, err := parseOptIRI(x.Icon)
	if err != nil {
		return Source{}, err
	}
	links, err := wireToLinks(x.Links)
	if err != nil {
		return Source{}, err
	}
	logo, err := parseOptIRI(x.Logo)
	if err != nil {
		return Source{}, err
	}
	rights, err := wireToOptText(x.Rights)
	if err != nil {
		return Source{}, err
	}
	subtitle, err := wireToOptText(x.Subtitle)
	if err != nil {
		return Source{}, err
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Source{}, err
	}

	s := Source{
		ID:           id,
		Title:        title,
		Authors:      authors,
		Categories:   categories,
		Contributors: contributors,
		Generator:    generator,
		Icon:         icon,
		Links:        links,
		Logo:         logo,
		Rights:       rights,
		Subtitle:     subtitle,
		Base:         base,
		Lang:         x.Lang,
	}
	if x.Updated != "" {
		updated, err := ParseTimestamp(x.Updated)
		if err != nil {
			return Source{}, err
		}
		s.Updated = updated
	}
	return s, nil
}

func wireToText(x xmlText) (Text, error) {
	kind := TextKind(x.Type)
	if kind == "" {
		kind = TextPlain
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Text{}, err
	}
	return Text{Kind: kind, Value: x.Body, Base: base, Lang: x.Lang}, nil
}

func wireToOptText(x *xmlText) (Text, error) {
	if x == nil {
		return Text{}, nil
	}
	return wireToText(*x)
}

func wireToPerson(x xmlPerson) (Person, error) {
	uri, err := parseOptIRI(x.URI)
	if err != nil {
		return Person{}, err
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Person{}, err
	}
	var email Email
	if x.Email != "" {
		email, err = ParseEmail(x.Email)
		if err != nil {
			return Person{}, err
		}
	}
	return Person{Name: x.Name, URI: uri, Email: email, Base: base, Lang: x.Lang}, nil
}

func wireToAuthors(xs []xmlPerson) ([]Author, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]Author, 0, len(xs))
	for _, x := range xs {
		p, err := wireToPerson(x)
		if err != nil {
			return nil, err
		}
		out = append(out, AsAuthor(p))
	}
	return out, nil
}

func wireToContributors(xs []xmlPerson) ([]Contributor, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]Contributor, 0, len(xs))
	for _, x := range xs {
		p, err := wireToPerson(x)
		if err != nil {
			return nil, err
		}
		out = append(out, AsContributor(p))
	}
	return out, nil
}

func wireToLinks(xs []xmlLink) ([]Link, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]Link, 0, len(xs))
	for _, x := range xs {
		href, err := iri.Parse(x.Href)
		if err != nil {
			return nil, err
		}
		base, err := parseOptIRI(x.Base)
		if err != nil {
			return nil, err
		}
		out = append(out, Link{
			Href:     href,
			Rel:      Relation(x.Rel),
			Type:     x.Type,
			HrefLang: x.HrefLang,
			Title:    x.Title,
			Length:   x.Length,
			Base:     base,
			Lang:     x.Lang,
		})
	}
	return out, nil
}

func wireToCategories(xs []xmlCategory) ([]Category, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]Category, 0, len(xs))
	for _, x := range xs {
		scheme, err := parseOptIRI(x.Scheme)
		if err != nil {
			return nil, err
		}
		base, err := parseOptIRI(x.Base)
		if err != nil {
			return nil, err
		}
		out = append(out, Category{
			Term:   x.Term,
			Scheme: scheme,
			Label:  x.Label,
			Base:   base,
			Lang:   x.Lang,
		})
	}
	return out, nil
}

func wireToGenerator(x *xmlGenerator) (Generator, error) {
	if x == nil {
		return Generator{}, nil
	}
	uri, err := parseOptIRI(x.URI)
	if err != nil {
		return Generator{}, err
	}
	base, err := parseOptIRI(x.Base)
	if err != nil {
		return Generator{}, err
	}
	return Generator{Name: x.Name, URI: uri, Version: x.Version, Base: base, Lang: x.Lang}, nil
}

func parseOptIRI(s string) (iri.IRI, error) {
	if s == "" {
		return iri.IRI{}, nil
	}
	return iri.Parse(s)
}
