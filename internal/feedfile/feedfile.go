// Package feedfile loads YAML feed definitions and builds validated Atom
// feeds from them. It exists for the CLI build path: a definition file is
// authored by hand, so every field goes through the validating constructors
// and parse errors name the offending field.
package feedfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"atomfeed/pkg/atom"
	"atomfeed/pkg/iri"
)

// Definition is the YAML schema of a feed definition file.
type Definition struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title"`
	Updated  string            `yaml:"updated"`
	Subtitle string            `yaml:"subtitle"`
	Rights   string            `yaml:"rights"`
	Icon     string            `yaml:"icon"`
	Logo     string            `yaml:"logo"`
	Lang     string            `yaml:"lang"`
	Authors  []PersonDef       `yaml:"authors"`
	Links    []LinkDef         `yaml:"links"`
	Tags     []CategoryDef     `yaml:"categories"`
	Entries  []EntryDefinition `yaml:"entries"`
}

// PersonDef is a person in a definition file.
type PersonDef struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	URI   string `yaml:"uri"`
}

// LinkDef is a link in a definition file.
type LinkDef struct {
	Href string `yaml:"href"`
	Rel  string `yaml:"rel"`
	Type string `yaml:"type"`
}

// CategoryDef is a category in a definition file.
type CategoryDef struct {
	Term   string `yaml:"term"`
	Scheme string `yaml:"scheme"`
	Label  string `yaml:"label"`
}

// ContentDef is entry content in a definition file. Type takes the Atom
// content kinds (text, html, xhtml) or a media type; exactly one of value
// and src should be given.
type ContentDef struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
	Src   string `yaml:"src"`
}

// EntryDefinition is an entry in a definition file.
type EntryDefinition struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Updated   string        `yaml:"updated"`
	Published string        `yaml:"published"`
	Summary   string        `yaml:"summary"`
	Content   *ContentDef   `yaml:"content"`
	Authors   []PersonDef   `yaml:"authors"`
	Links     []LinkDef     `yaml:"links"`
	Tags      []CategoryDef `yaml:"categories"`
}

// Load reads a YAML feed definition and builds the validated feed.
func Load(r io.Reader) (atom.Feed, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return atom.Feed{}, fmt.Errorf("feedfile: decode: %w", err)
	}
	return Build(def)
}

// Build turns a definition into a validated feed.
func Build(def Definition) (atom.Feed, error) {
	id, err := iri.Parse(def.ID)
	if err != nil {
		return atom.Feed{}, fmt.Errorf("feedfile: feed id: %w", err)
	}
	updated, err := atom.ParseTimestamp(def.Updated)
	if err != nil {
		return atom.Feed{}, fmt.Errorf("feedfile: feed updated: %w", err)
	}

	opts := []atom.FeedOption{}
	if def.Subtitle != "" {
		opts = append(opts, atom.FeedSubtitle(atom.PlainText(def.Subtitle)))
	}
	if def.Rights != "" {
		opts = append(opts, atom.FeedRights(atom.PlainText(def.Rights)))
	}
	if def.Lang != "" {
		opts = append(opts, atom.FeedLang(def.Lang))
	}
	if def.Icon != "" {
		icon, err := iri.Parse(def.Icon)
		if err != nil {
			return atom.Feed{}, fmt.Errorf("feedfile: feed icon: %w", err)
		}
		opts = append(opts, atom.FeedIcon(icon))
	}
	if def.Logo != "" {
		logo, err := iri.Parse(def.Logo)
		if err != nil {
			return atom.Feed{}, fmt.Errorf("feedfile: feed logo: %w", err)
		}
		opts = append(opts, atom.FeedLogo(logo))
	}
	if len(def.Authors) > 0 {
		authors, err := buildAuthors(def.Authors)
		if err != nil {
			return atom.Feed{}, err
		}
		opts = append(opts, atom.FeedAuthors(authors...))
	}
	if len(def.Links) > 0 {
		links, err := buildLinks(def.Links)
		if err != nil {
			return atom.Feed{}, err
		}
		opts = append(opts, atom.FeedLinks(links...))
	}
	if len(def.Tags) > 0 {
		categories, err := buildCategories(def.Tags)
		if err != nil {
			return atom.Feed{}, err
		}
		opts = append(opts, atom.FeedCategories(categories...))
	}
	if len(def.Entries) > 0 {
		entries := make([]atom.Entry, 0, len(def.Entries))
		for i, edef := range def.Entries {
			e, err := buildEntry(edef)
			if err != nil {
				return atom.Feed{}, fmt.Errorf("feedfile: entry %d: %w", i, err)
			}
			entries = append(entries, e)
		}
		opts = append(opts, atom.FeedEntries(entries...))
	}

	return atom.NewFeed(id, atom.PlainText(def.Title), updated, opts...)
}

func buildEntry(def EntryDefinition) (atom.Entry, error) {
	id, err := iri.Parse(def.ID)
	if err != nil {
		return atom.Entry{}, fmt.Errorf("id: %w", err)
	}
	updated, err := atom.ParseTimestamp(def.Updated)
	if err != nil {
		return atom.Entry{}, fmt.Errorf("updated: %w", err)
	}

	opts := []atom.EntryOption{}
	if def.Published != "" {
		published, err := atom.ParseTimestamp(def.Published)
		if err != nil {
			return atom.Entry{}, fmt.Errorf("published: %w", err)
		}
		opts = append(opts, atom.EntryPublished(published))
	}
	if def.Summary != "" {
		opts = append(opts, atom.EntrySummary(atom.PlainText(def.Summary)))
	}
	if def.Content != nil {
		content, err := buildContent(*def.Content)
		if err != nil {
			return atom.Entry{}, err
		}
		opts = append(opts, atom.EntryContent(content))
	}
	if len(def.Authors) > 0 {
		authors, err := buildAuthors(def.Authors)
		if err != nil {
			return atom.Entry{}, err
		}
		opts = append(opts, atom.EntryAuthors(authors...))
	}
	if len(def.Links) > 0 {
		links, err := buildLinks(def.Links)
		if err != nil {
			return atom.Entry{}, err
		}
		opts = append(opts, atom.EntryLinks(links...))
	}
	if len(def.Tags) > 0 {
		categories, err := buildCategories(def.Tags)
		if err != nil {
			return atom.Entry{}, err
		}
		opts = append(opts, atom.EntryCategories(categories...))
	}

	return atom.NewEntry(id, atom.PlainText(def.Title), updated, opts...)
}

func buildContent(def ContentDef) (atom.Content, error) {
	kind := atom.ContentKind(def.Type)
	if kind == "" {
		kind = atom.ContentText
	}
	if def.Src != "" {
		if def.Value != "" {
			return atom.Content{}, fmt.Errorf("content has both value and src")
		}
		src, err := iri.Parse(def.Src)
		if err != nil {
			return atom.Content{}, fmt.Errorf("content src: %w", err)
		}
		return atom.OutOfLineContent(kind, src), nil
	}
	return atom.InlineContent(kind, def.Value), nil
}

func buildAuthors(defs []PersonDef) ([]atom.Author, error) {
	out := make([]atom.Author, 0, len(defs))
	for _, d := range defs {
		p, err := buildPerson(d)
		if err != nil {
			return nil, err
		}
		out = append(out, atom.AsAuthor(p))
	}
	return out, nil
}

func buildPerson(def PersonDef) (atom.Person, error) {
	p := atom.NewPerson(def.Name)
	if def.Email != "" {
		email, err := atom.ParseEmail(def.Email)
		if err != nil {
			return atom.Person{}, fmt.Errorf("author %q email: %w", def.Name, err)
		}
		p = p.WithEmail(email)
	}
	if def.URI != "" {
		uri, err := iri.Parse(def.URI)
		if err != nil {
			return atom.Person{}, fmt.Errorf("author %q uri: %w", def.Name, err)
		}
		p = p.WithURI(uri)
	}
	return p, nil
}

func buildLinks(defs []LinkDef) ([]atom.Link, error) {
	out := make([]atom.Link, 0, len(defs))
	for _, d := range defs {
		href, err := iri.Parse(d.Href)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", d.Href, err)
		}
		l := atom.NewLink(href).WithRel(atom.Relation(d.Rel))
		if d.Type != "" {
			l = l.WithType(d.Type)
		}
		out = append(out, l)
	}
	return out, nil
}

func buildCategories(defs []CategoryDef) ([]atom.Category, error) {
	out := make([]atom.Category, 0, len(defs))
	for _, d := range defs {
		c := atom.NewCategory(d.Term)
		if d.Scheme != "" {
			scheme, err := iri.Parse(d.Scheme)
			if err != nil {
				return nil, fmt.Errorf("category %q scheme: %w", d.Term, err)
			}
			c = c.WithScheme(scheme)
		}
		if d.Label != "" {
			c = c.WithLabel(d.Label)
		}
		out = append(out, c)
	}
	return out, nil
}
