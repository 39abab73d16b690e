package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomfeed/pkg/iri"
)

func testEntryID() iri.IRI {
	return iri.Unchecked("tag:example.org,2003:3.2397")
}

func testUpdated(t *testing.T) Timestamp {
	t.Helper()
	ts, err := ParseTimestamp("2003-12-13T18:30:02Z")
	require.NoError(t, err)
	return ts
}

func TestNewEntry_InlineContentNoLinks(t *testing.T) {
	e, err := NewEntry(testEntryID(), PlainText("Atom draft-07 snapshot"), testUpdated(t),
		EntryContent(InlineContent(ContentText, "Hello, world!")),
	)

	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", e.Content.Value)
	assert.Empty(t, e.Links)
}

func TestNewEntry_NoContentRelatedLinkOnly(t *testing.T) {
	related := NewLink(iri.Unchecked("https://example.org/related")).WithRel(RelRelated)

	_, err := NewEntry(testEntryID(), PlainText("Untitled"), testUpdated(t),
		EntryLinks(related),
	)

	assert.ErrorIs(t, err, ErrEntryIncomplete)
}

func TestNewEntry_NoContentAlternateLink(t *testing.T) {
	tests := []struct {
		name string
		link Link
	}{
		{
			name: "explicit alternate",
			link: AlternateLink(iri.Unchecked("https://example.org/2003/12/13/atom03")),
		},
		{
			name: "unspecified relation defaults to alternate",
			link: NewLink(iri.Unchecked("https://example.org/2003/12/13/atom03")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(testEntryID(), PlainText("Atom draft-07 snapshot"), testUpdated(t),
				EntryLinks(tt.link),
			)
			require.NoError(t, err)
			assert.Len(t, e.Links, 1)
		})
	}
}

func TestNewEntry_OutOfLineContentRequiresSummary(t *testing.T) {
	content := OutOfLineContent(MediaKind("image/png"), iri.Unchecked("https://example.org/image.png"))

	_, err := NewEntry(testEntryID(), PlainText("An image"), testUpdated(t),
		EntryContent(content),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)

	e, err := NewEntry(testEntryID(), PlainText("An image"), testUpdated(t),
		EntryContent(content),
		EntrySummary(PlainText("An image")),
	)
	require.NoError(t, err)
	assert.True(t, e.Content.IsOutOfLine())
}

func TestNewEntry_BinaryContentRequiresSummary(t *testing.T) {
	content := BinaryContent([]byte{0xde, 0xad, 0xbe, 0xef}, "application/octet-stream")

	_, err := NewEntry(testEntryID(), PlainText("A blob"), testUpdated(t),
		EntryContent(content),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)

	_, err = NewEntry(testEntryID(), PlainText("A blob"), testUpdated(t),
		EntryContent(content),
		EntrySummary(PlainText("Four bytes of interest")),
	)
	assert.NoError(t, err)
}

func TestNewEntry_OutOfLineXMLContentRequiresSummary(t *testing.T) {
	// The src-is-present half of the summary rule applies regardless of kind.
	content := OutOfLineContent(MediaKind("application/atom+xml"), iri.Unchecked("https://example.org/other.atom"))

	_, err := NewEntry(testEntryID(), PlainText("Elsewhere"), testUpdated(t),
		EntryContent(content),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)
}

func TestNewEntry_InlineTextContentNeedsNoSummary(t *testing.T) {
	tests := []struct {
		name string
		kind ContentKind
	}{
		{name: "text", kind: ContentText},
		{name: "html", kind: ContentHTML},
		{name: "xhtml", kind: ContentXHTML},
		{name: "xml media type", kind: MediaKind("application/xml")},
		{name: "text media type", kind: MediaKind("text/csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry(testEntryID(), PlainText("Untitled"), testUpdated(t),
				EntryContent(InlineContent(tt.kind, "body")),
			)
			assert.NoError(t, err)
		})
	}
}

func TestNewEntry_MissingRequiredFields(t *testing.T) {
	_, err := NewEntry(iri.IRI{}, PlainText("Untitled"), testUpdated(t),
		EntryContent(InlineContent(ContentText, "x")),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)

	_, err = NewEntry(testEntryID(), Text{}, testUpdated(t),
		EntryContent(InlineContent(ContentText, "x")),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)

	_, err = NewEntry(testEntryID(), PlainText("Untitled"), Timestamp{},
		EntryContent(InlineContent(ContentText, "x")),
	)
	assert.ErrorIs(t, err, ErrEntryIncomplete)
}

func TestNewEntry_FailureReturnsZeroEntry(t *testing.T) {
	e, err := NewEntry(testEntryID(), PlainText("Untitled"), testUpdated(t))

	assert.Error(t, err)
	assert.Equal(t, Entry{}, e)
}

func TestNewEntry_OptionalFields(t *testing.T) {
	published, err := ParseTimestamp("2003-11-09T17:23:02Z")
	require.NoError(t, err)

	author := NewPerson("Mark Pilgrim").
		WithEmail(mustEmail(t, "f8dy@example.com")).
		WithURI(iri.Unchecked("http://example.org/"))

	e, err := NewEntry(testEntryID(), PlainText("Atom draft-07 snapshot"), testUpdated(t),
		EntryAuthors(AsAuthor(author)),
		EntryContributors(NewContributor("Sam Ruby"), NewContributor("Joe Gregorio")),
		EntryCategories(NewCategory("tech").WithLabel("Technology")),
		EntryLinks(AlternateLink(iri.Unchecked("https://example.org/2005/04/02/atom"))),
		EntryPublished(published),
		EntryRights(PlainText("Copyright (c) 2003, Mark Pilgrim")),
		EntryLang("en"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Mark Pilgrim", e.Authors[0].Name)
	assert.Equal(t, "f8dy@example.com", e.Authors[0].Email.String())
	assert.Len(t, e.Contributors, 2)
	assert.Equal(t, "tech", e.Categories[0].Term)
	assert.True(t, e.Published.Equal(published))
	assert.Equal(t, "en", e.Lang)
}

func TestNewEntry_DuplicateLinksPermitted(t *testing.T) {
	l := AlternateLink(iri.Unchecked("https://example.org/1"))

	e, err := NewEntry(testEntryID(), PlainText("Untitled"), testUpdated(t),
		EntryLinks(l, l),
	)
	require.NoError(t, err)
	assert.Equal(t, []Link{l, l}, e.Links)
}

func mustEmail(t *testing.T, s string) Email {
	t.Helper()
	e, err := ParseEmail(s)
	require.NoError(t, err)
	return e
}
