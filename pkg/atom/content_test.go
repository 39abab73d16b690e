package atom

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomfeed/pkg/iri"
)

func TestContentKind_IsBinary(t *testing.T) {
	tests := []struct {
		name string
		kind ContentKind
		want bool
	}{
		{
			name: "plain text kind",
			kind: ContentText,
			want: false,
		},
		{
			name: "html kind",
			kind: ContentHTML,
			want: false,
		},
		{
			name: "xhtml kind",
			kind: ContentXHTML,
			want: false,
		},
		{
			name: "unspecified kind defaults to text",
			kind: "",
			want: false,
		},
		{
			name: "xml media type",
			kind: MediaKind("application/xml"),
			want: false,
		},
		{
			name: "xml-suffixed media type",
			kind: MediaKind("application/atom+xml"),
			want: false,
		},
		{
			name: "text-prefixed media type",
			kind: MediaKind("text/csv"),
			want: false,
		},
		{
			name: "image",
			kind: MediaKind("image/png"),
			want: true,
		},
		{
			name: "audio",
			kind: MediaKind("audio/mpeg"),
			want: true,
		},
		{
			name: "json",
			kind: MediaKind("application/json"),
			want: true,
		},
		{
			name: "octet stream",
			kind: MediaKind("application/octet-stream"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsBinary())
		})
	}
}

func TestContentKind_IsMedia(t *testing.T) {
	assert.False(t, ContentText.IsMedia())
	assert.False(t, ContentHTML.IsMedia())
	assert.False(t, ContentXHTML.IsMedia())
	assert.False(t, ContentKind("").IsMedia())
	assert.True(t, MediaKind("image/png").IsMedia())
	assert.True(t, MediaKind("application/atom+xml").IsMedia())
}

func TestInlineContent(t *testing.T) {
	c := InlineContent(ContentText, "Hello, world!")

	assert.True(t, c.IsInline())
	assert.False(t, c.IsOutOfLine())
	assert.False(t, c.IsZero())
	assert.Equal(t, "Hello, world!", c.Value)
	assert.True(t, c.Src.IsZero())
}

func TestOutOfLineContent(t *testing.T) {
	src := iri.Unchecked("https://example.org/image.png")
	c := OutOfLineContent(MediaKind("image/png"), src)

	assert.True(t, c.IsOutOfLine())
	assert.False(t, c.IsInline())
	assert.Equal(t, src, c.Src)
	assert.Empty(t, c.Value)
}

func TestBinaryContent(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	c := BinaryContent(data, "image/png")

	assert.True(t, c.IsInline())
	assert.Equal(t, MediaKind("image/png"), c.Kind)
	assert.True(t, c.Kind.IsBinary())

	decoded, err := base64.StdEncoding.DecodeString(c.Value)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestContent_IsZero(t *testing.T) {
	assert.True(t, Content{}.IsZero())
	assert.False(t, InlineContent(ContentText, "").IsZero())
}
