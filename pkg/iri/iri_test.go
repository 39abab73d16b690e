package iri

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "https URL",
			input: "https://example.org/feed.atom",
		},
		{
			name:  "urn uuid",
			input: "urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6",
		},
		{
			name:  "tag URI",
			input: "tag:example.org,2003:3",
		},
		{
			name:  "mailto",
			input: "mailto:jane@example.org",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "relative reference",
			input:   "/2003/12/13/atom03",
			wantErr: true,
		},
		{
			name:    "schemeless host",
			input:   "example.org/feed",
			wantErr: true,
		},
		{
			name:    "control character",
			input:   "https://example.org/\x7f",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
			assert.False(t, got.IsZero())
		})
	}
}

func TestParse_SentinelErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse("no-scheme-here")
	assert.ErrorIs(t, err, ErrNotAbsolute)
}

func TestUnchecked(t *testing.T) {
	// Unchecked takes the value as given, even if Parse would reject it.
	got := Unchecked("not a valid iri")
	assert.Equal(t, "not a valid iri", got.String())
	assert.False(t, got.IsZero())
}

func TestFromURL(t *testing.T) {
	u, err := url.Parse("https://example.org/feed?page=2")
	require.NoError(t, err)

	got := FromURL(u)
	assert.Equal(t, "https://example.org/feed?page=2", got.String())

	assert.True(t, FromURL(nil).IsZero())
}

func TestIRI_Equality(t *testing.T) {
	a, err := Parse("https://example.org/")
	require.NoError(t, err)
	b := Unchecked("https://example.org/")

	// Equality is by the underlying string regardless of construction path.
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Unchecked("https://example.org"))
}

func TestIRI_TextRoundTrip(t *testing.T) {
	original, err := Parse("https://example.org/feed.atom")
	require.NoError(t, err)

	text, err := original.MarshalText()
	require.NoError(t, err)

	var decoded IRI
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, original, decoded)
}

func TestIRI_UnmarshalText_Revalidates(t *testing.T) {
	var decoded IRI
	err := decoded.UnmarshalText([]byte("not-absolute"))
	assert.ErrorIs(t, err, ErrNotAbsolute)
	assert.True(t, decoded.IsZero())
}
