package atom

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedJSON_RoundTrip(t *testing.T) {
	original := richFeed(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeFeedJSON(&buf, original))

	decoded, err := DecodeFeedJSON(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(original, decoded, cmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

func TestEntryJSON_RoundTrip(t *testing.T) {
	original := richFeed(t).Entries[0]

	var buf bytes.Buffer
	require.NoError(t, EncodeEntryJSON(&buf, original))

	decoded, err := DecodeEntryJSON(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(original, decoded, cmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-original +decoded):\n%s", diff)
	}
}

func TestFeedJSON_AbsentFieldsOmitted(t *testing.T) {
	f, err := NewFeed(testFeedID(), PlainText("Example Feed"), testUpdated(t),
		FeedAuthors(NewAuthor("Jane Doe")),
	)
	require.NoError(t, err)

	raw, err := json.Marshal(f)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Contains(t, doc, "id")
	assert.Contains(t, doc, "title")
	assert.Contains(t, doc, "updated")
	assert.Contains(t, doc, "authors")
	assert.NotContains(t, doc, "rights")
	assert.NotContains(t, doc, "subtitle")
	assert.NotContains(t, doc, "generator")
	assert.NotContains(t, doc, "entries")
	// Absent optionals are omitted, never null.
	assert.NotContains(t, string(raw), "null")
}

func TestDecodeFeedJSON_Revalidates(t *testing.T) {
	doc := `{
  "id": "urn:example:feed",
  "title": {"kind": "text", "value": "t"},
  "updated": "2003-12-13T18:30:02Z",
  "entries": [
    {
      "id": "urn:example:e1",
      "title": {"kind": "text", "value": "e"},
      "updated": "2003-12-13T18:30:02Z",
      "links": [{"href": "http://example.org/1"}]
    }
  ]
}`

	_, err := DecodeFeedJSON(bytes.NewReader([]byte(doc)))
	assert.ErrorIs(t, err, ErrFeedIncomplete)
}

func TestDecodeFeedJSON_InvalidIdentifier(t *testing.T) {
	doc := `{
  "id": "not-absolute",
  "title": {"kind": "text", "value": "t"},
  "updated": "2003-12-13T18:30:02Z"
}`

	_, err := DecodeFeedJSON(bytes.NewReader([]byte(doc)))
	assert.Error(t, err)
}
