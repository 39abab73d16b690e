package atom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomfeed/pkg/iri"
)

func TestNewID(t *testing.T) {
	id := NewID()

	assert.True(t, strings.HasPrefix(id.String(), "urn:uuid:"))
	assert.NotEqual(t, id, NewID())

	// A minted identifier survives validation.
	reparsed, err := iri.Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, reparsed)
}
