package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atomfeed/pkg/iri"
)

func TestPerson_Builders(t *testing.T) {
	p := NewPerson("Jane Doe").
		WithURI(iri.Unchecked("http://example.org/jane")).
		WithEmail(mustEmail(t, "jane@example.org")).
		WithLang("en")

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "http://example.org/jane", p.URI.String())
	assert.Equal(t, "jane@example.org", p.Email.String())
	assert.Equal(t, "en", p.Lang)

	// Builders copy; the original is untouched.
	assert.Equal(t, Person{Name: "Jane Doe"}, NewPerson("Jane Doe"))
}

func TestAuthorContributor_DistinctRoles(t *testing.T) {
	p := NewPerson("Jane Doe")

	a := AsAuthor(p)
	c := AsContributor(p)

	// Field access delegates to the inner person.
	assert.Equal(t, "Jane Doe", a.Name)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, p, a.Person)
	assert.Equal(t, p, c.Person)
}

func TestText_Constructors(t *testing.T) {
	tests := []struct {
		name string
		text Text
		kind TextKind
	}{
		{
			name: "plain",
			text: PlainText("Less: <"),
			kind: TextPlain,
		},
		{
			name: "html",
			text: HTMLText("Less: &lt;"),
			kind: TextHTML,
		},
		{
			name: "xhtml",
			text: XHTMLText("<p>Less: &lt;</p>"),
			kind: TextXHTML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.text.Kind)
			assert.False(t, tt.text.IsZero())
		})
	}
}

func TestText_WithBaseAndLang(t *testing.T) {
	base := iri.Unchecked("http://example.org/")
	txt := PlainText("hello").WithBase(base).WithLang("en")

	assert.Equal(t, base, txt.Base)
	assert.Equal(t, "en", txt.Lang)
	assert.Equal(t, PlainText("hello"), PlainText("hello"))
}

func TestText_IsZero(t *testing.T) {
	assert.True(t, Text{}.IsZero())
	assert.False(t, PlainText("").IsZero())
}
