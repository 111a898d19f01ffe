package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaRef(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", SchemaRef("Pet"))
	assert.Equal(t, "#/components/schemas/a~1b", SchemaRef("a/b"))
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, token := range []string{"plain", "a/b", "a~b", "~1", "/~/"} {
		assert.Equal(t, token, UnescapeToken(EscapeToken(token)), "token %q", token)
	}
	// ~01 must decode to ~1, not /
	assert.Equal(t, "~1", UnescapeToken("~01"))
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		fragment string
		want     []string
	}{
		{"", nil},
		{"/", nil},
		{"/Foo", []string{"Foo"}},
		{"Foo", []string{"Foo"}},
		{"/components/schemas/Pet", []string{"components", "schemas", "Pet"}},
		{"/paths/~1pets/get", []string{"paths", "/pets", "get"}},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFragment(tt.fragment))
		})
	}
}
