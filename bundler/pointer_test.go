package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointer(t *testing.T) {
	tests := []struct {
		raw      string
		kind     pointerKind
		file     string
		fragment string
		name     string
	}{
		{"#/components/schemas/Pet", pointerRegistry, "", "/components/schemas/Pet", "Pet"},
		{"#/components/schemas/a~1b", pointerRegistry, "", "/components/schemas/a~1b", "a/b"},
		{"#/Dog", pointerLocal, "", "/Dog", "Dog"},
		{"#/components/parameters/limit", pointerRoot, "", "/components/parameters/limit", "limit"},
		{"#/components/schemas/Pet/properties/id", pointerRoot, "", "/components/schemas/Pet/properties/id", "id"},
		{"#", pointerRoot, "", "", ""},
		{"../models/a.yaml#/Foo", pointerFragment, "../models/a.yaml", "/Foo", "Foo"},
		{"a.yaml#/components/schemas/Bar", pointerFragment, "a.yaml", "/components/schemas/Bar", "Bar"},
		{"../models/a.yaml", pointerDocument, "../models/a.yaml", "", ""},
		{"a.yaml#", pointerDocument, "a.yaml", "", ""},
		{"a.yaml#/", pointerDocument, "a.yaml", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := parsePointer(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.kind, "kind %s", p.kind)
			assert.Equal(t, tt.file, p.file)
			assert.Equal(t, tt.fragment, p.fragment)
			assert.Equal(t, tt.name, p.name)
		})
	}
}

func TestParsePointerErrors(t *testing.T) {
	_, err := parsePointer("")
	assert.ErrorIs(t, err, errEmptyPointer)

	_, err = parsePointer("  ")
	assert.ErrorIs(t, err, errEmptyPointer)

	_, err = parsePointer("https://example.com/pet.yaml#/Pet")
	assert.ErrorIs(t, err, errRemotePointer)
}

func TestIsBareName(t *testing.T) {
	assert.True(t, isBareName("Dog"))
	assert.False(t, isBareName("#/components/schemas/Dog"))
	assert.False(t, isBareName("dog.yaml"))
	assert.False(t, isBareName("models/Dog"))
	assert.False(t, isBareName(""))
}
