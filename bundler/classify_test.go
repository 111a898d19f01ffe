package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbundler/document"
)

func TestIsObjectSchema(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"object type", "type: object\nproperties:\n  id:\n    type: integer\n", true},
		{"string type", "type: string\n", false},
		{"array of strings", "type: array\nitems:\n  type: string\n", false},
		{"type list with object", "type: [object, 'null']\n", true},
		{"type list without object", "type: [string, 'null']\n", false},
		{"oneOf", "oneOf:\n  - type: string\n  - type: integer\n", true},
		{"null oneOf", "oneOf: null\ntype: string\n", false},
		{"allOf with object member", "allOf:\n  - type: string\n  - type: object\n", true},
		{"allOf with nested allOf object", "allOf:\n  - allOf:\n      - type: object\n", true},
		{"allOf of refs only", "allOf:\n  - $ref: '#/components/schemas/Base'\n", false},
		{"allOf of primitives", "allOf:\n  - type: string\n  - maxLength: 3\n", false},
		{"bare ref", "$ref: ./pet.yaml\n", false},
		{"properties without type", "properties:\n  id:\n    type: integer\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := document.Parse("schema.yaml", []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsObjectSchema(n))
		})
	}

	assert.False(t, IsObjectSchema(nil))
	assert.False(t, IsObjectSchema(document.NewString("object")))
}
