package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func mustParse(t *testing.T, src string) *yaml.Node {
	t.Helper()
	root, err := Parse("test.yaml", []byte(src))
	require.NoError(t, err)
	return root
}

func TestGetSetDelete(t *testing.T) {
	root := mustParse(t, "b: 1\na: 2\n")

	assert.Equal(t, []string{"b", "a"}, Keys(root))
	v, ok := StringValue(Get(root, "a"))
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Nil(t, Get(root, "missing"))
	assert.True(t, Has(root, "b"))

	Set(root, "b", NewString("x"))
	Set(root, "c", NewString("y"))
	assert.Equal(t, []string{"b", "a", "c"}, Keys(root), "existing key keeps its position")

	assert.True(t, Delete(root, "a"))
	assert.False(t, Delete(root, "a"))
	assert.Equal(t, []string{"b", "c"}, Keys(root))
}

func TestHelpersOnNonMapping(t *testing.T) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	assert.Nil(t, Get(seq, "a"))
	assert.Nil(t, Keys(seq))
	assert.False(t, Delete(seq, "a"))
	Set(seq, "a", NewString("b"))
	assert.Empty(t, seq.Content)
	assert.Nil(t, Deref(nil))
}

func TestDerefEmptyDocument(t *testing.T) {
	assert.Nil(t, Deref(&yaml.Node{Kind: yaml.DocumentNode}))
	assert.Nil(t, Deref(&yaml.Node{}))
	assert.Nil(t, Deref(&yaml.Node{Kind: yaml.AliasNode, Alias: &yaml.Node{Kind: yaml.DocumentNode}}))

	for _, src := range []string{"", "\n"} {
		_, err := Parse("empty.yaml", []byte(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty document", "source %q", src)
	}
}

func TestRefOnlyAndRefOf(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantRef  string
		wantOnly bool
		wantOf   bool
	}{
		{"bare ref", "$ref: '#/components/schemas/Pet'\n", "#/components/schemas/Pet", true, true},
		{"ref with sibling", "$ref: ./pet.yaml\ndescription: a pet\n", "./pet.yaml", false, true},
		{"no ref", "type: string\n", "", false, false},
		{"non-scalar ref", "$ref:\n  a: b\n", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.src)
			ref, ok := RefOnly(n)
			assert.Equal(t, tt.wantOnly, ok)
			if ok {
				assert.Equal(t, tt.wantRef, ref)
			}
			ref, ok = RefOf(n)
			assert.Equal(t, tt.wantOf, ok)
			if ok {
				assert.Equal(t, tt.wantRef, ref)
			}
		})
	}
}

func TestNewRef(t *testing.T) {
	n := NewRef("#/components/schemas/Dog")
	ref, ok := RefOnly(n)
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Dog", ref)
}

func TestClone(t *testing.T) {
	root := mustParse(t, "base: &b\n  type: string\nuse: *b\nlist: [1, 2]\n")

	c := Clone(root)
	require.NotSame(t, root, c)

	// the alias is expanded into an independent copy
	use := Get(c, "use")
	require.Equal(t, yaml.MappingNode, use.Kind)
	assert.NotSame(t, Deref(Get(root, "base")), use)

	Set(use, "type", NewString("integer"))
	v, _ := StringValue(Get(Get(root, "base"), "type"))
	assert.Equal(t, "string", v, "mutating the clone must not touch the source")

	assert.Nil(t, Clone(nil))
}

func TestLookup(t *testing.T) {
	root := mustParse(t, `
components:
  schemas:
    Pet:
      type: object
    a/b:
      type: string
list:
  - first
  - second
`)

	tests := []struct {
		name     string
		fragment string
		want     string
		found    bool
	}{
		{"nested mapping", "#/components/schemas/Pet/type", "object", true},
		{"without hash", "/components/schemas/Pet/type", "object", true},
		{"escaped slash", "#/components/schemas/a~1b/type", "string", true},
		{"sequence index", "#/list/1", "second", true},
		{"index out of range", "#/list/5", "", false},
		{"bad index", "#/list/x", "", false},
		{"missing key", "#/components/schemas/Dog", "", false},
		{"through scalar", "#/list/0/deeper", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Lookup(root, tt.fragment)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				v, _ := StringValue(n)
				assert.Equal(t, tt.want, v)
			}
		})
	}

	n, ok := Lookup(root, "#")
	require.True(t, ok)
	assert.Same(t, root, n, "empty fragment addresses the root")
}

func TestIsNull(t *testing.T) {
	root := mustParse(t, "a: null\nb: ~\nc: 0\n")
	assert.True(t, IsNull(Get(root, "a")))
	assert.True(t, IsNull(Get(root, "b")))
	assert.False(t, IsNull(Get(root, "c")))
	assert.True(t, IsNull(nil))
	assert.True(t, IsMapping(root))
	assert.False(t, IsSequence(root))
}
