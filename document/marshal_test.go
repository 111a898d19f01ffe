package document

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

const orderedSrc = `openapi: 3.0.3
info:
  title: Zoo
  version: "1.0"
paths: {}
components:
  schemas:
    Zebra:
      type: object
      properties:
        stripes:
          type: integer
          minimum: 0x0A
        rate:
          type: number
          default: 1.5
        wild:
          type: boolean
          default: true
        note:
          type: string
          nullable: true
          default: null
          example: "<b>42</b> & more"
    Ant:
      type: string
`

func TestMarshalJSONKeepsOrder(t *testing.T) {
	root := mustParse(t, orderedSrc)

	data, err := MarshalJSON(root)
	require.NoError(t, err)
	out := string(data)

	// keys must appear in source order, not sorted
	assert.Less(t, strings.Index(out, `"openapi"`), strings.Index(out, `"info"`))
	assert.Less(t, strings.Index(out, `"info"`), strings.Index(out, `"paths"`))
	assert.Less(t, strings.Index(out, `"Zebra"`), strings.Index(out, `"Ant"`))

	assert.Contains(t, out, `"version": "1.0"`, "quoted scalars stay strings")
	assert.Contains(t, out, `"minimum": 10`, "hex ints are converted")
	assert.Contains(t, out, `"default": 1.5`)
	assert.Contains(t, out, `"default": true`)
	assert.Contains(t, out, `"default": null`)
	assert.Contains(t, out, `"<b>42</b> & more"`, "HTML is not escaped")
	assert.Contains(t, out, "\n  \"info\": {", "two-space indent")
	assert.True(t, json.Valid(data))
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestMarshalJSONSpecialFloats(t *testing.T) {
	root := mustParse(t, "max: .inf\n")
	data, err := MarshalJSON(root)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max": ".inf"`)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	root := mustParse(t, orderedSrc)

	data, err := MarshalYAML(root)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "---")
	assert.Contains(t, string(data), "\n  title: Zoo\n", "two-space indent")

	again := mustParse(t, string(data))
	assert.Equal(t, Keys(Get(Get(root, "components"), "schemas")), Keys(Get(Get(again, "components"), "schemas")))
}

func TestMarshalYAMLQuotesRefs(t *testing.T) {
	root := NewMapping()
	Set(root, "schema", NewRef("#/components/schemas/Pet"))

	data, err := MarshalYAML(root)
	require.NoError(t, err)

	var out map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, "#/components/schemas/Pet", out["schema"]["$ref"], "a leading # must not become a comment")
}
