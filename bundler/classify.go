package bundler

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
)

// IsObjectSchema reports whether n describes a structured object, which the
// bundler keeps as a named registry entry instead of inlining.
//
// A schema is an object when its type is "object" (or a type list that
// includes "object"), when it has a non-null oneOf, or when an allOf member
// is itself an object schema.
func IsObjectSchema(n *yaml.Node) bool {
	n = document.Deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return false
	}

	if t := document.Deref(document.Get(n, "type")); t != nil {
		switch t.Kind {
		case yaml.ScalarNode:
			if t.Value == "object" {
				return true
			}
		case yaml.SequenceNode:
			for _, item := range t.Content {
				if v, ok := document.StringValue(item); ok && v == "object" {
					return true
				}
			}
		}
	}

	if oneOf := document.Get(n, "oneOf"); oneOf != nil && !document.IsNull(oneOf) {
		return true
	}

	if allOf := document.Deref(document.Get(n, "allOf")); allOf != nil && allOf.Kind == yaml.SequenceNode {
		for _, member := range allOf.Content {
			if IsObjectSchema(member) {
				return true
			}
		}
	}
	return false
}
