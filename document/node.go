package document

import (
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/internal/pathutil"
)

// RefKey is the mapping key that marks a reference object.
const RefKey = "$ref"

// Deref unwraps document nodes and follows aliases until it reaches a
// mapping, sequence, or scalar. It returns nil for nil input and for an
// empty document.
func Deref(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.AliasNode:
			n = n.Alias
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case 0:
			// zero Node left by decoding empty input
			return nil
		default:
			return n
		}
	}
	return nil
}

// IsMapping reports whether n (after Deref) is a mapping node.
func IsMapping(n *yaml.Node) bool {
	n = Deref(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n (after Deref) is a sequence node.
func IsSequence(n *yaml.Node) bool {
	n = Deref(n)
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsNull reports whether n is absent or an explicit YAML null.
func IsNull(n *yaml.Node) bool {
	n = Deref(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// Get returns the value stored under key in mapping m, or nil when m is
// not a mapping or has no such key.
func Get(m *yaml.Node, key string) *yaml.Node {
	m = Deref(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// Has reports whether mapping m contains key.
func Has(m *yaml.Node, key string) bool {
	return Get(m, key) != nil
}

// Set stores v under key in mapping m. An existing key keeps its position;
// a new key is appended.
func Set(m *yaml.Node, key string, v *yaml.Node) {
	m = Deref(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = v
			return
		}
	}
	m.Content = append(m.Content, NewString(key), v)
}

// Delete removes key from mapping m and reports whether it was present.
func Delete(m *yaml.Node, key string) bool {
	m = Deref(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return true
		}
	}
	return false
}

// Keys returns the keys of mapping m in document order.
func Keys(m *yaml.Node) []string {
	m = Deref(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

// StringValue returns the value of a scalar node.
func StringValue(n *yaml.Node) (string, bool) {
	n = Deref(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// RefOf returns the $ref string of a mapping that carries one, regardless
// of sibling keys.
func RefOf(n *yaml.Node) (string, bool) {
	if !IsMapping(n) {
		return "", false
	}
	v := Get(n, RefKey)
	if v == nil || Deref(v).Kind != yaml.ScalarNode {
		return "", false
	}
	return Deref(v).Value, true
}

// RefOnly returns the $ref string when n is a mapping whose only key is $ref.
func RefOnly(n *yaml.Node) (string, bool) {
	n = Deref(n)
	if n == nil || n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", false
	}
	return RefOf(n)
}

// NewMapping returns an empty block-style mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// NewString returns a string scalar node.
func NewString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// NewRef returns a mapping node of the form {$ref: ref}.
func NewRef(ref string) *yaml.Node {
	m := NewMapping()
	m.Content = append(m.Content, NewString(RefKey), NewString(ref))
	return m
}

// Clone returns a deep copy of n. Aliases are expanded into copies of
// their targets, so the clone shares no nodes with the original.
func Clone(n *yaml.Node) *yaml.Node {
	n = Deref(n)
	if n == nil {
		return nil
	}
	c := &yaml.Node{
		Kind:        n.Kind,
		Style:       n.Style,
		Tag:         n.Tag,
		Value:       n.Value,
		HeadComment: n.HeadComment,
		LineComment: n.LineComment,
		FootComment: n.FootComment,
		Line:        n.Line,
		Column:      n.Column,
	}
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = Clone(child)
		}
	}
	return c
}

// Lookup resolves a JSON pointer fragment (with or without the leading
// "#") against root. Mapping steps match keys; sequence steps take a
// decimal index. An empty fragment returns root itself.
func Lookup(root *yaml.Node, fragment string) (*yaml.Node, bool) {
	if len(fragment) > 0 && fragment[0] == '#' {
		fragment = fragment[1:]
	}
	cur := Deref(root)
	for _, token := range pathutil.SplitFragment(fragment) {
		if cur == nil {
			return nil, false
		}
		switch cur.Kind {
		case yaml.MappingNode:
			cur = Deref(Get(cur, token))
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(cur.Content) {
				return nil, false
			}
			cur = Deref(cur.Content[idx])
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}
