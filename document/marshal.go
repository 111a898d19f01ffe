package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalYAML emits n as YAML with two-space indentation and no document
// start marker. Key order is preserved.
func MarshalYAML(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Deref(n)); err != nil {
		return nil, fmt.Errorf("document: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("document: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON emits n as pretty-printed JSON (two-space indent, trailing
// newline) with mapping keys in document order.
func MarshalJSON(n *yaml.Node) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeNodeJSON(&compact, n); err != nil {
		return nil, fmt.Errorf("document: encode json: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("document: encode json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeNodeJSON writes a yaml.Node to a buffer as compact JSON, walking the
// node tree directly so mapping key order is kept.
func writeNodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	node = Deref(node)
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, node)

	default:
		return fmt.Errorf("unsupported node kind %d at line %d", node.Kind, node.Line)
	}
}

// writeScalarJSON converts a scalar by its resolved tag. Numbers and
// booleans are decoded so JSON gets their canonical form ("0x1F" becomes
// 31); values JSON cannot represent (.inf, .nan) fall back to strings.
func writeScalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := node.Decode(&v); err == nil {
			if err := writeJSONValue(buf, v); err == nil {
				return nil
			}
		}
	}
	return writeJSONValue(buf, node.Value)
}

// writeJSONValue encodes v without HTML escaping, so descriptions keep
// their literal "<" and "&".
func writeJSONValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
