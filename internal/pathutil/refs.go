package pathutil

import "strings"

// RefPrefixSchemas is the pointer prefix of the consolidated schema registry.
const RefPrefixSchemas = "#/components/schemas/"

// SchemaRef builds "#/components/schemas/{name}", escaping name per RFC 6901.
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeToken(name)
}

// EscapeToken escapes a JSON Pointer reference token.
// Per RFC 6901, ~ becomes ~0 and / becomes ~1.
func EscapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// UnescapeToken unescapes a JSON Pointer reference token.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func UnescapeToken(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// SplitFragment splits a pointer fragment (the part after '#') into
// unescaped tokens. "" and "/" both address the document root and yield nil.
func SplitFragment(fragment string) []string {
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return nil
	}
	parts := strings.Split(fragment, "/")
	for i, part := range parts {
		parts[i] = UnescapeToken(part)
	}
	return parts
}
