// Package naming provides component name derivation utilities.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// componentKey matches keys allowed under components/* by the OpenAPI spec.
var componentKey = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

// IsComponentName reports whether s is usable as-is as a component key.
func IsComponentName(s string) bool {
	return componentKey.MatchString(s)
}

// ComponentName returns s unchanged when it is already a valid component
// key, otherwise the PascalCase join of its alphanumeric words.
// Example: "Pet" -> "Pet"
// Example: "Pet Store (v2)" -> "PetStoreV2"
func ComponentName(s string) string {
	if IsComponentName(s) {
		return s
	}
	return ToPascalCase(s)
}

// FromFileName derives a component name from a file path by dropping the
// directory and any .yaml, .yml, or .json extension, then PascalCasing the
// remaining stem.
// Example: "../models/pet-store.v1.yaml" -> "PetStoreV1"
func FromFileName(path string) string {
	stem := filepath.Base(path)
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if strings.HasSuffix(strings.ToLower(stem), ext) {
			stem = stem[:len(stem)-len(ext)]
			break
		}
	}
	return ToPascalCase(stem)
}

// ToPascalCase converts a string to PascalCase.
// Any rune that is not a letter or digit separates words.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// NoLower keeps "petStore" as "PetStore" rather than "Petstore".
	// A Caser is stateful, so each call gets its own.
	titleCaser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}
