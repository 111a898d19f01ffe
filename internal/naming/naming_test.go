package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dots", input: "pet-store.v1", want: "PetStoreV1"},
		{name: "inner capitals kept", input: "petStore", want: "PetStore"},
		{name: "spaces and punctuation", input: "Pet Store (v2)", want: "PetStoreV2"},
		{name: "only separators", input: "--__..", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Pet", want: "Pet"},
		{input: "pet.v1_Model-2", want: "pet.v1_Model-2"},
		{input: "Pet Store", want: "PetStore"},
		{input: "Café résumé", want: "CaféRésumé"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ComponentName(tt.input))
		})
	}
}

func TestFromFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "pet.yaml", want: "Pet"},
		{input: "../models/pet-store.v1.yaml", want: "PetStoreV1"},
		{input: "/abs/dir/error_response.json", want: "ErrorResponse"},
		{input: "Shape.YML", want: "Shape"},
		{input: "noext", want: "Noext"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFileName(tt.input))
		})
	}
}

func TestIsComponentName(t *testing.T) {
	assert.True(t, IsComponentName("Pet_v1.2-beta"))
	assert.False(t, IsComponentName("Pet Store"))
	assert.False(t, IsComponentName(""))
}
