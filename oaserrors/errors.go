package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrLoad indicates a document could not be loaded.
	ErrLoad = errors.New("load error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrUnresolved indicates a $ref whose target does not exist.
	ErrUnresolved = errors.New("unresolved reference")

	// ErrValidation indicates the bundled output failed OpenAPI validation.
	ErrValidation = errors.New("validation error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrCollision indicates two sources registered the same schema name.
	ErrCollision = errors.New("schema name collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a failure to read or parse a document from disk.
type LoadError struct {
	// Path is the file path that failed to load
	Path string
	// Line is the line number of a parse failure (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// Reference types reported in ReferenceError.RefType.
const (
	RefTypeLocal         = "local"
	RefTypeExternal      = "external"
	RefTypeDiscriminator = "discriminator"
)

// ReferenceError represents a $ref that could not be resolved.
type ReferenceError struct {
	// Ref is the pointer string as written in the document
	Ref string
	// Name is the key that could not be found (schema name, fragment token, or file)
	Name string
	// RefType is one of RefTypeLocal, RefTypeExternal, RefTypeDiscriminator
	RefType string
	// Source is the file the pointer was read from, when known
	Source string
	// Location is the JSON Pointer of the referencing site within the root document
	Location string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolved reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Name != "" && e.Name != e.Ref {
		msg += fmt.Sprintf(" (missing %q)", e.Name)
	}
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Location != "" {
		msg += " at " + e.Location
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference and ErrUnresolved.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || target == ErrUnresolved
}

// ValidationError represents a bundled document that failed OpenAPI validation.
type ValidationError struct {
	// Path is the output file that was validated
	Path string
	// Message is the validator's diagnostic
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// CollisionError reports that a schema name was registered by two different
// sources while strict collision checking was enabled.
type CollisionError struct {
	// Name is the schema name both sources map to
	Name string
	// Existing identifies the source already registered under Name
	Existing string
	// Incoming identifies the source that attempted to register Name
	Incoming string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := "schema name collision"
	if e.Name != "" {
		msg += fmt.Sprintf(": %q", e.Name)
	}
	if e.Existing != "" && e.Incoming != "" {
		msg += fmt.Sprintf(" registered by %s and %s", e.Existing, e.Incoming)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
