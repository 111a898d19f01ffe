// Package oaserrors provides structured error types for oasbundler.
//
// Import path: github.com/erraggy/oasbundler/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a document that could not be loaded,
// a $ref that points nowhere, and a bundled output that failed validation.
//
// # Error Types
//
//   - [LoadError]: a file could not be read or parsed as YAML/JSON
//   - [ReferenceError]: a $ref could not be matched to any target
//   - [ValidationError]: the bundled output is not a valid OpenAPI document
//   - [ResourceLimitError]: nesting depth or file size limits exceeded
//   - [CollisionError]: two sources registered the same schema name (strict mode)
//   - [ConfigError]: invalid options or input
//
// # Sentinel Errors
//
//   - [ErrLoad]: Matches any [LoadError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrUnresolved]: Matches [ReferenceError] whose target is missing
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrCollision]: Matches any [CollisionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	_, err := bundler.New().Bundle("openapi.yaml")
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//		fmt.Println("missing target:", refErr.Name)
//	}
package oaserrors
