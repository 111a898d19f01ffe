// Package naming derives component names for schemas pulled from external
// files.
//
// A fragment pointer (models.yaml#/Pet) already carries a usable name. A
// whole-file pointer (models/pet-store.v1.yaml) does not, so the bundler
// falls back to the file's top-level title or, failing that, the file stem.
// Both go through [ComponentName] so the result is a valid OpenAPI
// component key (letters, digits, '.', '-', '_').
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
