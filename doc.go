// Package oasbundler bundles multi-file OpenAPI documents into a single,
// self-contained document.
//
// A typical API description is split across many files: the root
// openapi.yaml points at models in sibling directories with $ref, those
// models point at more models, and some of them point back. oasbundler walks
// the root document once, follows every $ref it finds (local or relative
// file paths), and writes a document in which every schema worth naming lives
// under components/schemas and every remaining $ref is local.
//
// # Packages
//
//   - bundler: the reference resolution engine and output writer
//   - document: the YAML/JSON document model, store, and ordered emitters
//   - validator: post-bundle OpenAPI validation
//   - oaserrors: structured error types for errors.Is / errors.As
//
// # Quick Start
//
//	import "github.com/erraggy/oasbundler/bundler"
//
//	b := bundler.New()
//	result, err := b.Bundle("api/openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	paths, err := result.WriteFiles("dist", "openapi.bundled", bundler.FormatBoth)
//
// # Object vs Inline Schemas
//
// Referenced schemas whose shape is an object (type: object, oneOf, or an
// allOf that contains an object) are kept as named components and the
// referencing site becomes a local $ref. Everything else (primitives,
// aliases, arrays of primitives) is inlined at the referencing site.
//
// # Command Line
//
//	oasbundler bundle -d api -f openapi.yaml -o both
//	oasbundler validate -d dist -f openapi.bundled.yaml
package oasbundler
