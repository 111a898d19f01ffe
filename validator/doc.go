// Package validator checks bundled OpenAPI documents for specification
// conformance.
//
// Validation is delegated to github.com/getkin/kin-openapi: the document is
// loaded with external references disallowed (a bundled document must be
// self-contained) and validated with openapi3.T.Validate. The package only
// reports whether a file is valid and why not.
//
// # Quick Start
//
//	res, err := validator.Validate(ctx, "openapi.bundled.yaml")
//	if err != nil {
//		log.Fatal(err) // file could not be read
//	}
//	if !res.Valid {
//		fmt.Println(res.Message)
//	}
//
// # Several files
//
// ValidateAll checks several files concurrently and returns results in
// input order. Failures joins the invalid ones into a single error whose
// parts are *oaserrors.ValidationError values:
//
//	results, err := validator.ValidateAll(ctx, yamlPath, jsonPath)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := validator.Failures(results); err != nil {
//		fmt.Println(err)
//	}
//
// Only OpenAPI 3.0 documents are supported by the underlying loader.
package validator
