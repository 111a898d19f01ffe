// Package bundler resolves the $ref pointers of an OpenAPI document spread
// across local files into one self-contained document.
//
// Every external reference is followed, its target copied into the root
// document, and every reference inside the copy resolved relative to the
// file it came from. Object schemas land in components.schemas and are
// referenced as #/components/schemas/<Name>; everything else is inlined at
// the referencing site. The input files are never modified.
//
// # Quick Start
//
// Bundle a file using functional options:
//
//	result, err := bundler.BundleWithOptions(
//		bundler.WithFilePath("specs/openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	files, err := result.WriteFiles("dist", "", bundler.FormatBoth)
//
// Or run a complete job, which also validates what it wrote:
//
//	report, err := bundler.New().Execute(ctx, bundler.Job{
//		InputDir:  "specs",
//		OutputDir: "dist",
//		Format:    bundler.FormatYAML,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !report.Valid() {
//		log.Fatal(report.ValidationErr)
//	}
//
// # Reference Forms
//
//   - #/components/schemas/X: a schema of the root document. Kept as a
//     pointer when X is an object schema, otherwise inlined.
//   - #/X: a root key of an already loaded external file. Inside an
//     external file the file itself is searched first.
//   - #/other/pointer: any other local pointer, such as
//     #/components/parameters/Limit, is kept as written once its target is
//     found.
//   - file.yaml#/X: fragment X of a file, relative to the referencing file.
//   - file.yaml: the whole file, named after its title or its file name.
//
// Remote references (http://, https://) are rejected.
//
// # Object Schemas
//
// A schema is kept as a named entry when its type is "object", when it has
// a oneOf, or when a member of its allOf is an object schema. Targets of a
// discriminator mapping are always registered, since mapping values must
// stay pointers; bare names in a mapping are read as schema names.
//
// # Cycles
//
// A reference back into a fragment that is still being resolved is
// answered with a registry pointer, so recursive schemas terminate with
// one entry each. Result.CyclesBroken counts how often that happened.
//
// # Name Collisions
//
// Two different sources registering the same name is logged and the later
// one wins, which is reported in Result.Collisions. Set StrictCollisions
// (or WithStrictCollisions) to fail instead.
//
// # Errors
//
// A reference that cannot be resolved fails the run with an
// *oaserrors.ReferenceError naming the missing key; no output is written.
// Unreadable files produce *oaserrors.LoadError and exceeding MaxDepth or
// MaxFileSize produces *oaserrors.ResourceLimitError.
package bundler
