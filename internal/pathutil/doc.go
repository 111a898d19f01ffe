// Package pathutil provides JSON Pointer helpers for $ref handling and
// location tracking during document traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// a JSON Pointer incrementally without allocating intermediate strings. The
// resolution engine pushes a token per mapping key or sequence index and
// only materializes the pointer when reporting an error.
//
// # PathBuilder Usage
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/pets")
//	path.PushIndex(0)
//	path.String() // "/paths/~1pets/0"
//
// # Pointer Helpers
//
//	pathutil.SchemaRef("Pet")                   // "#/components/schemas/Pet"
//	pathutil.SplitFragment("/components/a~1b")  // ["components", "a/b"]
//
// # Output Paths
//
// [SanitizeOutputPath] cleans an output path and refuses to write through
// symlinks.
package pathutil
