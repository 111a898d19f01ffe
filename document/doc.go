// Package document holds the in-memory model the bundler rewrites.
//
// A document is a tree of *yaml.Node values (go.yaml.in/yaml/v4). The node
// kind is the variant tag: mappings keep their keys in source order,
// sequences hold nodes, and scalars carry their resolved YAML tag so the
// emitters can tell a quoted "1" from an integer 1.
//
// # Loading
//
// A Store loads YAML or JSON files and caches them by absolute path, so a
// file referenced from many places is parsed once per run:
//
//	store := document.NewStore()
//	root, err := store.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(store.LoadCount()) // 1
//
// # Navigating and editing
//
// The node helpers (Get, Set, Delete, Keys, Lookup, Clone) operate on
// mapping nodes without converting the tree into map[string]any, which
// would lose key order.
//
// # Emitting
//
// MarshalYAML and MarshalJSON write a tree back out with key order preserved.
// JSON output converts scalars by tag (int, float, bool, null) and is pretty
// printed with two-space indentation.
package document
