package bundler

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
)

// Result is the outcome of a successful bundling run.
type Result struct {
	// Document is the bundled root mapping, ready to marshal.
	Document *yaml.Node
	// SourcePath is the absolute path of the root document.
	SourcePath string
	// Schemas lists the components.schemas keys in output order.
	Schemas []string
	// LoadCount is the number of files read from disk, root included.
	LoadCount int
	// ExternalFiles lists the absolute paths of the external files pulled in,
	// in load order.
	ExternalFiles []string
	// CyclesBroken counts references that pointed back into a fragment
	// still being resolved.
	CyclesBroken int
	// Collisions lists schema names that were overwritten by a later source.
	Collisions []Collision
}

// Marshal emits the bundled document in the given single format.
func (r *Result) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return document.MarshalJSON(r.Document)
	case FormatYAML, "":
		return document.MarshalYAML(r.Document)
	default:
		return nil, formatError(string(format))
	}
}
