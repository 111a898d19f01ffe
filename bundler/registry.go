package bundler

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// Collision records a schema name registered by two different sources.
// With the default policy the incoming body replaced the existing one.
type Collision struct {
	Name     string
	Existing string
	Incoming string
}

type registryEntry struct {
	// body is nil for entries seeded from the root document; their body
	// is read live from the root components.schemas mapping.
	body   *yaml.Node
	seeded bool
	source string
	frame  frame
}

// Registry is the consolidated set of named schemas. It is seeded from the
// root document's components.schemas and grows as external fragments are
// pulled in.
type Registry struct {
	schemas    *yaml.Node
	entries    map[string]*registryEntry
	added      []string
	strict     bool
	logger     Logger
	collisions []Collision
}

// newRegistry seeds a registry from root, creating components.schemas when
// the document has none.
func newRegistry(root *yaml.Node, rootFile string, strict bool, logger Logger) *Registry {
	components := document.Get(root, "components")
	if !document.IsMapping(components) {
		components = document.NewMapping()
		document.Set(root, "components", components)
	}
	schemas := document.Get(components, "schemas")
	if !document.IsMapping(schemas) {
		schemas = document.NewMapping()
		document.Set(components, "schemas", schemas)
	}

	r := &Registry{
		schemas: document.Deref(schemas),
		entries: make(map[string]*registryEntry),
		strict:  strict,
		logger:  logger,
	}
	for _, name := range document.Keys(schemas) {
		r.entries[name] = &registryEntry{
			seeded: true,
			source: rootFile + pathutil.SchemaRef(name),
			frame:  fileFrame(rootFile),
		}
	}
	return r
}

// lookup returns the current body registered under name.
func (r *Registry) lookup(name string) (*yaml.Node, *registryEntry, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, nil, false
	}
	if e.seeded {
		body := document.Get(r.schemas, name)
		if body == nil {
			return nil, nil, false
		}
		return body, e, true
	}
	return e.body, e, true
}

// registeredFrom reports whether name is currently registered from source.
func (r *Registry) registeredFrom(name, source string) bool {
	e, ok := r.entries[name]
	return ok && e.source == source
}

// register stores body under name. Replacing an entry that came from a
// different source is a collision: logged and recorded, or returned as a
// *oaserrors.CollisionError in strict mode. A seeded entry that is only a
// $ref placeholder is replaced silently, since the pulled body is what
// it pointed at.
func (r *Registry) register(name string, body *yaml.Node, source string, fr frame) error {
	if existing, ok := r.entries[name]; ok && existing.source != source && !r.isPlaceholder(name, existing) {
		if r.strict {
			return &oaserrors.CollisionError{Name: name, Existing: existing.source, Incoming: source}
		}
		r.logger.Warn("schema name collision, last registration wins",
			"name", name, "existing", existing.source, "incoming", source)
		r.collisions = append(r.collisions, Collision{Name: name, Existing: existing.source, Incoming: source})
	}

	if e, ok := r.entries[name]; !ok || e.seeded {
		r.added = append(r.added, name)
	}
	r.entries[name] = &registryEntry{body: body, source: source, frame: fr}
	r.logger.Debug("registered schema", "name", name, "source", source)
	return nil
}

func (r *Registry) isPlaceholder(name string, e *registryEntry) bool {
	if !e.seeded {
		return false
	}
	_, ok := document.RefOf(document.Get(r.schemas, name))
	return ok
}

// merge writes every pulled entry into the root components.schemas mapping.
// Existing keys keep their position; new keys are appended in registration
// order. Seeded entries are never removed.
func (r *Registry) merge() {
	for _, name := range r.added {
		if e := r.entries[name]; e != nil && !e.seeded {
			document.Set(r.schemas, name, e.body)
		}
	}
}

// Names returns the registry keys in output order.
func (r *Registry) Names() []string {
	return document.Keys(r.schemas)
}

// Collisions returns the overwrites recorded so far.
func (r *Registry) Collisions() []Collision {
	return r.collisions
}
