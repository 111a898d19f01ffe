package bundler

import (
	"errors"
	"io/fs"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
	"github.com/erraggy/oasbundler/internal/naming"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// run holds the state of one bundling run. Nothing in it outlives the run.
type run struct {
	store    *document.Store
	stack    *pathStack
	registry *Registry
	logger   Logger

	root     *yaml.Node
	rootFile string

	maxDepth int
	depth    int
	loc      *pathutil.PathBuilder

	// inProgress holds the mapping nodes whose children are being walked.
	inProgress map[*yaml.Node]struct{}
	// resolving maps a target key (file#fragment) to the copy being walked.
	resolving map[string]*yaml.Node
	// resolvingNames guards inlining a registry entry into itself.
	resolvingNames map[string]struct{}
	// resolved caches the outcome of every pulled target.
	resolved map[string]*resolution

	cyclesBroken int
}

// target is a fragment of a loaded file that is about to be pulled into
// the root document.
type target struct {
	file     string
	fragment string
	name     string
	node     *yaml.Node
}

func (t target) key() string {
	return t.file + "#" + t.fragment
}

// resolution is the cached outcome of pulling a target: either a registry
// name (pointer result) or an inline body.
type resolution struct {
	name   string
	body   *yaml.Node
	handed bool
}

func (res *resolution) node() *yaml.Node {
	if res.name != "" {
		return document.NewRef(pathutil.SchemaRef(res.name))
	}
	if !res.handed {
		res.handed = true
		return res.body
	}
	return document.Clone(res.body)
}

// resolvePointer returns the node that replaces a $ref site: either a
// pointer of the form {$ref: "#/components/schemas/X"} or a fully resolved
// inline body. With force set the result is always a pointer.
func (r *run) resolvePointer(ref string, force bool) (*yaml.Node, error) {
	p, err := parsePointer(ref)
	if err != nil {
		return nil, r.refError(ref, "", oaserrors.RefTypeExternal, err.Error(), nil)
	}

	switch p.kind {
	case pointerRegistry:
		return r.resolveRegistry(p, force)
	case pointerLocal:
		return r.resolveLocal(p, force)
	case pointerRoot:
		return r.resolveRootPointer(p, force)
	default:
		return r.resolveExternal(p, force)
	}
}

// resolveRegistry handles #/components/schemas/X.
func (r *run) resolveRegistry(p pointer, force bool) (*yaml.Node, error) {
	body, entry, ok := r.registry.lookup(p.name)
	if !ok {
		// inside an external file the pointer may mean that file's own
		// components section
		if cur := r.stack.file(); cur != r.rootFile {
			if t, found := r.targetIn(cur, p.fragment, p.name); found {
				return r.pull(t, force)
			}
		}
		return nil, r.refError(p.raw, p.name, oaserrors.RefTypeLocal, "schema not found in components.schemas", nil)
	}

	if force || IsObjectSchema(body) {
		return document.NewRef(pathutil.SchemaRef(p.name)), nil
	}

	if _, busy := r.resolvingNames[p.name]; busy {
		r.cyclesBroken++
		r.logger.Debug("cycle broken", "ref", p.raw)
		return document.NewRef(pathutil.SchemaRef(p.name)), nil
	}
	r.resolvingNames[p.name] = struct{}{}
	defer delete(r.resolvingNames, p.name)

	r.stack.push(entry.frame)
	defer r.stack.pop()

	// the entry is itself a reference: follow it from the entry's own file
	if ref, ok := document.RefOf(body); ok {
		return r.resolveRefNode(document.Clone(body), ref, false)
	}

	inline := document.Clone(body)
	if err := r.walkDetached(inline, p.fragment); err != nil {
		return nil, err
	}
	return inline, nil
}

// resolveLocal handles #/X, a root key of a loaded external document. The
// file being walked is searched first, then every other loaded file in
// load order.
func (r *run) resolveLocal(p pointer, force bool) (*yaml.Node, error) {
	if cur := r.stack.file(); cur != r.rootFile {
		if t, found := r.targetIn(cur, p.fragment, p.name); found {
			return r.pull(t, force)
		}
	}
	for _, doc := range r.store.Documents() {
		if doc.Path == r.rootFile || doc.Path == r.stack.file() {
			continue
		}
		if t, found := r.targetIn(doc.Path, p.fragment, p.name); found {
			return r.pull(t, force)
		}
	}
	if _, ok := document.Lookup(r.root, p.fragment); ok {
		return document.NewRef(p.raw), nil
	}
	return nil, r.refError(p.raw, p.name, oaserrors.RefTypeLocal, "no loaded document defines it", nil)
}

// resolveRootPointer handles any other local pointer. Inside an external
// file it addresses that file and the target is pulled in; otherwise it
// addresses the root document, which already holds the target, and the
// pointer is kept.
func (r *run) resolveRootPointer(p pointer, force bool) (*yaml.Node, error) {
	if cur := r.stack.file(); cur != r.rootFile {
		if t, found := r.targetIn(cur, p.fragment, p.name); found {
			return r.pull(t, force)
		}
	}
	if _, ok := document.Lookup(r.root, p.fragment); ok {
		return document.NewRef(p.raw), nil
	}
	return nil, r.refError(p.raw, lastNonEmpty(p.name, p.raw), oaserrors.RefTypeLocal, "target not found", nil)
}

// resolveExternal handles file#/fragment and whole-file pointers.
func (r *run) resolveExternal(p pointer, force bool) (*yaml.Node, error) {
	abs := r.stack.resolve(p.file)
	doc, err := r.store.Load(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, r.refError(p.raw, p.file, oaserrors.RefTypeExternal, "file not found", err)
		}
		return nil, err
	}

	node, ok := document.Lookup(doc, p.fragment)
	if !ok {
		return nil, r.refError(p.raw, lastNonEmpty(p.name, p.fragment), oaserrors.RefTypeExternal, "fragment not found in "+abs, nil)
	}

	name := p.name
	if p.kind == pointerDocument {
		name = documentName(doc, abs)
	}
	return r.pull(target{file: abs, fragment: p.fragment, name: name, node: node}, force)
}

// targetIn looks up fragment in an already loaded file.
func (r *run) targetIn(file, fragment, name string) (target, bool) {
	doc, ok := r.store.Cached(file)
	if !ok {
		return target{}, false
	}
	node, ok := document.Lookup(doc, fragment)
	if !ok {
		return target{}, false
	}
	return target{file: file, fragment: fragment, name: name, node: node}, true
}

// pull copies a fragment out of its source file, resolves everything inside
// it relative to that file, and returns either a registry pointer (object
// schemas, or any target when force is set) or the inline body.
func (r *run) pull(t target, force bool) (*yaml.Node, error) {
	key := t.key()

	if inProgress, busy := r.resolving[key]; busy {
		return r.breakCycle(t, inProgress)
	}

	if res, ok := r.resolved[key]; ok {
		if force && res.name == "" {
			if err := r.registry.register(t.name, document.Clone(res.body), key, fileFrame(t.file)); err != nil {
				return nil, err
			}
			res.name = t.name
		}
		return res.node(), nil
	}

	body := document.Clone(t.node)
	r.resolving[key] = body
	r.stack.push(fileFrame(t.file))
	result, err := r.pullBody(t, body, force)
	r.stack.pop()
	delete(r.resolving, key)
	if err != nil {
		return nil, err
	}

	r.resolved[key] = result
	return result.node(), nil
}

func (r *run) pullBody(t target, body *yaml.Node, force bool) (*resolution, error) {
	key := t.key()
	r.logger.Debug("pulling fragment", "file", t.file, "fragment", t.fragment, "name", t.name)

	// the fragment is itself a reference
	if ref, ok := document.RefOf(body); ok {
		replaced, err := r.resolveRefNode(body, ref, force)
		if err != nil {
			return nil, err
		}
		if target, ok := document.RefOnly(replaced); ok && strings.HasPrefix(target, pathutil.RefPrefixSchemas) {
			return &resolution{name: pathutil.UnescapeToken(strings.TrimPrefix(target, pathutil.RefPrefixSchemas))}, nil
		}
		if force {
			if err := r.registry.register(t.name, replaced, key, fileFrame(t.file)); err != nil {
				return nil, err
			}
			return &resolution{name: t.name}, nil
		}
		return &resolution{body: replaced}, nil
	}

	object := force || IsObjectSchema(body)
	if object {
		// registered before walking so self references find it
		if err := r.registry.register(t.name, body, key, fileFrame(t.file)); err != nil {
			return nil, err
		}
	}
	if err := r.walkDetached(body, t.fragment); err != nil {
		return nil, err
	}

	// a cycle back into this target registered it while it was walked
	if object || r.registry.registeredFrom(t.name, key) {
		return &resolution{name: t.name}, nil
	}
	return &resolution{body: body}, nil
}

// breakCycle handles a pointer back to a target that is still being
// walked. The in-progress copy is registered so the pointer has something
// to resolve to.
func (r *run) breakCycle(t target, inProgress *yaml.Node) (*yaml.Node, error) {
	r.cyclesBroken++
	r.logger.Debug("cycle broken", "file", t.file, "fragment", t.fragment, "name", t.name)

	if _, isRef := document.RefOf(inProgress); isRef {
		return nil, r.refError(t.key(), t.name, oaserrors.RefTypeExternal, "reference cycle contains no schema", nil)
	}
	key := t.key()
	if !r.registry.registeredFrom(t.name, key) {
		if err := r.registry.register(t.name, inProgress, key, fileFrame(t.file)); err != nil {
			return nil, err
		}
	}
	return document.NewRef(pathutil.SchemaRef(t.name)), nil
}

// documentName derives the registry key of a whole-file reference: the
// document's title when it has one, otherwise the file name.
func documentName(doc *yaml.Node, path string) string {
	if title, ok := document.StringValue(document.Get(doc, "title")); ok && strings.TrimSpace(title) != "" {
		if name := naming.ComponentName(title); name != "" {
			return name
		}
	}
	return naming.FromFileName(path)
}

func (r *run) refError(ref, name, refType, message string, cause error) error {
	return &oaserrors.ReferenceError{
		Ref:      ref,
		Name:     name,
		RefType:  refType,
		Source:   r.stack.file(),
		Location: r.loc.String(),
		Message:  message,
		Cause:    cause,
	}
}

func lastNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
