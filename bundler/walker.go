package bundler

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// resolveTree rewrites every $ref below n in place. Values returned by the
// resolver are already fully resolved and are not walked again.
func (r *run) resolveTree(n *yaml.Node) error {
	n = document.Deref(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		return r.resolveMapping(n)
	case yaml.SequenceNode:
		return r.resolveSequence(n)
	}
	return nil
}

func (r *run) resolveMapping(m *yaml.Node) error {
	if _, busy := r.inProgress[m]; busy {
		r.cyclesBroken++
		r.logger.Debug("cycle broken", "location", r.loc.String())
		return nil
	}
	if err := r.descend(); err != nil {
		return err
	}
	defer r.ascend()

	r.inProgress[m] = struct{}{}
	defer delete(r.inProgress, m)

	hasOneOf := document.Has(m, "oneOf")
	for i := 1; i < len(m.Content); i += 2 {
		key := m.Content[i-1].Value
		r.loc.Push(key)
		err := r.resolveEntry(m, i, key, hasOneOf)
		r.loc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveEntry resolves the value at m.Content[i].
func (r *run) resolveEntry(m *yaml.Node, i int, key string, hasOneOf bool) error {
	v := m.Content[i]
	if key == "discriminator" && hasOneOf && document.IsMapping(document.Get(v, "mapping")) {
		return r.rewriteDiscriminator(v)
	}

	replaced, err := r.resolveSlot(v)
	if err != nil {
		return err
	}
	if replaced != nil {
		m.Content[i] = replaced
		return nil
	}
	return r.resolveTree(v)
}

func (r *run) resolveSequence(seq *yaml.Node) error {
	if _, busy := r.inProgress[seq]; busy {
		r.cyclesBroken++
		r.logger.Debug("cycle broken", "location", r.loc.String())
		return nil
	}
	if err := r.descend(); err != nil {
		return err
	}
	defer r.ascend()

	r.inProgress[seq] = struct{}{}
	defer delete(r.inProgress, seq)

	for i, item := range seq.Content {
		r.loc.PushIndex(i)
		replaced, err := r.resolveSlot(item)
		if err == nil {
			if replaced != nil {
				seq.Content[i] = replaced
			} else {
				err = r.resolveTree(item)
			}
		}
		r.loc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveSlot returns the replacement for v when v is a $ref mapping, or
// nil when v is something else.
func (r *run) resolveSlot(v *yaml.Node) (*yaml.Node, error) {
	d := document.Deref(v)
	ref, ok := document.RefOf(d)
	if !ok {
		return nil, nil
	}
	return r.resolveRefNode(d, ref, false)
}

// resolveRefNode resolves a mapping carrying $ref. A bare {$ref} is
// replaced by the resolver result. When the mapping has sibling keys, they
// are resolved first; a pointer result then only rewrites the $ref value,
// and an inline result is merged with the siblings taking precedence.
func (r *run) resolveRefNode(m *yaml.Node, ref string, force bool) (*yaml.Node, error) {
	if len(m.Content) == 2 {
		return r.resolvePointer(ref, force)
	}

	if err := r.resolveMapping(m); err != nil {
		return nil, err
	}
	res, err := r.resolvePointer(ref, force)
	if err != nil {
		return nil, err
	}
	if target, ok := document.RefOnly(res); ok {
		document.Set(m, document.RefKey, document.NewString(target))
		return m, nil
	}
	if !document.IsMapping(res) {
		r.logger.Debug("dropping $ref siblings of non-mapping target", "ref", ref)
		return res, nil
	}

	// res may be the body cached for other sites of the same target.
	merged := document.Clone(res)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if key := m.Content[i].Value; key != document.RefKey {
			document.Set(merged, key, m.Content[i+1])
		}
	}
	return merged, nil
}

// walkDetached walks a node pulled from another location, reporting error
// locations relative to that node's fragment.
func (r *run) walkDetached(n *yaml.Node, fragment string) error {
	saved := r.loc
	r.loc = pathutil.Get()
	for _, token := range pathutil.SplitFragment(fragment) {
		r.loc.Push(token)
	}
	defer func() {
		pathutil.Put(r.loc)
		r.loc = saved
	}()
	return r.resolveTree(n)
}

func (r *run) descend() error {
	r.depth++
	if r.depth > r.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(r.depth),
			Message:      "document nested too deeply at " + r.stack.file() + "#" + r.loc.String(),
		}
	}
	return nil
}

func (r *run) ascend() {
	r.depth--
}
