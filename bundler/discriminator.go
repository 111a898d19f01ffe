package bundler

import (
	"errors"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// rewriteDiscriminator resolves every discriminator.mapping value and
// replaces it with the registry pointer string. Mapping values must stay
// pointers, so targets are registered even when they are not object
// schemas. Bare schema names are accepted as shorthand for
// #/components/schemas/<name>.
func (r *run) rewriteDiscriminator(disc *yaml.Node) error {
	mapping := document.Deref(document.Get(disc, "mapping"))

	r.loc.Push("mapping")
	defer r.loc.Pop()

	for i := 1; i < len(mapping.Content); i += 2 {
		key := mapping.Content[i-1].Value
		r.loc.Push(key)
		err := r.rewriteMappingValue(mapping, i)
		r.loc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *run) rewriteMappingValue(mapping *yaml.Node, i int) error {
	ref, ok := document.StringValue(mapping.Content[i])
	if !ok {
		return r.refError("", mapping.Content[i-1].Value, oaserrors.RefTypeDiscriminator,
			"discriminator mapping value must be a string", nil)
	}
	if isBareName(ref) {
		ref = pathutil.SchemaRef(ref)
	}

	res, err := r.resolvePointer(ref, true)
	if err != nil {
		var refErr *oaserrors.ReferenceError
		if errors.As(err, &refErr) && refErr.Ref == ref {
			refErr.RefType = oaserrors.RefTypeDiscriminator
		}
		return err
	}

	target, ok := document.RefOnly(res)
	if !ok {
		return r.refError(ref, "", oaserrors.RefTypeDiscriminator,
			"discriminator target did not resolve to a schema reference", nil)
	}
	mapping.Content[i] = document.NewString(target)
	return nil
}
