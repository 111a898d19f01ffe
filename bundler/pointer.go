package bundler

import (
	"errors"
	"strings"

	"github.com/erraggy/oasbundler/internal/pathutil"
)

// pointerKind is the shape of a $ref string, decided by the presence and
// position of '#'.
type pointerKind int

const (
	// #/components/schemas/X
	pointerRegistry pointerKind = iota
	// #/X: a root key of an already loaded external document
	pointerLocal
	// any other local pointer, e.g. #/components/parameters/X
	pointerRoot
	// file#/fragment
	pointerFragment
	// file
	pointerDocument
)

func (k pointerKind) String() string {
	switch k {
	case pointerRegistry:
		return "registry"
	case pointerLocal:
		return "local"
	case pointerRoot:
		return "root"
	case pointerFragment:
		return "fragment"
	default:
		return "document"
	}
}

type pointer struct {
	raw      string
	kind     pointerKind
	file     string
	fragment string
	// name is the unescaped last fragment token, the default registry key
	name string
}

var (
	errEmptyPointer  = errors.New("empty reference")
	errRemotePointer = errors.New("remote references are not supported")
)

func parsePointer(raw string) (pointer, error) {
	p := pointer{raw: raw}
	if strings.TrimSpace(raw) == "" {
		return p, errEmptyPointer
	}

	file, fragment, _ := strings.Cut(raw, "#")
	if strings.Contains(file, "://") {
		return p, errRemotePointer
	}
	p.file = file
	p.fragment = fragment

	tokens := pathutil.SplitFragment(fragment)
	if len(tokens) > 0 {
		p.name = tokens[len(tokens)-1]
	}

	switch {
	case file != "" && len(tokens) == 0:
		p.kind = pointerDocument
		p.fragment = ""
	case file != "":
		p.kind = pointerFragment
	case len(tokens) == 3 && tokens[0] == "components" && tokens[1] == "schemas":
		p.kind = pointerRegistry
	case len(tokens) == 1:
		p.kind = pointerLocal
	default:
		p.kind = pointerRoot
	}
	return p, nil
}

// isBareName reports whether s looks like a plain schema name rather than
// a pointer. Discriminator mappings allow either form.
func isBareName(s string) bool {
	return s != "" && !strings.ContainsAny(s, "#/\\.")
}
