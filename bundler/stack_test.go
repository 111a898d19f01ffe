package bundler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathStack(t *testing.T) {
	root := filepath.FromSlash("/x/openapi.yaml")
	s := newPathStack(root)

	assert.Equal(t, filepath.FromSlash("/x"), s.current())
	assert.Equal(t, root, s.file())
	assert.Equal(t, filepath.FromSlash("/x/sub/b.yaml"), s.resolve("sub/b.yaml"))

	s.push(fileFrame(s.resolve("sub/b.yaml")))
	assert.Equal(t, 2, s.depth())
	// relative references now resolve against sub/, not the root directory
	assert.Equal(t, filepath.FromSlash("/x/sub/c.yaml"), s.resolve("./c.yaml"))
	assert.Equal(t, filepath.FromSlash("/x/d.yaml"), s.resolve("../d.yaml"))

	s.pop()
	assert.Equal(t, filepath.FromSlash("/x/c.yaml"), s.resolve("./c.yaml"))
}

func TestPathStackPopRootPanics(t *testing.T) {
	s := newPathStack(filepath.FromSlash("/x/openapi.yaml"))
	assert.Panics(t, s.pop)
}
