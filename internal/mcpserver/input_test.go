package mcpserver

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbundler/oaserrors"
)

func TestInputDir(t *testing.T) {
	dir := t.TempDir()

	got, err := inputDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	for _, bad := range []string{"", filepath.Join(dir, "missing")} {
		_, err := inputDir(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	}
}

func TestInputFiles(t *testing.T) {
	got, err := inputFiles([]string{"/specs/a.yaml", "/specs/../specs/b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Clean("/specs/a.yaml"), filepath.Clean("/specs/b.yaml")}, got)

	tooMany := make([]string, cfg.MaxFiles+1)
	for i := range tooMany {
		tooMany[i] = "a.yaml"
	}
	_, err = inputFiles(tooMany)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "files per call")

	_, err = inputFiles(nil)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}
