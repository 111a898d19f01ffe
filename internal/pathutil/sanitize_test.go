package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("returns absolute path from relative", func(t *testing.T) {
		got, err := SanitizeOutputPath("openapi.bundled.yaml")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("new file in existing directory accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		newFile := filepath.Join(tmpDir, "sub", "..", "openapi.bundled.json")

		got, err := SanitizeOutputPath(newFile)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "openapi.bundled.json"), got)
	})

	t.Run("existing regular file accepted", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "existing.yaml")
		require.NoError(t, os.WriteFile(target, []byte("openapi: 3.0.3\n"), 0o600))

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("symlink target rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		realFile := filepath.Join(tmpDir, "real.yaml")
		linkFile := filepath.Join(tmpDir, "link.yaml")

		require.NoError(t, os.WriteFile(realFile, []byte("test"), 0o600))
		require.NoError(t, os.Symlink(realFile, linkFile))

		_, err := SanitizeOutputPath(linkFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}
