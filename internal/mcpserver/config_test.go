package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasbundler/bundler"
)

// clearOASBUNDLEREnv clears all OASBUNDLER_* env vars to isolate tests from the ambient environment.
func clearOASBUNDLEREnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASBUNDLER_BUNDLE_FORMAT", "OASBUNDLER_BUNDLE_STRICT",
		"OASBUNDLER_BUNDLE_SKIP_VALIDATION", "OASBUNDLER_MAX_DEPTH",
		"OASBUNDLER_MAX_FILE_SIZE", "OASBUNDLER_MAX_FILES",
		"OASBUNDLER_ISSUE_LIMIT", "OASBUNDLER_MAX_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASBUNDLEREnv(t)

	c := loadConfig()

	assert.Equal(t, bundler.FormatYAML, c.BundleFormat)
	assert.False(t, c.BundleStrict)
	assert.False(t, c.BundleSkipValidation)
	assert.Equal(t, 1000, c.MaxDepth)
	assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
	assert.Equal(t, 20, c.MaxFiles)
	assert.Equal(t, 100, c.IssueLimit)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASBUNDLEREnv(t)
	t.Setenv("OASBUNDLER_BUNDLE_FORMAT", "Both")
	t.Setenv("OASBUNDLER_BUNDLE_STRICT", "true")
	t.Setenv("OASBUNDLER_BUNDLE_SKIP_VALIDATION", "1")
	t.Setenv("OASBUNDLER_MAX_DEPTH", "50")
	t.Setenv("OASBUNDLER_MAX_FILE_SIZE", "2048")
	t.Setenv("OASBUNDLER_MAX_FILES", "5")
	t.Setenv("OASBUNDLER_ISSUE_LIMIT", "10")
	t.Setenv("OASBUNDLER_MAX_LIMIT", "200")

	c := loadConfig()

	assert.Equal(t, bundler.FormatBoth, c.BundleFormat)
	assert.True(t, c.BundleStrict)
	assert.True(t, c.BundleSkipValidation)
	assert.Equal(t, 50, c.MaxDepth)
	assert.Equal(t, int64(2048), c.MaxFileSize)
	assert.Equal(t, 5, c.MaxFiles)
	assert.Equal(t, 10, c.IssueLimit)
	assert.Equal(t, 200, c.MaxLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASBUNDLEREnv(t)
	t.Setenv("OASBUNDLER_BUNDLE_FORMAT", "xml")
	t.Setenv("OASBUNDLER_BUNDLE_STRICT", "maybe")
	t.Setenv("OASBUNDLER_MAX_DEPTH", "-3")
	t.Setenv("OASBUNDLER_MAX_FILE_SIZE", "big")
	t.Setenv("OASBUNDLER_ISSUE_LIMIT", "0")

	c := loadConfig()

	assert.Equal(t, bundler.FormatYAML, c.BundleFormat)
	assert.False(t, c.BundleStrict)
	assert.Equal(t, 1000, c.MaxDepth)
	assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
	assert.Equal(t, 100, c.IssueLimit)
}
