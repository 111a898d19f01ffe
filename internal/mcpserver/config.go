package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/oasbundler/bundler"
	"github.com/erraggy/oasbundler/document"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Bundle tool defaults.
	BundleFormat         bundler.Format
	BundleStrict         bool
	BundleSkipValidation bool

	// Resource limits.
	MaxDepth    int
	MaxFileSize int64
	MaxFiles    int

	// Validation output.
	IssueLimit int
	MaxLimit   int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASBUNDLER_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		BundleFormat:         envFormat("OASBUNDLER_BUNDLE_FORMAT", bundler.FormatYAML),
		BundleStrict:         envBool("OASBUNDLER_BUNDLE_STRICT", false),
		BundleSkipValidation: envBool("OASBUNDLER_BUNDLE_SKIP_VALIDATION", false),
		MaxDepth:             envInt("OASBUNDLER_MAX_DEPTH", bundler.DefaultMaxDepth),
		MaxFileSize:          envInt64("OASBUNDLER_MAX_FILE_SIZE", document.DefaultMaxFileSize),
		MaxFiles:             envInt("OASBUNDLER_MAX_FILES", 20),
		IssueLimit:           envInt("OASBUNDLER_ISSUE_LIMIT", 100),
		MaxLimit:             envInt("OASBUNDLER_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key string, fallback bundler.Format) bundler.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := bundler.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return f
}
