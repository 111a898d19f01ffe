package bundler

import (
	"fmt"

	"github.com/erraggy/oasbundler/internal/options"
	"github.com/erraggy/oasbundler/oaserrors"
)

// Option is a function that configures a bundle operation
type Option func(*bundleConfig) error

// bundleConfig holds configuration for a bundle operation
type bundleConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte

	sourceName       string
	strictCollisions bool
	logger           Logger

	// Resource limits (0 means use default)
	maxDepth    int
	maxFileSize int64
}

// BundleWithOptions bundles an OpenAPI document using functional options.
//
// Example:
//
//	result, err := bundler.BundleWithOptions(
//	    bundler.WithFilePath("openapi.yaml"),
//	    bundler.WithStrictCollisions(true),
//	)
func BundleWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("bundler: invalid options: %w", err)
	}

	b := &Bundler{
		StrictCollisions: cfg.strictCollisions,
		MaxDepth:         cfg.maxDepth,
		MaxFileSize:      cfg.maxFileSize,
		Logger:           cfg.logger,
	}
	if cfg.filePath != nil {
		return b.Bundle(*cfg.filePath)
	}
	return b.BundleBytes(cfg.bytes, cfg.sourceName)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*bundleConfig, error) {
	cfg := &bundleConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *bundleConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file path", Message: "cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies document content as the input source. Combine with
// WithSourceName to set where relative references resolve from.
func WithBytes(data []byte) Option {
	return func(cfg *bundleConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName sets the path a WithBytes document is treated as living at.
// Relative references resolve against its directory.
func WithSourceName(name string) Option {
	return func(cfg *bundleConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithStrictCollisions makes a schema name registered by two different
// sources a fatal error instead of a logged overwrite.
// Default: false
func WithStrictCollisions(enabled bool) Option {
	return func(cfg *bundleConfig) error {
		cfg.strictCollisions = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during bundling.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(cfg *bundleConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth the resolver walks.
// A value of 0 means use the default (1000).
func WithMaxDepth(depth int) Option {
	return func(cfg *bundleConfig) error {
		if err := options.NonNegative("max depth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxFileSize sets the maximum size in bytes of any loaded file.
// A value of 0 means use the default (10MiB).
func WithMaxFileSize(size int64) Option {
	return func(cfg *bundleConfig) error {
		if err := options.NonNegative("max file size", size); err != nil {
			return err
		}
		cfg.maxFileSize = size
		return nil
	}
}
