package bundler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/document"
	"github.com/erraggy/oasbundler/internal/pathutil"
	"github.com/erraggy/oasbundler/oaserrors"
)

// DefaultMaxDepth is the deepest nesting the resolver walks before failing
// with a *oaserrors.ResourceLimitError.
const DefaultMaxDepth = 1000

// Bundler resolves the $ref pointers of an OpenAPI document and its local
// external files into one self-contained document.
type Bundler struct {
	// StrictCollisions fails the run when two sources register the same
	// schema name. By default the last registration wins and the overwrite
	// is reported in Result.Collisions.
	StrictCollisions bool
	// MaxDepth caps the nesting depth walked. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxFileSize caps the size of each loaded file in bytes. Zero means
	// document.DefaultMaxFileSize.
	MaxFileSize int64
	// Logger receives diagnostics. Nil means NopLogger.
	Logger Logger
}

// New creates a new Bundler with default settings.
func New() *Bundler {
	return &Bundler{}
}

// Bundle loads the document at path and resolves every reference in it.
// The input files are never modified.
func (b *Bundler) Bundle(path string) (*Result, error) {
	abs, err := document.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("bundler: %w", &oaserrors.ConfigError{Option: "path", Value: path, Cause: err})
	}
	store := b.newStore()
	root, err := store.Load(abs)
	if err != nil {
		return nil, fmt.Errorf("bundler: %w", err)
	}
	return b.bundle(store, root, abs)
}

// BundleBytes bundles a document held in memory. Relative references
// resolve against the directory of sourcePath, which need not exist as a
// file; an empty sourcePath means the working directory.
func (b *Bundler) BundleBytes(data []byte, sourcePath string) (*Result, error) {
	if sourcePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("bundler: %w", err)
		}
		sourcePath = filepath.Join(wd, "openapi.yaml")
	}
	abs, err := document.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("bundler: %w", &oaserrors.ConfigError{Option: "source name", Value: sourcePath, Cause: err})
	}

	root, err := document.Parse(abs, data)
	if err != nil {
		return nil, fmt.Errorf("bundler: %w", err)
	}
	store := b.newStore()
	if err := store.Add(abs, root); err != nil {
		return nil, fmt.Errorf("bundler: %w", err)
	}
	return b.bundle(store, root, abs)
}

func (b *Bundler) newStore() *document.Store {
	store := document.NewStore()
	if b.MaxFileSize > 0 {
		store.MaxFileSize = b.MaxFileSize
	}
	return store
}

func (b *Bundler) bundle(store *document.Store, root *yaml.Node, rootFile string) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	maxDepth := b.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	r := &run{
		store:          store,
		stack:          newPathStack(rootFile),
		registry:       newRegistry(root, rootFile, b.StrictCollisions, logger),
		logger:         logger,
		root:           root,
		rootFile:       rootFile,
		maxDepth:       maxDepth,
		loc:            pathutil.Get(),
		inProgress:     make(map[*yaml.Node]struct{}),
		resolving:      make(map[string]*yaml.Node),
		resolvingNames: make(map[string]struct{}),
		resolved:       make(map[string]*resolution),
	}
	defer pathutil.Put(r.loc)

	logger.Info("bundling document", "path", rootFile)
	if err := r.resolveTree(root); err != nil {
		logger.Error("bundling failed", "path", rootFile, "error", err)
		return nil, fmt.Errorf("bundler: %w", err)
	}
	r.registry.merge()

	external := lo.FilterMap(store.Documents(), func(e document.Entry, _ int) (string, bool) {
		return e.Path, e.Path != rootFile
	})
	result := &Result{
		Document:      root,
		SourcePath:    rootFile,
		Schemas:       r.registry.Names(),
		LoadCount:     store.LoadCount(),
		ExternalFiles: external,
		CyclesBroken:  r.cyclesBroken,
		Collisions:    r.registry.Collisions(),
	}
	logger.Info("bundled document",
		"path", rootFile,
		"schemas", len(result.Schemas),
		"external_files", len(external),
		"cycles_broken", r.cyclesBroken,
	)
	return result, nil
}
