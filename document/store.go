package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbundler/oaserrors"
)

// DefaultMaxFileSize is the largest file a Store will read (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Entry is a loaded document and the absolute path it was read from.
type Entry struct {
	Path string
	Root *yaml.Node
}

// Store loads documents from disk and caches them by absolute path.
// A Store is owned by a single bundling run and is not safe for concurrent use.
type Store struct {
	// MaxFileSize caps the size of any single file. Zero or negative means
	// DefaultMaxFileSize.
	MaxFileSize int64

	docs  map[string]*yaml.Node
	order []string
	loads int
}

// NewStore returns an empty Store with the default size limit.
func NewStore() *Store {
	return &Store{
		MaxFileSize: DefaultMaxFileSize,
		docs:        make(map[string]*yaml.Node),
	}
}

// Abs returns the normalized absolute form of path used as the cache key.
func Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// Load returns the root mapping of the document at path, reading and
// parsing it on first use. Later calls for the same file return the
// cached tree without touching the disk.
func (s *Store) Load(path string) (*yaml.Node, error) {
	abs, err := Abs(path)
	if err != nil {
		return nil, &oaserrors.LoadError{Path: path, Message: "invalid path", Cause: err}
	}
	if root, ok := s.docs[abs]; ok {
		return root, nil
	}

	root, err := s.read(abs)
	if err != nil {
		return nil, err
	}
	s.loads++
	s.docs[abs] = root
	s.order = append(s.order, abs)
	return root, nil
}

func (s *Store) read(abs string) (*yaml.Node, error) {
	limit := s.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	info, err := os.Stat(abs)
	if err != nil {
		msg := "cannot read file"
		if errors.Is(err, os.ErrNotExist) {
			msg = "file not found"
		}
		return nil, &oaserrors.LoadError{Path: abs, Message: msg, Cause: err}
	}
	if info.IsDir() {
		return nil, &oaserrors.LoadError{Path: abs, Message: "path is a directory"}
	}
	if info.Size() > limit {
		return nil, &oaserrors.LoadError{
			Path:    abs,
			Message: "file too large",
			Cause: &oaserrors.ResourceLimitError{
				ResourceType: "file_size",
				Limit:        limit,
				Actual:       info.Size(),
			},
		}
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path comes from the document's own references
	if err != nil {
		return nil, &oaserrors.LoadError{Path: abs, Message: "cannot read file", Cause: err}
	}
	return Parse(abs, data)
}

var yamlErrLine = regexp.MustCompile(`line (\d+)`)

// Parse decodes YAML or JSON data and returns its root mapping. The path
// is used only for error messages.
func Parse(path string, data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		loadErr := &oaserrors.LoadError{Path: path, Message: "invalid YAML or JSON", Cause: err}
		if m := yamlErrLine.FindStringSubmatch(err.Error()); m != nil {
			loadErr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, loadErr
	}
	root := Deref(&doc)
	if root == nil {
		return nil, &oaserrors.LoadError{Path: path, Message: "empty document"}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &oaserrors.LoadError{
			Path:    path,
			Line:    root.Line,
			Message: fmt.Sprintf("document root must be a mapping, got %s", kindName(root.Kind)),
		}
	}
	return root, nil
}

// Add caches root under path without reading the disk, for documents
// parsed from memory. It does not count as a load.
func (s *Store) Add(path string, root *yaml.Node) error {
	abs, err := Abs(path)
	if err != nil {
		return &oaserrors.LoadError{Path: path, Message: "invalid path", Cause: err}
	}
	if _, ok := s.docs[abs]; !ok {
		s.order = append(s.order, abs)
	}
	s.docs[abs] = root
	return nil
}

// LoadCount returns how many files were read from disk.
func (s *Store) LoadCount() int {
	return s.loads
}

// Loaded reports whether path is in the cache.
func (s *Store) Loaded(path string) bool {
	abs, err := Abs(path)
	if err != nil {
		return false
	}
	_, ok := s.docs[abs]
	return ok
}

// Documents returns every cached document in load order.
func (s *Store) Documents() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, Entry{Path: p, Root: s.docs[p]})
	}
	return out
}

// Cached returns the cached document for path without loading it.
func (s *Store) Cached(path string) (*yaml.Node, bool) {
	abs, err := Abs(path)
	if err != nil {
		return nil, false
	}
	root, ok := s.docs[abs]
	return root, ok
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
