package validator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oasbundler/oaserrors"
)

// DefaultConcurrency bounds how many files ValidateAll checks at once.
const DefaultConcurrency = 4

// Result is the outcome of validating one file.
type Result struct {
	// Valid is true when the document loaded and passed validation
	Valid bool
	// Path is the validated file
	Path string
	// Version is the document's openapi field, when it could be read
	Version string
	// Message is the validator's diagnostic, empty when valid
	Message string
	// Errors holds one entry per reported problem
	Errors []string
	// LoadTime is the time taken to load the document
	LoadTime time.Duration
	// SourceSize is the size of the file in bytes
	SourceSize int64
}

// Validator validates OpenAPI documents.
type Validator struct {
	// Concurrency bounds parallel validations in ValidateAll.
	// Zero means DefaultConcurrency.
	Concurrency int
}

// New creates a new Validator with default settings.
func New() *Validator {
	return &Validator{}
}

// Validate validates the document at path with a default Validator.
func Validate(ctx context.Context, path string) (*Result, error) {
	return New().Validate(ctx, path)
}

// ValidateAll validates every path with a default Validator.
func ValidateAll(ctx context.Context, paths ...string) ([]*Result, error) {
	return New().ValidateAll(ctx, paths...)
}

// Validate loads and validates the document at path. A document that
// violates the specification yields a Result with Valid false; an error is
// returned only when the file cannot be read.
func (v *Validator) Validate(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // validating a caller-supplied path is the point
	if err != nil {
		return nil, &oaserrors.LoadError{Path: path, Message: "cannot read file", Cause: err}
	}
	res := &Result{Path: path, SourceSize: int64(len(data))}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	loader.Context = ctx

	start := time.Now()
	doc, err := loader.LoadFromData(data)
	res.LoadTime = time.Since(start)
	if err != nil {
		res.fail(fmt.Errorf("cannot load document: %w", err))
		return res, nil
	}
	res.Version = doc.OpenAPI

	if err := doc.Validate(ctx); err != nil {
		res.fail(err)
		return res, nil
	}
	res.Valid = true
	return res, nil
}

func (r *Result) fail(err error) {
	r.Valid = false
	r.Message = err.Error()

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi {
			r.Errors = append(r.Errors, e.Error())
		}
		return
	}
	r.Errors = []string{err.Error()}
}

// ValidateAll validates paths concurrently and returns their results in
// input order. The error is non-nil only when a file could not be read or
// ctx was cancelled; use Failures to collect invalid documents.
func (v *Validator) ValidateAll(ctx context.Context, paths ...string) ([]*Result, error) {
	limit := v.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			res, err := v.Validate(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failures returns a *multierror.Error holding one *oaserrors.ValidationError
// per invalid result, or nil when every result is valid.
func Failures(results []*Result) error {
	var merr *multierror.Error
	for _, res := range results {
		if res == nil || res.Valid {
			continue
		}
		merr = multierror.Append(merr, &oaserrors.ValidationError{Path: res.Path, Message: res.Message})
	}
	return merr.ErrorOrNil()
}
