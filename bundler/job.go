package bundler

import (
	"context"
	"path/filepath"

	"github.com/erraggy/oasbundler/oaserrors"
	"github.com/erraggy/oasbundler/validator"
)

// Job describes a complete bundling run: read, resolve, write, and
// optionally validate what was written.
type Job struct {
	// InputDir is the directory holding the root document.
	InputDir string
	// InputFile is the root document name. Default: "openapi.yaml".
	InputFile string
	// OutputDir receives the output. Default: InputDir.
	OutputDir string
	// OutputFile is the output base name. Default: DefaultOutputBase.
	OutputFile string
	// Format selects the output files. Default: FormatYAML.
	Format Format
	// SkipValidation disables validating the written files.
	SkipValidation bool
}

// DefaultInputFile is the root document name used when Job.InputFile is empty.
const DefaultInputFile = "openapi.yaml"

// Report is the outcome of Execute.
type Report struct {
	Result *Result
	// Files are the absolute paths written.
	Files []string
	// Validation holds one result per written file, in Files order. Empty
	// when validation was skipped.
	Validation []*validator.Result
	// ValidationErr aggregates invalid outputs as *oaserrors.ValidationError
	// values. The files are kept on disk either way.
	ValidationErr error
}

// Valid reports whether every validated output passed.
func (r *Report) Valid() bool {
	return r.ValidationErr == nil
}

// InputPath returns the root document path of the job.
func (j Job) InputPath() string {
	file := j.InputFile
	if file == "" {
		file = DefaultInputFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(j.InputDir, file)
}

// Execute bundles the job's input, writes the output files, and validates
// them. Nothing is written when bundling fails. A validation failure is
// reported in the Report, not as an error.
func (b *Bundler) Execute(ctx context.Context, job Job) (*Report, error) {
	if job.InputDir == "" && !filepath.IsAbs(job.InputFile) {
		return nil, &oaserrors.ConfigError{Option: "input dir", Message: "is required"}
	}
	format, err := ParseFormat(string(job.Format))
	if err != nil {
		return nil, err
	}
	logger := b.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	result, err := b.Bundle(job.InputPath())
	if err != nil {
		return nil, err
	}

	outDir := job.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(result.SourcePath)
	}
	files, err := result.WriteFiles(outDir, job.OutputFile, format)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		logger.Info("wrote bundled document", "path", f)
	}

	report := &Report{Result: result, Files: files}
	if job.SkipValidation {
		return report, nil
	}

	report.Validation, err = validator.ValidateAll(ctx, files...)
	if err != nil {
		return report, err
	}
	report.ValidationErr = validator.Failures(report.Validation)
	for _, v := range report.Validation {
		if v.Valid {
			logger.Info("bundled document is valid", "path", v.Path)
		} else {
			logger.Error("bundled document is invalid", "path", v.Path, "message", v.Message)
		}
	}
	return report, nil
}
