package commands

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/erraggy/oasbundler/bundler"
	"github.com/erraggy/oasbundler/internal/cliutil"
	"github.com/erraggy/oasbundler/validator"
)

func newBundleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Resolve every external $ref and write one self-contained document",
		Long: `Bundle reads the root document from --dir, follows every $ref into the
local files it points at, and writes the result next to it (or into
--output-dir).

Each reference is resolved relative to the file it appears in. Object
schemas become components.schemas entries; everything else is inlined.
The written files are validated unless --no-validate is given.

Examples:
  oasbundler bundle -d specs
  oasbundler bundle -d specs -f api.yaml -o both --output-dir dist
  OASBUNDLER_STRICT=true oasbundler bundle -d specs

Exit Codes:
  0    Bundled (and valid)
  1    Bundling failed or the output is invalid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBundle(cmd)
		},
	}

	f := cmd.Flags()
	f.StringP("dir", "d", "", "directory holding the root document (required)")
	f.StringP("file", "f", bundler.DefaultInputFile, "root document file name")
	f.String("output-dir", "", "directory to write into (default: --dir)")
	f.String("output-file", bundler.DefaultOutputBase, "output file base name; .yaml/.yml/.json is stripped")
	f.StringP("output-format", "o", string(bundler.FormatYAML), "output format: yaml, json, or both")
	f.Bool("strict", false, "fail when two sources register the same schema name")
	f.Bool("no-validate", false, "skip validating the written files")
	f.Int("max-depth", bundler.DefaultMaxDepth, "deepest nesting walked before failing")
	return cmd
}

func (a *app) runBundle(cmd *cobra.Command) error {
	dir := a.v.GetString("dir")
	if dir == "" {
		return usageError("dir", "or set OASBUNDLER_DIR")
	}
	format, err := bundler.ParseFormat(a.v.GetString("output-format"))
	if err != nil {
		return err
	}

	b := &bundler.Bundler{
		StrictCollisions: a.v.GetBool("strict"),
		MaxDepth:         a.v.GetInt("max-depth"),
		Logger:           NewZapAdapter(a.logger),
	}
	report, err := b.Execute(cmd.Context(), bundler.Job{
		InputDir:       dir,
		InputFile:      a.v.GetString("file"),
		OutputDir:      a.v.GetString("output-dir"),
		OutputFile:     a.v.GetString("output-file"),
		Format:         format,
		SkipValidation: a.v.GetBool("no-validate"),
	})
	if err != nil {
		return err
	}

	res := report.Result
	Writef(a.stdout, "Bundled %s\n", res.SourcePath)
	Writef(a.stdout, "Files loaded: %d\n", res.LoadCount)
	Writef(a.stdout, "Schemas: %d\n", len(res.Schemas))
	if res.CyclesBroken > 0 {
		Writef(a.stdout, "Cycles broken: %d\n", res.CyclesBroken)
	}
	cliutil.WriteList(a.stdout, "Collisions", lo.Map(res.Collisions, func(c bundler.Collision, _ int) string {
		return fmt.Sprintf("%s: %s replaced by %s", c.Name, c.Existing, c.Incoming)
	}))
	cliutil.WriteList(a.stdout, "Written", report.Files)

	if len(report.Validation) == 0 {
		return nil
	}
	return a.printValidation(report.Validation)
}

// printValidation prints one line per result and the errors of invalid
// ones. It returns errInvalid when any result is invalid.
func (a *app) printValidation(results []*validator.Result) error {
	invalid := false
	for _, r := range results {
		if r.Valid {
			Writef(a.stdout, "%s: valid (OpenAPI %s)\n", r.Path, r.Version)
			continue
		}
		invalid = true
		Writef(a.stderr, "%s: invalid\n", r.Path)
		cliutil.WriteList(a.stderr, "Errors", r.Errors)
	}
	if invalid {
		return errInvalid
	}
	return nil
}
