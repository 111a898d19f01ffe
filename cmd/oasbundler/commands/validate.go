package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasbundler/bundler"
	"github.com/erraggy/oasbundler/validator"
)

func newValidateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate OpenAPI 3.0 documents",
		Long: `Validate checks documents against the OpenAPI 3.0 specification without
following external references, so run it on bundled output.

With no arguments the document named by --dir and --file is validated.

Examples:
  oasbundler validate dist/openapi.bundled.yaml
  oasbundler validate -d dist -f openapi.bundled.json

Exit Codes:
  0    All documents are valid
  1    A document is invalid or could not be read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringP("dir", "d", "", "directory holding the document")
	f.StringP("file", "f", bundler.DefaultInputFile, "document file name")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		dir := a.v.GetString("dir")
		if dir == "" {
			return usageError("dir", "or pass the files to validate as arguments")
		}
		paths = []string{filepath.Join(dir, a.v.GetString("file"))}
	}

	results, err := validator.ValidateAll(cmd.Context(), paths...)
	if err != nil {
		return err
	}
	return a.printValidation(results)
}
