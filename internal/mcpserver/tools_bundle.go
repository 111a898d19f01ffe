package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbundler/bundler"
)

type bundleInput struct {
	InputDir       string `json:"input_dir"                 jsonschema:"Directory holding the root OpenAPI document"`
	InputFile      string `json:"input_file,omitempty"      jsonschema:"Root document file name (default openapi.yaml)"`
	OutputDir      string `json:"output_dir,omitempty"      jsonschema:"Directory to write into (default: input_dir). Created when missing."`
	OutputFile     string `json:"output_file,omitempty"     jsonschema:"Output file base name (default openapi.bundled). A .yaml, .yml, or .json extension is stripped."`
	Format         string `json:"format,omitempty"          jsonschema:"Output format: yaml, json, or both"`
	Strict         *bool  `json:"strict,omitempty"          jsonschema:"Fail when two sources register the same schema name"`
	SkipValidation *bool  `json:"skip_validation,omitempty" jsonschema:"Do not validate the written files"`
}

type collisionInfo struct {
	Name     string `json:"name"`
	Existing string `json:"existing"`
	Incoming string `json:"incoming"`
}

type bundleOutput struct {
	Files         []string             `json:"files"`
	SchemaCount   int                  `json:"schema_count"`
	Schemas       []string             `json:"schemas,omitempty"`
	LoadCount     int                  `json:"load_count"`
	ExternalFiles int                  `json:"external_files"`
	CyclesBroken  int                  `json:"cycles_broken"`
	Collisions    []collisionInfo      `json:"collisions,omitempty"`
	Validated     bool                 `json:"validated"`
	Valid         bool                 `json:"valid"`
	Validation    []validateFileOutput `json:"validation,omitempty"`
}

func handleBundle(ctx context.Context, _ *mcp.CallToolRequest, input bundleInput) (*mcp.CallToolResult, bundleOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.BundleStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	skipValidation := cfg.BundleSkipValidation
	if input.SkipValidation != nil {
		skipValidation = *input.SkipValidation
	}
	format := cfg.BundleFormat
	if input.Format != "" {
		f, err := bundler.ParseFormat(input.Format)
		if err != nil {
			return errResult(err), bundleOutput{}, nil
		}
		format = f
	}

	dir, err := inputDir(input.InputDir)
	if err != nil {
		return errResult(err), bundleOutput{}, nil
	}

	b := &bundler.Bundler{
		StrictCollisions: strict,
		MaxDepth:         cfg.MaxDepth,
		MaxFileSize:      cfg.MaxFileSize,
	}
	report, err := b.Execute(ctx, bundler.Job{
		InputDir:       dir,
		InputFile:      input.InputFile,
		OutputDir:      input.OutputDir,
		OutputFile:     input.OutputFile,
		Format:         format,
		SkipValidation: skipValidation,
	})
	if err != nil {
		return errResult(err), bundleOutput{}, nil
	}

	res := report.Result
	output := bundleOutput{
		Files:         report.Files,
		SchemaCount:   len(res.Schemas),
		Schemas:       res.Schemas,
		LoadCount:     res.LoadCount,
		ExternalFiles: len(res.ExternalFiles),
		CyclesBroken:  res.CyclesBroken,
		Validated:     !skipValidation,
		Valid:         report.Valid(),
	}
	output.Collisions = makeSlice[collisionInfo](len(res.Collisions))
	for _, c := range res.Collisions {
		output.Collisions = append(output.Collisions, collisionInfo{Name: c.Name, Existing: c.Existing, Incoming: c.Incoming})
	}
	output.Validation = makeSlice[validateFileOutput](len(report.Validation))
	for _, v := range report.Validation {
		output.Validation = append(output.Validation, fileOutput(v, 0, 0))
	}
	return nil, output, nil
}
