package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasbundler/validator"
)

type validateInput struct {
	Files  []string `json:"files"            jsonschema:"Paths of the OpenAPI documents to validate"`
	Offset int      `json:"offset,omitempty" jsonschema:"Skip the first N errors of each file (for pagination)"`
	Limit  int      `json:"limit,omitempty"  jsonschema:"Maximum number of errors to return per file (default 100)"`
}

type validateFileOutput struct {
	Path       string   `json:"path"`
	Valid      bool     `json:"valid"`
	Version    string   `json:"version,omitempty"`
	ErrorCount int      `json:"error_count"`
	Errors     []string `json:"errors,omitempty"`
}

type validateOutput struct {
	Valid   bool                 `json:"valid"`
	Results []validateFileOutput `json:"results"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	files, err := inputFiles(input.Files)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	results, err := validator.ValidateAll(ctx, files...)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:   validator.Failures(results) == nil,
		Results: make([]validateFileOutput, 0, len(results)),
	}
	for _, r := range results {
		output.Results = append(output.Results, fileOutput(r, input.Offset, input.Limit))
	}
	return nil, output, nil
}

// fileOutput converts a validator result, paginating its errors.
func fileOutput(r *validator.Result, offset, limit int) validateFileOutput {
	return validateFileOutput{
		Path:       r.Path,
		Valid:      r.Valid,
		Version:    r.Version,
		ErrorCount: len(r.Errors),
		Errors:     paginate(r.Errors, offset, limit),
	}
}
