// Package commands provides CLI command handlers for oasbundler.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/oasbundler/internal/cliutil"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// errInvalid is returned by a command that ran to completion but found an
// invalid document. Its details have already been printed.
var errInvalid = errors.New("validation failed")

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// exitCode maps a command error to the process exit code and prints it.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	Writef(stderr, "Error: %v\n", err)
	return ExitFailure
}

// usageError reports a command invoked without a required setting.
func usageError(name, hint string) error {
	return fmt.Errorf("--%s is required (%s)", name, hint)
}
