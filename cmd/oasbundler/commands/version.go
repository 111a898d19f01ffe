package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasbundler"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			Writef(a.stdout, "oasbundler %s\n", oasbundler.Version())
			Writef(a.stdout, "commit: %s\n", oasbundler.Commit())
			Writef(a.stdout, "built: %s\n", oasbundler.BuildTime())
			Writef(a.stdout, "go: %s\n", oasbundler.GoVersion())
		},
	}
}
