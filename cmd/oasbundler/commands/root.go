package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/erraggy/oasbundler"
)

// envPrefix prefixes every environment variable the CLI reads, e.g.
// OASBUNDLER_OUTPUT_FORMAT for --output-format.
const envPrefix = "OASBUNDLER"

// configName is the optional config file looked up in the working
// directory and then $HOME.
const configName = ".oasbundler"

// app carries the state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewRootCommand builds the oasbundler command tree. Every invocation gets
// its own viper instance so flags, env vars, and config files never leak
// between runs.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "oasbundler",
		Short: "Bundle a multi-file OpenAPI document into one self-contained document",
		Long: `oasbundler follows every $ref of an OpenAPI document into the local files
it points at and writes a single document with no external references.

Object schemas are collected under components.schemas and referenced by
name; everything else is inlined where it is used.

Every flag can also be set through an OASBUNDLER_* environment variable
(dashes become underscores, e.g. OASBUNDLER_OUTPUT_FORMAT) or a
.oasbundler.yaml file in the working directory or $HOME.`,
		Version:       oasbundler.Version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolP("verbose", "v", false, "log resolution details to stderr")
	root.PersistentFlags().String("config", "", "config file (default: ./.oasbundler.yaml, then $HOME/.oasbundler.yaml)")

	root.AddCommand(
		newBundleCommand(a),
		newValidateCommand(a),
		newMCPCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads configuration for the command about to run and binds its
// flags, so values resolve as flag > env > config file > default.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(cmd); err != nil {
		return err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	a.logger = newZapLogger(a.v.GetBool("verbose"), a.stderr)
	return nil
}

func (a *app) readConfig(cmd *cobra.Command) error {
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		return a.v.ReadInConfig()
	}

	a.v.SetConfigName(configName)
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if errors.Is(err, errInvalid) {
		return ExitFailure
	}
	return exitCode(err, stderr)
}
