package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcforge/cargo-bounded-context/internal/branding"
	"github.com/bcforge/cargo-bounded-context/internal/config"
	"github.com/bcforge/cargo-bounded-context/internal/logging"
	"github.com/bcforge/cargo-bounded-context/internal/ui"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// ErrUsage marks a malformed invocation. The usage line is printed with it.
var ErrUsage = errors.New("invalid usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// usageLine is the one supported command form.
func usageLine() string {
	return branding.Invocation() + " add <name>"
}

// app carries the state shared by the command tree for one invocation.
type app struct {
	fs         billy.Filesystem // nil means the working directory
	printer    *ui.Printer
	settings   *config.Settings
	logger     *zap.Logger
	verbose    bool
	configPath string
	target     string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a Rust crate laid out as a bounded context:
domain, application and infrastructure layers, a mod.rs in every directory,
a Cargo.toml and a src/lib.rs wiring the layers together.

Run it directly or as a cargo subcommand:
  ` + usageLine(),
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.settings = settings

			logger, err := logging.New(logging.Options{
				Level:   settings.LogLevel,
				Format:  settings.LogFormat,
				Verbose: a.verbose,
			})
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.Bool("strict_names", settings.StrictNames),
				zap.String("log_level", settings.LogLevel))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("missing command")
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging and list every created file")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ~/"+branding.HomeDir()+"/config.yaml)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	// "add" is the only command; help and completion would otherwise be
	// reachable as sub-commands.
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("unknown command %q", "help")
		},
	})

	root.AddCommand(newAddCmd(a))
	return root
}

// normalizeArgs drops the subcommand name cargo inserts when invoked as
// "cargo bounded-context ...".
func normalizeArgs(args []string) []string {
	if len(args) > 0 && args[0] == branding.CargoSubcommand() {
		return args[1:]
	}
	return args
}

// run executes one invocation and reports any failure on stderr.
func run(args []string, stdout, stderr io.Writer, fs billy.Filesystem) error {
	a := &app{
		fs:      fs,
		printer: ui.NewPrinter(stdout, stderr),
		logger:  zap.NewNop(),
	}

	root := newRootCmd(a)
	root.SetArgs(normalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = a.logger.Sync()
	if err != nil {
		a.report(err)
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return run(os.Args[1:], os.Stdout, os.Stderr, nil)
}
