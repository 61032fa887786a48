package cli

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcforge/cargo-bounded-context/internal/naming"
	"github.com/bcforge/cargo-bounded-context/internal/platform"
	"github.com/bcforge/cargo-bounded-context/internal/scaffold"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Scaffold a new bounded context",
		Long: `Scaffold a new bounded context crate in ./<name>.

The target must not exist yet; nothing is written if it does.

Example:
  ` + usageLine(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("add expects exactly one name, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(args[0])
		},
	}
}

func (a *app) runAdd(name string) error {
	a.target = name

	if err := naming.Validate(name, a.settings.StrictNames); err != nil {
		return err
	}

	fs := a.fs
	if fs == nil {
		wd, err := platform.WorkingFS("")
		if err != nil {
			return err
		}
		fs = wd
	}

	a.logger.Debug("scaffolding bounded context", zap.String("name", name))
	result, err := scaffold.New(fs, scaffold.WithLogger(a.logger)).Generate(name)
	if err != nil {
		return err
	}

	a.printResult(name, result)
	return nil
}

func (a *app) printResult(name string, result *scaffold.Result) {
	a.printer.Success("Bounded context '%s' created", name)

	if a.verbose {
		a.printer.List("Created:", prefixed(result.OutputDir, result.Files))
	}
	// Only non-empty when another writer created module files between the
	// pre-existence check and the tree walk.
	a.printer.List("Kept existing:", prefixed(result.OutputDir, result.Skipped))
	a.printer.Warnings(result.Warnings)

	a.printer.Steps([]string{
		fmt.Sprintf("Add %q to the members of your workspace Cargo.toml", name),
		fmt.Sprintf("Run 'cargo check -p %s' to verify the crate builds", name),
	})
}

// report prints err the way the user should see it.
func (a *app) report(err error) {
	a.printer.Error(err)

	var pathErr *scaffold.PathError
	switch {
	case errors.Is(err, ErrUsage):
		a.printer.Usage(usageLine())
	case errors.As(err, &pathErr) && a.target != "":
		a.printer.Hint("%s may be partially created; remove it before retrying.", a.target)
	}
}

func prefixed(dir string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = path.Join(dir, f)
	}
	return out
}
