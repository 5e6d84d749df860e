// impstubgen generates replaceable test doubles for function dependencies.
// Install it with `go install github.com/toejough/impstub/impstubgen@latest`
// and add a `//go:generate impstubgen <target>` comment next to the tests that
// need it. The target is a package variable of func type, or a named func type.
// The stub is written to generated_<name>.go (generated_<name>_test.go when the
// directive sits in a test file), where <name> defaults to <target>Stub and can
// be changed with --name. With --check (or IMPSTUBGEN_CHECK set), nothing is
// written; the command fails when the existing file is out of date.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/dave/dst"
	"github.com/spf13/cobra"

	"github.com/toejough/impstub/impstubgen/run"
	load "github.com/toejough/impstub/impstubgen/run/2_load"
)

const checkEnvVar = "IMPSTUBGEN_CHECK"

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          "impstubgen",
		ReportTimestamp: false,
	})

	err := newRootCmd(os.Getenv, &realFileSystem{}, &realPackageLoader{}, logger).Execute()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader parses package directories from disk.
type realPackageLoader struct{}

// Load parses every Go file in dir, test files included.
func (pl *realPackageLoader) Load(dir string) ([]*dst.File, error) {
	files, _, err := load.PackageDST(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", dir, err)
	}

	return files, nil
}

func newRootCmd(
	getEnv func(string) string, fileSys run.FileSystem, pkgLoader run.PackageLoader, logger *charmlog.Logger,
) *cobra.Command {
	var (
		name    string
		check   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "impstubgen <target>",
		Short: "Generate an impstub double for a function variable or func type",
		Long: `impstubgen reads the package in the current directory, finds <target>,
and writes a stub file that swaps the target for an impstub double.
It is meant to be run through go generate, which sets GOPACKAGE and GOFILE.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}

			check = check || getEnv(checkEnvVar) != ""

			return run.Run(run.Params{Target: args[0], Name: name, Check: check}, getEnv, fileSys, pkgLoader, logger)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for the generated double (defaults to <target>Stub)")
	cmd.Flags().BoolVar(&check, "check", false, "fail instead of writing when the generated file is out of date")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug details")

	return cmd
}
