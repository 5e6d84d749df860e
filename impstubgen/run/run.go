// Package run implements the main logic for the impstubgen tool in a testable way.
package run

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dave/dst"

	detect "github.com/toejough/impstub/impstubgen/run/3_detect"
	generate "github.com/toejough/impstub/impstubgen/run/5_generate"
	output "github.com/toejough/impstub/impstubgen/run/6_output"
)

// FileSystem is the file access the generator needs.
type FileSystem = output.FileSystem

// PackageLoader parses the package in a directory.
type PackageLoader interface {
	Load(dir string) ([]*dst.File, error)
}

// Params are the command-line inputs of one generator call.
type Params struct {
	// Target is the variable or func type to stub.
	Target string
	// Name overrides the generated alias name.
	Name string
	// Check compares instead of writing.
	Check bool
}

// Exported variables.
var (
	ErrForeignPackage = errors.New("target is declared in another package")
	ErrNoPackage      = errors.New("GOPACKAGE is not set; run impstubgen through go generate")
)

// Run executes the impstubgen tool logic for the package in the current
// directory. It writes generated_<name>.go next to the file holding the
// go:generate directive, or with params.Check only verifies it is current.
func Run(params Params, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, logger *log.Logger) error {
	pkgName := getEnv("GOPACKAGE")
	if pkgName == "" {
		return ErrNoPackage
	}

	logger = logger.With("target", params.Target)

	files, err := pkgLoader.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load package %s: %w", pkgName, err)
	}

	target, err := detect.Find(files, params.Target)
	if err != nil {
		return err
	}

	declaredIn := target.File.Name.Name
	if declaredIn != pkgName {
		return fmt.Errorf("%w: %s is declared in package %s, the directive runs in %s",
			ErrForeignPackage, params.Target, declaredIn, pkgName)
	}

	logger.Debug("found target", "params", target.ParamCount(), "results", target.ResultCount())

	stub, err := generate.Generate(target, generate.Options{PkgName: pkgName, Name: params.Name})
	if err != nil {
		return err
	}

	if params.Check {
		return output.CheckGeneratedCode(stub.Source, stub.Name, pkgName, getEnv, fileSys, logger)
	}

	return output.WriteGeneratedCode(stub.Source, stub.Name, pkgName, getEnv, fileSys, logger)
}
