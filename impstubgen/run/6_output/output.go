// Package output writes generated stubs to disk, or checks them against what
// is already there.
package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/charmbracelet/log"
	"github.com/toejough/go-reorder"
)

// FileSystem is the file access the writer needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Exported variables.
var (
	ErrStale = errors.New("generated file is out of date")
)

// CheckGeneratedCode compares code with the existing generated file and fails
// with ErrStale, logging a unified diff, when they differ.
func CheckGeneratedCode(
	code string, stubName string, pkgName string, getEnv func(string) string, fs FileSystem, logger *log.Logger,
) error {
	filename := Filename(stubName, pkgName, getEnv("GOFILE"))
	wanted := reordered(code, filename, logger)

	current, err := fs.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %s cannot be read: %w", ErrStale, filename, err)
	}

	if string(current) == wanted {
		logger.Info("up to date", "file", filename)

		return nil
	}

	diff := textdiff.Unified(filename+" (current)", filename+" (generated)", string(current), wanted)
	logger.Error("stale", "file", filename, "diff", "\n"+diff)

	return fmt.Errorf("%w: %s", ErrStale, filename)
}

// Filename returns generated_<stubName>.go, with a _test suffix when the stub
// belongs to a test package or is generated from a test file.
func Filename(stubName string, pkgName string, goFile string) string {
	isTestFile := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	base := strings.TrimSuffix(strings.TrimSuffix(stubName, ".go"), "_test")

	if isTestFile || strings.HasSuffix(strings.TrimSuffix(stubName, ".go"), "_test") {
		return "generated_" + base + "_test.go"
	}

	return "generated_" + base + ".go"
}

// WriteGeneratedCode writes the generated code to generated_<stubName>.go.
func WriteGeneratedCode(
	code string, stubName string, pkgName string, getEnv func(string) string, fs FileSystem, logger *log.Logger,
) error {
	const generatedFilePermissions = 0o600

	filename := Filename(stubName, pkgName, getEnv("GOFILE"))

	err := fs.WriteFile(filename, []byte(reordered(code, filename, logger)), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	logger.Info("written", "file", filename)

	return nil
}

// reordered sorts declarations according to project conventions. A failure
// leaves the code as generated.
func reordered(code string, filename string, logger *log.Logger) string {
	result, err := reorder.Source(code)
	if err != nil {
		logger.Warn("failed to reorder", "file", filename, "err", err)

		return code
	}

	return result
}
