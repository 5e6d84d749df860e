package load_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/dst"
	. "github.com/onsi/gomega"

	load "github.com/toejough/impstub/impstubgen/run/2_load"
)

func TestPackageDST_IncludesTestFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ftp.go"), "package ftp\n\nvar send = func(n int) int { return n }\n")
	writeFile(t, filepath.Join(dir, "ftp_test.go"), "package ftp\n\nimport \"testing\"\n\nfunc TestX(t *testing.T) {}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not go")

	files, fset, err := load.PackageDST(dir)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fset).NotTo(BeNil())
	g.Expect(files).To(HaveLen(2))
}

func TestPackageDST_SkipsUnparsableFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.go"), "package ftp\n")
	writeFile(t, filepath.Join(dir, "bad.go"), "package ftp\n\nfunc {\n")

	files, _, err := load.PackageDST(dir)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(files).To(HaveLen(1))
	g.Expect(files[0].Name.Name).To(Equal("ftp"))
}

func TestPackageDST_SkipsFilesWithoutPackageClause(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.go"), "package ftp\n\nvar send func(n int) int\n")
	writeFile(t, filepath.Join(dir, "broken.go"), "func")

	var (
		files []*dst.File
		err   error
	)

	g.Expect(func() { files, _, err = load.PackageDST(dir) }).NotTo(Panic())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(files).To(HaveLen(1))
	g.Expect(files[0].Name.Name).To(Equal("ftp"))
}

func TestPackageDST_NoGoFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.md"), "# nothing")

	_, _, err := load.PackageDST(dir)

	g.Expect(err).To(MatchError(load.ErrNoGoFiles))
}

func TestSource_ParsesInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	files, _, err := load.Source([]string{"b.go", "a.go"}, map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n",
	})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(files[0].Name.Name).To(Equal("b"))
	g.Expect(files[1].Name.Name).To(Equal("a"))

	g.Expect(func() {
		_, _, err = load.Source([]string{"bad.go"}, map[string]string{"bad.go": "func"})
	}).NotTo(Panic())
	g.Expect(err).To(MatchError(ContainSubstring("bad.go")))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
