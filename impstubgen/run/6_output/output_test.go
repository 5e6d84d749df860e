package output_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	. "github.com/onsi/gomega"

	output "github.com/toejough/impstub/impstubgen/run/6_output"
)

const code = `// Code generated by impstubgen. DO NOT EDIT.

package ftpclient

import "github.com/toejough/impstub"

// sendStub is the double standing in for send.
type sendStub = impstub.Mock2[int, []byte, uint]
`

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stubName string
		pkgName  string
		goFile   string
		want     string
	}{
		{name: "regular package", stubName: "sendStub", pkgName: "ftpclient", goFile: "ftp.go",
			want: "generated_sendStub.go"},
		{name: "name with .go suffix", stubName: "sendStub.go", pkgName: "ftpclient", goFile: "ftp.go",
			want: "generated_sendStub.go"},
		{name: "test package", stubName: "sendStub", pkgName: "ftpclient_test", goFile: "ftp.go",
			want: "generated_sendStub_test.go"},
		{name: "test file", stubName: "sendStub", pkgName: "ftpclient", goFile: "ftp_test.go",
			want: "generated_sendStub_test.go"},
		{name: "name with _test suffix", stubName: "sendStub_test", pkgName: "ftpclient_test", goFile: "ftp.go",
			want: "generated_sendStub_test.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(output.Filename(tt.stubName, tt.pkgName, tt.goFile)).To(Equal(tt.want))
		})
	}
}

func TestWriteGeneratedCode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := newMemFS()

	err := output.WriteGeneratedCode(code, "sendStub", "ftpclient", env("ftp_test.go"), fs, quietLogger())

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fs.files).To(HaveKey("generated_sendStub_test.go"))
	g.Expect(string(fs.files["generated_sendStub_test.go"])).To(ContainSubstring("type sendStub ="))
	g.Expect(fs.perms["generated_sendStub_test.go"]).To(Equal(os.FileMode(0o600)))
}

func TestWriteGeneratedCode_WriteError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := newMemFS()
	fs.writeErr = errors.New("disk full")

	err := output.WriteGeneratedCode(code, "sendStub", "ftpclient", env("ftp.go"), fs, quietLogger())

	g.Expect(err).To(MatchError(ContainSubstring("disk full")))
}

func TestCheckGeneratedCode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := newMemFS()
	logger := quietLogger()

	err := output.WriteGeneratedCode(code, "sendStub", "ftpclient", env("ftp.go"), fs, logger)
	g.Expect(err).NotTo(HaveOccurred())

	err = output.CheckGeneratedCode(code, "sendStub", "ftpclient", env("ftp.go"), fs, logger)
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer

	fs.files["generated_sendStub.go"] = []byte("package ftpclient\n")
	err = output.CheckGeneratedCode(code, "sendStub", "ftpclient", env("ftp.go"), fs, log.New(&buf))

	g.Expect(err).To(MatchError(output.ErrStale))
	g.Expect(buf.String()).To(ContainSubstring("generated_sendStub.go (generated)"))
}

func TestCheckGeneratedCode_MissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := output.CheckGeneratedCode(code, "sendStub", "ftpclient", env("ftp.go"), newMemFS(), quietLogger())

	g.Expect(err).To(MatchError(output.ErrStale))
	g.Expect(err).To(MatchError(ContainSubstring("cannot be read")))
}

type memFS struct {
	files    map[string][]byte
	perms    map[string]os.FileMode
	writeErr error
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return data, nil
}

func (m *memFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.files[name] = data
	m.perms[name] = perm

	return nil
}

func env(goFile string) func(string) string {
	return func(key string) string {
		if key == "GOFILE" {
			return goFile
		}

		return ""
	}
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}, perms: map[string]os.FileMode{}}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
