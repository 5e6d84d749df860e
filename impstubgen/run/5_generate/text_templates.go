package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds the parsed text templates for stub generation.
// Create a registry using NewTemplateRegistry() to initialize all templates.
type TemplateRegistry struct {
	headerTmpl        *template.Template
	resultsStructTmpl *template.Template
	variableStubTmpl  *template.Template
	funcTypeStubTmpl  *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with all templates parsed.
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		headerTmpl:        parseTemplate("header", tmplHeader),
		resultsStructTmpl: parseTemplate("resultsStruct", tmplResultsStruct),
		variableStubTmpl:  parseTemplate("variableStub", tmplVariableStub),
		funcTypeStubTmpl:  parseTemplate("funcTypeStub", tmplFuncTypeStub),
	}
}

// WriteFuncTypeStub writes the alias and constructor for a named func type.
func (r *TemplateRegistry) WriteFuncTypeStub(buf *bytes.Buffer, data any) {
	execute(r.funcTypeStubTmpl, buf, data)
}

// WriteHeader writes the generated-code banner, package clause and imports.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteResultsStruct writes the struct carrying a multi-result response.
func (r *TemplateRegistry) WriteResultsStruct(buf *bytes.Buffer, data any) {
	execute(r.resultsStructTmpl, buf, data)
}

// WriteVariableStub writes the alias and the swap-and-restore helper for a
// package variable.
func (r *TemplateRegistry) WriteVariableStub(buf *bytes.Buffer, data any) {
	execute(r.variableStubTmpl, buf, data)
}

const (
	tmplFuncTypeStub = `
// {{.AliasName}} is the double behind values of type {{.Target}}.
type {{.AliasName}} = {{.MockType}}

// {{.FuncName}} creates a double and a {{.Target}} that dispatches to it.
func {{.FuncName}}(opts ...impstub.Option) (*{{.AliasName}}, {{.Target}}) {
	double := {{.NewMock}}(append([]impstub.Option{impstub.WithName({{printf "%q" .Target}})}, opts...)...)

	return double, {{.Adapter}}
}
`

	tmplHeader = `// Code generated by impstubgen. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
`

	tmplResultsStruct = `
// {{.ResultsType}} holds the results of one {{.Target}} call.
type {{.ResultsType}} struct {
{{- range $index, $result := .Results}}
	R{{inc $index}} {{$result}}
{{- end}}
}
`

	tmplVariableStub = `
// {{.AliasName}} is the double standing in for {{.Target}}.
type {{.AliasName}} = {{.MockType}}

// {{.FuncName}} replaces {{.Target}} with a fresh double until t completes.
func {{.FuncName}}(t impstub.CleanupRegistrar, opts ...impstub.Option) *{{.AliasName}} {
	double := {{.NewMock}}(append([]impstub.Option{impstub.WithName({{printf "%q" .Target}})}, opts...)...)
	original := {{.Target}}
	{{.Target}} = {{.Adapter}}

	t.Cleanup(func() { {{.Target}} = original })

	return double
}
`
)

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}

// parseTemplate is a helper function that parses a template using template.Must().
// Panics if the template is invalid (programming error, caught at startup).
func parseTemplate(name, content string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"inc": func(index int) int { return index + 1 },
	}).Parse(content))
}
