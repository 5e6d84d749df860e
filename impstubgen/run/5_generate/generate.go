// Package generate renders the stub source for a detected dependency.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/dst"

	astutil "github.com/toejough/impstub/impstubgen/run/0_util"
	detect "github.com/toejough/impstub/impstubgen/run/3_detect"
)

// ImpstubImportPath is the import path of the runtime library used by generated code.
const ImpstubImportPath = "github.com/toejough/impstub"

// Options controls naming in the generated file.
type Options struct {
	// PkgName is the package clause of the generated file.
	PkgName string
	// Name overrides the alias name, <target>Stub by default.
	Name string
}

// Stub is the generated file content.
type Stub struct {
	// Name is the alias name; the output file is named after it.
	Name   string
	Source string
}

// Generate renders the stub for target.
func Generate(target detect.Target, opts Options) (Stub, error) {
	data := newStubData(target, opts)
	registry := NewTemplateRegistry()

	var buf bytes.Buffer

	registry.WriteHeader(&buf, data)

	if data.ResultsType != "" {
		registry.WriteResultsStruct(&buf, data)
	}

	if target.IsVariable() {
		registry.WriteVariableStub(&buf, data)
	} else {
		registry.WriteFuncTypeStub(&buf, data)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return Stub{}, fmt.Errorf("failed to format stub for %s: %w\n%s", target.Name, err, buf.String())
	}

	return Stub{Name: data.AliasName, Source: string(formatted)}, nil
}

type param struct {
	name     string
	declType string // as written in the adapter's parameter list
	argType  string // as seen by the double
}

type stubData struct {
	PkgName     string
	Imports     []string
	Target      string
	AliasName   string
	FuncName    string
	MockType    string
	NewMock     string
	Adapter     string
	Results     []string
	ResultsType string
}

func adapterSource(params []param, results []string) string {
	decls := make([]string, len(params))
	names := make([]string, len(params))

	for i, p := range params {
		decls[i] = p.name + " " + p.declType
		names[i] = p.name
	}

	call := "double.Invoke(" + strings.Join(names, ", ") + ")"

	var body string

	switch len(results) {
	case 0:
		body = call
	case 1:
		body = "return " + call
	default:
		fields := make([]string, len(results))
		for i := range results {
			fields[i] = "results.R" + strconv.Itoa(i+1)
		}

		body = "results := " + call + "\n\nreturn " + strings.Join(fields, ", ")
	}

	return "func(" + strings.Join(decls, ", ") + ")" + resultClause(results) + " {\n" + body + "\n}"
}

// collectImports returns the import lines for the packages the signature
// refers to, resolved against the declaring file, preceded by impstub itself.
func collectImports(target detect.Target) []string {
	imports := []string{strconv.Quote(ImpstubImportPath)}

	if target.File == nil {
		return imports
	}

	for _, ref := range astutil.PackageRefs(target.Signature) {
		for _, spec := range target.File.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}

			switch {
			case spec.Name != nil && spec.Name.Name == ref:
				imports = append(imports, ref+" "+spec.Path.Value)
			case spec.Name == nil && importName(path) == ref:
				imports = append(imports, spec.Path.Value)
			default:
				continue
			}

			break
		}
	}

	return imports
}

func collectParams(fields *dst.FieldList) []param {
	if fields == nil {
		return nil
	}

	var params []param

	for _, field := range fields.List {
		declType := astutil.StringifyExpr(field.Type)
		argType := declType

		if _, variadic := field.Type.(*dst.Ellipsis); variadic {
			argType = "[]" + strings.TrimPrefix(declType, "...")
		}

		names := field.Names
		if len(names) == 0 {
			names = []*dst.Ident{nil}
		}

		for _, ident := range names {
			params = append(params, param{
				name:     paramName(ident, len(params)),
				declType: declType,
				argType:  argType,
			})
		}
	}

	return params
}

// importName guesses the package name of an import path from its last element,
// ignoring a major version suffix.
func importName(path string) string {
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]

	if len(parts) > 1 && len(name) > 1 && name[0] == 'v' && strings.Trim(name[1:], "0123456789") == "" {
		name = parts[len(parts)-2]
	}

	return strings.ReplaceAll(name, "-", "_")
}

func newStubData(target detect.Target, opts Options) stubData {
	params := collectParams(target.Signature.Params)

	var results []string
	if target.Signature.Results != nil {
		results = astutil.ExpandFieldListTypes(target.Signature.Results.List, astutil.StringifyExpr)
	}

	data := stubData{
		PkgName:   opts.PkgName,
		Imports:   collectImports(target),
		Target:    target.Name,
		AliasName: opts.Name,
		Results:   results,
		Adapter:   adapterSource(params, results),
	}

	if data.AliasName == "" {
		data.AliasName = target.Name + "Stub"
	}

	if target.IsVariable() {
		data.FuncName = "stub" + upperFirst(target.Name)
	} else {
		data.FuncName = "new" + upperFirst(target.Name) + "Stub"
	}

	resultType := "impstub.Void"

	switch len(results) {
	case 0:
	case 1:
		resultType = results[0]
	default:
		data.ResultsType = target.Name + "Results"
		resultType = data.ResultsType
	}

	typeArgs := []string{resultType}
	for _, p := range params {
		typeArgs = append(typeArgs, p.argType)
	}

	generic := fmt.Sprintf("impstub.%%s%d[%s]", len(params), strings.Join(typeArgs, ", "))
	data.MockType = fmt.Sprintf(generic, "Mock")
	data.NewMock = fmt.Sprintf(generic, "NewMock")

	return data
}

func paramName(ident *dst.Ident, position int) string {
	if ident == nil || ident.Name == "_" {
		return "a" + strconv.Itoa(position+1)
	}

	switch ident.Name {
	case "double", "impstub", "opts", "original", "results", "t":
		return ident.Name + "Arg"
	default:
		return ident.Name
	}
}

func resultClause(results []string) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + results[0]
	default:
		return " (" + strings.Join(results, ", ") + ")"
	}
}

func upperFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(first)) + name[size:]
}
