// Package detect finds the replaceable function dependency named on the
// impstubgen command line.
package detect

import (
	"errors"
	"fmt"

	"github.com/dave/dst"
)

// TargetKind identifies how the target was declared.
type TargetKind int

// TargetKind values.
const (
	// VarFuncType is a package variable declared with a func type, named or literal.
	VarFuncType TargetKind = iota
	// VarFuncLiteral is a package variable initialized with a func literal.
	VarFuncLiteral
	// VarFuncDecl is a package variable initialized with a package function.
	VarFuncDecl
	// FuncTypeDecl is a named func type.
	FuncTypeDecl
)

// MaxArity is the largest parameter count a typed double supports.
const MaxArity = 5

// Target describes the detected dependency.
type Target struct {
	Name string
	Kind TargetKind
	// Signature is the func type of the dependency.
	Signature *dst.FuncType
	// File is the file that declares the signature; its imports qualify
	// the signature's package references.
	File *dst.File
}

// IsVariable reports whether the target is a package variable.
func (t Target) IsVariable() bool {
	return t.Kind != FuncTypeDecl
}

// ParamCount returns the number of parameters, counting each name of a grouped
// field ("a, b int") separately.
func (t Target) ParamCount() int {
	return fieldCount(t.Signature.Params)
}

// ResultCount returns the number of results.
func (t Target) ResultCount() int {
	return fieldCount(t.Signature.Results)
}

// Exported variables.
var (
	ErrGenericTarget   = errors.New("generic targets are not supported")
	ErrPlainFunction   = errors.New("function declarations cannot be replaced at run time")
	ErrTargetNotFound  = errors.New("target not found")
	ErrTooManyParams   = errors.New("too many parameters")
	ErrUnsupportedType = errors.New("target is not a function")
)

// Find locates name among the package files.
func Find(files []*dst.File, name string) (Target, error) {
	target, err := find(files, name)
	if err != nil {
		return Target{}, err
	}

	if count := target.ParamCount(); count > MaxArity {
		return Target{}, fmt.Errorf("%w: %s takes %d, at most %d are supported", ErrTooManyParams, name, count, MaxArity)
	}

	return target, nil
}

func fieldCount(fields *dst.FieldList) int {
	if fields == nil {
		return 0
	}

	count := 0

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			count++
		} else {
			count += len(field.Names)
		}
	}

	return count
}

//nolint:cyclop // one case per declaration form
func find(files []*dst.File, name string) (Target, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			switch typed := decl.(type) {
			case *dst.FuncDecl:
				if typed.Recv == nil && typed.Name.Name == name {
					return Target{}, fmt.Errorf(
						"%w: declare %s as a package variable (var %s = ...) to stub it", ErrPlainFunction, name, name)
				}
			case *dst.GenDecl:
				for _, spec := range typed.Specs {
					switch spec := spec.(type) {
					case *dst.TypeSpec:
						if spec.Name.Name == name {
							return fromTypeSpec(file, spec)
						}
					case *dst.ValueSpec:
						for index, ident := range spec.Names {
							if ident.Name == name {
								return fromValueSpec(files, file, spec, index)
							}
						}
					}
				}
			}
		}
	}

	return Target{}, fmt.Errorf("%w: %s", ErrTargetNotFound, name)
}

func fromTypeSpec(file *dst.File, spec *dst.TypeSpec) (Target, error) {
	funcType, ok := spec.Type.(*dst.FuncType)
	if !ok {
		return Target{}, fmt.Errorf("%w: type %s", ErrUnsupportedType, spec.Name.Name)
	}

	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		return Target{}, fmt.Errorf("%w: %s", ErrGenericTarget, spec.Name.Name)
	}

	return Target{Name: spec.Name.Name, Kind: FuncTypeDecl, Signature: funcType, File: file}, nil
}

//nolint:cyclop // one case per initializer form
func fromValueSpec(files []*dst.File, file *dst.File, spec *dst.ValueSpec, index int) (Target, error) {
	name := spec.Names[index].Name

	switch declared := spec.Type.(type) {
	case *dst.FuncType:
		return Target{Name: name, Kind: VarFuncType, Signature: declared, File: file}, nil
	case *dst.Ident:
		named, err := find(files, declared.Name)
		if err != nil || named.Kind != FuncTypeDecl {
			return Target{}, fmt.Errorf("%w: var %s of type %s", ErrUnsupportedType, name, declared.Name)
		}

		return Target{Name: name, Kind: VarFuncType, Signature: named.Signature, File: named.File}, nil
	case nil:
	default:
		return Target{}, fmt.Errorf("%w: var %s", ErrUnsupportedType, name)
	}

	if index >= len(spec.Values) {
		return Target{}, fmt.Errorf("%w: var %s has neither a type nor a value", ErrUnsupportedType, name)
	}

	switch value := spec.Values[index].(type) {
	case *dst.FuncLit:
		return Target{Name: name, Kind: VarFuncLiteral, Signature: value.Type, File: file}, nil
	case *dst.Ident:
		for _, candidate := range files {
			for _, decl := range candidate.Decls {
				funcDecl, ok := decl.(*dst.FuncDecl)
				if !ok || funcDecl.Recv != nil || funcDecl.Name.Name != value.Name {
					continue
				}

				if funcDecl.Type.TypeParams != nil && len(funcDecl.Type.TypeParams.List) > 0 {
					return Target{}, fmt.Errorf("%w: %s", ErrGenericTarget, value.Name)
				}

				return Target{Name: name, Kind: VarFuncDecl, Signature: funcDecl.Type, File: candidate}, nil
			}
		}
	}

	return Target{}, fmt.Errorf("%w: var %s", ErrUnsupportedType, name)
}
