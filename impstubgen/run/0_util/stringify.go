// Package astutil renders DST type expressions back to Go source.
package astutil

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dave/dst"
)

// ExpandFieldListTypes expands a field list into individual type strings.
// For fields with multiple names (e.g., "a, b int"), outputs the type once per name.
// For unnamed fields, outputs the type once.
func ExpandFieldListTypes(fields []*dst.Field, typeFormatter func(dst.Expr) string) []string {
	var parts []string

	for _, f := range fields {
		typeStr := typeFormatter(f.Type)

		count := len(f.Names)
		if count == 0 {
			count = 1
		}

		for range count {
			parts = append(parts, typeStr)
		}
	}

	return parts
}

// PackageRefs returns the sorted, de-duplicated package qualifiers used in expr,
// e.g. ["io", "time"] for func(io.Reader) time.Duration.
func PackageRefs(expr dst.Expr) []string {
	var refs []string

	dst.Inspect(expr, func(node dst.Node) bool {
		selector, ok := node.(*dst.SelectorExpr)
		if !ok {
			return true
		}

		if ident, ok := selector.X.(*dst.Ident); ok {
			refs = append(refs, ident.Name)
		}

		return false
	})

	slices.Sort(refs)

	return slices.Compact(refs)
}

// StringifyExpr converts a DST expression to its string representation.
//
//nolint:cyclop // Type-switch dispatcher over DST expression types
func StringifyExpr(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typedExpr := expr.(type) {
	case *dst.Ident:
		return typedExpr.Name
	case *dst.BasicLit:
		return typedExpr.Value
	case *dst.SelectorExpr:
		return StringifyExpr(typedExpr.X) + "." + typedExpr.Sel.Name
	case *dst.StarExpr:
		return "*" + StringifyExpr(typedExpr.X)
	case *dst.ArrayType:
		if typedExpr.Len != nil {
			return "[" + StringifyExpr(typedExpr.Len) + "]" + StringifyExpr(typedExpr.Elt)
		}

		return "[]" + StringifyExpr(typedExpr.Elt)
	case *dst.MapType:
		return "map[" + StringifyExpr(typedExpr.Key) + "]" + StringifyExpr(typedExpr.Value)
	case *dst.ChanType:
		switch typedExpr.Dir {
		case dst.SEND:
			return "chan<- " + StringifyExpr(typedExpr.Value)
		case dst.RECV:
			return "<-chan " + StringifyExpr(typedExpr.Value)
		default:
			return "chan " + StringifyExpr(typedExpr.Value)
		}
	case *dst.InterfaceType:
		return stringifyInterfaceType(typedExpr)
	case *dst.StructType:
		return stringifyStructType(typedExpr)
	case *dst.FuncType:
		return "func" + stringifySignature(typedExpr)
	case *dst.Ellipsis:
		return "..." + StringifyExpr(typedExpr.Elt)
	case *dst.IndexExpr:
		return StringifyExpr(typedExpr.X) + "[" + StringifyExpr(typedExpr.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typedExpr.Indices))
		for i, idx := range typedExpr.Indices {
			indices[i] = StringifyExpr(idx)
		}

		return StringifyExpr(typedExpr.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + StringifyExpr(typedExpr.X) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// stringifyInterfaceType renders interface literals on one line.
func stringifyInterfaceType(interfaceType *dst.InterfaceType) string {
	if interfaceType.Methods == nil || len(interfaceType.Methods.List) == 0 {
		return "interface{}"
	}

	methods := make([]string, 0, len(interfaceType.Methods.List))

	for _, method := range interfaceType.Methods.List {
		funcType, ok := method.Type.(*dst.FuncType)
		if !ok || len(method.Names) == 0 {
			// embedded
			methods = append(methods, StringifyExpr(method.Type))

			continue
		}

		methods = append(methods, method.Names[0].Name+stringifySignature(funcType))
	}

	return "interface{ " + strings.Join(methods, "; ") + " }"
}

// stringifySignature renders the parameter and result lists of a func type,
// without the func keyword.
func stringifySignature(funcType *dst.FuncType) string {
	var buf strings.Builder

	buf.WriteString("(")

	if funcType.Params != nil {
		buf.WriteString(strings.Join(ExpandFieldListTypes(funcType.Params.List, StringifyExpr), ", "))
	}

	buf.WriteString(")")

	if funcType.Results == nil || len(funcType.Results.List) == 0 {
		return buf.String()
	}

	resultParts := ExpandFieldListTypes(funcType.Results.List, StringifyExpr)
	if len(resultParts) == 1 {
		buf.WriteString(" " + resultParts[0])
	} else {
		buf.WriteString(" (" + strings.Join(resultParts, ", ") + ")")
	}

	return buf.String()
}

func stringifyStructType(structType *dst.StructType) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var fieldStr strings.Builder

		if len(field.Names) > 0 {
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}

			fieldStr.WriteString(strings.Join(names, ", ") + " ")
		}

		fieldStr.WriteString(StringifyExpr(field.Type))

		if field.Tag != nil {
			fieldStr.WriteString(" " + field.Tag.Value)
		}

		fields = append(fields, fieldStr.String())
	}

	return fmt.Sprintf("struct{ %s }", strings.Join(fields, "; "))
}
