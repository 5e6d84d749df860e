package astutil_test

import (
	"testing"

	"github.com/dave/dst"
	. "github.com/onsi/gomega"

	astutil "github.com/toejough/impstub/impstubgen/run/0_util"
)

// TestStringifyExpr verifies that StringifyExpr converts DST expression nodes
// to their Go source code representation.
func TestStringifyExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    dst.Expr
		expected string
	}{
		{name: "nil expression", input: nil, expected: ""},
		{name: "ident", input: dst.NewIdent("uint"), expected: "uint"},
		{
			name:     "selector expr",
			input:    &dst.SelectorExpr{X: dst.NewIdent("time"), Sel: dst.NewIdent("Duration")},
			expected: "time.Duration",
		},
		{name: "star expr", input: &dst.StarExpr{X: dst.NewIdent("File")}, expected: "*File"},
		{name: "slice", input: &dst.ArrayType{Elt: dst.NewIdent("byte")}, expected: "[]byte"},
		{
			name:     "array",
			input:    &dst.ArrayType{Len: &dst.BasicLit{Value: "4"}, Elt: dst.NewIdent("byte")},
			expected: "[4]byte",
		},
		{
			name:     "map",
			input:    &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("int")},
			expected: "map[string]int",
		},
		{
			name:     "receive channel",
			input:    &dst.ChanType{Dir: dst.RECV, Value: dst.NewIdent("int")},
			expected: "<-chan int",
		},
		{name: "ellipsis", input: &dst.Ellipsis{Elt: dst.NewIdent("any")}, expected: "...any"},
		{name: "empty interface", input: &dst.InterfaceType{}, expected: "interface{}"},
		{name: "empty struct", input: &dst.StructType{}, expected: "struct{}"},
		{
			name: "func type",
			input: &dst.FuncType{
				Params: &dst.FieldList{List: []*dst.Field{
					{Names: []*dst.Ident{dst.NewIdent("a"), dst.NewIdent("b")}, Type: dst.NewIdent("int")},
				}},
				Results: &dst.FieldList{List: []*dst.Field{
					{Type: dst.NewIdent("int")},
					{Type: dst.NewIdent("error")},
				}},
			},
			expected: "func(int, int) (int, error)",
		},
		{
			name: "generic instance",
			input: &dst.IndexListExpr{
				X:       dst.NewIdent("Pair"),
				Indices: []dst.Expr{dst.NewIdent("string"), dst.NewIdent("int")},
			},
			expected: "Pair[string, int]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(astutil.StringifyExpr(tt.input)).To(Equal(tt.expected))
		})
	}
}

func TestPackageRefs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	expr := &dst.FuncType{
		Params: &dst.FieldList{List: []*dst.Field{
			{Type: &dst.SelectorExpr{X: dst.NewIdent("io"), Sel: dst.NewIdent("Reader")}},
			{Type: &dst.StarExpr{X: &dst.SelectorExpr{X: dst.NewIdent("bytes"), Sel: dst.NewIdent("Buffer")}}},
			{Type: &dst.SelectorExpr{X: dst.NewIdent("io"), Sel: dst.NewIdent("Writer")}},
		}},
		Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("int")}}},
	}

	g.Expect(astutil.PackageRefs(expr)).To(Equal([]string{"bytes", "io"}))
	g.Expect(astutil.PackageRefs(dst.NewIdent("int"))).To(BeEmpty())
}
