package core_test

import (
	"errors"
	"testing"
	"unsafe"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/impstub/internal/core"
)

func TestAny_MatchesEverything(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.Int().Draw(rt, "value")
		text := rapid.String().Draw(rt, "text")
		content := rapid.SliceOf(rapid.Byte()).Draw(rt, "content")

		if !core.Any[int]().Match(value) || !core.AnyInt().Match(value) {
			rt.Fatalf("int wildcard rejected %d", value)
		}

		if !core.AnyString().Match(text) {
			rt.Fatalf("string wildcard rejected %q", text)
		}

		if !core.AnyBytes().Match(content) {
			rt.Fatalf("bytes wildcard rejected %v", content)
		}
	})
}

func TestAny_SameMatcherPerType(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := core.NewRegistry()

	first := core.AnyIn[string](reg)
	second := core.AnyIn[string](reg)
	_ = core.AnyIn[int](reg)

	g.Expect(first).To(BeIdenticalTo(second))
	g.Expect(reg.Len()).To(Equal(2))
}

func TestDeepEq_ComparesStructurally(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := core.DeepEq([]string{"a", "b"})

	g.Expect(matcher.Match([]string{"a", "b"})).To(BeTrue())
	g.Expect(matcher.Match([]string{"a"})).To(BeFalse())
	g.Expect(matcher.Match(nil)).To(BeFalse())
	g.Expect(matcher.String()).To(Equal(`deepEq([]string{"a", "b"})`))
}

func TestEq_AgreesWithEquality(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		want := rapid.IntRange(-10, 10).Draw(rt, "want")
		value := rapid.IntRange(-10, 10).Draw(rt, "value")

		if got := core.EqIn(core.NewRegistry(), want).Match(value); got != (value == want) {
			rt.Fatalf("eq(%d).Match(%d) = %v", want, value, got)
		}
	})
}

func TestErase_RejectsWrongType(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	erased := core.Erase(core.AnyInt())

	g.Expect(erased.MatchArg(1)).To(BeTrue())
	g.Expect(erased.MatchArg("1")).To(BeFalse())
	g.Expect(erased.MatchArg(int64(1))).To(BeFalse())
	g.Expect(erased.String()).To(Equal("any(int)"))
}

func TestErase_NilInterfaceArgument(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Erase(core.IsNil[error]()).MatchArg(nil)).To(BeTrue())
	g.Expect(core.Erase(core.AnyError()).MatchArg(nil)).To(BeTrue())
	g.Expect(core.Erase(core.Eq[error](nil)).MatchArg(nil)).To(BeTrue())
	g.Expect(core.Erase(core.DeepEq[[]byte](nil)).MatchArg(nil)).To(BeTrue())
}

func TestErase_NilNeverMatchesTypesWithoutNil(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Erase(core.Eq(0)).MatchArg(nil)).To(BeFalse())
	g.Expect(core.Erase(core.Eq("")).MatchArg(nil)).To(BeFalse())
	g.Expect(core.Erase(core.Any[struct{}]()).MatchArg(nil)).To(BeFalse())
	g.Expect(core.Erase(core.Not(core.Eq(1))).MatchArg(nil)).To(BeFalse())
}

func TestGomega_AdaptsMatcher(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := core.Gomega[[]byte](HaveLen(3))

	g.Expect(matcher.Match([]byte("abc"))).To(BeTrue())
	g.Expect(matcher.Match([]byte("ab"))).To(BeFalse())
	g.Expect(matcher.String()).To(HavePrefix("gomega("))

	// a gomega matcher that errors on its input never matches
	g.Expect(core.Gomega[int](HaveLen(1)).Match(1)).To(BeFalse())
}

func TestIsNil_OnlyNillableKinds(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var nilMap map[string]int

	value := 1

	g.Expect(core.IsNil[*int]().Match(nil)).To(BeTrue())
	g.Expect(core.IsNil[*int]().Match(&value)).To(BeFalse())
	g.Expect(core.IsNil[map[string]int]().Match(nilMap)).To(BeTrue())
	g.Expect(core.IsNil[error]().Match(errors.New("x"))).To(BeFalse())
	g.Expect(core.IsNil[int]().Match(0)).To(BeFalse())
	g.Expect(core.IsNil[int]().String()).To(Equal("nil(int)"))
}

func TestIsNull_OnlyNilPointer(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	value := 1

	g.Expect(core.IsNull().Match(nil)).To(BeTrue())
	g.Expect(core.IsNull().Match(unsafe.Pointer(&value))).To(BeFalse())
	g.Expect(core.AnyPointer().Match(unsafe.Pointer(&value))).To(BeTrue())
}

func TestMatcher_Descriptions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Eq[uint](13).String()).To(Equal("eq(0xd)"))
	g.Expect(core.Eq("x").String()).To(Equal(`eq("x")`))
	g.Expect(core.AnyByte().String()).To(Equal("any(uint8)"))
	g.Expect(core.Not(core.Eq(1)).String()).To(Equal("not(eq(1))"))
	g.Expect(core.Satisfy(func(string) error { return nil }).String()).To(Equal("satisfy(string)"))
}

func TestNot_InvertsMatcher(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		want := rapid.IntRange(0, 3).Draw(rt, "want")
		value := rapid.IntRange(0, 3).Draw(rt, "value")
		inner := core.EqIn(core.NewRegistry(), want)

		if core.Not(inner).Match(value) == inner.Match(value) {
			rt.Fatalf("not(eq(%d)) agrees with eq(%d) on %d", want, want, value)
		}
	})
}

func TestSatisfy_NilErrorMeansMatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	even := core.Satisfy(func(value int) error {
		if value%2 != 0 {
			return errors.New("odd")
		}

		return nil
	})

	g.Expect(even.Match(4)).To(BeTrue())
	g.Expect(even.Match(5)).To(BeFalse())
}
