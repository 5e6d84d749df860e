// Package match provides the argument matchers used with impstub doubles.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/impstub/match"
//	)
//
//	send.When(Any[[]byte](), Eq[uint](13)).Return(13)
//	send.When(FromGomega[[]byte](HaveLen(0)), AnyUint()).Return(0)
//
// Matchers returned by Eq, DeepEq, Satisfies, FromGomega, IsNil and Except are fresh
// values tracked by the default registry; Any caches one wildcard per type.
// Clear releases both. Every factory has an ...In variant taking a Registry,
// usually the one For(t) scopes to a test. The named wildcards (AnyInt,
// AnyString, ...) and IsNull are process-wide singletons.
package match

import (
	"unsafe"

	"github.com/onsi/gomega/types"

	"github.com/toejough/impstub/internal/core"
)

// Matcher decides whether one argument value is acceptable.
type Matcher[T any] = core.Matcher[T]

// Registry tracks created matchers.
type Registry = core.Registry

// Any returns the wildcard matcher for T.
func Any[T any]() Matcher[T] {
	return core.Any[T]()
}

// AnyBool matches every bool.
func AnyBool() Matcher[bool] {
	return core.AnyBool()
}

// AnyByte matches every byte.
func AnyByte() Matcher[byte] {
	return core.AnyByte()
}

// AnyBytes matches every byte slice.
func AnyBytes() Matcher[[]byte] {
	return core.AnyBytes()
}

// AnyError matches every error, nil included.
func AnyError() Matcher[error] {
	return core.AnyError()
}

// AnyFloat64 matches every float64.
func AnyFloat64() Matcher[float64] {
	return core.AnyFloat64()
}

// AnyIn returns the wildcard matcher for T cached in reg.
func AnyIn[T any](reg *Registry) Matcher[T] {
	return core.AnyIn[T](reg)
}

// AnyInt matches every int.
func AnyInt() Matcher[int] {
	return core.AnyInt()
}

// AnyInt64 matches every int64.
func AnyInt64() Matcher[int64] {
	return core.AnyInt64()
}

// AnyPointer matches every unsafe.Pointer.
func AnyPointer() Matcher[unsafe.Pointer] {
	return core.AnyPointer()
}

// AnyRune matches every rune.
func AnyRune() Matcher[rune] {
	return core.AnyRune()
}

// AnyString matches every string.
func AnyString() Matcher[string] {
	return core.AnyString()
}

// AnyUint matches every uint.
func AnyUint() Matcher[uint] {
	return core.AnyUint()
}

// Clear releases every matcher tracked by the default registry.
func Clear() {
	core.DefaultRegistry().Clear()
}

// DeepEq matches values reflect.DeepEqual to want.
func DeepEq[T any](want T) Matcher[T] {
	return core.DeepEq(want)
}

// DeepEqIn is DeepEq tracked by reg.
func DeepEqIn[T any](reg *Registry, want T) Matcher[T] {
	return core.DeepEqIn(reg, want)
}

// DefaultRegistry returns the registry behind the package-level factories.
func DefaultRegistry() *Registry {
	return core.DefaultRegistry()
}

// Eq matches values == to want.
func Eq[T comparable](want T) Matcher[T] {
	return core.Eq(want)
}

// EqIn matches values == to want, tracked by reg.
func EqIn[T comparable](reg *Registry, want T) Matcher[T] {
	return core.EqIn(reg, want)
}

// Except inverts a matcher.
func Except[T any](matcher Matcher[T]) Matcher[T] {
	return core.Not(matcher)
}

// ExceptIn is Except tracked by reg.
func ExceptIn[T any](reg *Registry, matcher Matcher[T]) Matcher[T] {
	return core.NotIn(reg, matcher)
}

// For returns a registry scoped to the test t, cleared when t completes.
func For(t core.CleanupRegistrar) *Registry {
	return core.RegistryFor(t)
}

// FromGomega adapts a gomega matcher. A matcher error counts as a mismatch.
//
// Example:
//
//	send.When(FromGomega[[]byte](HaveLen(13)), AnyUint()).Return(13)
func FromGomega[T any](matcher types.GomegaMatcher) Matcher[T] {
	return core.Gomega[T](matcher)
}

// FromGomegaIn is FromGomega tracked by reg.
func FromGomegaIn[T any](reg *Registry, matcher types.GomegaMatcher) Matcher[T] {
	return core.GomegaIn[T](reg, matcher)
}

// IsNil matches nil pointers, maps, slices, channels, funcs and interfaces.
func IsNil[T any]() Matcher[T] {
	return core.IsNil[T]()
}

// IsNilIn is IsNil tracked by reg.
func IsNilIn[T any](reg *Registry) Matcher[T] {
	return core.IsNilIn[T](reg)
}

// IsNull matches only the nil unsafe.Pointer.
func IsNull() Matcher[unsafe.Pointer] {
	return core.IsNull()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return core.NewRegistry()
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	send.When(Satisfies(func(content []byte) error {
//	    if len(content) == 0 { return errors.New("empty payload") }
//	    return nil
//	}), AnyUint()).Return(-1)
func Satisfies[T any](predicate func(T) error) Matcher[T] {
	return core.Satisfy(predicate)
}

// SatisfiesIn is Satisfies tracked by reg.
func SatisfiesIn[T any](reg *Registry, predicate func(T) error) Matcher[T] {
	return core.SatisfyIn(reg, predicate)
}
