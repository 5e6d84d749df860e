package core

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"
)

// ArgMatcher is a Matcher whose argument type has been erased so that matchers
// for different positions can live in one MatcherSet.
type ArgMatcher interface {
	MatchArg(value any) bool
	String() string
}

// Matcher decides whether one argument value is acceptable.
// Implementations must be pure: no side effects, same answer for the same value.
type Matcher[T any] interface {
	Match(value T) bool
	String() string
}

// Erase adapts a typed Matcher to an ArgMatcher.
// A value of the wrong dynamic type never matches.
func Erase[T any](matcher Matcher[T]) ArgMatcher {
	return erasedMatcher[T]{inner: matcher}
}

// Any returns the wildcard matcher for T, cached in the default registry.
func Any[T any]() Matcher[T] {
	return AnyIn[T](defaultRegistry)
}

// AnyIn returns the wildcard matcher for T, cached in reg.
func AnyIn[T any](reg *Registry) Matcher[T] {
	return cachedWildcard[T](reg)
}

// DeepEq returns a matcher comparing with reflect.DeepEqual, for argument types
// that are not comparable with ==.
func DeepEq[T any](want T) Matcher[T] {
	return DeepEqIn(defaultRegistry, want)
}

// DeepEqIn is DeepEq tracked by reg.
func DeepEqIn[T any](reg *Registry, want T) Matcher[T] {
	return Track(reg, Matcher[T](&deepEqMatcher[T]{want: want}))
}

// Eq returns a fresh equality matcher, tracked by the default registry.
// Interface-typed T panics on == when the dynamic values are not comparable;
// use DeepEq there.
func Eq[T comparable](want T) Matcher[T] {
	return EqIn(defaultRegistry, want)
}

// EqIn returns a fresh equality matcher, tracked by reg.
func EqIn[T comparable](reg *Registry, want T) Matcher[T] {
	return Track(reg, Matcher[T](&eqMatcher[T]{want: want}))
}

// Gomega adapts a gomega matcher. A matcher error counts as a mismatch.
func Gomega[T any](matcher types.GomegaMatcher) Matcher[T] {
	return GomegaIn[T](defaultRegistry, matcher)
}

// GomegaIn is Gomega tracked by reg.
func GomegaIn[T any](reg *Registry, matcher types.GomegaMatcher) Matcher[T] {
	return Track(reg, Matcher[T](&gomegaMatcher[T]{inner: matcher}))
}

// IsNil matches nil pointers, maps, slices, channels, funcs and interfaces.
func IsNil[T any]() Matcher[T] {
	return IsNilIn[T](defaultRegistry)
}

// IsNilIn is IsNil tracked by reg.
func IsNilIn[T any](reg *Registry) Matcher[T] {
	return Track(reg, Matcher[T](nilMatcher[T]{}))
}

// Not inverts a matcher. Only the wrapper is tracked; matcher stays wherever
// its own factory put it.
func Not[T any](matcher Matcher[T]) Matcher[T] {
	return NotIn(defaultRegistry, matcher)
}

// NotIn is Not tracked by reg.
func NotIn[T any](reg *Registry, matcher Matcher[T]) Matcher[T] {
	return Track(reg, Matcher[T](notMatcher[T]{inner: matcher}))
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate returns nil for a match, or an error describing the mismatch.
func Satisfy[T any](predicate func(T) error) Matcher[T] {
	return SatisfyIn(defaultRegistry, predicate)
}

// SatisfyIn is Satisfy tracked by reg.
func SatisfyIn[T any](reg *Registry, predicate func(T) error) Matcher[T] {
	return Track(reg, Matcher[T](&satisfyMatcher[T]{predicate: predicate}))
}

type anyMatcher[T any] struct{}

func (anyMatcher[T]) Match(T) bool {
	return true
}

func (anyMatcher[T]) String() string {
	return "any(" + typeName[T]() + ")"
}

type deepEqMatcher[T any] struct {
	want T
}

func (m *deepEqMatcher[T]) Match(value T) bool {
	return reflect.DeepEqual(value, m.want)
}

func (m *deepEqMatcher[T]) String() string {
	return fmt.Sprintf("deepEq(%#v)", m.want)
}

type eqMatcher[T comparable] struct {
	want T
}

func (m *eqMatcher[T]) Match(value T) bool {
	return value == m.want
}

func (m *eqMatcher[T]) String() string {
	return fmt.Sprintf("eq(%#v)", m.want)
}

type erasedMatcher[T any] struct {
	inner Matcher[T]
}

func (m erasedMatcher[T]) MatchArg(value any) bool {
	typed, ok := value.(T)
	// a nil interface argument arrives as an untyped nil
	if !ok && (value != nil || !nillable[T]()) {
		return false
	}

	return m.inner.Match(typed)
}

func (m erasedMatcher[T]) String() string {
	return m.inner.String()
}

type gomegaMatcher[T any] struct {
	inner types.GomegaMatcher
}

func (m *gomegaMatcher[T]) Match(value T) bool {
	ok, err := m.inner.Match(value)

	return err == nil && ok
}

func (m *gomegaMatcher[T]) String() string {
	return fmt.Sprintf("gomega(%T)", m.inner)
}

type nilMatcher[T any] struct{}

func (nilMatcher[T]) Match(value T) bool {
	val := reflect.ValueOf(&value).Elem()

	return isNillableKind(val.Kind()) && val.IsNil()
}

func (nilMatcher[T]) String() string {
	return "nil(" + typeName[T]() + ")"
}

type notMatcher[T any] struct {
	inner Matcher[T]
}

func (m notMatcher[T]) Match(value T) bool {
	return !m.inner.Match(value)
}

func (m notMatcher[T]) String() string {
	return "not(" + m.inner.String() + ")"
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
}

func (m *satisfyMatcher[T]) Match(value T) bool {
	return m.predicate(value) == nil
}

func (m *satisfyMatcher[T]) String() string {
	return "satisfy(" + typeName[T]() + ")"
}

func isNillableKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // every other kind has no nil
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer,
		reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func nillable[T any]() bool {
	return isNillableKind(reflect.TypeFor[T]().Kind())
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
