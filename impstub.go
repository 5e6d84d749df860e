// Package impstub provides programmable test doubles for function dependencies.
//
// A double is configured with argument matchers and canned responses, invoked
// by the code under test through an adapter with the real dependency's
// signature, and queried afterwards for how many calls matched a pattern:
//
//	send := impstub.NewMock2[int, []byte, uint]()
//	send.When(match.Any[[]byte](), match.Eq[uint](0)).Return(0)
//	send.When(match.Any[[]byte](), match.AnyUint()).Return(-1)
//
//	ftpSend = send.Invoke // the method value is the adapter
//	...
//	count := send.CountMatching(match.Any[[]byte](), match.AnyUint())
//
// This is the public API entry point. Implementation lives in internal/core.
package impstub

import (
	"github.com/charmbracelet/log"

	"github.com/toejough/impstub/internal/core"
)

// ArgMatcher is a Matcher with its argument type erased.
type ArgMatcher = core.ArgMatcher

// CallRecorder produces and stores the history entry of each invocation.
type CallRecorder = core.CallRecorder

// CleanupRegistrar is satisfied by *testing.T and *testing.B.
type CleanupRegistrar = core.CleanupRegistrar

// DefaultPolicy records calls and fails unmatched ones through a fallback handler.
type DefaultPolicy = core.DefaultPolicy

// Double is the type-erased engine behind every typed double.
type Double = core.Double

// FailFastPolicy records calls and fails unmatched ones immediately.
type FailFastPolicy = core.FailFastPolicy

// Handler binds a MatcherSet to a single response.
type Handler = core.Handler

// HistoryEntry is an immutable copy of the arguments of one past invocation.
type HistoryEntry = core.HistoryEntry

// LenientPolicy answers unmatched calls with the zero value.
type LenientPolicy = core.LenientPolicy

// Matcher decides whether one argument value is acceptable.
type Matcher[T any] = core.Matcher[T]

// MatcherSet is an ordered, fixed-arity list of matchers.
type MatcherSet = core.MatcherSet

// NotConfiguredError reports an invocation no handler accepted.
type NotConfiguredError = core.NotConfiguredError

// Option configures a double at construction.
type Option = core.Option

// Policy decides how a double records calls and resolves unmatched ones.
type Policy = core.Policy

// Registry tracks matchers created by the factory functions.
type Registry = core.Registry

// Response computes the value returned for one matched invocation.
type Response = core.Response

// TestReporter is the minimal interface impstub needs from test frameworks.
type TestReporter = core.TestReporter

// UnmatchedResolver answers or refuses calls no handler accepted.
type UnmatchedResolver = core.UnmatchedResolver

// Void is the result type of doubles for functions that return nothing.
type Void = core.Void

// Mock0 is a double for func() R.
type Mock0[R any] = core.Mock0[R]

// Handler0 attaches a response to calls selected by Mock0.When.
type Handler0[R any] = core.Handler0[R]

// Mock1 is a double for func(A1) R.
type Mock1[R, A1 any] = core.Mock1[R, A1]

// Handler1 attaches a response to calls selected by Mock1.When.
type Handler1[R, A1 any] = core.Handler1[R, A1]

// Mock2 is a double for func(A1, A2) R.
type Mock2[R, A1, A2 any] = core.Mock2[R, A1, A2]

// Handler2 attaches a response to calls selected by Mock2.When.
type Handler2[R, A1, A2 any] = core.Handler2[R, A1, A2]

// Mock3 is a double for func(A1, A2, A3) R.
type Mock3[R, A1, A2, A3 any] = core.Mock3[R, A1, A2, A3]

// Handler3 attaches a response to calls selected by Mock3.When.
type Handler3[R, A1, A2, A3 any] = core.Handler3[R, A1, A2, A3]

// Mock4 is a double for func(A1, A2, A3, A4) R.
type Mock4[R, A1, A2, A3, A4 any] = core.Mock4[R, A1, A2, A3, A4]

// Handler4 attaches a response to calls selected by Mock4.When.
type Handler4[R, A1, A2, A3, A4 any] = core.Handler4[R, A1, A2, A3, A4]

// Mock5 is a double for func(A1, A2, A3, A4, A5) R.
type Mock5[R, A1, A2, A3, A4, A5 any] = core.Mock5[R, A1, A2, A3, A4, A5]

// Handler5 attaches a response to calls selected by Mock5.When.
type Handler5[R, A1, A2, A3, A4, A5 any] = core.Handler5[R, A1, A2, A3, A4, A5]

// Exported variables.
var (
	// ErrArityMismatch is raised when matchers or arguments have the wrong arity.
	ErrArityMismatch = core.ErrArityMismatch
	// ErrNoResponse is raised when a handler without a response is reached.
	ErrNoResponse = core.ErrNoResponse
	// ErrNilPolicy is raised when a double is given a nil policy.
	ErrNilPolicy = core.ErrNilPolicy
	// ErrNotConfigured is wrapped by every NotConfiguredError.
	ErrNotConfigured = core.ErrNotConfigured
)

// ComposePolicy joins an independent recorder and resolver into one Policy.
func ComposePolicy(name string, recorder CallRecorder, resolver UnmatchedResolver) Policy {
	return core.ComposePolicy(name, recorder, resolver)
}

// Erase adapts a typed Matcher for use with the type-erased Double.
func Erase[T any](matcher Matcher[T]) ArgMatcher {
	return core.Erase(matcher)
}

// IsNotConfigured reports whether err, or a recovered panic value, signals an
// unmatched invocation.
func IsNotConfigured(value any) bool {
	return core.IsNotConfigured(value)
}

// NewMock0 creates a double for func() R.
func NewMock0[R any](opts ...Option) *Mock0[R] {
	return core.NewMock0[R](opts...)
}

// NewMock1 creates a double for func(A1) R.
func NewMock1[R, A1 any](opts ...Option) *Mock1[R, A1] {
	return core.NewMock1[R, A1](opts...)
}

// NewMock2 creates a double for func(A1, A2) R.
func NewMock2[R, A1, A2 any](opts ...Option) *Mock2[R, A1, A2] {
	return core.NewMock2[R, A1, A2](opts...)
}

// NewMock3 creates a double for func(A1, A2, A3) R.
func NewMock3[R, A1, A2, A3 any](opts ...Option) *Mock3[R, A1, A2, A3] {
	return core.NewMock3[R, A1, A2, A3](opts...)
}

// NewMock4 creates a double for func(A1, A2, A3, A4) R.
func NewMock4[R, A1, A2, A3, A4 any](opts ...Option) *Mock4[R, A1, A2, A3, A4] {
	return core.NewMock4[R, A1, A2, A3, A4](opts...)
}

// NewMock5 creates a double for func(A1, A2, A3, A4, A5) R.
func NewMock5[R, A1, A2, A3, A4, A5 any](opts ...Option) *Mock5[R, A1, A2, A3, A4, A5] {
	return core.NewMock5[R, A1, A2, A3, A4, A5](opts...)
}

// NewDefaultPolicy creates a DefaultPolicy.
func NewDefaultPolicy() *DefaultPolicy {
	return core.NewDefaultPolicy()
}

// NewDouble creates a type-erased double for calls of the given arity.
func NewDouble(arity int, opts ...Option) *Double {
	return core.NewDouble(arity, opts...)
}

// NewFailFastPolicy creates a FailFastPolicy.
func NewFailFastPolicy() *FailFastPolicy {
	return core.NewFailFastPolicy()
}

// NewLenientPolicy creates a LenientPolicy.
func NewLenientPolicy() *LenientPolicy {
	return core.NewLenientPolicy()
}

// ResetOnCleanup resets each double when the test finishes.
func ResetOnCleanup(t CleanupRegistrar, doubles ...interface{ Reset() }) {
	core.ResetOnCleanup(t, doubles...)
}

// WithLogger routes a double's diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return core.WithLogger(logger)
}

// WithName names a double in errors and log lines.
func WithName(name string) Option {
	return core.WithName(name)
}

// WithPolicy starts a double with an externally owned policy.
func WithPolicy(policy Policy) Option {
	return core.WithPolicy(policy)
}
