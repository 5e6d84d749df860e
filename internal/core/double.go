// Package core provides the internal implementation of impstub's matching and
// dispatch engine, and the typed doubles built on it.
package core

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Double is the type-erased test double: an ordered list of handlers, the
// history of every invocation, and the policy that records calls and resolves
// unmatched ones.
//
// A Double is not safe for concurrent use. Callers invoking one from several
// goroutines must synchronize externally.
type Double struct {
	name       string
	arity      int
	handlers   []*Handler
	history    []*HistoryEntry
	unmatched  []*HistoryEntry
	policy     Policy
	ownsPolicy bool
	logger     *log.Logger
}

// AssertAllMatched fails the test if any invocation since the last Reset was
// accepted by no handler.
func (d *Double) AssertAllMatched(t TestReporter) {
	t.Helper()

	if len(d.unmatched) == 0 {
		return
	}

	t.Fatalf("%s: %d unmatched call(s), first %s [policy: %s]",
		d.label(), len(d.unmatched), d.unmatched[0], d.policy.Name())
}

// Arity returns the number of arguments every call must carry.
func (d *Double) Arity() int {
	return d.arity
}

// Configure appends a handler for the given matchers and returns it so a
// response can be attached. Existing handlers are unaffected.
func (d *Double) Configure(matchers ...ArgMatcher) *Handler {
	d.checkArity("matchers", len(matchers))

	handler := NewHandler(NewMatcherSet(matchers...))
	d.handlers = append(d.handlers, handler)

	d.logger.Debug("configured handler", "handler", handler, "position", len(d.handlers))

	return handler
}

// CountMatching returns the number of recorded invocations accepted by the
// given matchers. The matchers need not belong to any configured handler.
func (d *Double) CountMatching(matchers ...ArgMatcher) int {
	d.checkArity("matchers", len(matchers))

	set := NewMatcherSet(matchers...)
	count := 0

	for _, entry := range d.history {
		if entry.AcceptedBy(set) {
			count++
		}
	}

	return count
}

// HandlerCount returns the number of configured handlers.
func (d *Double) HandlerCount() int {
	return len(d.handlers)
}

// History returns the recorded invocations, oldest first.
func (d *Double) History() []*HistoryEntry {
	history := make([]*HistoryEntry, len(d.history))
	copy(history, d.history)

	return history
}

// Invoke dispatches one call. The first handler, in registration order, that
// accepts args answers it, even when a later handler would be more specific.
// Every call is recorded through the policy, matched or not. When no handler
// accepts the call the policy resolves it.
func (d *Double) Invoke(args ...any) (any, error) {
	d.checkArity("arguments", len(args))

	handler := d.selectHandler(args)

	d.history = append(d.history, d.policy.RecordCall(args))

	if handler != nil {
		d.logger.Debug("invoked", "args", formatArgs(args), "handler", handler)

		return handler.Respond(args)
	}

	d.unmatched = append(d.unmatched, d.history[len(d.history)-1])
	d.logger.Warn("unmatched call", "args", formatArgs(args), "policy", d.policy.Name())

	result, err := d.policy.ResolveUnmatched(args)

	var notConfigured *NotConfiguredError
	if errors.As(err, &notConfigured) && notConfigured.Double == "" {
		notConfigured.Double = d.name
	}

	return result, err
}

// Name returns the name given with WithName.
func (d *Double) Name() string {
	return d.name
}

// OwnsPolicy reports whether the active policy was created by the double itself.
func (d *Double) OwnsPolicy() bool {
	return d.ownsPolicy
}

// Policy returns the active policy.
func (d *Double) Policy() Policy {
	return d.policy
}

// Reset drops every handler and all history, and clears the policy's buffers.
// The active policy is kept.
func (d *Double) Reset() {
	d.handlers = nil
	d.history = nil
	d.unmatched = nil
	d.policy.Clear()

	d.logger.Debug("reset", "policy", d.policy.Name())
}

// SetPolicy replaces the active policy. A default policy the double created for
// itself is released first; a policy supplied from outside is never owned.
// A nil policy panics with ErrNilPolicy and leaves the double unchanged.
func (d *Double) SetPolicy(policy Policy) {
	if policy == nil {
		panic(fmt.Errorf("%w: %s.SetPolicy", ErrNilPolicy, d.label()))
	}

	if d.ownsPolicy {
		d.policy.Clear()
	}

	d.logger.Debug("policy replaced", "from", d.policy.Name(), "to", policy.Name())

	d.policy = policy
	d.ownsPolicy = false
}

// Unmatched returns the recorded invocations no handler accepted.
func (d *Double) Unmatched() []*HistoryEntry {
	unmatched := make([]*HistoryEntry, len(d.unmatched))
	copy(unmatched, d.unmatched)

	return unmatched
}

// TestReporter is the minimal interface impstub needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// NewDouble creates a double for calls of the given arity.
func NewDouble(arity int, opts ...Option) *Double {
	cfg := newConfig(opts)

	double := &Double{
		name:   cfg.name,
		arity:  arity,
		policy: cfg.policy,
		logger: cfg.logger,
	}

	if double.policy == nil {
		double.policy = NewDefaultPolicy()
		double.ownsPolicy = true
	}

	return double
}

// ResetOnCleanup resets each double when the test finishes. Use it for doubles
// held in package variables and shared by several tests.
func ResetOnCleanup(t CleanupRegistrar, doubles ...interface{ Reset() }) {
	t.Cleanup(func() {
		for _, double := range doubles {
			double.Reset()
		}
	})
}

func (d *Double) checkArity(what string, got int) {
	if got != d.arity {
		panic(fmt.Errorf("%w: %s expects %d %s, got %d", ErrArityMismatch, d.label(), d.arity, what, got))
	}
}

func (d *Double) label() string {
	if d.name == "" {
		return "double"
	}

	return d.name
}

func (d *Double) selectHandler(args []any) *Handler {
	for _, handler := range d.handlers {
		if handler.Accepts(args) {
			return handler
		}
	}

	return nil
}
