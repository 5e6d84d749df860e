package core

// CallRecorder produces and stores the history entry of each invocation.
type CallRecorder interface {
	// RecordCall stores a copy of args and returns the stored entry.
	RecordCall(args []any) *HistoryEntry
	// Clear drops every entry the recorder still holds.
	Clear()
}

// Policy decides how a Double records calls and what it does with calls no
// handler accepted.
type Policy interface {
	CallRecorder
	UnmatchedResolver
	// Name identifies the policy in diagnostics.
	Name() string
}

// UnmatchedResolver answers invocations no handler accepted, or refuses them
// with a NotConfiguredError.
type UnmatchedResolver interface {
	ResolveUnmatched(args []any) (any, error)
}

// DefaultPolicy records calls in its own buffer and resolves unmatched calls
// through a fallback handler that accepts everything and fails when used.
type DefaultPolicy struct {
	historyBuffer

	fallback *Handler
}

// Fallback returns the handler used for unmatched calls.
func (p *DefaultPolicy) Fallback() *Handler {
	return p.fallback
}

// Name returns "default".
func (p *DefaultPolicy) Name() string {
	return DefaultPolicyName
}

// ResolveUnmatched responds through the fallback handler, which always fails
// with a NotConfiguredError.
func (p *DefaultPolicy) ResolveUnmatched(args []any) (any, error) {
	return p.fallback.Respond(args)
}

// FailFastPolicy records calls like DefaultPolicy, but refuses unmatched calls
// immediately, without going through any handler.
type FailFastPolicy struct {
	historyBuffer
}

// Name returns "fail-fast".
func (p *FailFastPolicy) Name() string {
	return FailFastPolicyName
}

// ResolveUnmatched always fails with a NotConfiguredError.
func (p *FailFastPolicy) ResolveUnmatched(args []any) (any, error) {
	return nil, &NotConfiguredError{Policy: FailFastPolicyName, Args: NewHistoryEntry(args).Args()}
}

// LenientPolicy records calls like DefaultPolicy and answers unmatched calls
// with the zero value of the double's return type.
type LenientPolicy struct {
	historyBuffer
}

// Name returns "lenient".
func (p *LenientPolicy) Name() string {
	return LenientPolicyName
}

// ResolveUnmatched returns a nil result, which typed doubles turn into the zero
// value of their return type.
func (p *LenientPolicy) ResolveUnmatched([]any) (any, error) {
	return nil, nil
}

// Policy names.
const (
	DefaultPolicyName  = "default"
	FailFastPolicyName = "fail-fast"
	LenientPolicyName  = "lenient"
)

// ComposePolicy joins an independent recorder and resolver into one Policy.
func ComposePolicy(name string, recorder CallRecorder, resolver UnmatchedResolver) Policy {
	return &composedPolicy{CallRecorder: recorder, UnmatchedResolver: resolver, name: name}
}

// NewDefaultPolicy creates a DefaultPolicy with an empty buffer.
func NewDefaultPolicy() *DefaultPolicy {
	return &DefaultPolicy{fallback: newFallbackHandler(DefaultPolicyName)}
}

// NewFailFastPolicy creates a FailFastPolicy with an empty buffer.
func NewFailFastPolicy() *FailFastPolicy {
	return &FailFastPolicy{}
}

// NewLenientPolicy creates a LenientPolicy with an empty buffer.
func NewLenientPolicy() *LenientPolicy {
	return &LenientPolicy{}
}

type composedPolicy struct {
	CallRecorder
	UnmatchedResolver

	name string
}

func (p *composedPolicy) Name() string {
	return p.name
}

// historyBuffer is the CallRecorder shared by the built-in policies.
type historyBuffer struct {
	entries []*HistoryEntry
}

// Clear drops every stored entry.
func (b *historyBuffer) Clear() {
	b.entries = nil
}

// RecordCall copies args into the buffer and returns the stored entry.
func (b *historyBuffer) RecordCall(args []any) *HistoryEntry {
	entry := NewHistoryEntry(args)
	b.entries = append(b.entries, entry)

	return entry
}

// Recorded returns the number of entries held by the buffer.
func (b *historyBuffer) Recorded() int {
	return len(b.entries)
}
