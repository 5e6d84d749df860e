package core

import "fmt"

// HistoryEntry is an immutable copy of the arguments of one past invocation.
type HistoryEntry struct {
	args []any
}

// AcceptedBy reports whether the recorded arguments satisfy matchers.
func (e *HistoryEntry) AcceptedBy(matchers MatcherSet) bool {
	return matchers.MatchArguments(e.args)
}

// Arg returns the argument recorded at position index.
func (e *HistoryEntry) Arg(index int) any {
	return e.args[index]
}

// Args returns a copy of the recorded arguments.
func (e *HistoryEntry) Args() []any {
	args := make([]any, len(e.args))
	copy(args, e.args)

	return args
}

// Arity returns the number of recorded arguments.
func (e *HistoryEntry) Arity() int {
	return len(e.args)
}

func (e *HistoryEntry) String() string {
	return fmt.Sprintf("call%s", formatArgs(e.args))
}

// NewHistoryEntry copies args into a new entry.
func NewHistoryEntry(args []any) *HistoryEntry {
	owned := make([]any, len(args))
	copy(owned, args)

	return &HistoryEntry{args: owned}
}
