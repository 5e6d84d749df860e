package core

import (
	"fmt"
	"strings"
)

// MatcherSet is an ordered, fixed-arity list of matchers, one per argument
// position. It accepts a call when every position accepts its argument.
type MatcherSet []ArgMatcher

// Arity returns the number of argument positions.
func (s MatcherSet) Arity() int {
	return len(s)
}

// MatchArguments folds the position matchers left to right, stopping at the
// first rejection. The empty set accepts every (empty) call.
// It panics with ErrArityMismatch when len(args) differs from the set's arity.
func (s MatcherSet) MatchArguments(args []any) bool {
	if len(args) != len(s) {
		panic(fmt.Errorf("%w: %d matchers, %d arguments", ErrArityMismatch, len(s), len(args)))
	}

	for index, matcher := range s {
		if !matcher.MatchArg(args[index]) {
			return false
		}
	}

	return true
}

func (s MatcherSet) String() string {
	parts := make([]string, len(s))
	for i, matcher := range s {
		parts[i] = matcher.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// NewMatcherSet builds a MatcherSet from the given matchers, in order.
func NewMatcherSet(matchers ...ArgMatcher) MatcherSet {
	set := make(MatcherSet, len(matchers))
	copy(set, matchers)

	return set
}
