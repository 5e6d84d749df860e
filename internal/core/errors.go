package core

import (
	"errors"
	"fmt"
	"strings"
)

// Exported variables.
var (
	// ErrArityMismatch is raised when a matcher set or an argument list does not
	// have the arity the double was built for.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrNoResponse is raised when a handler is asked to respond before a
	// response was attached to it.
	ErrNoResponse = errors.New("handler has no response attached")
	// ErrNilPolicy is raised when a double is given a nil policy.
	ErrNilPolicy = errors.New("policy must not be nil")
	// ErrNotConfigured is the sentinel wrapped by every NotConfiguredError.
	ErrNotConfigured = errors.New("double is not configured for these values")
)

// NotConfiguredError reports an invocation that no handler accepted and that
// the active policy refused to answer.
type NotConfiguredError struct {
	Double string // name of the double, empty when unnamed
	Policy string // name of the policy that resolved the call
	Args   []any  // the arguments of the unmatched invocation
}

func (e *NotConfiguredError) Error() string {
	var buf strings.Builder

	buf.WriteString(ErrNotConfigured.Error())

	if e.Double != "" {
		fmt.Fprintf(&buf, ": %s", e.Double)
	}

	buf.WriteString(formatArgs(e.Args))
	fmt.Fprintf(&buf, " [policy: %s]", e.Policy)

	return buf.String()
}

// Unwrap lets errors.Is match ErrNotConfigured.
func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// IsNotConfigured reports whether err (or a recovered panic value) signals an
// unmatched invocation.
func IsNotConfigured(value any) bool {
	err, ok := value.(error)

	return ok && errors.Is(err, ErrNotConfigured)
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%#v", arg)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
