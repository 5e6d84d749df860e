package core

// Void is the result type of doubles standing in for functions that return
// nothing.
type Void = struct{}

// Mock0 is a double for functions of type func() R.
type Mock0[R any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock0[R]) CountMatching() int {
	return m.double.CountMatching()
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock0[R]) Invoke() R {
	return mustResult[R](m.TryInvoke())
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock0[R]) TryInvoke() (R, error) {
	return typedResult[R](m.double.Invoke())
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock0[R]) When() *Handler0[R] {
	return &Handler0[R]{handlerBase{handler: m.double.Configure()}}
}

// Handler0 attaches a response to calls selected by Mock0.When.
type Handler0[R any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler0[R]) Do(fn func()) {
	h.Then(func() R {
		fn()

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler0[R]) Return(value R) {
	h.Then(func() R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler0[R]) Then(fn func() R) {
	h.handler.AttachResponse(func(_ []any) (any, error) {
		return fn(), nil
	})
}

// NewMock0 creates a double for func() R.
func NewMock0[R any](opts ...Option) *Mock0[R] {
	return &Mock0[R]{mockBase{double: NewDouble(0, opts...)}}
}

// Mock1 is a double for functions of type func(A1) R.
type Mock1[R, A1 any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock1[R, A1]) CountMatching(m1 Matcher[A1]) int {
	return m.double.CountMatching(Erase(m1))
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock1[R, A1]) Invoke(a1 A1) R {
	return mustResult[R](m.TryInvoke(a1))
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock1[R, A1]) TryInvoke(a1 A1) (R, error) {
	return typedResult[R](m.double.Invoke(a1))
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock1[R, A1]) When(m1 Matcher[A1]) *Handler1[R, A1] {
	return &Handler1[R, A1]{handlerBase{handler: m.double.Configure(Erase(m1))}}
}

// Handler1 attaches a response to calls selected by Mock1.When.
type Handler1[R, A1 any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler1[R, A1]) Do(fn func(A1)) {
	h.Then(func(a1 A1) R {
		fn(a1)

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler1[R, A1]) Return(value R) {
	h.Then(func(A1) R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler1[R, A1]) Then(fn func(A1) R) {
	h.handler.AttachResponse(func(args []any) (any, error) {
		return fn(argAt[A1](args, 0)), nil
	})
}

// NewMock1 creates a double for func(A1) R.
func NewMock1[R, A1 any](opts ...Option) *Mock1[R, A1] {
	return &Mock1[R, A1]{mockBase{double: NewDouble(1, opts...)}}
}

// Mock2 is a double for functions of type func(A1, A2) R.
type Mock2[R, A1, A2 any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock2[R, A1, A2]) CountMatching(m1 Matcher[A1], m2 Matcher[A2]) int {
	return m.double.CountMatching(Erase(m1), Erase(m2))
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock2[R, A1, A2]) Invoke(a1 A1, a2 A2) R {
	return mustResult[R](m.TryInvoke(a1, a2))
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock2[R, A1, A2]) TryInvoke(a1 A1, a2 A2) (R, error) {
	return typedResult[R](m.double.Invoke(a1, a2))
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock2[R, A1, A2]) When(m1 Matcher[A1], m2 Matcher[A2]) *Handler2[R, A1, A2] {
	return &Handler2[R, A1, A2]{handlerBase{handler: m.double.Configure(Erase(m1), Erase(m2))}}
}

// Handler2 attaches a response to calls selected by Mock2.When.
type Handler2[R, A1, A2 any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler2[R, A1, A2]) Do(fn func(A1, A2)) {
	h.Then(func(a1 A1, a2 A2) R {
		fn(a1, a2)

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler2[R, A1, A2]) Return(value R) {
	h.Then(func(A1, A2) R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler2[R, A1, A2]) Then(fn func(A1, A2) R) {
	h.handler.AttachResponse(func(args []any) (any, error) {
		return fn(argAt[A1](args, 0), argAt[A2](args, 1)), nil
	})
}

// NewMock2 creates a double for func(A1, A2) R.
func NewMock2[R, A1, A2 any](opts ...Option) *Mock2[R, A1, A2] {
	return &Mock2[R, A1, A2]{mockBase{double: NewDouble(2, opts...)}}
}

// Mock3 is a double for functions of type func(A1, A2, A3) R.
type Mock3[R, A1, A2, A3 any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock3[R, A1, A2, A3]) CountMatching(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3]) int {
	return m.double.CountMatching(Erase(m1), Erase(m2), Erase(m3))
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock3[R, A1, A2, A3]) Invoke(a1 A1, a2 A2, a3 A3) R {
	return mustResult[R](m.TryInvoke(a1, a2, a3))
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock3[R, A1, A2, A3]) TryInvoke(a1 A1, a2 A2, a3 A3) (R, error) {
	return typedResult[R](m.double.Invoke(a1, a2, a3))
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock3[R, A1, A2, A3]) When(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3]) *Handler3[R, A1, A2, A3] {
	return &Handler3[R, A1, A2, A3]{handlerBase{handler: m.double.Configure(Erase(m1), Erase(m2), Erase(m3))}}
}

// Handler3 attaches a response to calls selected by Mock3.When.
type Handler3[R, A1, A2, A3 any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler3[R, A1, A2, A3]) Do(fn func(A1, A2, A3)) {
	h.Then(func(a1 A1, a2 A2, a3 A3) R {
		fn(a1, a2, a3)

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler3[R, A1, A2, A3]) Return(value R) {
	h.Then(func(A1, A2, A3) R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler3[R, A1, A2, A3]) Then(fn func(A1, A2, A3) R) {
	h.handler.AttachResponse(func(args []any) (any, error) {
		return fn(argAt[A1](args, 0), argAt[A2](args, 1), argAt[A3](args, 2)), nil
	})
}

// NewMock3 creates a double for func(A1, A2, A3) R.
func NewMock3[R, A1, A2, A3 any](opts ...Option) *Mock3[R, A1, A2, A3] {
	return &Mock3[R, A1, A2, A3]{mockBase{double: NewDouble(3, opts...)}}
}

// Mock4 is a double for functions of type func(A1, A2, A3, A4) R.
type Mock4[R, A1, A2, A3, A4 any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock4[R, A1, A2, A3, A4]) CountMatching(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3], m4 Matcher[A4]) int {
	return m.double.CountMatching(Erase(m1), Erase(m2), Erase(m3), Erase(m4))
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock4[R, A1, A2, A3, A4]) Invoke(a1 A1, a2 A2, a3 A3, a4 A4) R {
	return mustResult[R](m.TryInvoke(a1, a2, a3, a4))
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock4[R, A1, A2, A3, A4]) TryInvoke(a1 A1, a2 A2, a3 A3, a4 A4) (R, error) {
	return typedResult[R](m.double.Invoke(a1, a2, a3, a4))
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock4[R, A1, A2, A3, A4]) When(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3], m4 Matcher[A4]) *Handler4[R, A1, A2, A3, A4] {
	return &Handler4[R, A1, A2, A3, A4]{handlerBase{handler: m.double.Configure(Erase(m1), Erase(m2), Erase(m3), Erase(m4))}}
}

// Handler4 attaches a response to calls selected by Mock4.When.
type Handler4[R, A1, A2, A3, A4 any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler4[R, A1, A2, A3, A4]) Do(fn func(A1, A2, A3, A4)) {
	h.Then(func(a1 A1, a2 A2, a3 A3, a4 A4) R {
		fn(a1, a2, a3, a4)

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler4[R, A1, A2, A3, A4]) Return(value R) {
	h.Then(func(A1, A2, A3, A4) R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler4[R, A1, A2, A3, A4]) Then(fn func(A1, A2, A3, A4) R) {
	h.handler.AttachResponse(func(args []any) (any, error) {
		return fn(argAt[A1](args, 0), argAt[A2](args, 1), argAt[A3](args, 2), argAt[A4](args, 3)), nil
	})
}

// NewMock4 creates a double for func(A1, A2, A3, A4) R.
func NewMock4[R, A1, A2, A3, A4 any](opts ...Option) *Mock4[R, A1, A2, A3, A4] {
	return &Mock4[R, A1, A2, A3, A4]{mockBase{double: NewDouble(4, opts...)}}
}

// Mock5 is a double for functions of type func(A1, A2, A3, A4, A5) R.
type Mock5[R, A1, A2, A3, A4, A5 any] struct {
	mockBase
}

// CountMatching returns the number of recorded calls accepted by the matchers.
func (m *Mock5[R, A1, A2, A3, A4, A5]) CountMatching(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3], m4 Matcher[A4], m5 Matcher[A5]) int {
	return m.double.CountMatching(Erase(m1), Erase(m2), Erase(m3), Erase(m4), Erase(m5))
}

// Invoke dispatches a call and returns the response of the first handler that
// accepts it. It panics with the policy's error when no handler does.
func (m *Mock5[R, A1, A2, A3, A4, A5]) Invoke(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
	return mustResult[R](m.TryInvoke(a1, a2, a3, a4, a5))
}

// TryInvoke dispatches a call like Invoke, returning the policy's error
// instead of panicking.
func (m *Mock5[R, A1, A2, A3, A4, A5]) TryInvoke(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error) {
	return typedResult[R](m.double.Invoke(a1, a2, a3, a4, a5))
}

// When registers a handler for calls accepted by the matchers.
func (m *Mock5[R, A1, A2, A3, A4, A5]) When(m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3], m4 Matcher[A4], m5 Matcher[A5]) *Handler5[R, A1, A2, A3, A4, A5] {
	return &Handler5[R, A1, A2, A3, A4, A5]{handlerBase{handler: m.double.Configure(Erase(m1), Erase(m2), Erase(m3), Erase(m4), Erase(m5))}}
}

// Handler5 attaches a response to calls selected by Mock5.When.
type Handler5[R, A1, A2, A3, A4, A5 any] struct {
	handlerBase
}

// Do answers with the zero R after running fn.
func (h *Handler5[R, A1, A2, A3, A4, A5]) Do(fn func(A1, A2, A3, A4, A5)) {
	h.Then(func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
		fn(a1, a2, a3, a4, a5)

		var zero R

		return zero
	})
}

// Return answers with value.
func (h *Handler5[R, A1, A2, A3, A4, A5]) Return(value R) {
	h.Then(func(A1, A2, A3, A4, A5) R {
		return value
	})
}

// Then answers with the result of fn applied to the call's arguments.
func (h *Handler5[R, A1, A2, A3, A4, A5]) Then(fn func(A1, A2, A3, A4, A5) R) {
	h.handler.AttachResponse(func(args []any) (any, error) {
		return fn(argAt[A1](args, 0), argAt[A2](args, 1), argAt[A3](args, 2), argAt[A4](args, 3), argAt[A5](args, 4)), nil
	})
}

// NewMock5 creates a double for func(A1, A2, A3, A4, A5) R.
func NewMock5[R, A1, A2, A3, A4, A5 any](opts ...Option) *Mock5[R, A1, A2, A3, A4, A5] {
	return &Mock5[R, A1, A2, A3, A4, A5]{mockBase{double: NewDouble(5, opts...)}}
}

// handlerBase holds what every typed handler shares.
type handlerBase struct {
	handler *Handler
}

// Handler returns the underlying type-erased handler.
func (h *handlerBase) Handler() *Handler {
	return h.handler
}

// Panic makes matched calls panic with value.
func (h *handlerBase) Panic(value any) {
	h.handler.AttachResponse(func([]any) (any, error) {
		panic(value)
	})
}

// mockBase holds what every typed double shares.
type mockBase struct {
	double *Double
}

// AssertAllMatched fails the test if a call since the last Reset matched no
// handler.
func (m *mockBase) AssertAllMatched(t TestReporter) {
	t.Helper()
	m.double.AssertAllMatched(t)
}

// Double returns the underlying type-erased double.
func (m *mockBase) Double() *Double {
	return m.double
}

// History returns the recorded calls, oldest first.
func (m *mockBase) History() []*HistoryEntry {
	return m.double.History()
}

// Policy returns the active policy.
func (m *mockBase) Policy() Policy {
	return m.double.Policy()
}

// Reset drops every handler and all history. The policy is kept.
func (m *mockBase) Reset() {
	m.double.Reset()
}

// SetPolicy replaces the active policy.
func (m *mockBase) SetPolicy(policy Policy) {
	m.double.SetPolicy(policy)
}

// Unmatched returns the recorded calls no handler accepted.
func (m *mockBase) Unmatched() []*HistoryEntry {
	return m.double.Unmatched()
}

// argAt returns argument index as T. A nil interface argument becomes the zero T.
func argAt[T any](args []any, index int) T {
	typed, _ := args[index].(T)

	return typed
}

func mustResult[R any](value R, err error) R {
	if err != nil {
		panic(err)
	}

	return value
}

// typedResult converts an erased result. A nil result, as produced by a
// failing or lenient policy, becomes the zero R.
func typedResult[R any](value any, err error) (R, error) {
	typed, _ := value.(R)

	return typed, err
}
