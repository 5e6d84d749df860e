package core_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/impstub/internal/core"
)

func TestComposePolicy_SplitsConcerns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	recorder := core.NewDefaultPolicy()
	policy := core.ComposePolicy("quiet", recorder, core.NewLenientPolicy())

	mock := core.NewMock1[string, int](core.WithPolicy(policy))

	g.Expect(mock.Invoke(1)).To(Equal(""))
	g.Expect(recorder.Recorded()).To(Equal(1))
	g.Expect(policy.Name()).To(Equal("quiet"))

	mock.Reset()
	g.Expect(recorder.Recorded()).To(Equal(0))
}

func TestDefaultPolicy_FallbackAcceptsEverythingAndFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	policy := core.NewDefaultPolicy()
	fallback := policy.Fallback()

	g.Expect(fallback.Accepts([]any{1, "two", nil})).To(BeTrue())
	g.Expect(fallback.Accepts(nil)).To(BeTrue())
	g.Expect(fallback.String()).To(Equal("fallback"))

	_, err := policy.ResolveUnmatched([]any{1})

	g.Expect(core.IsNotConfigured(err)).To(BeTrue())
	g.Expect(err.Error()).To(Equal("double is not configured for these values(1) [policy: default]"))
}

func TestPolicies_ErrorArgsDoNotAliasCaller(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, policy := range []core.Policy{core.NewDefaultPolicy(), core.NewFailFastPolicy()} {
		args := []any{1, "a"}

		_, err := policy.ResolveUnmatched(args)
		args[0] = 99

		var notConfigured *core.NotConfiguredError

		g.Expect(errors.As(err, &notConfigured)).To(BeTrue(), policy.Name())
		g.Expect(notConfigured.Args).To(Equal([]any{1, "a"}), policy.Name())
	}
}

func TestFailFastPolicy_Refuses(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	policy := core.NewFailFastPolicy()
	entry := policy.RecordCall([]any{"x"})

	_, err := policy.ResolveUnmatched([]any{"x"})

	g.Expect(err).To(MatchError(core.ErrNotConfigured))
	g.Expect(err.Error()).To(ContainSubstring("fail-fast"))
	g.Expect(entry.Args()).To(Equal([]any{"x"}))
	g.Expect(policy.Recorded()).To(Equal(1))

	policy.Clear()
	g.Expect(policy.Recorded()).To(Equal(0))
}

func TestHistoryEntry_IsACopy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	args := []any{1, "a"}
	entry := core.NewHistoryEntry(args)
	args[0] = 2

	g.Expect(entry.Arg(0)).To(Equal(1))
	g.Expect(entry.Arity()).To(Equal(2))
	g.Expect(entry.String()).To(Equal(`call(1, "a")`))

	view := entry.Args()
	view[1] = "b"

	g.Expect(entry.Arg(1)).To(Equal("a"))
}

func TestIsNotConfigured_OnlyNotConfigured(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.IsNotConfigured(&core.NotConfiguredError{})).To(BeTrue())
	g.Expect(core.IsNotConfigured(core.ErrNoResponse)).To(BeFalse())
	g.Expect(core.IsNotConfigured("not an error")).To(BeFalse())
	g.Expect(core.IsNotConfigured(nil)).To(BeFalse())
}

func TestLenientPolicy_ZeroAnswer(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := core.NewMock1[*int, int](core.WithPolicy(core.NewLenientPolicy()))

	g.Expect(mock.Invoke(1)).To(BeNil())
	g.Expect(mock.Unmatched()).To(HaveLen(1))
	g.Expect(mock.Policy().Name()).To(Equal(core.LenientPolicyName))
}

// TestPolicy_SharedBetweenDoubles verifies one externally owned policy can
// record calls of several doubles.
func TestPolicy_SharedBetweenDoubles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	shared := core.NewFailFastPolicy()
	first := core.NewMock1[int, int](core.WithPolicy(shared))
	second := core.NewMock0[int](core.WithPolicy(shared))

	first.When(core.AnyInt()).Return(1)
	second.When().Return(2)

	first.Invoke(1)
	second.Invoke()

	g.Expect(shared.Recorded()).To(Equal(2))
	g.Expect(first.History()).To(HaveLen(1))
	g.Expect(second.History()).To(HaveLen(1))
}
