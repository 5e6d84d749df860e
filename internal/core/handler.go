package core

import "fmt"

// Handler binds a MatcherSet to a single response.
type Handler struct {
	matchers  MatcherSet
	response  Response
	acceptAll bool
}

// Accepts reports whether the handler's matchers accept args.
func (h *Handler) Accepts(args []any) bool {
	if h.acceptAll {
		return true
	}

	return h.matchers.MatchArguments(args)
}

// AttachResponse sets the handler's response. A later call replaces an earlier
// one.
func (h *Handler) AttachResponse(response Response) {
	h.response = response
}

// HasResponse reports whether a response has been attached.
func (h *Handler) HasResponse() bool {
	return h.response != nil
}

// Matchers returns the handler's matcher set. The fallback handler of a policy
// has none.
func (h *Handler) Matchers() MatcherSet {
	return h.matchers
}

// Respond runs the attached response with args.
// Responding before a response was attached is a programming error and panics
// with ErrNoResponse.
func (h *Handler) Respond(args []any) (any, error) {
	if h.response == nil {
		panic(fmt.Errorf("%w: handler %s", ErrNoResponse, h.matchers))
	}

	return h.response(args)
}

func (h *Handler) String() string {
	if h.acceptAll {
		return "fallback"
	}

	return "when" + h.matchers.String()
}

// Response computes the value returned for one matched invocation.
type Response func(args []any) (any, error)

// NewHandler creates a handler with no response attached.
func NewHandler(matchers MatcherSet) *Handler {
	return &Handler{matchers: matchers}
}

// newFallbackHandler creates the handler a policy hands out when nothing else
// matched: it accepts every call and fails as soon as it is asked to respond.
func newFallbackHandler(policy string) *Handler {
	return &Handler{
		acceptAll: true,
		response: func(args []any) (any, error) {
			return nil, &NotConfiguredError{Policy: policy, Args: NewHistoryEntry(args).Args()}
		},
	}
}
