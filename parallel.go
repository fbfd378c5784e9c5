package instructor

import (
	"fmt"
	"iter"
	"reflect"
)

// Parallel is the name-indexed registry of candidate models expected in one
// parallel tool-call response. It is immutable after construction, holds no
// per-call state, and may be shared by sequential or concurrent decodes.
type Parallel struct {
	candidates []Candidate
	registry   map[string]Candidate
}

// NewParallel builds a registry from one or more candidates. Construction
// fails with ErrEmptyModelSet when no candidate is supplied and with
// ErrDuplicateModel when two candidates declare the same name.
func NewParallel(candidates ...Candidate) (*Parallel, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyModelSet
	}
	registry := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		name := c.Name()
		if _, exists := registry[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModel, name)
		}
		registry[name] = c
	}
	return &Parallel{
		candidates: append([]Candidate(nil), candidates...),
		registry:   registry,
	}, nil
}

// ParallelFor builds a registry from a typehint of shape "slice of
// candidates" (see ExtractCandidates).
func ParallelFor(typehint reflect.Type) (*Parallel, error) {
	candidates, err := ExtractCandidates(typehint)
	if err != nil {
		return nil, err
	}
	return NewParallel(candidates...)
}

// ParallelOf is ParallelFor for a compile-time typehint, e.g.
// ParallelOf[[]WeatherOrSearch]().
func ParallelOf[S any]() (*Parallel, error) {
	candidates, err := CandidatesOf[S]()
	if err != nil {
		return nil, err
	}
	return NewParallel(candidates...)
}

// Candidates returns the candidate models in declaration order.
func (p *Parallel) Candidates() []Candidate {
	return append([]Candidate(nil), p.candidates...)
}

// Lookup returns the candidate registered under name, or (nil, false) if
// there is none.
func (p *Parallel) Lookup(name string) (Candidate, bool) {
	c, ok := p.registry[name]
	return c, ok
}

// Decode matches each tool call in response against the registry and yields
// one validated instance per call, in call order. The sequence is lazy and
// single-use: a call is validated only when the consumer pulls it, and
// stopping early leaves the remaining calls untouched.
//
// mode must be ModeParallelTools; any other mode surfaces an ErrModeMismatch
// error on the first pull, before the response is read. A call name with no
// registered candidate surfaces an *UnknownToolError; a payload that fails
// its candidate's validation surfaces a *ValidationError. Either error ends
// the sequence, but instances already yielded stand.
//
// Options are passed through to each matched candidate unchanged. Decode
// mutates neither the response nor the registry.
func (p *Parallel) Decode(response Response, mode Mode, opts ...DecodeOption) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		if mode != ModeParallelTools {
			yield(nil, newModeMismatchError(mode))
			return
		}
		if response == nil {
			yield(nil, fmt.Errorf("response must not be nil"))
			return
		}
		for _, call := range response.ToolCalls() {
			candidate, ok := p.registry[call.Name]
			if !ok {
				yield(nil, &UnknownToolError{Name: call.Name})
				return
			}
			instance, err := candidate.Decode([]byte(call.Arguments), opts...)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(instance, nil) {
				return
			}
		}
	}
}

// DecodeAll drains Decode into a slice. On error it returns the instances
// decoded before the failure together with the error.
func (p *Parallel) DecodeAll(response Response, mode Mode, opts ...DecodeOption) ([]any, error) {
	var out []any
	for instance, err := range p.Decode(response, mode, opts...) {
		if err != nil {
			return out, err
		}
		out = append(out, instance)
	}
	return out, nil
}
