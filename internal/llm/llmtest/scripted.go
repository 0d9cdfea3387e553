// Package llmtest provides a deterministic llm.Client for tests.
package llmtest

import (
	"context"
	"fmt"
	"sync"
)

// Reply is one scripted answer: either Text or Err.
type Reply struct {
	Text string
	Err  error
}

// Scripted returns its replies in order and records every prompt it was
// given. Calls beyond the script fail.
type Scripted struct {
	mu      sync.Mutex
	replies []Reply
	prompts []string
}

// NewScripted creates a Scripted client that answers with texts in order.
func NewScripted(texts ...string) *Scripted {
	s := &Scripted{}
	for _, t := range texts {
		s.replies = append(s.replies, Reply{Text: t})
	}
	return s
}

// Then appends a reply to the script and returns s for chaining.
func (s *Scripted) Then(r Reply) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, r)
	return s
}

// Complete implements llm.Client.
func (s *Scripted) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if n >= len(s.replies) {
		return "", fmt.Errorf("llmtest: unexpected call %d", n+1)
	}
	r := s.replies[n]
	return r.Text, r.Err
}

// Prompts returns a copy of the prompts received so far.
func (s *Scripted) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Calls returns how many times Complete was invoked.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// Func adapts an ordinary function to llm.Client.
type Func func(ctx context.Context, prompt string) (string, error)

// Complete implements llm.Client.
func (f Func) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
