// Package chatwindow holds the visibility state of the chat surface and
// shares it with every consumer inside one provider scope.
package chatwindow

import (
	"context"
	"errors"
	"sync"
)

// ErrNoProvider is wrapped by every ScopeError.
var ErrNoProvider = errors.New("no chat window provider")

// ScopeError is returned when the chat window state is used outside an
// open Provider.
type ScopeError struct {
	// Op is the operation that was attempted.
	Op string
}

func (e *ScopeError) Error() string {
	return "chatwindow: " + e.Op + " must be used within a Provider"
}

func (e *ScopeError) Unwrap() error { return ErrNoProvider }

// State is a snapshot of both flags. Expanded and Minimized are
// independent; both may be true at once.
type State struct {
	Expanded  bool
	Minimized bool
}

// Provider owns the chat window state for one UI tree. Create it when the
// tree mounts and Close it when the tree goes away.
type Provider struct {
	mu     sync.RWMutex
	state  State
	open   bool
	subs   map[int]chan State
	nextID int
}

// NewProvider opens a scope with both flags false.
func NewProvider() *Provider {
	return &Provider{
		open: true,
		subs: make(map[int]chan State),
	}
}

// Close ends the scope. Later access fails with a ScopeError and every
// subscription channel is closed.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}
	p.open = false
	for id, ch := range p.subs {
		close(ch)
		delete(p.subs, id)
	}
}

// Coordinator returns the handle consumers use to read and write state.
func (p *Provider) Coordinator() *Coordinator {
	return &Coordinator{p: p}
}

type ctxKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the coordinator of the provider carried by ctx.
func FromContext(ctx context.Context) (*Coordinator, error) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, &ScopeError{Op: "FromContext"}
	}
	if !p.isOpen() {
		return nil, &ScopeError{Op: "FromContext"}
	}
	return p.Coordinator(), nil
}

func (p *Provider) isOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open
}

// Coordinator is a consumer handle onto a Provider. All handles of one
// provider share the same state.
type Coordinator struct {
	p *Provider
}

// Expanded reports whether the chat window is expanded.
func (c *Coordinator) Expanded() (bool, error) {
	s, err := c.read("Expanded")
	return s.Expanded, err
}

// Minimized reports whether the chat window is minimized.
func (c *Coordinator) Minimized() (bool, error) {
	s, err := c.read("Minimized")
	return s.Minimized, err
}

// State returns both flags at once.
func (c *Coordinator) State() (State, error) {
	return c.read("State")
}

// SetExpanded sets the expanded flag and leaves minimized untouched.
func (c *Coordinator) SetExpanded(v bool) error {
	return c.write("SetExpanded", func(s *State) { s.Expanded = v })
}

// SetMinimized sets the minimized flag and leaves expanded untouched.
func (c *Coordinator) SetMinimized(v bool) error {
	return c.write("SetMinimized", func(s *State) { s.Minimized = v })
}

// ToggleExpanded flips the expanded flag.
func (c *Coordinator) ToggleExpanded() error {
	return c.write("ToggleExpanded", func(s *State) { s.Expanded = !s.Expanded })
}

// ToggleMinimized flips the minimized flag.
func (c *Coordinator) ToggleMinimized() error {
	return c.write("ToggleMinimized", func(s *State) { s.Minimized = !s.Minimized })
}

// Subscribe returns a channel receiving the state after every change, and
// a function that cancels the subscription. Slow readers only see the
// latest state.
func (c *Coordinator) Subscribe() (<-chan State, func(), error) {
	p := c.provider()
	if p == nil {
		return nil, nil, &ScopeError{Op: "Subscribe"}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return nil, nil, &ScopeError{Op: "Subscribe"}
	}

	id := p.nextID
	p.nextID++
	ch := make(chan State, 1)
	p.subs[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subs[id]; ok {
			close(sub)
			delete(p.subs, id)
		}
	}
	return ch, cancel, nil
}

// provider returns nil for a nil or zero handle.
func (c *Coordinator) provider() *Provider {
	if c == nil {
		return nil
	}
	return c.p
}

func (c *Coordinator) read(op string) (State, error) {
	p := c.provider()
	if p == nil {
		return State{}, &ScopeError{Op: op}
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.open {
		return State{}, &ScopeError{Op: op}
	}
	return p.state, nil
}

func (c *Coordinator) write(op string, mutate func(*State)) error {
	p := c.provider()
	if p == nil {
		return &ScopeError{Op: op}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return &ScopeError{Op: op}
	}
	mutate(&p.state)
	p.broadcast()
	return nil
}

// broadcast must be called with p.mu held.
func (p *Provider) broadcast() {
	for _, ch := range p.subs {
		// drop the stale value so the newest state wins
		select {
		case <-ch:
		default:
		}
		ch <- p.state
	}
}
