// Package loading tracks whether a page session is still booting.
//
// A State owns a single boolean cell that starts out true. Only the owner can
// change it through SetLoading; everyone else receives a View, which can read
// the current value and subscribe to changes but has no way to write.
package loading

import (
	"context"
	"sync"
)

// Phase names the two values of the cell.
type Phase int

const (
	Ready Phase = iota
	Loading
)

func (p Phase) String() string {
	if p == Loading {
		return "loading"
	}
	return "ready"
}

func phaseOf(v bool) Phase {
	if v {
		return Loading
	}
	return Ready
}

// View is the read-only side of a State.
type View interface {
	Loading() bool
	Phase() Phase
	// Subscribe returns a channel that receives the value after every
	// change. Only the newest value is buffered. The channel is closed when
	// ctx is done.
	Subscribe(ctx context.Context) <-chan bool
}

// Observer is called after every SetLoading with the previous and new phase.
type Observer func(from, to Phase)

type Option func(*State)

func WithObserver(fn Observer) Option {
	return func(s *State) {
		s.observers = append(s.observers, fn)
	}
}

type State struct {
	mu        sync.RWMutex
	value     bool
	subs      map[int]chan bool
	nextID    int
	observers []Observer
}

// New returns a State in the Loading phase.
func New(opts ...Option) *State {
	s := &State{
		value: true,
		subs:  make(map[int]chan bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *State) Phase() Phase {
	return phaseOf(s.Loading())
}

// SetLoading overwrites the cell and notifies subscribers and observers.
func (s *State) SetLoading(value bool) {
	s.mu.Lock()
	prev := s.value
	s.value = value
	for _, ch := range s.subs {
		publish(ch, value)
	}
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(phaseOf(prev), phaseOf(value))
	}
}

// View returns a read-only handle on s.
func (s *State) View() View {
	return view{s: s}
}

func (s *State) subscribe(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// subscribers reports the number of live subscriptions.
func (s *State) subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// publish replaces any pending value in ch with v. Callers hold s.mu, which
// makes s the only sender.
func publish(ch chan bool, v bool) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

type view struct {
	s *State
}

func (v view) Loading() bool {
	return v.s.Loading()
}

func (v view) Phase() Phase {
	return v.s.Phase()
}

func (v view) Subscribe(ctx context.Context) <-chan bool {
	return v.s.subscribe(ctx)
}
