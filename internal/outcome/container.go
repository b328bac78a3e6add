// Package outcome holds the result of the single background search.
//
// A Container starts Pending and is completed exactly once by the executor.
// The render loop reads it as often as it likes without ever blocking on the
// request itself.
package outcome

import (
	"sync"

	"termsearch/internal/google"
)

// State is the lifecycle position of an Outcome.
type State int

const (
	StatePending State = iota
	StateSucceeded
	StateFailed
)

// String provides a human-readable representation of the State.
func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Outcome is a snapshot of the search result. Response is set only when
// State is StateSucceeded, Err only when State is StateFailed.
type Outcome struct {
	State    State
	Response *google.Response
	Err      error
}

// Succeeded builds a successful outcome.
func Succeeded(resp *google.Response) Outcome {
	return Outcome{State: StateSucceeded, Response: resp}
}

// Failed builds a failed outcome.
func Failed(err error) Outcome {
	return Outcome{State: StateFailed, Err: err}
}

// Done reports whether the outcome is terminal.
func (o Outcome) Done() bool {
	return o.State != StatePending
}

// Items returns the result items of a succeeded outcome and nil otherwise.
func (o Outcome) Items() []google.Item {
	if o.State != StateSucceeded || o.Response == nil {
		return nil
	}
	return o.Response.Items
}

// Reader is the read side of a Container, the only view the render loop gets.
type Reader interface {
	Read() Outcome
}

// Container is a write-once cell guarded by a reader/writer lock.
type Container struct {
	mu        sync.RWMutex
	outcome   Outcome
	completed bool
}

// NewContainer returns a Pending container.
func NewContainer() *Container {
	return &Container{}
}

// Read returns the current outcome. It never blocks on the search itself,
// only (briefly) on the single write.
func (c *Container) Read() Outcome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.outcome
}

// Complete stores the terminal outcome. Calling it twice, or with a Pending
// outcome, is a programming error and panics.
func (c *Container) Complete(o Outcome) {
	if o.State == StatePending {
		panic("outcome: Complete called with a pending outcome")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.completed {
		panic("outcome: Complete called more than once")
	}
	c.outcome = o
	c.completed = true
}
