package outcome

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsearch/internal/google"
)

func TestNewContainerIsPending(t *testing.T) {
	c := NewContainer()
	got := c.Read()
	assert.Equal(t, StatePending, got.State)
	assert.False(t, got.Done())
	assert.Nil(t, got.Items())
}

func TestCompleteSucceeded(t *testing.T) {
	c := NewContainer()
	resp := &google.Response{TotalResults: "3", Items: []google.Item{{Title: "A"}, {Title: "B"}}}
	c.Complete(Succeeded(resp))

	got := c.Read()
	assert.Equal(t, StateSucceeded, got.State)
	assert.True(t, got.Done())
	assert.Same(t, resp, got.Response)
	assert.Len(t, got.Items(), 2)
}

func TestCompleteFailed(t *testing.T) {
	c := NewContainer()
	c.Complete(Failed(errors.New("quota exceeded")))

	got := c.Read()
	assert.Equal(t, StateFailed, got.State)
	assert.EqualError(t, got.Err, "quota exceeded")
	assert.Nil(t, got.Items())
}

func TestCompleteTwicePanics(t *testing.T) {
	c := NewContainer()
	c.Complete(Failed(errors.New("first")))
	assert.Panics(t, func() {
		c.Complete(Succeeded(&google.Response{}))
	})
	assert.EqualError(t, c.Read().Err, "first", "the first outcome must survive a rejected second write")
}

func TestCompletePendingPanics(t *testing.T) {
	c := NewContainer()
	assert.Panics(t, func() {
		c.Complete(Outcome{State: StatePending})
	})
	assert.Equal(t, StatePending, c.Read().State)
}

// Readers running concurrently with the single write must never observe a
// reversion to Pending once they have seen the terminal outcome.
func TestConcurrentReadersNeverRevert(t *testing.T) {
	c := NewContainer()
	resp := &google.Response{Items: []google.Item{{Title: "only"}}}

	const readers = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	violations := make(chan string, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			seenDone := false
			for j := 0; j < 2000; j++ {
				o := c.Read()
				if seenDone && o.State == StatePending {
					violations <- "reverted to pending"
					return
				}
				if o.Done() {
					if o.Response != resp {
						violations <- "observed a different response"
						return
					}
					seenDone = true
				}
			}
		}()
	}

	close(start)
	c.Complete(Succeeded(resp))
	wg.Wait()
	close(violations)

	for v := range violations {
		t.Error(v)
	}
	require.Equal(t, StateSucceeded, c.Read().State)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Pending", StatePending.String())
	assert.Equal(t, "Succeeded", StateSucceeded.String())
	assert.Equal(t, "Failed", StateFailed.String())
	assert.Equal(t, "Unknown", State(9).String())
}
