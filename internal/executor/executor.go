// Package executor runs the one search request off the render loop.
package executor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"termsearch/internal/google"
	"termsearch/internal/outcome"
	"termsearch/pkg/logging"
)

const subsystem = "Executor"

// Completer is the write side of the result container.
type Completer interface {
	Complete(outcome.Outcome)
}

// Executor performs a single search and deposits its outcome exactly once.
type Executor struct {
	searcher google.Searcher
	query    google.Query
	sink     Completer

	// RequestID tags every log line of this dispatch.
	RequestID string
}

// New creates an executor for query. It does nothing until Dispatch.
func New(searcher google.Searcher, query google.Query, sink Completer) *Executor {
	return &Executor{
		searcher:  searcher,
		query:     query,
		sink:      sink,
		RequestID: uuid.NewString(),
	}
}

// Dispatch starts the request on its own goroutine and returns a channel that
// is closed once the outcome has been stored. The search is never retried and
// never cancelled by the caller; if the process exits first the goroutine is
// simply abandoned. Dispatch must be called at most once.
func (e *Executor) Dispatch(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.run(ctx)
	}()
	return done
}

func (e *Executor) run(ctx context.Context) {
	started := time.Now()
	logging.Info(subsystem, "request %s: searching for %q", e.RequestID, e.query.Text)

	resp, err := e.searcher.Search(ctx, e.query)
	if err != nil {
		logging.Error(subsystem, err, "request %s failed after %s", e.RequestID, time.Since(started))
		e.sink.Complete(outcome.Failed(err))
		return
	}
	if resp == nil {
		resp = &google.Response{}
	}

	logging.Info(subsystem, "request %s: %d items in %s", e.RequestID, len(resp.Items), time.Since(started))
	e.sink.Complete(outcome.Succeeded(resp))
}
