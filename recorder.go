package wire

import (
	"context"
	"sync"
)

// RecorderTransport is a Transport test double. It records every
// Request it receives and plays back pre-programmed results: queued
// entries are consumed first-in-first-out, and once only one entry
// remains it repeats for every further call. With nothing queued it
// answers 200 with an empty body.
//
// Safe for concurrent Send calls.
type RecorderTransport struct {
	mu       sync.Mutex
	requests []*Request
	queue    []canned
}

type canned struct {
	result *RawResult
	err    error
}

// NewRecorderTransport creates an empty recorder.
func NewRecorderTransport() *RecorderTransport {
	return &RecorderTransport{}
}

// Queue appends a canned result to the playback queue.
func (t *RecorderTransport) Queue(result *RawResult) *RecorderTransport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, canned{result: result})
	return t
}

// QueueError appends a canned failure to the playback queue.
func (t *RecorderTransport) QueueError(err error) *RecorderTransport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, canned{err: err})
	return t
}

// Fail makes every remaining call fail with err. Shorthand for
// replacing the queue with a single error entry.
func (t *RecorderTransport) Fail(err error) *RecorderTransport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = []canned{{err: err}}
	return t
}

// Send records the request and returns the next queued entry.
func (t *RecorderTransport) Send(_ context.Context, req *Request) (*RawResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, req)

	if len(t.queue) == 0 {
		return &RawResult{Status: 200, Headers: map[string]string{}}, nil
	}

	next := t.queue[0]
	if len(t.queue) > 1 {
		t.queue = t.queue[1:]
	}
	return next.result, next.err
}

// Requests returns a copy of every request recorded so far, in order.
func (t *RecorderTransport) Requests() []*Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// LastRequest returns the most recently recorded request, or nil when
// nothing has been sent.
func (t *RecorderTransport) LastRequest() *Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

// Reset clears all recorded requests and queued results.
func (t *RecorderTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = nil
	t.queue = nil
}
