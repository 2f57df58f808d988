// Package bench issues repeated requests through a client and
// aggregates latency with an HDR histogram. It layers on top of the
// client the same way any caller does; there is no retry or backoff.
package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/lalaz-foundation/wire"
)

// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Config describes one benchmark run.
type Config struct {
	// Requests is the total number of calls to issue.
	Requests int

	// Concurrency is the number of workers issuing them; 0 or 1 means
	// sequential.
	Concurrency int

	Method   string
	Endpoint string
	Options  *wire.Options
}

// Summary is the aggregated outcome of a run.
type Summary struct {
	Requests int
	Failures int

	// Statuses counts completed responses per status code.
	Statuses map[int]int

	Min  time.Duration
	Mean time.Duration
	P50  time.Duration
	P90  time.Duration
	P99  time.Duration
	Max  time.Duration
}

// Runner drives a benchmark against a single client.
type Runner struct {
	client *wire.Client
	config Config

	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	statuses map[int]int
	failures int
}

// NewRunner creates a runner for the given client and config.
func NewRunner(client *wire.Client, config Config) *Runner {
	return &Runner{
		client:   client,
		config:   config,
		hist:     hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
		statuses: make(map[int]int),
	}
}

// Run issues the configured number of requests and returns the latency
// summary. Transport failures count as failures and do not contribute
// latency samples; ctx cancellation stops the run early with its error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.config.Requests <= 0 {
		return nil, fmt.Errorf("bench: request count must be positive, got %d", r.config.Requests)
	}

	workers := r.config.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > r.config.Requests {
		workers = r.config.Requests
	}

	jobs := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for range jobs {
				r.issue(ctx)
			}
		}()
	}

	var runErr error
feed:
	for i := 0; i < r.config.Requests; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		case jobs <- struct{}{}:
		}
	}
	close(jobs)
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}
	return r.summarize(), nil
}

func (r *Runner) issue(ctx context.Context) {
	resp, err := r.client.Do(ctx, r.config.Method, r.config.Endpoint, r.config.Options)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.failures++
		return
	}
	r.statuses[resp.StatusCode]++
	if recordErr := r.hist.RecordValue(resp.Duration.Microseconds()); recordErr != nil {
		// Outside the histogram range; the sample is dropped but the
		// request still counts in the status tally.
		return
	}
}

func (r *Runner) summarize() *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	statuses := make(map[int]int, len(r.statuses))
	for code, count := range r.statuses {
		statuses[code] = count
	}

	summary := &Summary{
		Requests: r.config.Requests,
		Failures: r.failures,
		Statuses: statuses,
	}
	if r.hist.TotalCount() > 0 {
		summary.Min = time.Duration(r.hist.Min()) * time.Microsecond
		summary.Mean = time.Duration(r.hist.Mean()) * time.Microsecond
		summary.P50 = time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond
		summary.P90 = time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond
		summary.P99 = time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond
		summary.Max = time.Duration(r.hist.Max()) * time.Microsecond
	}
	return summary
}
