// Package threadcount counts from 1 to a limit across several goroutines,
// recording which worker saw each number.
package threadcount

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Counter records numbers by the name of the worker that counted them. It is
// safe for concurrent use.
type Counter struct {
	mu      sync.Mutex
	threads map[string]map[int]struct{}
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{threads: make(map[string]map[int]struct{})}
}

// Add records that the named worker counted n.
func (c *Counter) Add(name string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.threads[name]
	if s == nil {
		s = make(map[int]struct{})
		c.threads[name] = s
	}
	s[n] = struct{}{}
}

// Numbers returns every number counted by any worker.
func (c *Counter) Numbers() map[int]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := make(map[int]struct{})
	for _, s := range c.threads {
		for n := range s {
			r[n] = struct{}{}
		}
	}
	return r
}

// Threads returns the number of workers that counted anything.
func (c *Counter) Threads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.threads)
}

// ThreadNumbers returns the numbers counted by the named worker.
func (c *Counter) ThreadNumbers(name string) map[int]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := make(map[int]struct{}, len(c.threads[name]))
	for n := range c.threads[name] {
		r[n] = struct{}{}
	}
	return r
}

// ThreadCounter splits counting from 1 to a limit among a fixed number of
// workers.
type ThreadCounter struct {
	workers int
	limit   int
}

// New creates a ThreadCounter. Panics if workers is not positive.
func New(workers, limit int) *ThreadCounter {
	if workers <= 0 {
		panic("threadcount: need at least one worker, have " + strconv.Itoa(workers))
	}
	return &ThreadCounter{workers: workers, limit: limit}
}

// Name returns the name of the k'th worker, counting from 1.
func Name(k int) string {
	return "Thread-" + strconv.Itoa(k)
}

// Count runs the workers and waits for them to finish. Worker k counts the
// numbers n in 1..limit with n ≡ k modulo the number of workers. If ctx is
// canceled, the workers stop early and Count returns the context's error.
func (tc *ThreadCounter) Count(ctx context.Context, c *Counter) error {
	g, ctx := errgroup.WithContext(ctx)
	for k := 1; k <= tc.workers; k++ {
		g.Go(func() error {
			name := Name(k)
			for n := k; n <= tc.limit; n += tc.workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.Add(name, n)
			}
			return nil
		})
	}
	return g.Wait()
}
