package api

import (
	"context"
	"sync"
)

// Result is the outcome delivered to a dispatched callback. Exactly one of
// Response and Err is set.
type Result struct {
	Response *Response
	Err      error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Queue is an unbounded FIFO of callbacks owned by one goroutine. Posting
// never blocks, so a callback may dispatch further requests.
type Queue struct {
	mu     sync.Mutex
	items  []func()
	signal chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{signal: make(chan struct{}, 1)}
}

func (q *Queue) post(fn func()) {
	q.mu.Lock()
	q.items = append(q.items, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *Queue) take() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of callbacks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drain runs every queued callback on the calling goroutine, including
// those posted while draining, and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		items := q.take()
		if len(items) == 0 {
			return n
		}
		for _, fn := range items {
			fn()
			n++
		}
	}
}

// Run drains callbacks as they arrive until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
		}
	}
}

// Await drains callbacks until at least n have run or ctx is done.
func (q *Queue) Await(ctx context.Context, n int) error {
	ran := q.Drain()
	for ran < n {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
			ran += q.Drain()
		}
	}
	return nil
}

// Sender is the part of Client a Dispatcher needs.
type Sender interface {
	Send(ctx context.Context, req Request) (*Response, error)
	SendCached(ctx context.Context, req Request) (*Response, error)
}

// Dispatcher runs requests off the caller's goroutine and posts their
// callbacks to a Queue.
type Dispatcher struct {
	sender Sender
	queue  *Queue
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher that delivers results to queue.
func NewDispatcher(sender Sender, queue *Queue) *Dispatcher {
	return &Dispatcher{sender: sender, queue: queue}
}

// Queue returns the queue callbacks are posted to.
func (d *Dispatcher) Queue() *Queue {
	return d.queue
}

// Go sends req on a new goroutine, through SendCached when cached is true.
// cb runs exactly once, on the goroutine draining the queue, whether the
// request succeeded or failed.
func (d *Dispatcher) Go(ctx context.Context, req Request, cached bool, cb func(Result)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		var res Result
		if cached {
			res.Response, res.Err = d.sender.SendCached(ctx, req)
		} else {
			res.Response, res.Err = d.sender.Send(ctx, req)
		}
		d.queue.post(func() { cb(res) })
	}()
}

// Wait blocks until every dispatched request has posted its callback.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
