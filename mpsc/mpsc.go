// Package mpsc provides an unbounded multi-producer queue used to move
// collision events out of the simulation without ever stalling it.
//
// It differs from a plain go channel in two ways that matter for event
// collection: a send never blocks, no matter how far the consumer lags
// behind, and a send after the receiver was closed is silently discarded
// instead of panicking.
package mpsc

import "sync"

// Channel creates a new unbounded queue and returns its two endpoints.
// The Sender may be shared by any number of goroutines. The Receiver is
// meant to be drained by a single consumer.
func Channel[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{}
	ch.more = sync.NewCond(&ch.mu)

	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

type channel[T any] struct {
	mu     sync.Mutex
	more   *sync.Cond
	items  []T
	head   int
	closed bool
}

// Sender is the producing endpoint of a queue. Safe for concurrent use.
type Sender[T any] struct {
	_ noCopy

	ch *channel[T]
}

// Send enqueues value. It never blocks on a consumer and reports whether
// the value was accepted. After the receiver was closed it discards the
// value and returns false.
func (s *Sender[T]) Send(value T) bool {
	ch := s.ch

	ch.mu.Lock()

	if ch.closed {
		ch.mu.Unlock()
		return false
	}

	ch.items = append(ch.items, value)

	ch.mu.Unlock()
	ch.more.Signal()

	return true
}

// Receiver is the consuming endpoint of a queue.
type Receiver[T any] struct {
	_ noCopy

	ch *channel[T]
}

// Recv blocks until a value is available and returns it. It returns the
// zero value and false once the receiver was closed and the queue drained
// empty.
func (r *Receiver[T]) Recv() (T, bool) {
	ch := r.ch

	ch.mu.Lock()
	defer ch.mu.Unlock()

	for ch.head == len(ch.items) && !ch.closed {
		ch.more.Wait()
	}

	return ch.pop()
}

// TryRecv returns the next value if one is immediately available.
func (r *Receiver[T]) TryRecv() (T, bool) {
	ch := r.ch

	ch.mu.Lock()
	defer ch.mu.Unlock()

	return ch.pop()
}

// Drain appends all currently pending values to target and returns the
// extended slice. It does not wait for more values.
func (r *Receiver[T]) Drain(target []T) []T {
	ch := r.ch

	ch.mu.Lock()
	defer ch.mu.Unlock()

	target = append(target, ch.items[ch.head:]...)
	ch.reset()

	return target
}

// Len returns the number of values waiting to be received.
func (r *Receiver[T]) Len() int {
	ch := r.ch

	ch.mu.Lock()
	defer ch.mu.Unlock()

	return len(ch.items) - ch.head
}

// Close marks the queue as closed. Pending values are discarded and later
// sends are silently rejected. Closing twice is fine.
func (r *Receiver[T]) Close() {
	ch := r.ch

	ch.mu.Lock()
	ch.closed = true
	ch.reset()
	ch.mu.Unlock()

	ch.more.Broadcast()
}

// pop removes the item at head. Caller must hold mu.
func (ch *channel[T]) pop() (T, bool) {
	if ch.head == len(ch.items) {
		var zero T
		return zero, false
	}

	item := ch.items[ch.head]

	var zero T
	ch.items[ch.head] = zero
	ch.head += 1

	if ch.head == len(ch.items) {
		ch.reset()
	}

	return item, true
}

// reset reuses the memory of the backing buffer. Caller must hold mu.
func (ch *channel[T]) reset() {
	clear(ch.items)
	ch.items = ch.items[:0]
	ch.head = 0
}
