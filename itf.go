package threadpool

import "time"

// Task is an opaque unit of work: a callable with no parameters and no
// return value. The pool never inspects, copies, or retains a Task
// beyond the worker that runs it.
type Task func()

// BlockingQueue is a bounded FIFO with blocking, timed, and
// non-blocking producer/consumer operations. Implementations must be
// safe for concurrent use by any number of producers and consumers.
type BlockingQueue[T any] interface {
	// Offer appends e iff the queue is neither full nor closed. Never
	// blocks.
	Offer(e T) bool
	// OfferTimeout blocks up to timeout waiting for space if the queue
	// is full, then appends. Returns false on timeout or if the queue
	// closes while waiting.
	OfferTimeout(e T, timeout time.Duration) bool
	// Put blocks until space exists or the queue closes, in which case
	// it returns ErrQueueClosed.
	Put(e T) error
	// Poll removes and returns the head if one is present.
	Poll() (T, bool)
	// PollTimeout blocks up to timeout waiting for an item if the
	// queue is empty.
	PollTimeout(timeout time.Duration) (T, bool)
	// Peek returns the head without removing it. Never blocks.
	Peek() (T, bool)
	// Take blocks until an item is available, or returns false once
	// the queue is closed and drained.
	Take() (T, bool)
	// Empty reports whether the queue currently holds no items.
	Empty() bool
	// RemainingCapacity reports capacity - len(items), never negative.
	RemainingCapacity() int
	// Len reports the current number of buffered items.
	Len() int
	// Capacity reports the immutable bound passed at construction.
	Capacity() int
	// Close is idempotent. Once closed, no further item may be
	// appended; blocked producers and consumers are woken.
	Close()
}

// RejectionPolicy decides what happens to a task the executor cannot
// admit through any of the grow-core / enqueue / grow-max steps. A
// policy must not call back into Submit.
type RejectionPolicy interface {
	Reject(task Task, e *Executor) error
}
