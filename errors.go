package threadpool

import "errors"

var (
	// ErrRejected is returned by Submit when AbortPolicy refuses a
	// task no core, queue, or overflow slot can absorb.
	ErrRejected = errors.New("threadpool: task rejected")
	// ErrQueueClosed is returned by a blocked Put once the queue is
	// closed before space becomes available.
	ErrQueueClosed = errors.New("threadpool: queue closed")
	// ErrInvalidPoolConfig is the panic value for constructor
	// contract violations (bad sizes, nil queue/policy).
	ErrInvalidPoolConfig = errors.New("threadpool: invalid pool configuration")
	// ErrNilTask is the panic value for Submit(nil).
	ErrNilTask = errors.New("threadpool: nil task")
)
