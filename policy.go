package threadpool

// AbortPolicy surfaces ErrRejected to the submitter. The task never
// runs.
var AbortPolicy RejectionPolicy = abortPolicy{}

// DiscardPolicy drops the task silently.
var DiscardPolicy RejectionPolicy = discardPolicy{}

// DiscardOldestPolicy drops the oldest queued task to make room for
// the new one, unless the executor is stopping, in which case it
// behaves like DiscardPolicy.
var DiscardOldestPolicy RejectionPolicy = discardOldestPolicy{}

// CallerRunsPolicy runs the task synchronously on the submitting
// goroutine, unless the executor is stopping, in which case it drops
// the task.
var CallerRunsPolicy RejectionPolicy = callerRunsPolicy{}

// All four policies are stateless, zero-size struct values: safe to
// share as package-level singletons without any locking of their own,
// since a shared static reference only works when the policy type
// carries no state of its own.

type abortPolicy struct{}

func (abortPolicy) Reject(task Task, e *Executor) error {
	e.logger.Debug("task rejected by AbortPolicy")
	return ErrRejected
}

type discardPolicy struct{}

func (discardPolicy) Reject(task Task, e *Executor) error {
	e.logger.Debug("task discarded by DiscardPolicy")
	return nil
}

type discardOldestPolicy struct{}

// Reject never reaches back into Submit: it manipulates the queue
// directly via Poll (takes the queue's own mutex) then Put, avoiding
// the ABBA hazard of reaching into the deque under some other lock.
func (discardOldestPolicy) Reject(task Task, e *Executor) error {
	if e.IsShutdown() {
		e.logger.Debug("discarding task, pool stopping (DiscardOldestPolicy)")
		return nil
	}
	if _, ok := e.queue.Poll(); ok {
		e.logger.Debug("dropped oldest queued task to make room")
	}
	// A brief gap where another producer could slip into the freed
	// slot is acceptable: this is "drop to make room", not an atomic
	// swap.
	if err := e.queue.Put(task); err != nil {
		e.logger.Debug("queue closed while replacing oldest task")
	}
	return nil
}

type callerRunsPolicy struct{}

func (callerRunsPolicy) Reject(task Task, e *Executor) error {
	if e.IsShutdown() {
		e.logger.Debug("dropping task, pool stopping (CallerRunsPolicy)")
		return nil
	}
	runGuarded(e.logger, task)
	return nil
}
