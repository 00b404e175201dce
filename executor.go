package threadpool

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	slog "github.com/vearne/simplelog"
)

// ExecutorOption tunes an Executor beyond its required constructor
// arguments.
type ExecutorOption func(*Executor)

// Logger is the narrow logging surface Executor, its workers, and its
// rejection policies log lifecycle and error events through.
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// simplelogLogger forwards to the package-level github.com/vearne/simplelog
// sink; it is the default Logger for every Executor unless overridden
// by WithLogger.
type simplelogLogger struct{}

func (simplelogLogger) Debug(format string, args ...interface{}) { slog.Debug(format, args...) }
func (simplelogLogger) Error(format string, args ...interface{}) { slog.Error(format, args...) }

// WithLogger overrides the executor's logging sink. Tests use this to
// capture or silence lifecycle/error logging instead of writing to the
// package-level simplelog sink.
func WithLogger(l Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = l
	}
}

// Executor is a bounded core+overflow thread pool. It owns its queue,
// its rejection policy, and the handles of every worker it has ever
// spawned; all three are released on Shutdown.
type Executor struct {
	id string

	coreSize  int
	maxSize   int
	keepAlive time.Duration

	queue  BlockingQueue[Task]
	policy RejectionPolicy
	logger Logger

	workerCount atomic.Int32
	stopping    atomic.Bool

	workersMu sync.Mutex
	workers   []*worker

	finishMu      sync.Mutex
	finishedCount int
	completionCV  *sync.Cond
}

// NewExecutor constructs a pool with coreSize permanent workers grown
// on demand, up to maxSize total workers including overflow, backed
// by queue for backlog and policy for the cases admission cannot
// absorb. coreSize must be >= 0, maxSize >= coreSize, keepAlive >= 0,
// and queue/policy must be non-nil; violations panic with
// ErrInvalidPoolConfig rather than returning an error, since these are
// caller contract violations rather than runtime conditions.
func NewExecutor(coreSize, maxSize int, keepAlive time.Duration, queue BlockingQueue[Task], policy RejectionPolicy, opts ...ExecutorOption) *Executor {
	if coreSize < 0 || maxSize < coreSize || keepAlive < 0 || queue == nil || policy == nil {
		panic(ErrInvalidPoolConfig)
	}

	e := &Executor{
		id:        uuid.NewString(),
		coreSize:  coreSize,
		maxSize:   maxSize,
		keepAlive: keepAlive,
		queue:     queue,
		policy:    policy,
		logger:    simplelogLogger{},
	}
	e.completionCV = sync.NewCond(&e.finishMu)

	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("executor created, id=%v core=%v max=%v", e.id, coreSize, maxSize)
	return e
}

// ID returns the executor's opaque identifier, for log correlation.
func (e *Executor) ID() string {
	return e.id
}

// Submit admits task via the four-step cascade: grow to core, enqueue,
// grow to max, reject. Once Shutdown has been called, every
// submission goes straight to the configured policy rather than
// spawning a worker or touching the queue. It returns ErrRejected iff
// the configured policy is AbortPolicy and no slot was available;
// CallerRunsPolicy may run task synchronously on this goroutine before
// returning.
func (e *Executor) Submit(task Task) error {
	if task == nil {
		panic(ErrNilTask)
	}
	if e.stopping.Load() {
		return e.reject(task)
	}

	// Step 1: grow to core.
	if e.reserveWorker(e.coreSize) {
		e.spawnWorker(fetchBlocking, task)
		return nil
	}

	// Step 2: enqueue.
	if e.queue.Offer(task) {
		// Safety net: core_size == 0 configurations can admit a task
		// into an empty pool with zero live workers to ever pick it
		// back up.
		if e.workerCount.Load() == 0 && e.reserveWorker(e.maxSize) {
			e.spawnWorker(fetchTimed, nil)
		}
		return nil
	}

	// Step 3: grow to max (overflow).
	if e.reserveWorker(e.maxSize) {
		e.spawnWorker(fetchTimed, task)
		return nil
	}

	// Step 4: reject.
	return e.reject(task)
}

// reserveWorker is the compare-and-set loop that lets concurrent
// submitters agree on whether there is still room under limit without
// ever overshooting it.
func (e *Executor) reserveWorker(limit int) bool {
	for {
		cur := e.workerCount.Load()
		if int(cur) >= limit {
			return false
		}
		if e.workerCount.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// spawnWorker starts a worker goroutine only after its slot has
// already been reserved by reserveWorker, and appends its handle to
// workers under workersMu — never while holding any queue-related
// lock, per the deadlock-avoidance rule of never holding workersMu
// while calling into the queue.
func (e *Executor) spawnWorker(strategy fetchStrategy, first Task) {
	w := newWorker(e, strategy)
	e.workersMu.Lock()
	e.workers = append(e.workers, w)
	e.workersMu.Unlock()

	if strategy == fetchBlocking {
		e.logger.Debug("spawning core worker, id=%v", e.id)
	} else {
		e.logger.Debug("spawning overflow worker, id=%v", e.id)
	}
	go w.run(first)
}

// reject invokes the configured policy and, regardless of which
// policy ran, records one settlement against the completion barrier so
// that WaitForCompletion(totalSubmitted) always terminates even when
// every one of those submissions is ultimately rejected.
func (e *Executor) reject(task Task) error {
	err := e.policy.Reject(task, e)
	e.recordCompletion()
	return err
}

func (e *Executor) recordCompletion() {
	e.finishMu.Lock()
	e.finishedCount++
	e.completionCV.Broadcast()
	e.finishMu.Unlock()
}

// WaitForCompletion blocks until n tasks have settled (run, dropped,
// or rejected) and the queue is empty, then resets the counter so the
// barrier can be reused for a subsequent batch.
func (e *Executor) WaitForCompletion(n int) {
	e.finishMu.Lock()
	for !(e.finishedCount == n && e.queue.Empty()) {
		e.completionCV.Wait()
	}
	e.finishedCount = 0
	e.finishMu.Unlock()
}

// IsShutdown reports whether Shutdown has been called. Once true, no
// new worker is ever spawned.
func (e *Executor) IsShutdown() bool {
	return e.stopping.Load()
}

// Shutdown is graceful for running tasks and immediate for
// backlog-draining workers: it marks the pool stopping, closes the
// queue (discarding whatever backlog remains unclaimed), and joins
// every worker this pool has ever spawned. Idempotent.
func (e *Executor) Shutdown() {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}
	e.logger.Debug("shutting down, id=%v", e.id)
	e.queue.Close()

	e.workersMu.Lock()
	workers := make([]*worker, len(e.workers))
	copy(workers, e.workers)
	e.workersMu.Unlock()

	for _, w := range workers {
		<-w.done
	}
	e.logger.Debug("shutdown complete, id=%v", e.id)
}
