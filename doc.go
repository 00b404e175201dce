// Package threadpool implements a bounded, core+overflow thread pool
// executor: a fixed number of core workers, a bounded blocking backlog
// queue, a capped number of short-lived overflow workers, and a
// configurable rejection policy for the case where all of that is
// exhausted.
package threadpool
