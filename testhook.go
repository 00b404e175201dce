package threadpool

import "fmt"

// CheckInvariants is a white-box assertion usable from tests: the
// worker count must never exceed maxSize, and the queue's remaining
// capacity must never go negative.
func CheckInvariants(e *Executor) error {
	wc := e.workerCount.Load()
	if wc < 0 || int(wc) > e.maxSize {
		return fmt.Errorf("threadpool: worker count %d out of bounds [0,%d]", wc, e.maxSize)
	}
	if rc := e.queue.RemainingCapacity(); rc < 0 {
		return fmt.Errorf("threadpool: queue remaining capacity %d is negative", rc)
	}
	if l := e.queue.Len(); l < 0 || l > e.queue.Capacity() {
		return fmt.Errorf("threadpool: queue length %d out of bounds [0,%d]", l, e.queue.Capacity())
	}
	return nil
}
