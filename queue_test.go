package threadpool

import (
	"sync"
	"testing"
	"time"
)

func TestArrayBoundedQueueOfferPollIsFIFO(t *testing.T) {
	q := NewArrayBoundedQueue[int](4)
	for i := 0; i < 4; i++ {
		if !q.Offer(i) {
			t.Fatalf("Offer(%d) unexpectedly failed", i)
		}
	}
	if q.Offer(4) {
		t.Fatalf("Offer succeeded past capacity")
	}
	for i := 0; i < 4; i++ {
		v, ok := q.Poll()
		if !ok || v != i {
			t.Fatalf("Poll() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Fatalf("Poll() on empty queue returned ok=true")
	}
}

func TestArrayBoundedQueueOfferThenPollIdentity(t *testing.T) {
	q := NewArrayBoundedQueue[string](1)
	if !q.Offer("x") {
		t.Fatal("Offer failed")
	}
	v, ok := q.Poll()
	if !ok || v != "x" {
		t.Fatalf("got (%q, %v)", v, ok)
	}
}

func TestArrayBoundedQueuePeekDoesNotRemove(t *testing.T) {
	q := NewArrayBoundedQueue[int](2)
	q.Offer(7)
	v, ok := q.Peek()
	if !ok || v != 7 {
		t.Fatalf("Peek() = (%d, %v)", v, ok)
	}
	if q.Len() != 1 {
		t.Fatalf("Peek() removed the item, Len()=%d", q.Len())
	}
}

func TestArrayBoundedQueueCapacityZeroIsRendezvousOnly(t *testing.T) {
	q := NewArrayBoundedQueue[int](0)
	if q.Offer(1) {
		t.Fatal("Offer on capacity-0 queue should always fail")
	}
	if q.RemainingCapacity() != 0 {
		t.Fatalf("RemainingCapacity() = %d, want 0", q.RemainingCapacity())
	}

	done := make(chan struct{})
	go func() {
		v, ok := q.Take()
		if ok || v != 0 {
			t.Errorf("Take() after close on empty rendezvous queue = (%d, %v)", v, ok)
		}
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Take() did not wake up after Close()")
	}
}

func TestArrayBoundedQueuePutBlocksUntilSpaceThenSucceeds(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	q.Offer(1)

	putDone := make(chan error, 1)
	go func() {
		putDone <- q.Put(2)
	}()

	select {
	case <-putDone:
		t.Fatal("Put() returned before space was available")
	case <-time.After(30 * time.Millisecond):
	}

	if _, ok := q.Poll(); !ok {
		t.Fatal("Poll() failed to free a slot")
	}

	select {
	case err := <-putDone:
		if err != nil {
			t.Fatalf("Put() returned error %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Put() never unblocked after space freed")
	}
}

func TestArrayBoundedQueuePutReturnsErrQueueClosedWhileBlocked(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	q.Offer(1)

	putDone := make(chan error, 1)
	go func() {
		putDone <- q.Put(2)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case err := <-putDone:
		if err != ErrQueueClosed {
			t.Fatalf("Put() returned %v, want ErrQueueClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Put() never unblocked after Close()")
	}
}

func TestArrayBoundedQueueTakeDrainsBeforeReportingClosed(t *testing.T) {
	q := NewArrayBoundedQueue[int](4)
	q.Offer(1)
	q.Offer(2)
	q.Close()

	for _, want := range []int{1, 2} {
		v, ok := q.Take()
		if !ok || v != want {
			t.Fatalf("Take() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	v, ok := q.Take()
	if ok {
		t.Fatalf("Take() on drained, closed queue returned (%d, true)", v)
	}
}

func TestArrayBoundedQueueCloseIsIdempotent(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	q.Close()
	q.Close()
	if q.Offer(1) {
		t.Fatal("Offer succeeded on a closed queue")
	}
}

func TestArrayBoundedQueuePollTimeoutExpires(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	start := time.Now()
	_, ok := q.PollTimeout(30 * time.Millisecond)
	elapsed := time.Since(start)
	if ok {
		t.Fatal("PollTimeout() on empty queue returned ok=true")
	}
	if elapsed < 25*time.Millisecond {
		t.Fatalf("PollTimeout() returned too early: %v", elapsed)
	}
}

func TestArrayBoundedQueuePollTimeoutWakesOnOffer(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		q.Offer(42)
	}()

	v, ok := q.PollTimeout(time.Second)
	wg.Wait()
	if !ok || v != 42 {
		t.Fatalf("PollTimeout() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestArrayBoundedQueueOfferTimeoutExpiresWithoutDuplicateAppend(t *testing.T) {
	q := NewArrayBoundedQueue[int](1)
	q.Offer(1)

	ok := q.OfferTimeout(2, 20*time.Millisecond)
	if ok {
		t.Fatal("OfferTimeout() on a full queue reported success")
	}
	if q.Len() != 1 {
		t.Fatalf("queue length = %d, want 1 (no duplicate append on timeout)", q.Len())
	}
}

func TestArrayBoundedQueueRemainingCapacityNeverNegative(t *testing.T) {
	q := NewArrayBoundedQueue[int](3)
	for i := 0; i < 3; i++ {
		q.Offer(i)
	}
	if rc := q.RemainingCapacity(); rc != 0 {
		t.Fatalf("RemainingCapacity() = %d, want 0", rc)
	}
}
