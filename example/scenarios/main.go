// Command scenarios runs a handful of end-to-end scenarios that
// exercise core growth, overflow growth, and the DiscardOldest, Discard
// and Abort rejection policies, so the pool's behavior can be
// sanity-checked by eye. CallerRunsPolicy is not exercised here.
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vearne/threadpool"
)

func main() {
	scenario1BasicSaturationDiscardOldest()
	scenario2ZeroCapacityAllOverflow()
	scenario3BarrierReuse()
	scenario4AbortSurfacing()
	scenario5ShutdownDrainsWorkers()
	scenario6FIFOUnderContention()
}

// S1 — core=2, max=4, keep_alive=3s, capacity=2, DiscardOldest.
func scenario1BasicSaturationDiscardOldest() {
	fmt.Println("=== S1: basic saturation, DiscardOldest ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](2)
	pool := threadpool.NewExecutor(2, 4, 3*time.Second, queue, threadpool.DiscardOldestPolicy)

	for i := 0; i < 9; i++ {
		i := i
		pool.Submit(func() {
			time.Sleep(4 * time.Second)
			fmt.Printf("S1 task %d done\n", i)
		})
		time.Sleep(500 * time.Millisecond)
	}

	time.Sleep(16 * time.Second)
	pool.Shutdown()
}

// S2 — core=0, max=4, keep_alive=200ms, capacity=0, Discard.
func scenario2ZeroCapacityAllOverflow() {
	fmt.Println("=== S2: zero capacity, all overflow ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](0)
	pool := threadpool.NewExecutor(0, 4, 200*time.Millisecond, queue, threadpool.DiscardPolicy)

	for i := 0; i < 6; i++ {
		i := i
		pool.Submit(func() {
			time.Sleep(100 * time.Millisecond)
			fmt.Printf("S2 task %d done\n", i)
		})
	}

	time.Sleep(300 * time.Millisecond)
	pool.Shutdown()
}

// S3 — core=2, max=4, capacity=2, DiscardOldest, three iterations of
// {submit 6 zero-duration tasks; WaitForCompletion(6)}.
func scenario3BarrierReuse() {
	fmt.Println("=== S3: barrier reuse ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](2)
	pool := threadpool.NewExecutor(2, 4, time.Second, queue, threadpool.DiscardOldestPolicy)
	defer pool.Shutdown()

	for iter := 0; iter < 3; iter++ {
		var done int32
		for i := 0; i < 6; i++ {
			pool.Submit(func() {
				atomic.AddInt32(&done, 1)
			})
		}
		pool.WaitForCompletion(6)
		if err := threadpool.CheckInvariants(pool); err != nil {
			fmt.Println("invariant violation:", err)
		}
		fmt.Printf("S3 iteration %d settled, done=%d\n", iter, atomic.LoadInt32(&done))
	}
}

// S4 — core=1, max=1, capacity=1, Abort, submit 3 blocking tasks
// rapidly.
func scenario4AbortSurfacing() {
	fmt.Println("=== S4: Abort surfacing ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](1)
	pool := threadpool.NewExecutor(1, 1, time.Second, queue, threadpool.AbortPolicy)
	defer pool.Shutdown()

	for i := 0; i < 3; i++ {
		i := i
		err := pool.Submit(func() {
			time.Sleep(500 * time.Millisecond)
			fmt.Printf("S4 task %d ran\n", i)
		})
		fmt.Printf("S4 submit %d -> %v\n", i, err)
	}
}

// S5 — submit 10 long tasks (two start on the core workers, eight wait
// in the queue), then shut down.
func scenario5ShutdownDrainsWorkers() {
	fmt.Println("=== S5: shutdown drains workers ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](10)
	pool := threadpool.NewExecutor(2, 2, time.Second, queue, threadpool.DiscardPolicy)

	for i := 0; i < 10; i++ {
		pool.Submit(func() {
			time.Sleep(5 * time.Second)
		})
	}

	start := time.Now()
	pool.Shutdown()
	fmt.Printf("S5 shutdown returned after %v\n", time.Since(start))
}

// S6 — single-worker pool, capacity 1000, enqueue 0..999 from one
// producer; they must run in strictly ascending order.
func scenario6FIFOUnderContention() {
	fmt.Println("=== S6: FIFO under contention ===")
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](1000)
	pool := threadpool.NewExecutor(1, 1, time.Second, queue, threadpool.AbortPolicy)
	defer pool.Shutdown()

	order := make([]int, 0, 1000)
	orderCh := make(chan int, 1000)
	for i := 0; i < 1000; i++ {
		i := i
		if err := pool.Submit(func() { orderCh <- i }); err != nil {
			fmt.Println("S6 unexpected rejection:", err)
		}
	}
	pool.WaitForCompletion(1000)
	close(orderCh)
	for v := range orderCh {
		order = append(order, v)
	}

	fifo := true
	for i, v := range order {
		if v != i {
			fifo = false
			break
		}
	}
	fmt.Println("S6 FIFO preserved:", fifo)
}
