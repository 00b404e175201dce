// Command ratelimited drives the pool with a producer paced by
// golang.org/x/time/rate instead of a fixed sleep between submissions,
// the idiomatic Go way to shape synthetic load.
package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/vearne/threadpool"
)

func main() {
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](8)
	pool := threadpool.NewExecutor(4, 16, 2*time.Second, queue, threadpool.CallerRunsPolicy)
	defer pool.Shutdown()

	limiter := rate.NewLimiter(rate.Limit(50), 5) // 50 submissions/sec, burst 5
	ctx := context.Background()

	var submitted, ran int64
	const total = 200
	for i := 0; i < total; i++ {
		if err := limiter.Wait(ctx); err != nil {
			fmt.Println("limiter wait failed:", err)
			break
		}
		if err := pool.Submit(func() {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&ran, 1)
		}); err != nil {
			fmt.Println("submit rejected:", err)
			continue
		}
		submitted++
	}

	pool.WaitForCompletion(int(submitted))
	fmt.Printf("submitted=%d ran=%d\n", submitted, atomic.LoadInt64(&ran))
}
