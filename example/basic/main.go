package main

import (
	"fmt"
	"time"

	"github.com/vearne/threadpool"
)

func main() {
	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](10)
	pool := threadpool.NewExecutor(4, 10, 5*time.Second, queue, threadpool.CallerRunsPolicy)

	var results [100]int
	for i := 0; i < 100; i++ {
		i := i
		err := pool.Submit(func() {
			time.Sleep(50 * time.Millisecond)
			results[i] = i * i
		})
		if err != nil {
			fmt.Println("submit failed:", err)
		}
	}

	pool.WaitForCompletion(100)
	pool.Shutdown()

	fmt.Println("last result:", results[99])
}
