package main

/*
When there are many tasks to be executed, a large number of task
parameters accumulate in memory if the producer outruns the pool.
Fire-and-forget submission avoids the further blow-up a result-per-task
future list would add on top of that.
*/

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/vearne/threadpool"
)

const dataFilePath = "/tmp/data.csv"

func main() {
	genDataCSV()

	queue := threadpool.NewArrayBoundedQueue[threadpool.Task](256)
	pool := threadpool.NewExecutor(50, 200, 10*time.Second, queue, threadpool.CallerRunsPolicy)

	var submitted, processed, sumOfSquares int64

	file, err := os.Open(dataFilePath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	for {
		rec, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		param, _ := strconv.Atoi(rec[0])
		if err := pool.Submit(func() {
			atomic.AddInt64(&sumOfSquares, int64(param*param))
			atomic.AddInt64(&processed, 1)
		}); err != nil {
			log.Fatal(err)
		}
		submitted++
	}

	pool.WaitForCompletion(int(submitted))
	pool.Shutdown()

	log.Printf("processed %d rows, sum of squares = %d", atomic.LoadInt64(&processed), atomic.LoadInt64(&sumOfSquares))
}

func genDataCSV() {
	file, err := os.Create(dataFilePath)
	if err != nil {
		log.Fatalln("failed to open file", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()
	for i := 0; i < 100001; i++ {
		row := []string{strconv.Itoa(i)}
		if err := w.Write(row); err != nil {
			log.Fatalln("error writing record to file", err)
		}
	}
}
