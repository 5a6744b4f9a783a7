package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run calls f, reporting a panic to sentry instead of taking the worker down.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on one of the workers. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Group runs functions on the workers and waits for them to return.
type Group struct {
	wg sync.WaitGroup
}

// Go queues f to run on one of the workers. It must not be called from a function running on a worker.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	Submit(func() {
		defer g.wg.Done()
		f()
	})
}

// Wait blocks until every function passed to Go returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
