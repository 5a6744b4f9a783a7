package worker

import (
	"testing"

	"go.uber.org/atomic"
)

func TestGroupWaitsForEveryFunction(t *testing.T) {
	var (
		g     Group
		count atomic.Int32
	)
	for i := 0; i < 64; i++ {
		g.Go(func() { count.Inc() })
	}
	g.Wait()
	if count.Load() != 64 {
		t.Fatalf("expected 64 functions to run, got %d", count.Load())
	}
}

func TestPanicDoesNotStopWorkers(t *testing.T) {
	var g Group
	for i := 0; i < 8; i++ {
		g.Go(func() { panic("boom") })
	}
	g.Wait()

	var ran atomic.Bool
	g.Go(func() { ran.Store(true) })
	g.Wait()
	if !ran.Load() {
		t.Fatalf("expected workers to keep running after a panic")
	}
}
