// Package parallel runs independent render tasks across a bounded set of
// goroutines.
//
// The package implements the one scheduling shape band rendering needs: a
// fixed list of tasks, a worker bound, and a join that never returns before
// every spawned goroutine has exited, on success and failure paths alike.
// Tasks own disjoint data by construction, so the package provides no
// synchronization beyond the final join.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// taskPanic records the first recovered task panic.
type taskPanic struct {
	index int
	value any
}

// Run executes every task, striping them across at most workers goroutines,
// and blocks until all of them have finished. If workers is 0 or negative,
// GOMAXPROCS is used; at most one goroutine per task is ever spawned.
//
// A panicking task does not take down the process and does not starve the
// join: the panic is recovered, the worker moves on to its remaining tasks,
// and after the join the first recovered value is returned as an error.
// Run never returns while any of its goroutines is still running.
func Run(workers int, tasks []func()) error {
	if len(tasks) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(tasks))

	var (
		first atomic.Pointer[taskPanic]
		wg    sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := w; i < len(tasks); i += workers {
				runTask(i, tasks[i], &first)
			}
		}()
	}
	wg.Wait()

	if p := first.Load(); p != nil {
		return fmt.Errorf("task %d panicked: %v", p.index, p.value)
	}
	return nil
}

// runTask executes one task, converting a panic into the group's first
// recorded failure.
func runTask(index int, task func(), first *atomic.Pointer[taskPanic]) {
	defer func() {
		if r := recover(); r != nil {
			first.CompareAndSwap(nil, &taskPanic{index: index, value: r})
		}
	}()
	task()
}
