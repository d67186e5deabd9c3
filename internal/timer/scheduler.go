package timer

import (
	"sync"
	"time"
)

// Handle cancels a scheduled recurring callback.
type Handle interface {
	Cancel()
}

// Scheduler runs a callback repeatedly until its handle is cancelled.
// This interface allows the controller to be driven without a wall clock in tests.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// LoopScheduler delivers callbacks as tasks on a single channel. The owner of
// the channel runs each task on its own goroutine, so scheduled callbacks never
// run concurrently with anything else that goroutine does.
//
// Cancel must be called from the goroutine that runs the tasks.
type LoopScheduler struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// NewLoopScheduler creates a LoopScheduler with an unbuffered task queue.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{tasks: make(chan func())}
}

// Tasks returns the queue the owning loop must drain.
func (s *LoopScheduler) Tasks() <-chan func() {
	return s.tasks
}

// Every starts a ticker that enqueues fn once per interval.
func (s *LoopScheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	h := &loopHandle{stopCh: make(chan struct{})}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-h.stopCh:
				return
			case <-ticker.C:
				task := func() {
					// A tick may already be queued when the handle is cancelled.
					if !h.cancelled {
						fn()
					}
				}
				select {
				case s.tasks <- task:
				case <-h.stopCh:
					return
				}
			}
		}
	}()

	return h
}

// Wait blocks until every ticker goroutine started by Every has exited.
func (s *LoopScheduler) Wait() {
	s.wg.Wait()
}

type loopHandle struct {
	stopCh    chan struct{}
	cancelled bool
}

func (h *loopHandle) Cancel() {
	if h.cancelled {
		return
	}
	h.cancelled = true
	close(h.stopCh)
}
