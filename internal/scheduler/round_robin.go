package scheduler

import (
	"container/list"
	"fmt"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// RoundRobin grants each ready process at most quantum time units per
// dispatch, cycling through a FIFO queue. Processes that arrive while a slice
// runs, or exactly when it ends, join the queue ahead of the preempted process.
func RoundRobin(procs []process.Process, quantum int64) (Trace, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfiguration, quantum)
	}
	if err := process.Validate(procs); err != nil {
		return nil, err
	}

	e := newEngine(procs)
	queue := list.New()
	enqueue := func(i int) { queue.PushBack(i) }

	for e.pending() || queue.Len() > 0 {
		e.admit(enqueue)
		if queue.Len() == 0 {
			e.idleUntil(e.nextArrival())
			continue
		}

		i := queue.Remove(queue.Front()).(int)
		e.dispatch(i, min(e.procs[i].RemainingTime, quantum))
		if !e.finished(i) {
			e.admit(enqueue)
			enqueue(i)
		}
	}
	return e.trace, nil
}
