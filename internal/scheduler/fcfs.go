package scheduler

import "github.com/vinhtrinh326/cpusched/internal/process"

// FCFS runs every process to completion in arrival order. Equal arrival
// times keep their input order.
func FCFS(procs []process.Process) (Trace, error) {
	if err := process.Validate(procs); err != nil {
		return nil, err
	}

	e := newEngine(procs)
	for i := range e.procs {
		e.idleUntil(e.procs[i].ArrivalTime)
		e.dispatch(i, e.procs[i].BurstTime)
	}
	return e.trace, nil
}
