package scheduler

import (
	"container/heap"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// readyHeap orders ready processes by remaining time, then arrival time,
// then id.
type readyHeap struct {
	procs []process.Process
	idx   []int
}

func (h *readyHeap) Len() int { return len(h.idx) }

func (h *readyHeap) Less(i, j int) bool {
	pi, pj := &h.procs[h.idx[i]], &h.procs[h.idx[j]]
	if pi.RemainingTime != pj.RemainingTime {
		return pi.RemainingTime < pj.RemainingTime
	}
	if pi.ArrivalTime != pj.ArrivalTime {
		return pi.ArrivalTime < pj.ArrivalTime
	}
	return pi.ID < pj.ID
}

func (h *readyHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *readyHeap) Push(x any) { h.idx = append(h.idx, x.(int)) }

func (h *readyHeap) Pop() any {
	old := h.idx
	n := len(old)
	i := old[n-1]
	h.idx = old[:n-1]
	return i
}

// SRT is preemptive shortest-remaining-time scheduling. The selected process
// runs until it finishes or the next arrival, whichever comes first, and is
// then reconsidered against everything ready.
func SRT(procs []process.Process) (Trace, error) {
	if err := process.Validate(procs); err != nil {
		return nil, err
	}

	e := newEngine(procs)
	ready := &readyHeap{procs: e.procs}
	push := func(i int) { heap.Push(ready, i) }

	for e.pending() || ready.Len() > 0 {
		e.admit(push)
		if ready.Len() == 0 {
			e.idleUntil(e.nextArrival())
			continue
		}

		i := heap.Pop(ready).(int)
		e.dispatch(i, min(e.procs[i].RemainingTime, e.nextArrival()-e.now))
		if !e.finished(i) {
			push(i)
		}
	}
	return e.trace, nil
}
