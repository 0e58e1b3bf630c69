package scheduler

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// IdlePID marks a Slice during which no process was ready.
const IdlePID int64 = 0

type (
	// Slice is one contiguous interval of the CPU timeline.
	Slice struct {
		PID   int64
		Start int64
		Stop  int64
	}
	// Trace lists the dispatches of a run in time order. It covers
	// [0, makespan] without gaps; idle periods appear as IdlePID slices.
	Trace []Slice
)

func (s Slice) Idle() bool      { return s.PID == IdlePID }
func (s Slice) Duration() int64 { return s.Stop - s.Start }

// engine owns the simulated clock and the admission cursor over an
// arrival-ordered process slice. Policies refer to processes by index.
type engine struct {
	procs []process.Process
	now   int64
	next  int
	trace Trace
}

func newEngine(procs []process.Process) *engine {
	for i := range procs {
		procs[i].Reset()
	}
	return &engine{
		procs: procs,
		trace: make(Trace, 0, len(procs)),
	}
}

// admit passes the index of every not yet admitted process that has arrived
// by now to enqueue, in arrival order.
func (e *engine) admit(enqueue func(int)) {
	for e.next < len(e.procs) && e.procs[e.next].ArrivalTime <= e.now {
		enqueue(e.next)
		e.next++
	}
}

func (e *engine) pending() bool {
	return e.next < len(e.procs)
}

// nextArrival is the arrival time of the next unadmitted process, or
// math.MaxInt64 when all have been admitted.
func (e *engine) nextArrival() int64 {
	if !e.pending() {
		return math.MaxInt64
	}
	return e.procs[e.next].ArrivalTime
}

// idleUntil moves the clock forward to t with the CPU unused.
func (e *engine) idleUntil(t int64) {
	if t <= e.now {
		return
	}
	logrus.Debugf("cpu idle from %d to %d", e.now, t)
	e.trace = append(e.trace, Slice{PID: IdlePID, Start: e.now, Stop: t})
	e.now = t
}

// dispatch runs procs[i] for d time units and finishes it if nothing remains.
func (e *engine) dispatch(i int, d int64) {
	p := &e.procs[i]
	p.Dispatch(e.now, d)
	e.trace = append(e.trace, Slice{PID: p.ID, Start: e.now, Stop: e.now + d})
	e.now += d
	logrus.Debugf("pid %d ran until %d, %d remaining", p.ID, e.now, p.RemainingTime)
	if p.RemainingTime == 0 {
		p.Finish(e.now)
	}
}

func (e *engine) finished(i int) bool {
	return e.procs[i].Finished()
}
