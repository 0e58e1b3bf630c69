// Package process holds the per-process record the schedulers operate on,
// plus validation and loading of process lists.
package process

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput is returned when there are no processes to schedule.
	ErrEmptyInput = errors.New("no processes supplied")
	// ErrInvalidProcess is returned by Validate for records no policy can run.
	ErrInvalidProcess = errors.New("invalid process")
	// ErrMalformedSource is returned by Load for unparseable input.
	ErrMalformedSource = errors.New("malformed process source")
)

// Process is one simulated process. ID, ArrivalTime and BurstTime are static;
// the remaining fields are filled in by a scheduling policy.
type Process struct {
	ID            int64
	ArrivalTime   int64
	BurstTime     int64
	RemainingTime int64

	StartTime      int64 // first dispatch
	FinishTime     int64
	WaitingTime    int64
	TurnaroundTime int64

	started  bool
	finished bool
}

// New returns a process that has not arrived yet.
func New(id, arrival, burst int64) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		RemainingTime: burst,
	}
}

// Reset clears everything a policy computed so the record can be simulated again.
func (p *Process) Reset() {
	*p = New(p.ID, p.ArrivalTime, p.BurstTime)
}

// Dispatch grants d units of CPU starting at now.
func (p *Process) Dispatch(now, d int64) {
	if p.finished {
		panic(fmt.Sprintf("process %d dispatched after finishing", p.ID))
	}
	if d <= 0 || d > p.RemainingTime {
		panic(fmt.Sprintf("process %d: dispatch of %d with %d remaining", p.ID, d, p.RemainingTime))
	}
	if !p.started {
		p.started = true
		p.StartTime = now
	}
	p.RemainingTime -= d
}

// Finish records completion at the given time. It may be called once.
func (p *Process) Finish(at int64) {
	if p.finished {
		panic(fmt.Sprintf("process %d finished twice", p.ID))
	}
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("process %d finished with %d remaining", p.ID, p.RemainingTime))
	}
	p.finished = true
	p.FinishTime = at
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

func (p Process) Started() bool  { return p.started }
func (p Process) Finished() bool { return p.finished }

// ResponseTime is the delay between arrival and first dispatch.
func (p Process) ResponseTime() int64 {
	return p.StartTime - p.ArrivalTime
}

// Clone returns an independent copy of ps.
func Clone(ps []Process) []Process {
	out := make([]Process, len(ps))
	copy(out, ps)
	return out
}

// Validate checks that ps is a usable policy input: non-empty, unique positive
// ids, non-negative arrivals, positive bursts, ordered by arrival time, and a
// schedule whose end fits in an int64.
func Validate(ps []Process) error {
	if len(ps) == 0 {
		return ErrEmptyInput
	}
	var (
		seen = make(map[int64]struct{}, len(ps))
		end  int64 // makespan of any policy that never idles with work ready
	)
	for i, p := range ps {
		if p.ID <= 0 {
			return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidProcess, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidProcess, p.ID, p.BurstTime)
		}
		if i > 0 && p.ArrivalTime < ps[i-1].ArrivalTime {
			return fmt.Errorf("%w: process %d arrives at %d, before process %d at %d",
				ErrInvalidProcess, p.ID, p.ArrivalTime, ps[i-1].ID, ps[i-1].ArrivalTime)
		}
		end = max(end, p.ArrivalTime)
		if p.BurstTime > math.MaxInt64-end {
			return fmt.Errorf("%w: process %d would finish beyond the maximum simulated time", ErrInvalidProcess, p.ID)
		}
		end += p.BurstTime
	}
	return nil
}
