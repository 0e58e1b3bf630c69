package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// newProcs builds arrival-ordered processes from (arrival, burst) pairs.
func newProcs(pairs ...[2]int64) []process.Process {
	ps := make([]process.Process, len(pairs))
	for i, p := range pairs {
		ps[i] = process.New(int64(i+1), p[0], p[1])
	}
	return ps
}

func finishTimes(ps []process.Process) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.FinishTime
	}
	return out
}

func waitingTimes(ps []process.Process) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.WaitingTime
	}
	return out
}

// dispatchOrder lists the pid of every non-idle slice.
func dispatchOrder(trace Trace) []int64 {
	var out []int64
	for _, s := range trace {
		if !s.Idle() {
			out = append(out, s.PID)
		}
	}
	return out
}

// assertCompleted checks the properties every policy must leave behind.
func assertCompleted(t *testing.T, ps []process.Process, trace Trace) {
	t.Helper()

	for _, p := range ps {
		assert.True(t, p.Finished(), "pid %d not finished", p.ID)
		assert.Zero(t, p.RemainingTime, "pid %d", p.ID)
		assert.GreaterOrEqual(t, p.FinishTime, p.ArrivalTime+p.BurstTime, "pid %d finished too early", p.ID)
		assert.Equal(t, p.FinishTime-p.ArrivalTime, p.TurnaroundTime, "pid %d", p.ID)
		assert.Equal(t, p.TurnaroundTime, p.WaitingTime+p.BurstTime, "pid %d", p.ID)
		assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime, "pid %d started before arriving", p.ID)
	}

	require.NotEmpty(t, trace)
	assert.Equal(t, int64(0), trace[0].Start)

	busy := make(map[int64]int64)
	var last int64
	for i, s := range trace {
		assert.Positive(t, s.Duration(), "slice %d", i)
		if i > 0 {
			assert.Equal(t, trace[i-1].Stop, s.Start, "slice %d not contiguous", i)
		}
		if !s.Idle() {
			busy[s.PID] += s.Duration()
		}
		last = s.Stop
	}

	var makespan int64
	for _, p := range ps {
		assert.Equal(t, p.BurstTime, busy[p.ID], "pid %d cpu time", p.ID)
		makespan = max(makespan, p.FinishTime)
	}
	assert.Equal(t, makespan, last)
}
