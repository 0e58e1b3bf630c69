// Package metrics aggregates per-process results of a scheduling run.
package metrics

import (
	"errors"
	"fmt"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// ErrUnfinished is returned by Summarize when a process has not completed.
var ErrUnfinished = errors.New("process has not finished")

// Summary holds the aggregate statistics of one run.
type Summary struct {
	Count         int
	TotalBurst    int64
	Makespan      int64 // latest finish time
	IdleTime      int64
	Utilization   float64 // percent of [0, Makespan] the CPU was busy
	AvgWaiting    float64
	AvgTurnaround float64
	AvgResponse   float64
	Throughput    float64 // processes completed per time unit
}

// Summarize computes the Summary of finished processes.
func Summarize(ps []process.Process) (Summary, error) {
	if len(ps) == 0 {
		return Summary{}, process.ErrEmptyInput
	}

	var (
		s               = Summary{Count: len(ps)}
		totalWait       int64
		totalTurnaround int64
		totalResponse   int64
	)
	for _, p := range ps {
		if !p.Finished() {
			return Summary{}, fmt.Errorf("%w: pid %d", ErrUnfinished, p.ID)
		}
		s.TotalBurst += p.BurstTime
		s.Makespan = max(s.Makespan, p.FinishTime)
		totalWait += p.WaitingTime
		totalTurnaround += p.TurnaroundTime
		totalResponse += p.ResponseTime()
	}

	count := float64(s.Count)
	s.IdleTime = s.Makespan - s.TotalBurst
	s.Utilization = float64(s.TotalBurst) / float64(s.Makespan) * 100
	s.AvgWaiting = float64(totalWait) / count
	s.AvgTurnaround = float64(totalTurnaround) / count
	s.AvgResponse = float64(totalResponse) / count
	s.Throughput = count / float64(s.Makespan)
	return s, nil
}
