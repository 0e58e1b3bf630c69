// Package scheduler simulates dispatching a batch of processes to a single
// CPU under First-Come-First-Served, preemptive Shortest-Remaining-Time and
// Round-Robin policies.
//
// Every policy takes a process slice ordered by arrival time, resets and then
// mutates it in place, and returns the dispatch Trace. Time is simulated:
// the clock jumps over idle gaps instead of stepping one unit at a time.
// Policies share no state, but they write to the records they are given, so
// comparing policies requires independent copies (see Compare).
package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

// ErrInvalidConfiguration is returned for an unknown policy or a non-positive quantum.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Policy names a scheduling algorithm.
type Policy string

const (
	FCFSPolicy       Policy = "fcfs"
	SRTPolicy        Policy = "srt"
	RoundRobinPolicy Policy = "rr"
)

// Policies lists every policy in menu order.
func Policies() []Policy {
	return []Policy{FCFSPolicy, SRTPolicy, RoundRobinPolicy}
}

// ParsePolicy accepts a policy name, a common alias, or its menu number.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "1":
		return FCFSPolicy, nil
	case "srt", "srtf", "2":
		return SRTPolicy, nil
	case "rr", "round-robin", "roundrobin", "3":
		return RoundRobinPolicy, nil
	}
	return "", fmt.Errorf("%w: unknown policy %q", ErrInvalidConfiguration, s)
}

// Title is the human readable name of p.
func (p Policy) Title() string {
	switch p {
	case FCFSPolicy:
		return "First-Come First-Served"
	case SRTPolicy:
		return "Shortest Remaining Time"
	case RoundRobinPolicy:
		return "Round-Robin"
	}
	return string(p)
}

// NeedsQuantum reports whether p reads the quantum argument.
func (p Policy) NeedsQuantum() bool {
	return p == RoundRobinPolicy
}

// Run simulates procs under p. quantum is ignored by policies that do not
// time-slice.
func Run(p Policy, procs []process.Process, quantum int64) (Trace, error) {
	switch p {
	case FCFSPolicy:
		return FCFS(procs)
	case SRTPolicy:
		return SRT(procs)
	case RoundRobinPolicy:
		return RoundRobin(procs, quantum)
	}
	return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfiguration, string(p))
}

// Result is the outcome of one policy in a comparison.
type Result struct {
	Policy    Policy
	Processes []process.Process
	Trace     Trace
}

// Compare runs each policy on its own copy of procs, which is left untouched.
// With no policies given, all of them run.
func Compare(procs []process.Process, quantum int64, policies ...Policy) ([]Result, error) {
	if len(policies) == 0 {
		policies = Policies()
	}
	results := make([]Result, 0, len(policies))
	for _, p := range policies {
		ps := process.Clone(procs)
		trace, err := Run(p, ps, quantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		results = append(results, Result{Policy: p, Processes: ps, Trace: trace})
	}
	return results, nil
}
