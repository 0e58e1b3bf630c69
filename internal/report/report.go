// Package report renders scheduling results as text: a title banner, a Gantt
// chart and a schedule table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vinhtrinh326/cpusched/internal/metrics"
	"github.com/vinhtrinh326/cpusched/internal/process"
	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

// Write renders the full report for one policy run.
func Write(w io.Writer, title string, ps []process.Process, trace scheduler.Trace, showGantt bool) error {
	s, err := metrics.Summarize(ps)
	if err != nil {
		return err
	}
	Title(w, title)
	if showGantt {
		Gantt(w, trace)
	}
	Schedule(w, ps, s)
	return nil
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Merge joins adjacent slices of the same process. Consecutive dispatches of
// one process show as a single bar.
func Merge(trace scheduler.Trace) scheduler.Trace {
	out := make(scheduler.Trace, 0, len(trace))
	for _, s := range trace {
		if n := len(out); n > 0 && out[n-1].PID == s.PID && out[n-1].Stop == s.Start {
			out[n-1].Stop = s.Stop
			continue
		}
		out = append(out, s)
	}
	return out
}

func Gantt(w io.Writer, trace scheduler.Trace) {
	gantt := Merge(trace)

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := "idle"
		if !gantt[i].Idle() {
			label = fmt.Sprintf("P%d", gantt[i].PID)
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func Schedule(w io.Writer, ps []process.Process, s metrics.Summary) {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Finish", "Waiting", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput),
		fmt.Sprintf("Average\n%.2f", s.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", s.AvgTurnaround)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n\n", s.Utilization)
}
