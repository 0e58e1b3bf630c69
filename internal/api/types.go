package api

import (
	"github.com/vinhtrinh326/cpusched/internal/metrics"
	"github.com/vinhtrinh326/cpusched/internal/process"
	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

type Job struct {
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
}

type ScheduleRequest struct {
	Processes []Job  `json:"processes"`
	Quantum   *int64 `json:"quantum"` // omitted falls back to the server default
}

type ProcessResponse struct {
	ProcessID      int64 `json:"process_id"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	StartTime      int64 `json:"start_time"`
	FinishTime     int64 `json:"finish_time"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	ResponseTime   int64 `json:"response_time"`
}

type SliceResponse struct {
	ProcessID int64 `json:"process_id"` // 0 while idle
	Start     int64 `json:"start"`
	Stop      int64 `json:"stop"`
}

type SummaryResponse struct {
	TotalBurst            int64   `json:"total_burst"`
	Makespan              int64   `json:"makespan"`
	IdleTime              int64   `json:"idle_time"`
	CPUUtilization        float64 `json:"cpu_utilization"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	Throughput            float64 `json:"throughput"`
}

type ScheduleResponse struct {
	Policy  string            `json:"policy"`
	Title   string            `json:"title"`
	Quantum int64             `json:"quantum,omitempty"`
	Details []ProcessResponse `json:"details"`
	Gantt   []SliceResponse   `json:"gantt"`
	Summary SummaryResponse   `json:"summary"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toProcesses(jobs []Job) []process.Process {
	ps := make([]process.Process, len(jobs))
	for i, j := range jobs {
		ps[i] = process.New(int64(i+1), j.ArrivalTime, j.BurstTime)
	}
	return ps
}

func newScheduleResponse(p scheduler.Policy, quantum int64, ps []process.Process, trace scheduler.Trace, s metrics.Summary) ScheduleResponse {
	resp := ScheduleResponse{
		Policy:  string(p),
		Title:   p.Title(),
		Details: make([]ProcessResponse, len(ps)),
		Gantt:   make([]SliceResponse, len(trace)),
		Summary: SummaryResponse{
			TotalBurst:            s.TotalBurst,
			Makespan:              s.Makespan,
			IdleTime:              s.IdleTime,
			CPUUtilization:        s.Utilization,
			AverageWaitingTime:    s.AvgWaiting,
			AverageTurnaroundTime: s.AvgTurnaround,
			AverageResponseTime:   s.AvgResponse,
			Throughput:            s.Throughput,
		},
	}
	if p.NeedsQuantum() {
		resp.Quantum = quantum
	}
	for i, pr := range ps {
		resp.Details[i] = ProcessResponse{
			ProcessID:      pr.ID,
			ArrivalTime:    pr.ArrivalTime,
			BurstTime:      pr.BurstTime,
			StartTime:      pr.StartTime,
			FinishTime:     pr.FinishTime,
			WaitingTime:    pr.WaitingTime,
			TurnaroundTime: pr.TurnaroundTime,
			ResponseTime:   pr.ResponseTime(),
		}
	}
	for i, sl := range trace {
		resp.Gantt[i] = SliceResponse{ProcessID: sl.PID, Start: sl.Start, Stop: sl.Stop}
	}
	return resp
}
