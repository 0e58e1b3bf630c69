package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtrinh326/cpusched/internal/process"
)

func TestSRT_ShorterReadyProcessRunsFirst(t *testing.T) {
	ps := newProcs([2]int64{0, 5}, [2]int64{0, 3})

	trace, err := SRT(ps)
	require.NoError(t, err)

	assert.Equal(t, []int64{8, 3}, finishTimes(ps))
	assert.Equal(t, []int64{3, 0}, waitingTimes(ps))
	assert.Equal(t, []int64{2, 1}, dispatchOrder(trace))
	assertCompleted(t, ps, trace)
}

func TestSRT_Preemption(t *testing.T) {
	ps := newProcs([2]int64{0, 8}, [2]int64{1, 4}, [2]int64{2, 9}, [2]int64{3, 5})

	trace, err := SRT(ps)
	require.NoError(t, err)

	assert.Equal(t, []int64{17, 5, 26, 10}, finishTimes(ps))
	assert.Equal(t, []int64{9, 0, 15, 2}, waitingTimes(ps))
	assert.Equal(t, Trace{
		{PID: 1, Start: 0, Stop: 1},
		{PID: 2, Start: 1, Stop: 2},
		{PID: 2, Start: 2, Stop: 3},
		{PID: 2, Start: 3, Stop: 5},
		{PID: 4, Start: 5, Stop: 10},
		{PID: 1, Start: 10, Stop: 17},
		{PID: 3, Start: 17, Stop: 26},
	}, trace)
	assertCompleted(t, ps, trace)
}

func TestSRT_ArrivalDoesNotPreemptShorterRunner(t *testing.T) {
	ps := newProcs([2]int64{0, 2}, [2]int64{1, 6})

	_, err := SRT(ps)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 8}, finishTimes(ps))
}

func TestSRT_TieBreaks(t *testing.T) {
	tests := []struct {
		name       string
		ps         []process.Process
		wantFinish []int64
	}{
		{
			name:       "same remaining same arrival: lower id first",
			ps:         newProcs([2]int64{0, 3}, [2]int64{0, 3}),
			wantFinish: []int64{3, 6},
		},
		{
			name:       "same remaining: earlier arrival keeps the cpu",
			ps:         newProcs([2]int64{0, 4}, [2]int64{1, 3}),
			wantFinish: []int64{4, 7},
		},
		{
			name: "same remaining same arrival: id order regardless of position",
			ps: []process.Process{
				process.New(7, 0, 2),
				process.New(3, 0, 2),
			},
			wantFinish: []int64{4, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, err := SRT(tt.ps)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFinish, finishTimes(tt.ps))
			assertCompleted(t, tt.ps, trace)
		})
	}
}

func TestSRT_IdleGaps(t *testing.T) {
	ps := newProcs([2]int64{2, 3}, [2]int64{10, 1})

	trace, err := SRT(ps)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 11}, finishTimes(ps))
	assert.Equal(t, Trace{
		{PID: IdlePID, Start: 0, Stop: 2},
		{PID: 1, Start: 2, Stop: 5},
		{PID: IdlePID, Start: 5, Stop: 10},
		{PID: 2, Start: 10, Stop: 11},
	}, trace)
}

func TestSRT_RejectsEmptyInput(t *testing.T) {
	_, err := SRT([]process.Process{})
	assert.ErrorIs(t, err, process.ErrEmptyInput)
}
