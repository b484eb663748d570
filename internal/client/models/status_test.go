package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition_ForwardOnly(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{"", StatusPending, true},
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},

		// never backward
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusFailed, StatusPending, false},

		// no skipping
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusFailed, false},
		{"", StatusProcessing, false},

		// terminal states are final
		{StatusCompleted, StatusFailed, false},
		{StatusFailed, StatusCompleted, false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%q -> %q", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	require.True(t, IsTerminal(StatusCompleted))
	require.True(t, IsTerminal(StatusFailed))
	require.False(t, IsTerminal(StatusPending))
	require.False(t, IsTerminal(StatusProcessing))
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed} {
		require.True(t, IsKnownStatus(s))
	}
	require.False(t, IsKnownStatus("running"))
}

func TestProgressRecord_Transition(t *testing.T) {
	r := &ProgressRecord{FileID: "f1", Filename: "a.pdf"}

	require.NoError(t, r.Transition(StatusPending))
	require.NoError(t, r.Transition(StatusProcessing))
	require.NoError(t, r.Transition(StatusCompleted))

	err := r.Transition(StatusFailed)
	require.Error(t, err)
	require.Equal(t, StatusCompleted, r.Status, "failed transition must not change status")
}

func TestBatchSummary_Done(t *testing.T) {
	require.False(t, BatchSummary{}.Done(), "empty batch is not done")
	require.False(t, BatchSummary{Total: 3, Completed: 2}.Done())
	require.True(t, BatchSummary{Total: 3, Completed: 2, Failed: 1}.Done())
}
