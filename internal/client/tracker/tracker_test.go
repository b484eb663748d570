package tracker

import (
	"testing"

	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/stretchr/testify/require"
)

func trackedFiles(names ...string) []*models.TrackedFile {
	files := make([]*models.TrackedFile, 0, len(names))
	for n, name := range names {
		files = append(files, &models.TrackedFile{
			ID:          string(rune('a'+n)) + "-id",
			DisplayName: name,
			Payload:     []byte(name),
		})
	}
	return files
}

func begun(t *testing.T, names ...string) (*Tracker, int) {
	t.Helper()
	tr := New()
	tr.Sync(trackedFiles(names...))
	gen, err := tr.BeginSubmission()
	require.NoError(t, err)
	return tr, gen
}

func TestSync_CreatesPendingRecords(t *testing.T) {
	tr := New()
	tr.Sync(trackedFiles("a.pdf", "b.pdf"))

	recs := tr.Records()
	require.Len(t, recs, 2)
	for _, r := range recs {
		require.Equal(t, models.StatusPending, r.Status)
		require.Zero(t, r.Percent)
	}
}

func TestSync_KeepsExistingRecords(t *testing.T) {
	files := trackedFiles("a.pdf")
	tr := New()
	tr.Sync(files)

	more := append(files, trackedFiles("x.pdf")[0])
	tr.Sync(more)

	recs := tr.Records()
	require.Len(t, recs, 2)
	require.Equal(t, files[0].ID, recs[0].FileID)
}

func TestBeginSubmission_MovesAllProcessingAtOnce(t *testing.T) {
	tr, _ := begun(t, "a.pdf", "b.pdf", "c.pdf")

	for _, r := range tr.Records() {
		require.Equal(t, models.StatusProcessing, r.Status)
	}
}

func TestBeginSubmission_RejectsSecondStart(t *testing.T) {
	tr, _ := begun(t, "a.pdf")

	_, err := tr.BeginSubmission()
	require.Error(t, err)
}

func TestSync_SeedsNewCycleAfterFinishedBatch(t *testing.T) {
	tr, gen := begun(t, "a.pdf")
	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_a.pdf", SourceURL: "u"}})
	require.True(t, tr.Summary().Done())

	// Adding a file after the batch finished starts a fresh cycle: every
	// record is pending again and submission is possible.
	tr.Sync(trackedFiles("a.pdf", "b.pdf"))

	recs := tr.Records()
	require.Len(t, recs, 2)
	for _, r := range recs {
		require.Equal(t, models.StatusPending, r.Status)
		require.Zero(t, r.Percent)
	}

	next, err := tr.BeginSubmission()
	require.NoError(t, err)
	require.NotEqual(t, gen, next)

	// An outcome arriving with the finished cycle's token is ignored.
	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_b.pdf", SourceURL: "u"}})
	for _, r := range tr.Records() {
		require.Equal(t, models.StatusProcessing, r.Status)
	}
}

func TestSync_ResubmitUnchangedSetAfterFinishedBatch(t *testing.T) {
	files := trackedFiles("a.pdf")
	tr := New()
	tr.Sync(files)
	gen, err := tr.BeginSubmission()
	require.NoError(t, err)
	tr.FailAll(gen, "connection refused")

	tr.Sync(files)

	_, err = tr.BeginSubmission()
	require.NoError(t, err)
}

func TestResolve_PartialResponse(t *testing.T) {
	tr, gen := begun(t, "a.pdf", "b.pdf", "c.pdf")

	tr.Resolve(gen, []models.RedactionOutcome{
		{Name: "redacted_a.pdf", SourceURL: "http://svc/files/redacted_a.pdf"},
		{Name: "redacted_c.pdf", SourceURL: "http://svc/files/redacted_c.pdf"},
	})

	recs := tr.Records()
	require.Equal(t, models.StatusCompleted, recs[0].Status)
	require.Equal(t, models.StatusFailed, recs[1].Status)
	require.Equal(t, "not processed by service", recs[1].ErrorMessage)
	require.Equal(t, models.StatusCompleted, recs[2].Status)

	s := tr.Summary()
	require.Equal(t, 2, s.Completed)
	require.Equal(t, 1, s.Failed)
	require.True(t, s.Done())
}

func TestResolve_FilenameCorrelationBeatsOrder(t *testing.T) {
	tr, gen := begun(t, "a.pdf", "b.pdf")

	// response order reversed relative to submission order
	tr.Resolve(gen, []models.RedactionOutcome{
		{Name: "redacted_b.pdf", SourceURL: "u-b"},
		{Name: "redacted_a.pdf", SourceURL: "u-a"},
	})

	recs := tr.Records()
	require.Equal(t, "redacted_a.pdf", recs[0].Outcome.Name)
	require.Equal(t, "redacted_b.pdf", recs[1].Outcome.Name)
}

func TestResolve_PositionalFallbackForUnknownNames(t *testing.T) {
	tr, gen := begun(t, "a.pdf", "b.pdf")

	tr.Resolve(gen, []models.RedactionOutcome{
		{Name: "output-001.pdf", SourceURL: "u-1"},
		{Name: "output-002.pdf", SourceURL: "u-2"},
	})

	recs := tr.Records()
	require.Equal(t, "output-001.pdf", recs[0].Outcome.Name)
	require.Equal(t, "output-002.pdf", recs[1].Outcome.Name)
}

func TestFailAll_NoFileCompletes(t *testing.T) {
	tr, gen := begun(t, "a.pdf", "b.pdf")

	tr.FailAll(gen, "network error")

	s := tr.Summary()
	require.Zero(t, s.Completed)
	require.Equal(t, 2, s.Failed)
	for _, r := range tr.Records() {
		require.Equal(t, "network error", r.ErrorMessage)
	}
}

func TestResolve_StaleGenerationDiscarded(t *testing.T) {
	tr, gen := begun(t, "a.pdf")

	tr.Reset()
	tr.Sync(trackedFiles("b.pdf"))

	// the old submission completes into a discarded state
	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_a.pdf", SourceURL: "u"}})

	recs := tr.Records()
	require.Len(t, recs, 1)
	require.Equal(t, models.StatusPending, recs[0].Status)
}

func TestAdvanceSimulated_MonotonicAndCapped(t *testing.T) {
	tr, gen := begun(t, "a.pdf")

	last := 0
	for n := 0; n < 20; n++ {
		tr.AdvanceSimulated(10)
		p := tr.Records()[0].Percent
		require.GreaterOrEqual(t, p, last)
		require.LessOrEqual(t, p, 95)
		last = p
	}

	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_a.pdf", SourceURL: "u"}})
	require.Equal(t, 100, tr.Records()[0].Percent)
}

func TestAdvanceSimulated_IgnoresTerminalRecords(t *testing.T) {
	tr, gen := begun(t, "a.pdf")
	tr.FailAll(gen, "boom")

	tr.AdvanceSimulated(10)
	require.Equal(t, 100, tr.Records()[0].Percent)
	require.Equal(t, models.StatusFailed, tr.Records()[0].Status)
}

func TestReset_EmptiesEverything(t *testing.T) {
	tr, gen := begun(t, "a.pdf", "b.pdf")
	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_a.pdf", SourceURL: "u"}})

	tr.Reset()
	require.Empty(t, tr.Records())
	require.Equal(t, models.BatchSummary{}, tr.Summary())
}

func TestOutcome_Lookup(t *testing.T) {
	tr, gen := begun(t, "a.pdf")
	tr.Resolve(gen, []models.RedactionOutcome{{Name: "redacted_a.pdf", SourceURL: "u"}})

	o, ok := tr.Outcome(trackedFiles("a.pdf")[0].ID)
	require.True(t, ok)
	require.Equal(t, "u", o.SourceURL)

	_, ok = tr.Outcome("missing")
	require.False(t, ok)
}

func TestOnChange_FiresOnMutation(t *testing.T) {
	tr := New()
	calls := 0
	tr.SetOnChange(func() { calls++ })

	tr.Sync(trackedFiles("a.pdf"))
	_, err := tr.BeginSubmission()
	require.NoError(t, err)
	require.GreaterOrEqual(t, calls, 2)
}
