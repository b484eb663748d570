// Package tracker records the per-file lifecycle of a batch cycle and
// derives the aggregate progress view.
package tracker

import (
	"strings"
	"sync"

	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/common"
)

const notProcessedMessage = "not processed by service"

// simulatedCap is where the feedback animation parks until a real
// terminal state sets 100.
const simulatedCap = 95

// Tracker is the per-entry state machine over one batch cycle. All
// mutation methods that follow a submission take the generation token
// returned by BeginSubmission; calls carrying a stale generation are
// ignored, so a submission completing after Reset lands in a discarded
// state instead of corrupting the next cycle.
type Tracker struct {
	mu       sync.Mutex
	gen      int
	records  []*models.ProgressRecord
	onChange func()
}

func New() *Tracker {
	return &Tracker{}
}

// SetOnChange registers a single state-changed hook for the presentation
// layer. The hook runs outside the tracker lock.
func (t *Tracker) SetOnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

func (t *Tracker) notify() {
	t.mu.Lock()
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Sync rebuilds pending records from the current tracked-file set. It is
// called whenever intake changes between submissions; records of files
// already mid-cycle are kept untouched once any record left pending.
// Once every record is terminal the cycle is over, and the next sync
// seeds a fresh pending set instead of carrying the finished records —
// that is how adding files after a completed batch starts a new cycle.
func (t *Tracker) Sync(files []*models.TrackedFile) {
	t.mu.Lock()
	if t.allTerminalLocked() {
		t.gen++
		t.records = nil
	}

	byID := make(map[string]*models.ProgressRecord, len(t.records))
	for _, r := range t.records {
		byID[r.FileID] = r
	}

	records := make([]*models.ProgressRecord, 0, len(files))
	for _, f := range files {
		if r, ok := byID[f.ID]; ok {
			records = append(records, r)
			continue
		}
		r := &models.ProgressRecord{FileID: f.ID, Filename: f.DisplayName, Status: models.StatusPending}
		records = append(records, r)
	}
	t.records = records
	t.mu.Unlock()

	t.notify()
}

// allTerminalLocked reports whether a finished cycle is present: at
// least one record, all of them terminal. Caller holds t.mu.
func (t *Tracker) allTerminalLocked() bool {
	if len(t.records) == 0 {
		return false
	}
	for _, r := range t.records {
		if !models.IsTerminal(r.Status) {
			return false
		}
	}
	return true
}

// BeginSubmission moves every tracked file pending -> processing as a
// batch and returns the generation token for this cycle's follow-ups.
// The transport call is one request for the whole batch, so the records
// move together, not staggered.
func (t *Tracker) BeginSubmission() (int, error) {
	t.mu.Lock()
	for _, r := range t.records {
		if !models.CanTransition(r.Status, models.StatusProcessing) {
			t.mu.Unlock()
			return 0, common.ErrorInvalidTransition
		}
	}
	for _, r := range t.records {
		r.Status = models.StatusProcessing
		r.Percent = 0
	}
	gen := t.gen
	t.mu.Unlock()

	t.notify()
	return gen, nil
}

// Resolve correlates the returned outcomes onto the processing records.
// Correlated records become completed; records with no outcome become
// failed with a generic message. Correlation is filename-based first
// (exact match, or match after stripping the redacted_ prefix,
// case-insensitive); outcomes matching nothing are assigned in response
// order to the records still waiting.
func (t *Tracker) Resolve(gen int, outcomes []models.RedactionOutcome) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}

	open := make([]*models.ProgressRecord, 0, len(t.records))
	for _, r := range t.records {
		if r.Status == models.StatusProcessing {
			open = append(open, r)
		}
	}

	matched := make(map[*models.ProgressRecord]models.RedactionOutcome, len(outcomes))
	var unmatched []models.RedactionOutcome

	for _, o := range outcomes {
		var hit *models.ProgressRecord
		for _, r := range open {
			if _, ok := matched[r]; ok {
				continue
			}
			if namesCorrelate(o.Name, r.Filename) {
				hit = r
				break
			}
		}
		if hit != nil {
			matched[hit] = o
		} else {
			unmatched = append(unmatched, o)
		}
	}

	// Positional fallback for outcomes the filename rule could not place.
	for _, o := range unmatched {
		for _, r := range open {
			if _, ok := matched[r]; !ok {
				matched[r] = o
				break
			}
		}
	}

	for _, r := range open {
		if o, ok := matched[r]; ok {
			out := o
			r.Status = models.StatusCompleted
			r.Percent = 100
			r.Outcome = &out
		} else {
			r.Status = models.StatusFailed
			r.Percent = 100
			r.ErrorMessage = notProcessedMessage
		}
	}
	t.mu.Unlock()

	t.notify()
}

// FailAll marks every processing record failed with the given message.
// Used when the batch call itself failed: no file may reach completed.
func (t *Tracker) FailAll(gen int, message string) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	for _, r := range t.records {
		if r.Status == models.StatusProcessing {
			r.Status = models.StatusFailed
			r.Percent = 100
			r.ErrorMessage = message
		}
	}
	t.mu.Unlock()

	t.notify()
}

// AdvanceSimulated bumps the feedback percentage of every processing
// record by step, parking below 100. It exists purely for user feedback
// and must never be consulted to decide real completion.
func (t *Tracker) AdvanceSimulated(step int) {
	t.mu.Lock()
	changed := false
	for _, r := range t.records {
		if r.Status != models.StatusProcessing || r.Percent >= simulatedCap {
			continue
		}
		r.Percent += step
		if r.Percent > simulatedCap {
			r.Percent = simulatedCap
		}
		changed = true
	}
	t.mu.Unlock()

	if changed {
		t.notify()
	}
}

// Records returns value copies of the per-file records in batch order.
func (t *Tracker) Records() []models.ProgressRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.ProgressRecord, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, *r)
	}
	return out
}

// Outcome returns the outcome correlated to the given file id, if any.
func (t *Tracker) Outcome(fileID string) (models.RedactionOutcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.records {
		if r.FileID == fileID && r.Outcome != nil {
			return *r.Outcome, true
		}
	}
	return models.RedactionOutcome{}, false
}

// Summary derives the aggregate counts from the records; nothing is
// stored independently, so the counts cannot diverge.
func (t *Tracker) Summary() models.BatchSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := models.BatchSummary{Total: len(t.records)}
	for _, r := range t.records {
		switch r.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusProcessing:
			s.Processing++
		case models.StatusCompleted:
			s.Completed++
		case models.StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Reset discards every record and invalidates outstanding generation
// tokens, so in-flight submissions complete into a discarded state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.records = nil
	t.gen++
	t.mu.Unlock()

	t.notify()
}

func namesCorrelate(outcomeName, inputName string) bool {
	o := strings.ToLower(outcomeName)
	in := strings.ToLower(inputName)
	if o == in {
		return true
	}
	return strings.TrimPrefix(o, common.RedactedPrefix) == in
}
