package models

// ProgressRecord is the per-file lifecycle view exposed to the
// presentation layer. Percent is feedback only and must never be used to
// decide real completion; Status is the source of truth.
type ProgressRecord struct {
	FileID   string
	Filename string
	Status   Status

	// Percent is in [0,100] and non-decreasing while Status is
	// processing.
	Percent int

	// ErrorMessage is set only for failed records.
	ErrorMessage string

	// Outcome is set once the service has declared an artifact for this
	// file.
	Outcome *RedactionOutcome
}

// BatchSummary is the aggregate view over one batch cycle. Counts are
// derived from the records on every query, never stored independently.
type BatchSummary struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
}

// Done reports whether every tracked file reached a terminal state.
func (s BatchSummary) Done() bool {
	return s.Total > 0 && s.Completed+s.Failed == s.Total
}
