package models

// RedactionOutcome is the service's declaration that one output artifact
// exists and where to fetch it. Outcomes are created only from a
// successful batch response; a file that was never submitted never has
// one.
type RedactionOutcome struct {
	// Name is the canonical output filename, authoritative on the
	// service side. It is not necessarily equal to the input name.
	Name string

	// SourceURL is the absolute URL the artifact bytes can be fetched
	// from, already resolved against the service origin.
	SourceURL string
}
