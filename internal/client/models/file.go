// Package models defines client-side data models for batch redaction.
package models

// TrackedFile is one user-selected document awaiting or undergoing
// redaction. Entries are immutable after intake; the only mutation the
// batch ever sees is removal by id.
type TrackedFile struct {
	// ID is an opaque unique identifier, generated at intake time and
	// stable for the lifetime of the entry.
	ID string

	// DisplayName is the original file name, without any directory part.
	DisplayName string

	// SizeLabel is the human-readable size, derived once at intake.
	SizeLabel string

	// Payload holds the raw document bytes. The entry owns them
	// exclusively until submission.
	Payload []byte
}
