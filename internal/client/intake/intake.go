// Package intake validates and de-duplicates user-supplied file
// selections into tracked batch entries.
package intake

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/filex"
)

const (
	pdfMediaType = "application/pdf"
	pdfExtension = ".pdf"
)

// Accepts reports whether a candidate passes the type filter: the
// declared media type is the target document type, or the name carries
// the target extension (case-insensitive). Everything else is dropped
// silently; a mixed folder selection is expected.
func Accepts(c Candidate) bool {
	if c.MediaType == pdfMediaType {
		return true
	}
	// MediaType may carry parameters ("application/pdf; charset=...").
	if mt, _, ok := strings.Cut(c.MediaType, ";"); ok && strings.TrimSpace(mt) == pdfMediaType {
		return true
	}
	return strings.HasSuffix(strings.ToLower(c.Name), pdfExtension)
}

// Intake owns the tracked-file set for the active batch. It is not
// safe for concurrent use; the orchestrator is the single writer.
type Intake struct {
	files []*models.TrackedFile
}

func New() *Intake {
	return &Intake{}
}

// Add filters cands, reads the accepted payloads and appends fresh
// entries to the batch. It never replaces existing entries. Candidates
// failing the type filter are skipped without error; unreadable accepted
// candidates are skipped and reported via the joined error, without
// aborting the rest.
func (i *Intake) Add(cands ...Candidate) ([]*models.TrackedFile, error) {
	var accepted []*models.TrackedFile
	var errs []error

	for _, c := range cands {
		if !Accepts(c) {
			continue
		}

		payload, err := os.ReadFile(c.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", c.Path, err))
			continue
		}

		f := &models.TrackedFile{
			ID:          uuid.NewString(),
			DisplayName: c.Name,
			SizeLabel:   filex.FormatSize(int64(len(payload))),
			Payload:     payload,
		}
		accepted = append(accepted, f)
	}

	i.files = append(i.files, accepted...)
	return accepted, errors.Join(errs...)
}

// Remove deletes the entry with the given id. Removing an unknown id is
// a no-op.
func (i *Intake) Remove(id string) {
	for n, f := range i.files {
		if f.ID == id {
			i.files = append(i.files[:n], i.files[n+1:]...)
			return
		}
	}
}

// Files returns a copy of the tracked set in intake order.
func (i *Intake) Files() []*models.TrackedFile {
	out := make([]*models.TrackedFile, len(i.files))
	copy(out, i.files)
	return out
}

func (i *Intake) Len() int {
	return len(i.files)
}

// Reset drops every tracked entry.
func (i *Intake) Reset() {
	i.files = nil
}
