// Package sink abstracts where processed artifacts are written: a
// user-approved directory, or a per-file download fallback.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/common"
	"github.com/inkveil/inkveil/internal/logging"
)

// Mode names the resolved output target kind.
type Mode string

const (
	ModeDirectory Mode = "directory"
	ModeDownload  Mode = "download"
)

// Fetcher pulls artifact bytes from the URL a RedactionOutcome declares.
type Fetcher interface {
	FetchArtifact(ctx context.Context, url string) ([]byte, error)
}

// Sink persists artifacts to the resolved output target.
type Sink interface {
	Mode() Mode

	// Location is the directory artifacts end up in, for reporting.
	Location() string

	// Persist fetches one artifact and writes it to the target.
	Persist(ctx context.Context, outcome models.RedactionOutcome) error
}

// Failure pairs an outcome with the error that kept it from persisting.
type Failure struct {
	Outcome models.RedactionOutcome
	Err     error
}

// PersistAll applies Persist to each outcome strictly in the received
// order. One failure does not halt the rest; the caller gets the full
// failure list for aggregate reporting. Same-name writes resolve to
// last-write-wins in response order because nothing here reorders or
// fans out.
func PersistAll(ctx context.Context, s Sink, outcomes []models.RedactionOutcome) []Failure {
	var failures []Failure
	for _, o := range outcomes {
		if err := s.Persist(ctx, o); err != nil {
			failures = append(failures, Failure{Outcome: o, Err: err})
		}
	}
	return failures
}

// DirectorySink writes artifacts straight into a directory the user
// granted access to. The service-declared name is authoritative; an
// existing file of that name is overwritten.
type DirectorySink struct {
	dir     string
	fetcher Fetcher
}

func NewDirectorySink(dir string, fetcher Fetcher) *DirectorySink {
	return &DirectorySink{dir: dir, fetcher: fetcher}
}

func (s *DirectorySink) Mode() Mode       { return ModeDirectory }
func (s *DirectorySink) Location() string { return s.dir }

func (s *DirectorySink) Persist(ctx context.Context, outcome models.RedactionOutcome) error {
	data, err := s.fetcher.FetchArtifact(ctx, outcome.SourceURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", outcome.Name, err)
	}

	// The name comes from the network; keep writes inside the granted
	// directory.
	path := filepath.Join(s.dir, filepath.Base(outcome.Name))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// DownloadSink is the fallback when no directory capability exists: each
// artifact is saved as an individual download. The save itself is
// fire-and-forget; only a fetch failure is signaled.
type DownloadSink struct {
	dir     string
	fetcher Fetcher
	log     logging.Logger
}

func NewDownloadSink(dir string, fetcher Fetcher, log logging.Logger) *DownloadSink {
	return &DownloadSink{dir: dir, fetcher: fetcher, log: log}
}

func (s *DownloadSink) Mode() Mode       { return ModeDownload }
func (s *DownloadSink) Location() string { return s.dir }

func (s *DownloadSink) Persist(ctx context.Context, outcome models.RedactionOutcome) error {
	data, err := s.fetcher.FetchArtifact(ctx, outcome.SourceURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", outcome.Name, err)
	}

	name := filepath.Base(outcome.Name)
	if !strings.HasPrefix(strings.ToLower(name), common.RedactedPrefix) {
		name = common.RedactedPrefix + name
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		s.log.Warn(ctx, "download save failed", "path", path, "error", err)
	}
	return nil
}
