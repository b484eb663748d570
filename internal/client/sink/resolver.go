package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkveil/inkveil/internal/common"
	"github.com/inkveil/inkveil/internal/filex"
	"github.com/inkveil/inkveil/internal/logging"
)

// ConsentFunc asks the user to approve an output directory. It returns
// the chosen path, common.ErrorTargetCancelled when the user dismissed
// the prompt, or common.ErrorTargetUnavailable when the runtime has no
// way to ask.
type ConsentFunc func(ctx context.Context) (string, error)

// Resolver turns the one-per-cycle consent step into a Sink. Cancelling
// or lacking the picker never blocks a batch; both cases fall back to
// per-file downloads and the user is told which mode is active and why.
type Resolver struct {
	consent      ConsentFunc
	downloadsDir string
	fetcher      Fetcher
	log          logging.Logger
}

func NewResolver(consent ConsentFunc, downloadsDir string, fetcher Fetcher, log logging.Logger) *Resolver {
	return &Resolver{consent: consent, downloadsDir: downloadsDir, fetcher: fetcher, log: log}
}

// Resolve acquires the output target. The returned notice is the
// user-facing explanation of the active mode; it is informational, not
// an error.
func (r *Resolver) Resolve(ctx context.Context) (Sink, string, error) {
	dir, err := r.consent(ctx)

	switch {
	case err == nil:
		abs, err := filex.EnsureDir(dir)
		if err != nil {
			return nil, "", fmt.Errorf("preparing output directory: %w", err)
		}
		if err := filex.CheckWritable(abs); err != nil {
			return nil, "", fmt.Errorf("output directory not usable: %w", err)
		}
		return NewDirectorySink(abs, r.fetcher), fmt.Sprintf("saving redacted files to %s", abs), nil

	case errors.Is(err, common.ErrorTargetCancelled):
		s, notice, err := r.fallback()
		if err != nil {
			return nil, "", err
		}
		return s, notice + " (directory selection cancelled)", nil

	case errors.Is(err, common.ErrorTargetUnavailable):
		s, notice, err := r.fallback()
		if err != nil {
			return nil, "", err
		}
		return s, notice + " (directory picker not supported here)", nil

	default:
		return nil, "", fmt.Errorf("resolving output target: %w", err)
	}
}

func (r *Resolver) fallback() (Sink, string, error) {
	abs, err := filex.EnsureDir(r.downloadsDir)
	if err != nil {
		return nil, "", fmt.Errorf("preparing downloads directory: %w", err)
	}
	return NewDownloadSink(abs, r.fetcher, r.log), fmt.Sprintf("saving each redacted file as a download into %s", abs), nil
}
