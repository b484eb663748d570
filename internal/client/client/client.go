package client

import (
	"context"

	"github.com/inkveil/inkveil/internal/client/models"
)

// Client is the API contract against the redaction service.
type Client interface {
	// Ping probes service liveness.
	Ping(ctx context.Context) error

	// RedactBatch submits the whole batch as one request and returns the
	// declared outcomes. The call fails as a whole on transport errors or
	// an explicit failure status; a result count below the submitted
	// count is not an error.
	RedactBatch(ctx context.Context, files []*models.TrackedFile) ([]models.RedactionOutcome, error)

	// ClearAll asks the service to delete the artifacts of the current
	// batch. Best effort; callers must not block local resets on it.
	ClearAll(ctx context.Context) error

	// FetchArtifact downloads the artifact bytes from an absolute URL
	// previously returned inside a RedactionOutcome.
	FetchArtifact(ctx context.Context, url string) ([]byte, error)
}
