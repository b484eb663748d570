// Package common defines shared constants and sentinel errors used across
// client and server layers of inkveil. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Intake errors. Rejected candidates are dropped silently; the
	// sentinel exists for callers that want to count rejections.
	ErrorUnsupportedFileType = errors.New("unsupported file type")

	// Output-target resolution.
	ErrorTargetCancelled   = errors.New("directory selection cancelled")
	ErrorTargetUnavailable = errors.New("directory selection not available")

	// Submission errors.
	ErrorEmptyBatch      = errors.New("no files in batch")
	ErrorServiceFailure  = errors.New("service reported failure")
	ErrorNotProcessed    = errors.New("not processed by service")
	ErrorMalformedResult = errors.New("malformed service response")

	// Tracker errors.
	ErrorUnknownFile       = errors.New("unknown file id")
	ErrorInvalidTransition = errors.New("invalid status transition")
)
