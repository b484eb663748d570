package client

import "errors"

var (
	// ErrTransport marks network, HTTP-status and response-parse failures
	// of the batch call. No partial per-file state may be derived from it.
	ErrTransport = errors.New("transport failure")

	// ErrUnavailable is returned by Ping when the service cannot be
	// reached or does not answer healthy.
	ErrUnavailable = errors.New("service unavailable")
)
