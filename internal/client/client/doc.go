// Package client contains the transport layer of the inkveil CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the redaction service: Ping, RedactBatch, ClearAll and
//     FetchArtifact.
//  2. A concrete HTTP implementation (see HTTPClient) speaking the
//     service's wire contract: GET /health, multipart POST /redact-multi,
//     POST /clear-all, and plain GETs for produced artifacts. Relative
//     artifact URLs from the response are resolved against the service
//     origin before they leave this package.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring the SQLite settings store and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Callers can tell the two whole-batch failure classes apart with
// errors.Is: ErrTransport covers network, HTTP-level and parse failures;
// common.ErrorServiceFailure covers an explicit non-success status flag
// in an otherwise well-formed response.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
