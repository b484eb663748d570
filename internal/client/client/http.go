package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/common"
	"github.com/inkveil/inkveil/internal/netx"
)

const (
	healthPath = "/health"
	redactPath = "/redact-multi"
	clearPath  = "/clear-all"

	statusSuccess = "success"
)

// redactResponse is the JSON document returned by POST /redact-multi.
type redactResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Files  []struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
	} `json:"files"`
}

// HTTPClient implements Client against the service's HTTP contract.
type HTTPClient struct {
	base *url.URL
	http *http.Client
}

// NewHTTPClient builds a client for the given service origin, e.g.
// "http://localhost:5000". timeout bounds every request except the batch
// call, which is limited only by its context: redaction time grows with
// batch size and must not be cut off by a fixed transport timeout.
func NewHTTPClient(endpoint string, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint %q: %w", endpoint, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("endpoint %q must be an absolute URL", endpoint)
	}

	return &HTTPClient{
		base: base,
		http: &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	ref := &url.URL{Path: path}
	return c.base.ResolveReference(ref).String()
}

// Ping issues GET /health. Any transport error or non-success status
// counts as unavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(healthPath), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: health returned %s", ErrUnavailable, resp.Status)
	}
	return nil
}

// RedactBatch attaches every file as one part under the shared field
// name and posts the batch as a single multipart request.
func (c *HTTPClient) RedactBatch(ctx context.Context, files []*models.TrackedFile) ([]models.RedactionOutcome, error) {
	if len(files) == 0 {
		return nil, common.ErrorEmptyBatch
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := mw.CreateFormFile(common.MultipartFieldName, f.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("building form part for %s: %w", f.DisplayName, err)
		}
		if _, err := part.Write(f.Payload); err != nil {
			return nil, fmt.Errorf("writing form part for %s: %w", f.DisplayName, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(redactPath), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	// No fixed timeout here: the whole batch is processed server-side
	// within this one call.
	resp, err := (&http.Client{Transport: c.http.Transport}).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s: %s", ErrTransport, resp.Status, string(b))
	}

	var parsed redactResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}

	if parsed.Status != statusSuccess {
		if parsed.Error != "" {
			return nil, fmt.Errorf("%w: %s", common.ErrorServiceFailure, parsed.Error)
		}
		return nil, fmt.Errorf("%w: status %q", common.ErrorServiceFailure, parsed.Status)
	}

	outcomes := make([]models.RedactionOutcome, 0, len(parsed.Files))
	for _, f := range parsed.Files {
		if f.Filename == "" || f.URL == "" {
			return nil, fmt.Errorf("%w: result entry missing filename or url", common.ErrorMalformedResult)
		}
		ref, err := url.Parse(f.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: result url %q: %v", common.ErrorMalformedResult, f.URL, err)
		}
		outcomes = append(outcomes, models.RedactionOutcome{
			Name:      f.Filename,
			SourceURL: c.base.ResolveReference(ref).String(),
		})
	}

	return outcomes, nil
}

// ClearAll issues the best-effort POST /clear-all.
func (c *HTTPClient) ClearAll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(clearPath), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clear-all: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("clear-all returned %s", resp.Status)
	}
	return nil
}

// FetchArtifact downloads artifact bytes from an absolute URL.
func (c *HTTPClient) FetchArtifact(ctx context.Context, rawURL string) ([]byte, error) {
	return netx.FetchBytes(ctx, c.http, rawURL)
}
