package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkveil/inkveil/internal/client/models"
	"github.com/inkveil/inkveil/internal/common"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, endpoint string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(endpoint, 5*time.Second)
	require.NoError(t, err)
	return c
}

func batch(names ...string) []*models.TrackedFile {
	files := make([]*models.TrackedFile, 0, len(names))
	for _, n := range names {
		files = append(files, &models.TrackedFile{ID: n + "-id", DisplayName: n, Payload: []byte("%PDF " + n)})
	}
	return files
}

func TestNewHTTPClient_RejectsRelativeEndpoint(t *testing.T) {
	_, err := NewHTTPClient("localhost:5000", time.Second)
	require.Error(t, err)
}

func TestRedactBatch_Success(t *testing.T) {
	var gotField []string
	var gotBodies []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/redact-multi", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(32<<20))
		for _, fh := range r.MultipartForm.File[common.MultipartFieldName] {
			gotField = append(gotField, fh.Filename)
			f, err := fh.Open()
			require.NoError(t, err)
			b, err := io.ReadAll(f)
			require.NoError(t, err)
			_ = f.Close()
			gotBodies = append(gotBodies, string(b))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"files": []map[string]string{
				{"filename": "redacted_a.pdf", "url": "/files/redacted_a.pdf"},
				{"filename": "redacted_b.pdf", "url": "/files/redacted_b.pdf"},
			},
		})
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	outcomes, err := c.RedactBatch(context.Background(), batch("a.pdf", "b.pdf"))
	require.NoError(t, err)

	require.Equal(t, []string{"a.pdf", "b.pdf"}, gotField, "one part per file under the shared field name")
	require.Equal(t, []string{"%PDF a.pdf", "%PDF b.pdf"}, gotBodies)

	require.Len(t, outcomes, 2)
	require.Equal(t, "redacted_a.pdf", outcomes[0].Name)
	require.Equal(t, ts.URL+"/files/redacted_a.pdf", outcomes[0].SourceURL, "relative url resolved against origin")
}

func TestRedactBatch_FewerResultsThanSubmittedIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"files":  []map[string]string{{"filename": "redacted_a.pdf", "url": "/files/redacted_a.pdf"}},
		})
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	outcomes, err := c.RedactBatch(context.Background(), batch("a.pdf", "b.pdf", "c.pdf"))
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
}

func TestRedactBatch_ServiceFailureStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": "engine exploded"})
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.RedactBatch(context.Background(), batch("a.pdf"))
	require.ErrorIs(t, err, common.ErrorServiceFailure)
	require.Contains(t, err.Error(), "engine exploded")
}

func TestRedactBatch_HTTPErrorIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.RedactBatch(context.Background(), batch("a.pdf"))
	require.ErrorIs(t, err, ErrTransport)
}

func TestRedactBatch_MalformedJSONIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.RedactBatch(context.Background(), batch("a.pdf"))
	require.ErrorIs(t, err, ErrTransport)
}

func TestRedactBatch_NetworkErrorIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.RedactBatch(context.Background(), batch("a.pdf"))
	require.ErrorIs(t, err, ErrTransport)
}

func TestRedactBatch_IncompleteResultEntry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"files":  []map[string]string{{"filename": "redacted_a.pdf"}},
		})
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.RedactBatch(context.Background(), batch("a.pdf"))
	require.ErrorIs(t, err, common.ErrorMalformedResult)
}

func TestRedactBatch_EmptyBatch(t *testing.T) {
	c := testClient(t, "http://localhost:1")
	_, err := c.RedactBatch(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrorEmptyBatch)
}

func TestPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		require.NoError(t, testClient(t, ts.URL).Ping(context.Background()))
	})

	t.Run("unhealthy status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		err := testClient(t, ts.URL).Ping(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		err := testClient(t, ts.URL).Ping(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClearAll(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		require.NoError(t, testClient(t, ts.URL).ClearAll(context.Background()))
		require.Equal(t, "/clear-all", gotPath)
	})

	t.Run("failure is reported", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		require.Error(t, testClient(t, ts.URL).ClearAll(context.Background()))
	})
}

func TestFetchArtifact(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("artifact bytes"))
	}))
	defer ts.Close()

	b, err := testClient(t, ts.URL).FetchArtifact(context.Background(), ts.URL+"/files/x.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("artifact bytes"), b)
}

func TestRedactBatch_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background read and can
		// observe the client disconnect; otherwise r.Context() is never
		// cancelled and ts.Close deadlocks on this handler.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(t, ts.URL).RedactBatch(ctx, batch("a.pdf"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTransport) || errors.Is(err, context.DeadlineExceeded))
}
