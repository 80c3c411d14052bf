package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/templui/lifecoach/internal/config"
)

// fakeS3 answers the handful of path-style calls the archive makes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = string(body)
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeStorage(t *testing.T) (*S3Storage, *fakeS3) {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	fake := &fakeS3{objects: map[string]string{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3Storage(context.Background(), S3Config{
		Region:        "us-east-1",
		Bucket:        "reports",
		AccessKey:     "test",
		SecretKey:     "test",
		Endpoint:      srv.URL,
		PresignExpiry: 15 * time.Minute,
	})
	require.NoError(t, err)
	return s, fake
}

func TestS3StorageSaveAndDelete(t *testing.T) {
	s, fake := newFakeStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "reports/a1.html", []byte("<p>hi</p>"), "text/html; charset=utf-8"))
	assert.Contains(t, fake.objects["/reports/reports/a1.html"], "<p>hi</p>")
	assert.Equal(t, "text/html; charset=utf-8", fake.types["/reports/reports/a1.html"])

	require.NoError(t, s.Delete(ctx, "reports/a1.html"))
	assert.NotContains(t, fake.objects, "/reports/reports/a1.html")
}

func TestS3StorageURL(t *testing.T) {
	s, _ := newFakeStorage(t)

	url, err := s.URL(context.Background(), "reports/a1.html")
	require.NoError(t, err)

	assert.True(t, strings.Contains(url, "/reports/reports/a1.html?"), url)
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestNewDisabledWithoutBucket(t *testing.T) {
	s, err := New(context.Background(), &cfg.Config{})
	require.NoError(t, err)
	assert.Nil(t, s)
}
