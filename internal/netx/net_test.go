package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestDownload(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		ts := newFileServer(t, http.StatusOK, "ciphertext")

		b, err := Download(context.Background(), ts.Client(), ts.URL+"/download/a.enc")
		require.NoError(t, err)
		assert.Equal(t, "ciphertext", string(b))
	})

	t.Run("non-2xx -> error with status and body", func(t *testing.T) {
		ts := newFileServer(t, http.StatusNotFound, "no such file")

		_, err := Download(context.Background(), nil, ts.URL+"/download/missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "no such file")
	})

	t.Run("bad url -> error", func(t *testing.T) {
		_, err := Download(context.Background(), nil, "http://[::1]:namedport")
		require.Error(t, err)
	})
}

func TestDownloadToFile(t *testing.T) {
	t.Run("writes the body", func(t *testing.T) {
		ts := newFileServer(t, http.StatusOK, strings.Repeat("x", 4096))
		path := filepath.Join(t.TempDir(), "a.enc")

		n, err := DownloadToFile(context.Background(), ts.Client(), ts.URL, path)
		require.NoError(t, err)
		assert.Equal(t, int64(4096), n)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, b, 4096)
	})

	t.Run("does not overwrite an existing file", func(t *testing.T) {
		ts := newFileServer(t, http.StatusOK, "new")
		path := filepath.Join(t.TempDir(), "a.enc")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		_, err := DownloadToFile(context.Background(), ts.Client(), ts.URL, path)
		require.Error(t, err)

		b, _ := os.ReadFile(path)
		assert.Equal(t, "old", string(b))
	})

	t.Run("http error creates no file", func(t *testing.T) {
		ts := newFileServer(t, http.StatusInternalServerError, "boom")
		path := filepath.Join(t.TempDir(), "a.enc")

		_, err := DownloadToFile(context.Background(), ts.Client(), ts.URL, path)
		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
