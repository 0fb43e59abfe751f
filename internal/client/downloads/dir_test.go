package downloads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/out/a.enc", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ciphertext"))
	})
	mux.HandleFunc("/out/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusGone)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestDirDownloader_SavesUnderSuggestedName(t *testing.T) {
	srv := fileServer(t)
	dir := t.TempDir()
	d := NewDirDownloader(dir, srv.Client(), nil)

	path, err := d.Save(context.Background(), srv.URL+"/out/a.enc", "a.enc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.enc"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", string(b))
}

func TestDirDownloader_NeverOverwrites(t *testing.T) {
	srv := fileServer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.enc"), []byte("old"), 0o600))
	d := NewDirDownloader(dir, srv.Client(), nil)

	require.NoError(t, d.TriggerDownload(context.Background(), srv.URL+"/out/a.enc", "a.enc"))
	require.NoError(t, d.TriggerDownload(context.Background(), srv.URL+"/out/a.enc", "a.enc"))

	old, err := os.ReadFile(filepath.Join(dir, "a.enc"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
	assert.FileExists(t, filepath.Join(dir, "a (1).enc"))
	assert.FileExists(t, filepath.Join(dir, "a (2).enc"))
}

func TestDirDownloader_SanitisesName(t *testing.T) {
	srv := fileServer(t)
	dir := t.TempDir()
	d := NewDirDownloader(dir, srv.Client(), nil)

	path, err := d.Save(context.Background(), srv.URL+"/out/a.enc", "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd"), path)

	path, err = d.Save(context.Background(), srv.URL+"/out/a.enc", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processed_file"), path)
}

func TestDirDownloader_HTTPErrorLeavesNoFile(t *testing.T) {
	srv := fileServer(t)
	dir := t.TempDir()
	d := NewDirDownloader(dir, srv.Client(), nil)

	err := d.TriggerDownload(context.Background(), srv.URL+"/out/gone", "gone.enc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "410")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirDownloader_CreatesDirectory(t *testing.T) {
	srv := fileServer(t)
	dir := filepath.Join(t.TempDir(), "nested", "download")
	d := NewDirDownloader(dir, srv.Client(), nil)

	require.NoError(t, d.TriggerDownload(context.Background(), srv.URL+"/out/a.enc", "a.enc"))
	assert.FileExists(t, filepath.Join(dir, "a.enc"))
}
