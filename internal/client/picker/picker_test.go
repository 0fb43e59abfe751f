package picker

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func readAll(t *testing.T, h models.FileHandle) string {
	t.Helper()
	rc, err := h.Open()
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestFromPaths_BuildsHandlesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello")
	b := writeFile(t, dir, "b.pdf", "%PDF-1.4 fake")

	got, err := FromPaths(a, b)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a.txt", got[0].Name)
	assert.Equal(t, int64(5), got[0].Size)
	assert.True(t, strings.HasPrefix(got[0].ContentType, "text/plain"), got[0].ContentType)
	assert.Equal(t, "hello", readAll(t, got[0]))

	assert.Equal(t, "b.pdf", got[1].Name)
	assert.Equal(t, "application/pdf", got[1].ContentType)
}

func TestFromPaths_ContentIsReadLazily(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "late.txt", "v1")

	got, err := FromPaths(p)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(p, []byte("v2"), 0o600))
	assert.Equal(t, "v2", readAll(t, got[0]))
}

func TestFromPaths_Errors(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.txt", "x")

	t.Run("missing file", func(t *testing.T) {
		_, err := FromPaths(ok, filepath.Join(dir, "absent.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "absent.txt")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := FromPaths(dir)
		require.ErrorIs(t, err, common.ErrIsDirectory)
	})
}

func TestFromPaths_DetectionFailureFallsBack(t *testing.T) {
	orig := detectFile
	t.Cleanup(func() { detectFile = orig })
	detectFile = func(string) (*mimetype.MIME, error) { return nil, errors.New("boom") }

	p := writeFile(t, t.TempDir(), "x.bin", "x")
	got, err := FromPaths(p)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContentType, got[0].ContentType)
}

func TestFromBytes(t *testing.T) {
	h := FromBytes("note.txt", []byte("plain text"))

	assert.Equal(t, "note.txt", h.Name)
	assert.Equal(t, int64(10), h.Size)
	assert.True(t, strings.HasPrefix(h.ContentType, "text/plain"))
	assert.Equal(t, "plain text", readAll(t, h))
}
