// Package netx holds plain HTTP helpers for fetching processed files.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// maxErrorBody caps how much of a failed response is quoted in errors.
const maxErrorBody = 512

// Open issues a GET for url and returns the response body on 2xx.
// The caller must close the returned reader.
func Open(ctx context.Context, hc *http.Client, url string) (io.ReadCloser, error) {
	if hc == nil {
		hc = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}
	return resp.Body, nil
}

// Download fetches url fully into memory.
func Download(ctx context.Context, hc *http.Client, url string) ([]byte, error) {
	body, err := Open(ctx, hc, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}

// DownloadToFile streams url into a new file at path. A partially written
// file is removed on error.
func DownloadToFile(ctx context.Context, hc *http.Client, url, path string) (int64, error) {
	body, err := Open(ctx, hc, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
