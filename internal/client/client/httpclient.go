package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// ProgressFunc returns a sink that receives every byte of file content as it
// is uploaded. total is the sum of the declared file sizes. A nil writer
// disables progress for that request.
type ProgressFunc func(kind models.OperationKind, total int64) io.Writer

// HTTPClient talks to the service over multipart HTTP.
type HTTPClient struct {
	baseURL  string
	hc       *http.Client
	progress ProgressFunc
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client. No timeout is set by
// default: a batch may take arbitrarily long on the server.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

func WithProgress(fn ProgressFunc) Option {
	return func(c *HTTPClient) { c.progress = fn }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{baseURL: baseURL, hc: &http.Client{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) endpoint(kind models.OperationKind) string {
	return common.JoinURL(c.baseURL, string(kind))
}

func (c *HTTPClient) ResolveURL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return common.JoinURL(c.baseURL, ref)
}

func (c *HTTPClient) Process(ctx context.Context, kind models.OperationKind, password string, files []models.FileHandle) (*models.BatchResult, error) {
	var sink io.Writer
	if c.progress != nil {
		var total int64
		for _, f := range files {
			total += f.Size
		}
		sink = c.progress(kind, total)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeBatch(mw, password, files, sink))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(kind), pr)
	if err != nil {
		pr.CloseWithError(err)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, RequestIDFrom(ctx))

	resp, err := c.hc.Do(req)
	if err != nil {
		pr.CloseWithError(err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	var result *models.BatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: null body", ErrMalformedResponse)
	}
	return result, nil
}

// errorMessage derives the user-facing text of a failed response.
func errorMessage(code int, data []byte) string {
	var body models.ErrorBody
	if err := json.Unmarshal(bytes.TrimSpace(data), &body); err != nil || body.Message == "" {
		return genericStatusMessage(code)
	}
	return body.Message
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeBatch encodes the password field followed by file0..fileN-1. Files
// are opened one at a time and closed before the next one.
func writeBatch(mw *multipart.Writer, password string, files []models.FileHandle, sink io.Writer) error {
	if err := mw.WriteField("password", password); err != nil {
		return err
	}

	for i, f := range files {
		if err := writeFilePart(mw, fmt.Sprintf("file%d", i), f, sink); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, field string, f models.FileHandle, sink io.Writer) error {
	ct := f.ContentType
	if ct == "" {
		ct = models.DefaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		field, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	var src io.Reader = rc
	if sink != nil {
		src = io.TeeReader(rc, sink)
	}
	_, err = io.Copy(part, src)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, common.JoinURL(c.baseURL, "/"), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
