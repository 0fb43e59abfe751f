package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/Kerimcanak/SnapCryptor/internal/client/config"
	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/client/services"
)

// fakeAPI implements client.Client for CLI tests.
type fakeAPI struct {
	mu sync.Mutex

	Result  *models.BatchResult
	Err     error
	PingErr error

	Processed []models.OperationKind
	Passwords []string
	Pings     int
}

func (f *fakeAPI) Process(_ context.Context, kind models.OperationKind, password string, _ []models.FileHandle) (*models.BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Processed = append(f.Processed, kind)
	f.Passwords = append(f.Passwords, password)
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Result == nil {
		return &models.BatchResult{}, nil
	}
	return f.Result, nil
}

func (f *fakeAPI) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pings++
	return f.PingErr
}

func (f *fakeAPI) pings() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Pings
}

func (f *fakeAPI) ResolveURL(ref string) string { return "http://svc" + ref }

func (f *fakeAPI) Close() error { return nil }

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

// notTerminal makes password prompts read from the App's reader.
func notTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

// newTestApp builds an App around api with input as stdin.
func newTestApp(t *testing.T, api *fakeAPI, input string, opts ...services.ControllerOption) (*App, *bytes.Buffer) {
	t.Helper()
	noColor(t)
	notTerminal(t)

	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := &App{
		config: cfg,
		api:    api,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	opts = append(opts, services.WithStatusListener(a.printStatus))
	a.controller = services.NewOperationController(api, nil, opts...)
	return a, out
}

func writeFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte("content of "+n), 0o600))
		paths = append(paths, p)
	}
	return paths
}
