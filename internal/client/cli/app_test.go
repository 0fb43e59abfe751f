package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kerimcanak/SnapCryptor/internal/client/config"
	"github.com/Kerimcanak/SnapCryptor/internal/client/downloads"
	"github.com/Kerimcanak/SnapCryptor/internal/logging"
)

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.BackendSlog, "info", &buf)
	require.NoError(t, err)
	app := &App{log: l}

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Contains(t, buf.String(), "Switched to online mode")

	buf.Reset()
	app.setMode(ModeOnline)
	assert.Empty(t, buf.String(), "no log when the mode does not change")

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Contains(t, buf.String(), "Switched to offline mode")
}

func TestSetMode_WithoutLogger(t *testing.T) {
	app := &App{}
	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
}

func TestCheckOnline(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api, "")

	require.NoError(t, app.checkOnline(context.Background()))
	assert.Equal(t, ModeOnline, app.Mode())

	api.PingErr = errors.New("connection refused")
	require.Error(t, app.checkOnline(context.Background()))
	assert.Equal(t, ModeOffline, app.Mode())
}

func TestStartOnlineStatusWatcher_PingsUntilCancelled(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.Mode() == ModeOnline }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestGetStatus(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api, "")
	assert.Equal(t, "", app.getStatus())

	app.setMode(ModeOnline)
	assert.Equal(t, "(online)", app.getStatus())

	require.NoError(t, app.controller.AddFiles(fh("a.txt"), fh("b.txt")))
	require.NoError(t, app.controller.SetPassword([]byte("pw")))
	assert.Equal(t, "(online, 2 file(s), pw)", app.getStatus())
}

func TestBuildDownloader(t *testing.T) {
	base := func(mode string) *config.Config {
		c := &config.Config{}
		c.LoadDefaults()
		c.DownloadMode = mode
		c.DownloadDir = t.TempDir()
		return c
	}

	d, err := buildDownloader(context.Background(), base(config.DownloadModeNone), logging.Nop())
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = buildDownloader(context.Background(), base(config.DownloadModeDir), logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &downloads.DirDownloader{}, d)

	d, err = buildDownloader(context.Background(), base(config.DownloadModeBrowser), logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &downloads.BrowserDownloader{}, d)

	withS3 := base(config.DownloadModeDir)
	withS3.S3 = config.S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000", AccessKey: "k", SecretKey: "s"}
	d, err = buildDownloader(context.Background(), withS3, logging.Nop())
	require.NoError(t, err)
	multi, ok := d.(downloads.Multi)
	require.True(t, ok, "dir download plus mirror, got %T", d)
	assert.Len(t, multi, 2)

	onlyS3 := base(config.DownloadModeNone)
	onlyS3.S3 = withS3.S3
	d, err = buildDownloader(context.Background(), onlyS3, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &downloads.S3Mirror{}, d)
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DownloadMode = config.DownloadModeNone
	cfg.HistoryDSN = filepath.Join(t.TempDir(), "history.db")
	cfg.ShowProgress = false

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.NotNil(t, app.controller)
	assert.NotNil(t, app.history)
	assert.NotNil(t, app.db)
	assert.True(t, app.controller.IsSubmitDisabled())
}

func TestNewApp_WithoutHistory(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HistoryDSN = ""
	cfg.LogBackend = logging.BackendLogrus

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()
	assert.Nil(t, app.history)
	assert.Nil(t, app.db)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DownloadMode = "carrier-pigeon"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)

	cfg.LoadDefaults()
	cfg.LogLevel = "chatty"
	_, err = NewApp(context.Background(), cfg)
	require.Error(t, err)
}
