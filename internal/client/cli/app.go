package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Kerimcanak/SnapCryptor/internal/client/client"
	"github.com/Kerimcanak/SnapCryptor/internal/client/config"
	"github.com/Kerimcanak/SnapCryptor/internal/client/downloads"
	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/client/repositories/history"
	"github.com/Kerimcanak/SnapCryptor/internal/client/services"
	"github.com/Kerimcanak/SnapCryptor/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config     *config.Config
	api        client.Client
	controller *services.OperationController
	history    history.Repository
	db         *sql.DB
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// NewApp validates c and builds every collaborator of the CLI. The history
// database is opened (and migrated) only when a DSN is configured.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	var clientOpts []client.Option
	if c.ShowProgress {
		clientOpts = append(clientOpts, client.WithProgress(newProgressFunc(os.Stderr)))
	}

	a := &App{
		config: c,
		api:    client.NewHTTPClient(c.BaseURL, clientOpts...),
		log:    l,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	dl, err := buildDownloader(ctx, c, l)
	if err != nil {
		return nil, err
	}

	opts := []services.ControllerOption{
		services.WithLogger(l),
		services.WithStatusListener(a.printStatus),
	}

	if c.HistoryDSN != "" {
		db, err := client.InitDatabase(ctx, c.HistoryDSN)
		if err != nil {
			l.Error(ctx, "error initializing history database", "dsn", c.HistoryDSN, "error", err)
			return nil, err
		}
		a.db = db
		a.history = history.NewSQLiteRepository(db)
		opts = append(opts, services.WithHistory(a.history))
	}

	a.controller = services.NewOperationController(a.api, dl, opts...)
	return a, nil
}

// buildDownloader maps the configured download mode (plus the optional S3
// mirror) to a Downloader. It returns nil when nothing should be downloaded.
func buildDownloader(ctx context.Context, c *config.Config, l logging.Logger) (services.Downloader, error) {
	var members downloads.Multi

	switch c.DownloadMode {
	case config.DownloadModeDir:
		members = append(members, downloads.NewDirDownloader(c.DownloadDir, nil, l))
	case config.DownloadModeBrowser:
		members = append(members, downloads.NewBrowserDownloader())
	}

	if c.S3.Enabled() {
		m, err := downloads.NewS3Mirror(ctx, c.S3, nil)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	switch len(members) {
	case 0:
		return nil, nil
	case 1:
		return members[0], nil
	}
	return members, nil
}

// Run executes one batch when args are given, or the REPL otherwise. It
// returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.Close()

	if len(args) > 0 {
		if err := a.RunOnce(ctx, args); err != nil {
			return 1
		}
		return 0
	}

	a.Root(ctx)
	return 0
}

func (a *App) Close() error {
	var err error
	if a.api != nil {
		err = a.api.Close()
	}
	if a.db != nil {
		if cerr := a.db.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger().Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) logger() logging.Logger {
	if a.log == nil {
		return logging.Nop()
	}
	return a.log
}

// checkOnline pings the service once and updates the mode.
func (a *App) checkOnline(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := a.api.Ping(ctx)
	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
	return err
}

// StartOnlineStatusWatcher pings the service every interval until ctx is
// done. It only affects the prompt label, never a submission.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) printStatus(st models.StatusMessage) {
	fmt.Fprintln(a.out, renderStatus(st))
}

func (a *App) printError(err error) {
	fmt.Fprintln(a.out, renderStatus(models.ErrorStatus("Error: "+err.Error())))
}
