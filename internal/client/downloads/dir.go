package downloads

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/filex"
	"github.com/Kerimcanak/SnapCryptor/internal/logging"
	"github.com/Kerimcanak/SnapCryptor/internal/netx"
)

// DirDownloader saves downloads into a local directory. Existing files are
// never overwritten: a free "name (N).ext" is chosen instead.
type DirDownloader struct {
	dir string
	hc  *http.Client
	log logging.Logger

	// serialises name selection so concurrent downloads of the same name
	// cannot pick the same path
	mu sync.Mutex
}

func NewDirDownloader(dir string, hc *http.Client, log logging.Logger) *DirDownloader {
	if log == nil {
		log = logging.Nop()
	}
	return &DirDownloader{dir: dir, hc: hc, log: log}
}

func (d *DirDownloader) TriggerDownload(ctx context.Context, url, suggestedName string) error {
	_, err := d.Save(ctx, url, suggestedName)
	return err
}

// Save downloads url and returns the path it was written to.
func (d *DirDownloader) Save(ctx context.Context, url, suggestedName string) (string, error) {
	dir, err := filex.EnsureSubdDir(d.dir)
	if err != nil {
		return "", err
	}
	name := filex.SafeBaseName(suggestedName, models.DefaultProcessedName)

	d.mu.Lock()
	defer d.mu.Unlock()

	for attempt := 0; attempt < 3; attempt++ {
		path, err := filex.UniquePath(dir, name)
		if err != nil {
			return "", err
		}

		n, err := netx.DownloadToFile(ctx, d.hc, url, path)
		if os.IsExist(err) {
			// created by someone else between the stat and the open
			continue
		}
		if err != nil {
			return "", fmt.Errorf("download %s: %w", url, err)
		}

		d.log.Info(ctx, "file saved", "path", path, "bytes", n)
		return path, nil
	}
	return "", fmt.Errorf("download %s: no free name for %s in %s", url, name, filepath.Clean(dir))
}
