package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/Kerimcanak/SnapCryptor/internal/client/client"
	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

// newProgressFunc renders upload progress as a byte bar on w.
func newProgressFunc(w io.Writer) client.ProgressFunc {
	return func(kind models.OperationKind, total int64) io.Writer {
		if total <= 0 {
			return nil
		}
		return progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(kind.Verb()),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		)
	}
}
