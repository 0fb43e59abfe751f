package downloads

import (
	"context"
	"errors"
)

// Multi delivers every download through each of its members. A failing
// member does not stop the others.
type Multi []Downloader

func (m Multi) TriggerDownload(ctx context.Context, url, suggestedName string) error {
	var errs []error
	for _, d := range m {
		if err := d.TriggerDownload(ctx, url, suggestedName); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
