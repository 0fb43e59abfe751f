// Package downloads implements the ways a processed file can be delivered
// once the service has produced it: saved into a local directory, handed to
// the system browser, or mirrored into an S3-compatible bucket.
//
// Every implementation is independent of the others; Multi fans one
// download out to several of them.
package downloads

import "context"

// Downloader delivers the resource at url under suggestedName.
type Downloader interface {
	TriggerDownload(ctx context.Context, url, suggestedName string) error
}
