package client

import (
	"context"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

// Client is the contract of the remote encryption service.
type Client interface {
	// Process submits one batch to the endpoint selected by kind. Files are
	// sent in slice order.
	Process(ctx context.Context, kind models.OperationKind, password string, files []models.FileHandle) (*models.BatchResult, error)
	// Ping reports whether the service answers at all.
	Ping(ctx context.Context) error
	// ResolveURL turns a download link from a BatchResult into an absolute URL.
	ResolveURL(ref string) string
	Close() error
}
