package history

import (
	"context"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

type Repository interface {
	// Insert stores rec and its files atomically.
	Insert(ctx context.Context, rec *models.OperationRecord) error
	// List returns at most limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*models.OperationRecord, error)
	Clear(ctx context.Context) error
}
