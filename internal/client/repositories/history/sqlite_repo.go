package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.OperationRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO operations (id, kind, outcome, message, started_at, finished_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, rec.ID, string(rec.Kind), string(rec.Outcome), rec.Message,
			rec.StartedAt.UnixNano(), rec.FinishedAt.UnixNano())
		if err != nil {
			return fmt.Errorf("failed to insert operation %s: %w", rec.ID, err)
		}

		for _, f := range rec.Files {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO operation_files (operation_id, position, name, size, processed_name)
				VALUES (?, ?, ?, ?, ?)
			`, rec.ID, f.Position, f.Name, f.Size, f.ProcessedName)
			if err != nil {
				return fmt.Errorf("failed to insert file %q of operation %s: %w", f.Name, rec.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*models.OperationRecord, error) {
	q := `SELECT id, kind, outcome, message, started_at, finished_at
		FROM operations ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var result []*models.OperationRecord
	byID := make(map[string]*models.OperationRecord)
	for rows.Next() {
		var (
			rec               models.OperationRecord
			kind, outcome     string
			started, finished int64
		)
		if err := rows.Scan(&rec.ID, &kind, &outcome, &rec.Message, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan operation row: %w", err)
		}
		rec.Kind = models.OperationKind(kind)
		rec.Outcome = models.Outcome(outcome)
		rec.StartedAt = time.Unix(0, started)
		rec.FinishedAt = time.Unix(0, finished)

		result = append(result, &rec)
		byID[rec.ID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operation rows: %w", err)
	}
	rows.Close()

	if err := r.loadFiles(ctx, byID); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) loadFiles(ctx context.Context, byID map[string]*models.OperationRecord) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]any, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx, `
		SELECT operation_id, position, name, size, processed_name
		FROM operation_files
		WHERE operation_id IN (`+placeholders+`)
		ORDER BY operation_id, position`, ids...)
	if err != nil {
		return fmt.Errorf("failed to list operation files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			opID string
			f    models.RecordFile
		)
		if err := rows.Scan(&opID, &f.Position, &f.Name, &f.Size, &f.ProcessedName); err != nil {
			return fmt.Errorf("failed to scan operation file row: %w", err)
		}
		if rec, ok := byID[opID]; ok {
			rec.Files = append(rec.Files, f)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate operation file rows: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM operation_files`); err != nil {
			return fmt.Errorf("failed to clear operation files: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM operations`); err != nil {
			return fmt.Errorf("failed to clear operations: %w", err)
		}
		return nil
	})
}
