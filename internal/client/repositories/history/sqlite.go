package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/inkveil/inkveil/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(ctx context.Context, run *BatchRun) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO batches (id, started_at, finished_at, mode, output_dir, total, completed, failed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
			run.Mode, run.OutputDir, run.Total, run.Completed, run.Failed)
		if err != nil {
			return fmt.Errorf("failed to insert batch %s: %w", run.ID, err)
		}

		for _, f := range run.Files {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO batch_files (batch_id, file_id, name, status, error, artifact)
				VALUES (?, ?, ?, ?, ?, ?)
			`, run.ID, f.FileID, f.Name, f.Status, f.Error, f.Artifact)
			if err != nil {
				return fmt.Errorf("failed to insert batch file %s/%s: %w", run.ID, f.FileID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]BatchRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, mode, output_dir, total, completed, failed
		FROM batches ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var runs []BatchRun
	for rows.Next() {
		var run BatchRun
		var started, finished string
		if err := rows.Scan(&run.ID, &started, &finished, &run.Mode, &run.OutputDir,
			&run.Total, &run.Completed, &run.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate batch rows: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM batch_files`); err != nil {
			return fmt.Errorf("failed to clear batch files: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM batches`); err != nil {
			return fmt.Errorf("failed to clear batches: %w", err)
		}
		return nil
	})
}
