package downloads

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, format, content_type, file_name, size_bytes, sha256, fallback, created_at`

// Create inserts a record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO render_downloads (
    id, format, content_type, file_name, size_bytes, sha256, fallback, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Format,
		rec.ContentType,
		rec.FileName,
		rec.SizeBytes,
		rec.Digest,
		rec.Fallback,
		rec.CreatedAt,
	)
	return err
}

// GetByID returns a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	query := `SELECT ` + selectColumns + ` FROM render_downloads WHERE id = $1 LIMIT 1`
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// ListRecent lists records newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit, offset int) ([]Record, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + selectColumns + ` FROM render_downloads ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var rec Record
	err := s.Scan(
		&rec.ID,
		&rec.Format,
		&rec.ContentType,
		&rec.FileName,
		&rec.SizeBytes,
		&rec.Digest,
		&rec.Fallback,
		&rec.CreatedAt,
	)
	return rec, err
}

var _ Repo = (*PGRepo)(nil)
