package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		[]byte(resume.Data),
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, title, data, created_at, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, resumeID, ownerID))
}

// ListByUser lists an owner's resumes, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, title, data, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		var data []byte
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Title,
			&data,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resume.Data = json.RawMessage(data)
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update applies the supplied fields and refreshes updated_at in one
// owner-scoped statement, returning the updated record. COALESCE keeps the
// prior value for fields passed as NULL.
func (r *PGRepo) Update(ctx context.Context, ownerID, resumeID string, title *string, data json.RawMessage) (Resume, error) {
	const query = `
UPDATE resumes
SET title      = COALESCE($3, title),
    data       = COALESCE($4, data),
    updated_at = $5
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, title, data, created_at, updated_at`

	var dataArg any
	if len(data) > 0 {
		dataArg = []byte(data)
	}
	var titleArg any
	if title != nil {
		titleArg = *title
	}

	row := r.DB.QueryRowContext(ctx, query, resumeID, ownerID, titleArg, dataArg, time.Now().UTC())
	return scanResume(row)
}

// Delete removes a resume in a single owner-scoped statement, so the
// ownership check and the deletion cannot diverge.
func (r *PGRepo) Delete(ctx context.Context, ownerID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, resumeID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanResume(row *sql.Row) (Resume, error) {
	var resume Resume
	var data []byte
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&data,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	resume.Data = json.RawMessage(data)
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
