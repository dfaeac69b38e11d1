package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/careerlaunch/internal/types"
)

// CreateResume inserts a new resume document for the owner. The ID and
// timestamps are assigned here.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, resume *types.Resume) (*types.Resume, error) {
	now := time.Now().UTC()
	resume.ID = uuid.New()
	resume.UserID = userID
	resume.CreatedAt = now
	resume.UpdatedAt = now
	if resume.Template == "" {
		resume.Template = types.TemplateProfessional
	}

	content, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, user_id, title, template, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		resume.ID, userID, resume.Title, resume.Template, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// GetResume retrieves a resume by ID and owner. Returns nil when the resume
// is absent or owned by someone else.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error) {
	var content []byte
	var createdAt, updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT content, created_at, updated_at FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&content, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return unmarshalResume(content, id, userID, createdAt, updatedAt)
}

// ListResumes retrieves all resumes for the owner, most recently updated
// first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, content, created_at, updated_at FROM resumes
		 WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.Resume
	for rows.Next() {
		var id uuid.UUID
		var content []byte
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &content, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resume, err := unmarshalResume(content, id, userID, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, nil
}

// UpdateResume replaces a resume document, last write wins. Returns nil when
// the resume is absent or owned by someone else.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, resume *types.Resume) (*types.Resume, error) {
	existing, err := db.GetResume(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	resume.ID = id
	resume.UserID = userID
	resume.CreatedAt = existing.CreatedAt
	resume.UpdatedAt = time.Now().UTC()
	if resume.Template == "" {
		resume.Template = existing.Template
	}

	content, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, template = $2, content = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		resume.Title, resume.Template, content, resume.UpdatedAt, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return resume, nil
}

// DeleteResume deletes a resume by ID and owner. Reports whether a row was
// removed.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// unmarshalResume decodes a stored document and restores the column-backed
// fields, which are authoritative over whatever the JSON carries.
func unmarshalResume(content []byte, id, userID uuid.UUID, createdAt, updatedAt time.Time) (*types.Resume, error) {
	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	resume.ID = id
	resume.UserID = userID
	resume.CreatedAt = createdAt
	resume.UpdatedAt = updatedAt
	return &resume, nil
}
