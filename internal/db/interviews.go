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

// CreateInterview inserts a new interview session for the owner. The ID,
// timestamps, and start time are assigned here.
func (db *DB) CreateInterview(ctx context.Context, userID uuid.UUID, interview *types.Interview) (*types.Interview, error) {
	now := time.Now().UTC()
	interview.ID = uuid.New()
	interview.UserID = userID
	interview.Status = types.InterviewStatusActive
	interview.StartTime = now
	interview.CreatedAt = now
	interview.UpdatedAt = now

	content, err := json.Marshal(interview)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal interview: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO interviews (id, user_id, job_role, status, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		interview.ID, userID, interview.JobRole, interview.Status, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

// GetInterview retrieves an interview by ID and owner. Returns nil when the
// session is absent or owned by someone else.
func (db *DB) GetInterview(ctx context.Context, id, userID uuid.UUID) (*types.Interview, error) {
	var content []byte
	var createdAt, updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT content, created_at, updated_at FROM interviews WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&content, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return unmarshalInterview(content, id, userID, createdAt, updatedAt)
}

// ListInterviews retrieves summary projections of the owner's sessions,
// newest first.
func (db *DB) ListInterviews(ctx context.Context, userID uuid.UUID) ([]types.InterviewSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, content, created_at, updated_at FROM interviews
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var summaries []types.InterviewSummary
	for rows.Next() {
		var id uuid.UUID
		var content []byte
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &content, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interview, err := unmarshalInterview(content, id, userID, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, types.InterviewSummary{
			ID:           interview.ID,
			JobRole:      interview.JobRole,
			Status:       interview.Status,
			AverageScore: interview.AverageScore,
			Duration:     interview.Duration,
			CreatedAt:    interview.CreatedAt,
			EndTime:      interview.EndTime,
		})
	}
	return summaries, nil
}

// UpdateInterview persists the full session document, last write wins.
// Returns nil when the session is absent or owned by someone else.
func (db *DB) UpdateInterview(ctx context.Context, interview *types.Interview) (*types.Interview, error) {
	interview.UpdatedAt = time.Now().UTC()

	content, err := json.Marshal(interview)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal interview: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $1, content = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5`,
		interview.Status, content, interview.UpdatedAt, interview.ID, interview.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return interview, nil
}

// DeleteInterview deletes a session by ID and owner. Reports whether a row
// was removed.
func (db *DB) DeleteInterview(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM interviews WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete interview: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func unmarshalInterview(content []byte, id, userID uuid.UUID, createdAt, updatedAt time.Time) (*types.Interview, error) {
	var interview types.Interview
	if err := json.Unmarshal(content, &interview); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interview %s: %w", id, err)
	}
	interview.ID = id
	interview.UserID = userID
	interview.CreatedAt = createdAt
	interview.UpdatedAt = updatedAt
	return &interview, nil
}
