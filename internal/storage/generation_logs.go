package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerationLog is one row of the generation audit trail. Plans
// themselves are never stored; only the operational outcome of each
// model cascade run is.
type GenerationLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	Kind         string    `json:"kind"` // "plan" or "coach"
	RequestID    string    `json:"request_id"`
	Model        string    `json:"model"`
	Attempts     int       `json:"attempts"`
	Status       string    `json:"status"` // "success" or "error"
	ErrorMessage *string   `json:"error_message"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// InsertGenerationLog records the outcome of one generation request.
func (db *DB) InsertGenerationLog(ctx context.Context, log GenerationLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO generation_logs (id, user_id, kind, request_id, model, attempts, status, error_message, duration_ms)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		log.ID, log.UserID, log.Kind, log.RequestID, log.Model,
		log.Attempts, log.Status, log.ErrorMessage, log.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("inserting generation log: %w", err)
	}
	return nil
}

// RecentGenerationLogs returns the latest audit rows for a user, newest
// first.
func (db *DB) RecentGenerationLogs(ctx context.Context, userID string, limit int) ([]GenerationLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, kind, request_id, model, attempts, status, error_message, duration_ms, created_at
		 FROM generation_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying generation logs: %w", err)
	}
	defer rows.Close()

	var logs []GenerationLog
	for rows.Next() {
		var l GenerationLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Kind, &l.RequestID, &l.Model,
			&l.Attempts, &l.Status, &l.ErrorMessage, &l.DurationMs, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning generation log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
