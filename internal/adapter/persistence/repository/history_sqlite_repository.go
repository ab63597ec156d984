package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
)

// HistorySQLiteRepository keeps the per-user history in a local SQLite file.
// Records keep their append order through a per-user seq column.
type HistorySQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IHistoryRepository = (*HistorySQLiteRepository)(nil)

func NewHistorySQLiteRepository(db *sql.DB) *HistorySQLiteRepository {
	return &HistorySQLiteRepository{db: db}
}

func (r *HistorySQLiteRepository) Append(ctx context.Context, userID string, house *entities.HouseRecord, estimation *entities.EstimationRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (user_id, updated_at) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET updated_at = excluded.updated_at`,
		userID, now,
	); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	if house != nil {
		if err := appendRecord(ctx, tx, "house_records", userID, house.ID, house.CreatedAt, house); err != nil {
			return err
		}
	}
	if estimation != nil {
		if err := appendRecord(ctx, tx, "estimation_records", userID, estimation.ID, estimation.CreatedAt, estimation); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// table is one of the two fixed record tables, never user input.
func appendRecord(ctx context.Context, tx *sql.Tx, table, userID, id string, createdAt time.Time, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", table, err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, seq, created_at, payload)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM %s WHERE user_id = ?), ?, ?)`, table, table)
	if _, err := tx.ExecContext(ctx, query, id, userID, userID, formatTime(createdAt), string(payload)); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (r *HistorySQLiteRepository) GetByUserID(ctx context.Context, userID string) (entities.UserHistory, error) {
	var updatedAt string
	err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM users WHERE user_id = ?`, userID).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.UserHistory{}, nil
	}
	if err != nil {
		return entities.UserHistory{}, fmt.Errorf("select user: %w", err)
	}

	h := entities.UserHistory{
		UserID:         userID,
		HouseData:      []entities.HouseRecord{},
		EstimationData: []entities.EstimationRecord{},
		UpdatedAt:      parseTime(updatedAt),
	}

	err = scanPayloads(ctx, r.db, "house_records", userID, func(payload []byte) error {
		var rec entities.HouseRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return err
		}
		h.HouseData = append(h.HouseData, rec)
		return nil
	})
	if err != nil {
		return entities.UserHistory{}, err
	}

	err = scanPayloads(ctx, r.db, "estimation_records", userID, func(payload []byte) error {
		var rec entities.EstimationRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return err
		}
		h.EstimationData = append(h.EstimationData, rec)
		return nil
	})
	if err != nil {
		return entities.UserHistory{}, err
	}
	return h, nil
}

func scanPayloads(ctx context.Context, db *sql.DB, table, userID string, fn func([]byte) error) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT payload FROM %s WHERE user_id = ? ORDER BY seq`, table), userID)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if err := fn([]byte(payload)); err != nil {
			return fmt.Errorf("decode %s payload: %w", table, err)
		}
	}
	return rows.Err()
}
