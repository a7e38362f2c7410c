package db

import (
	"context"
	"database/sql"

	"github.com/hpungsan/pcbuild/internal/errors"
)

// SavedBuild is one row of saved_builds. Payload is the raw snapshot JSON;
// decoding is left to the caller so a corrupt row can still be read.
type SavedBuild struct {
	Key        string
	ID         string
	Payload    string
	TotalPrice int
	SavedAt    int64
}

// PutSavedBuild inserts or replaces the row for b.Key.
func PutSavedBuild(ctx context.Context, db *sql.DB, b *SavedBuild) error {
	query := `
		INSERT INTO saved_builds (key, id, payload, total_price, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			id = excluded.id,
			payload = excluded.payload,
			total_price = excluded.total_price,
			saved_at = excluded.saved_at
	`
	if _, err := db.ExecContext(ctx, query, b.Key, b.ID, b.Payload, b.TotalPrice, b.SavedAt); err != nil {
		return errors.NewStorage(err)
	}
	return nil
}

// GetSavedBuild retrieves the row stored under key.
// Returns a NOT_FOUND error when no row exists.
func GetSavedBuild(ctx context.Context, db *sql.DB, key string) (*SavedBuild, error) {
	query := `
		SELECT key, id, payload, total_price, saved_at
		FROM saved_builds
		WHERE key = ?
	`
	var b SavedBuild
	err := db.QueryRowContext(ctx, query, key).Scan(&b.Key, &b.ID, &b.Payload, &b.TotalPrice, &b.SavedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(key)
	}
	if err != nil {
		return nil, errors.NewStorage(err)
	}
	return &b, nil
}

// DeleteSavedBuild removes the row stored under key. Deleting a missing
// row is not an error.
func DeleteSavedBuild(ctx context.Context, db *sql.DB, key string) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM saved_builds WHERE key = ?", key); err != nil {
		return errors.NewStorage(err)
	}
	return nil
}
