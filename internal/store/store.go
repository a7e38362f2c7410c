// Package store persists the single saved build.
package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/db"
	"github.com/hpungsan/pcbuild/internal/errors"
)

// Store is the storage collaborator used by a session. Load returns
// (nil, nil) when nothing usable is saved.
type Store interface {
	Save(ctx context.Context, snap build.Snapshot) (string, error)
	Load(ctx context.Context) (*build.Snapshot, error)
	Clear(ctx context.Context) error
}

// SQLite keeps the build as one keyed row in saved_builds.
type SQLite struct {
	db     *sql.DB
	key    string
	logger *log.Logger
}

// NewSQLite returns a Store writing under key. A nil logger discards output.
func NewSQLite(database *sql.DB, key string, logger *log.Logger) *SQLite {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SQLite{db: database, key: key, logger: logger}
}

// Key returns the storage key rows are written under.
func (s *SQLite) Key() string {
	return s.key
}

// Save writes snap, replacing any previous build. An empty snap.ID is
// replaced with a fresh ULID; the stored ID is returned.
func (s *SQLite) Save(ctx context.Context, snap build.Snapshot) (string, error) {
	if snap.ID == "" {
		id, err := newID()
		if err != nil {
			return "", errors.NewInternal(err)
		}
		snap.ID = id
	}

	savedAt, err := snap.SavedAt()
	if err != nil {
		return "", errors.NewInvalidRequest("snapshot timestamp must be RFC 3339")
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return "", errors.NewInternal(err)
	}

	row := &db.SavedBuild{
		Key:        s.key,
		ID:         snap.ID,
		Payload:    string(payload),
		TotalPrice: snap.TotalPrice,
		SavedAt:    savedAt.Unix(),
	}
	if err := db.PutSavedBuild(ctx, s.db, row); err != nil {
		return "", err
	}
	return snap.ID, nil
}

// Load returns the saved build. A missing row and an undecodable payload
// both yield (nil, nil); the latter is logged.
func (s *SQLite) Load(ctx context.Context) (*build.Snapshot, error) {
	row, err := db.GetSavedBuild(ctx, s.db, s.key)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snap, err := build.DecodeSnapshot([]byte(row.Payload))
	if err != nil {
		s.logger.Printf("store: key=%s id=%s corrupt payload ignored: %v", s.key, row.ID, err)
		return nil, nil
	}
	return snap, nil
}

// Clear removes the saved build.
func (s *SQLite) Clear(ctx context.Context) error {
	return db.DeleteSavedBuild(ctx, s.db, s.key)
}

// newID generates a new ULID.
func newID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
