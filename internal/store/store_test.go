package store

import (
	"bytes"
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/config"
	"github.com/hpungsan/pcbuild/internal/db"
	"github.com/hpungsan/pcbuild/internal/errors"
)

func setupTest(t *testing.T) (*sql.DB, *SQLite, *bytes.Buffer) {
	t.Helper()
	database, err := db.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var buf bytes.Buffer
	s := NewSQLite(database, config.DefaultStorageKey, log.New(&buf, "", 0))
	return database, s, &buf
}

func sampleSnapshot() build.Snapshot {
	st := build.New()
	st.Select(catalog.CPU, "Intel Core i5-13400F", 199)
	st.Select(catalog.GPU, "RTX 4070 Super", 599)
	return build.NewSnapshot(st, "", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestSQLite_SaveLoad(t *testing.T) {
	ctx := context.Background()
	_, s, _ := setupTest(t)

	id, err := s.Save(ctx, sampleSnapshot())
	require.NoError(t, err)
	assert.Len(t, id, 26)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 798, got.TotalPrice)
	assert.Equal(t, "2026-01-02T03:04:05Z", got.Timestamp)
	assert.Equal(t, "RTX 4070 Super", got.Selections[catalog.GPU].Name)
}

func TestSQLite_SaveKeepsGivenID(t *testing.T) {
	ctx := context.Background()
	_, s, _ := setupTest(t)

	snap := sampleSnapshot()
	snap.ID = "01HZZZZZZZZZZZZZZZZZZZZZZZ"
	id, err := s.Save(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, id)
}

func TestSQLite_LoadMissing(t *testing.T) {
	_, s, _ := setupTest(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_LoadCorruptPayload(t *testing.T) {
	ctx := context.Background()
	database, s, logs := setupTest(t)

	require.NoError(t, db.PutSavedBuild(ctx, database, &db.SavedBuild{
		Key:     config.DefaultStorageKey,
		ID:      "01BAD",
		Payload: "{not json",
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, logs.String(), "corrupt payload")
}

func TestSQLite_LoadMismatchedCategory(t *testing.T) {
	ctx := context.Background()
	database, s, _ := setupTest(t)

	payload := `{"selections":{"cpu":{"category":"gpu","name":"X","price":1}},"totalPrice":1,"timestamp":"2026-01-02T03:04:05Z"}`
	require.NoError(t, db.PutSavedBuild(ctx, database, &db.SavedBuild{
		Key: config.DefaultStorageKey, ID: "01X", Payload: payload,
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_Clear(t *testing.T) {
	ctx := context.Background()
	_, s, _ := setupTest(t)

	_, err := s.Save(ctx, sampleSnapshot())
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	database, s, _ := setupTest(t)
	other := NewSQLite(database, "other", nil)

	_, err := s.Save(ctx, sampleSnapshot())
	require.NoError(t, err)

	got, err := other.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_StorageFailure(t *testing.T) {
	database, s, _ := setupTest(t)
	database.Close()

	_, err := s.Save(context.Background(), sampleSnapshot())
	assert.True(t, errors.Is(err, errors.ErrStorage))

	_, err = s.Load(context.Background())
	assert.True(t, errors.Is(err, errors.ErrStorage))
}
