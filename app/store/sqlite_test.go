package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobtrack/app/domain"
)

func newTestSQLite(t *testing.T, dbPath string) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewSQLiteStore(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		store, err := NewSQLiteStore(context.Background(), dbPath)
		require.NoError(t, err)
		assert.NotNil(t, store)
		require.NoError(t, store.Close())
		assert.FileExists(t, dbPath)
	})

	t.Run("invalid path", func(t *testing.T) {
		// try to create database in non-existent directory
		store, err := NewSQLiteStore(context.Background(), "/invalid/path/that/does/not/exist/test.db")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Nil(t, store)
	})

	t.Run("in memory", func(t *testing.T) {
		store := newTestSQLite(t, ":memory:")
		id, err := store.AddJob(context.Background(), "Acme", "Backend", nil, domain.StatusApplied)
		require.NoError(t, err)
		_, err = store.AddNote(context.Background(), id, "kept in the same connection")
		require.NoError(t, err)
	})
}

func TestSQLiteStore_TablesCreated(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))

	for _, tbl := range []string{"jobs", "notes"} {
		var count int
		err := store.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", tbl).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, tbl)
	}
}

func TestSQLiteStore_Pragmas(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))

	var fk int
	require.NoError(t, store.db.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, store.db.Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, store.db.Get(&timeout, "PRAGMA busy_timeout"))
	assert.Equal(t, 5000, timeout)
}

func TestSQLiteStore_ForeignKeyEnforced(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	ctx := context.Background()

	_, err := store.db.Exec("INSERT INTO notes (job_id, text) VALUES (42, 'orphan')")
	require.Error(t, err, "note for missing job rejected by the foreign key")

	// cascade by the schema alone, without the store's explicit delete of notes
	id, err := store.AddJob(ctx, "Acme", "Backend", nil, domain.StatusApplied)
	require.NoError(t, err)
	_, err = store.AddNote(ctx, id, "note 1")
	require.NoError(t, err)
	_, err = store.AddNote(ctx, id, "note 2")
	require.NoError(t, err)

	_, err = store.db.Exec("DELETE FROM jobs WHERE id = ?", id)
	require.NoError(t, err)

	var remaining int
	require.NoError(t, store.db.Get(&remaining, "SELECT COUNT(*) FROM notes WHERE job_id = ?", id))
	assert.Equal(t, 0, remaining)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, dbPath)
	require.NoError(t, err)
	id1, err := store.AddJob(ctx, "Acme", "Backend", strPtr("https://acme.example.com"), domain.StatusOffer)
	require.NoError(t, err)
	id2, err := store.AddJob(ctx, "Globex", "SRE", nil, domain.StatusApplied)
	require.NoError(t, err)
	_, err = store.AddNote(ctx, id1, "call back on monday")
	require.NoError(t, err)
	require.NoError(t, store.DeleteJob(ctx, id2))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, id1, jobs[0].ID)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, domain.StatusOffer, jobs[0].Status)
	require.NotNil(t, jobs[0].URL)
	assert.Equal(t, "https://acme.example.com", *jobs[0].URL)

	notes, err := store.ListNotes(ctx, id1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "call back on monday", notes[0].Text)

	id3, err := store.AddJob(ctx, "Initech", "Go Developer", nil, domain.StatusApplied)
	require.NoError(t, err)
	assert.Greater(t, id3, id2, "deleted id is not reused after reopen")
}

func TestSQLiteStore_TwoHandlesSameFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()
	first := newTestSQLite(t, dbPath)
	second := newTestSQLite(t, dbPath)

	id, err := first.AddJob(ctx, "Acme", "Backend", nil, domain.StatusApplied)
	require.NoError(t, err)

	jobs, err := second.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	require.NoError(t, second.DeleteJob(ctx, id))
	_, err = first.AddNote(ctx, id, "too late")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_CreatedAt(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	ctx := context.Background()

	// rows written without created_at get the column default
	before := time.Now().UTC().Add(-2 * time.Second)
	_, err := store.db.Exec("INSERT INTO jobs (company, role, status) VALUES ('Acme', 'Backend', 'applied')")
	require.NoError(t, err)
	// rows written by other tools may carry RFC3339
	_, err = store.db.Exec("INSERT INTO jobs (company, role, status, created_at) VALUES " +
		"('Globex', 'SRE', 'offer', '2025-01-02T03:04:05+02:00')")
	require.NoError(t, err)

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.WithinDuration(t, time.Date(2025, 1, 2, 1, 4, 5, 0, time.UTC), jobs[0].CreatedAt, 0)
	assert.WithinDuration(t, time.Now().UTC(), jobs[1].CreatedAt, time.Minute)
	assert.False(t, jobs[1].CreatedAt.Before(before))

	_, err = store.db.Exec("UPDATE jobs SET created_at = 'yesterday' WHERE company = 'Acme'")
	require.NoError(t, err)
	_, err = store.ListJobs(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse created_at")
}

func TestSQLiteStore_InvalidPersistedStatus(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	ctx := context.Background()

	id, err := store.AddJob(ctx, "Acme", "Backend", nil, domain.StatusApplied)
	require.NoError(t, err)
	_, err = store.db.Exec("UPDATE jobs SET status = 'ghosted' WHERE id = ?", id)
	require.NoError(t, err)

	jobs, err := store.ListJobs(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Nil(t, jobs)

	// status can still be repaired through the store
	require.NoError(t, store.UpdateStatus(ctx, id, domain.StatusRejected))
	jobs, err = store.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, jobs[0].Status)
}

func TestSQLiteStore_InfrastructureErrors(t *testing.T) {
	t.Run("dropped table", func(t *testing.T) {
		store := newTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))
		_, err := store.db.Exec("DROP TABLE notes")
		require.NoError(t, err)
		_, err = store.db.Exec("DROP TABLE jobs")
		require.NoError(t, err)

		jobs, err := store.ListJobs(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query jobs")
		assert.Nil(t, jobs)

		err = store.UpdateStatus(context.Background(), 1, domain.StatusOffer)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)

		_, err = store.AddNote(context.Background(), 1, "text")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("closed store", func(t *testing.T) {
		store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		require.NoError(t, store.Close())

		_, err = store.ListJobs(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)

		err = store.DeleteJob(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)

		_, err = store.ListNotes(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestMakeDSN(t *testing.T) {
	dsn, err := makeDSN("/tmp/jobs.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "/tmp/jobs.db?")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")
	assert.Contains(t, dsn, "foreign_keys%281%29")

	dsn, err = makeDSN(":memory:")
	require.NoError(t, err)
	assert.NotContains(t, dsn, "journal_mode")

	_, err = makeDSN("/tmp/odd?dir/jobs.db")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewSQLiteStore_QuestionMarkInPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "odd?dir")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	dbPath := filepath.Join(dir, "jobs.db")

	store, err := NewSQLiteStore(context.Background(), dbPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, store)
	assert.NoFileExists(t, dbPath)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "odd"), "no database created at the truncated path")
}
