package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/jobtrack/app/domain"
)

// timeLayout matches sqlite's datetime('now') output used as the column default
const timeLayout = "2006-01-02 15:04:05"

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db   *sqlx.DB
	opts options
}

type jobRow struct {
	ID        int64          `db:"id"`
	Company   string         `db:"company"`
	Role      string         `db:"role"`
	URL       sql.NullString `db:"url"`
	Status    string         `db:"status"`
	CreatedAt string         `db:"created_at"`
}

type noteRow struct {
	ID        int64  `db:"id"`
	JobID     int64  `db:"job_id"`
	Text      string `db:"text"`
	CreatedAt string `db:"created_at"`
}

// NewSQLiteStore opens (or creates) the database at dbPath and makes sure the schema exists.
// Foreign keys, busy timeout and WAL are set per connection through the DSN, and transactions
// take the write lock immediately, so concurrent processes serialize on the file lock.
func NewSQLiteStore(ctx context.Context, dbPath string, opts ...Option) (*SQLiteStore, error) {
	dsn, err := makeDSN(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// single writer per process, also keeps :memory: database shared by all queries
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w (also failed to close db: %v)", dbPath, err, closeErr)
		}
		return nil, fmt.Errorf("failed to connect to %s: %w", dbPath, err)
	}

	s := &SQLiteStore{db: db, opts: newOptions(opts)}
	if err := s.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}
	log.Printf("[DEBUG] sqlite store ready at %s", dbPath)
	return s, nil
}

// makeDSN adds connection pragmas to dbPath. The driver cuts the name at the first '?',
// so a path with '?' can't be opened as given.
func makeDSN(dbPath string) (string, error) {
	if strings.Contains(dbPath, "?") {
		return "", fmt.Errorf("%w: db path %q contains '?'", ErrInvalidInput, dbPath)
	}
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	if dbPath != ":memory:" {
		params.Add("_pragma", "journal_mode(WAL)")
	}
	params.Set("_txlock", "immediate")
	return dbPath + "?" + params.Encode(), nil
}

// initialize creates the database schema
func (s *SQLiteStore) initialize(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			url TEXT,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_job_id ON notes(job_id)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// AddJob inserts a new job and returns its id. Zero status stored as applied.
func (s *SQLiteStore) AddJob(ctx context.Context, company, role string, jobURL *string, status domain.Status) (int64, error) {
	if err := validateJob(company, role); err != nil {
		return 0, err
	}
	status = status.OrDefault()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (company, role, url, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		company, role, nullString(jobURL), status.String(), s.opts.timestamp().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to insert job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get job id: %w", err)
	}
	log.Printf("[DEBUG] added job #%d, %s/%s (%s)", id, company, role, status)
	return id, nil
}

// ListJobs returns all jobs, most recently added first
func (s *SQLiteStore) ListJobs(ctx context.Context) ([]domain.Job, error) {
	rows := []jobRow{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, company, role, url, status, created_at FROM jobs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, r := range rows {
		job, err := r.toJob()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateStatus sets status of the job, other fields untouched
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if status.IsZero() {
		return fmt.Errorf("failed to update job %d: %w: empty", id, domain.ErrInvalidStatus)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update job %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for job %d: %w", id, err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}
	log.Printf("[DEBUG] job #%d status set to %s", id, status)
	return nil
}

// DeleteJob removes the job with all its notes in one transaction.
// Notes removed explicitly before the job, the foreign key cascade covers anything else.
func (s *SQLiteStore) DeleteJob(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	notesRes, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE job_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notes of job %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for job %d: %w", id, err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	notesCount, _ := notesRes.RowsAffected()
	log.Printf("[DEBUG] deleted job #%d with %d notes", id, notesCount)
	return nil
}

// AddNote adds a note to existing job. Existence is checked in the same transaction as insert.
func (s *SQLiteStore) AddNote(ctx context.Context, jobID int64, text string) (int64, error) {
	if err := validateNote(text); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := jobExists(ctx, tx, jobID); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO notes (job_id, text, created_at) VALUES (?, ?, ?)`,
		jobID, text, s.opts.timestamp().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to insert note for job %d: %w", jobID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get note id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("[DEBUG] added note #%d to job #%d", id, jobID)
	return id, nil
}

// ListNotes returns notes of existing job, most recent first
func (s *SQLiteStore) ListNotes(ctx context.Context, jobID int64) ([]domain.Note, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // read only

	if err := jobExists(ctx, tx, jobID); err != nil {
		return nil, err
	}

	rows := []noteRow{}
	err = tx.SelectContext(ctx, &rows,
		`SELECT id, job_id, text, created_at FROM notes WHERE job_id = ? ORDER BY id DESC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for job %d: %w", jobID, err)
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		ts, err := parseTime(r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", r.ID, err)
		}
		notes = append(notes, domain.Note{ID: r.ID, JobID: r.JobID, Text: r.Text, CreatedAt: ts})
	}
	return notes, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func jobExists(ctx context.Context, tx *sqlx.Tx, id int64) error {
	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to check job %d: %w", id, err)
	}
	if count == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

func (r jobRow) toJob() (domain.Job, error) {
	status, err := domain.StatusFromToken(r.Status)
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %d: %w", r.ID, err)
	}
	ts, err := parseTime(r.CreatedAt)
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %d: %w", r.ID, err)
	}

	job := domain.Job{ID: r.ID, Company: r.Company, Role: r.Role, Status: status, CreatedAt: ts}
	if r.URL.Valid {
		u := r.URL.String
		job.URL = &u
	}
	return job, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

// parseTime accepts the stored layout and RFC3339 for rows written by other tools
func parseTime(v string) (time.Time, error) {
	if ts, err := time.ParseInLocation(timeLayout, v, time.UTC); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at %q: %w", v, err)
	}
	return ts.UTC(), nil
}
