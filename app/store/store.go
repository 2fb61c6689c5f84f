// Package store provides persistence for jobs and their notes.
// It defines the Store interface with the job/note lifecycle operations and provides
// implementations for different backends: SQLite (the durable one, with foreign keys
// enforced on every connection) and an in-memory store with the same semantics.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/jobtrack/app/domain"
)

// ErrNotFound is matched (with errors.Is) by every NotFoundError
var ErrNotFound = errors.New("not found")

// ErrInvalidInput returned for empty company, role or note text. Nothing is written in this case.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError reports an operation referencing a job id which does not exist
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("job not found: %d", e.ID) }

// Is makes errors.Is(err, ErrNotFound) work for wrapped NotFoundError
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store:StoreMock

// Store is the persistence contract shared by all backends.
// Jobs and notes are returned by value, callers never hold references into the store.
type Store interface {
	AddJob(ctx context.Context, company, role string, url *string, status domain.Status) (int64, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	DeleteJob(ctx context.Context, id int64) error
	AddNote(ctx context.Context, jobID int64, text string) (int64, error)
	ListNotes(ctx context.Context, jobID int64) ([]domain.Note, error)
	Close() error
}

// Option configures a store
type Option func(o *options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for created_at timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	res := options{now: time.Now}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// timestamp returns current time as stored, UTC with second precision
func (o options) timestamp() time.Time {
	return o.now().UTC().Truncate(time.Second)
}

func validateJob(company, role string) error {
	if strings.TrimSpace(company) == "" {
		return fmt.Errorf("%w: company must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("%w: role must not be empty", ErrInvalidInput)
	}
	return nil
}

func validateNote(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: note text must not be empty", ErrInvalidInput)
	}
	return nil
}
