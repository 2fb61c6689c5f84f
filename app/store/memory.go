package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/domain"
)

// MemStore keeps jobs and notes in memory. Same contract as SQLiteStore, nothing persisted.
// Thread safe.
type MemStore struct {
	opts options

	mu       sync.Mutex
	jobs     map[int64]domain.Job
	notes    map[int64]domain.Note
	lastJob  int64
	lastNote int64
}

// NewMemStore makes an empty in-memory store
func NewMemStore(opts ...Option) *MemStore {
	return &MemStore{
		opts:  newOptions(opts),
		jobs:  map[int64]domain.Job{},
		notes: map[int64]domain.Note{},
	}
}

// AddJob adds a new job with the next job id
func (m *MemStore) AddJob(_ context.Context, company, role string, url *string, status domain.Status) (int64, error) {
	if err := validateJob(company, role); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastJob++
	m.jobs[m.lastJob] = domain.Job{
		ID:        m.lastJob,
		Company:   company,
		Role:      role,
		URL:       cloneString(url),
		Status:    status.OrDefault(),
		CreatedAt: m.opts.timestamp(),
	}
	log.Printf("[DEBUG] added job #%d to memory store", m.lastJob)
	return m.lastJob, nil
}

// ListJobs returns copies of all jobs, most recently added first
func (m *MemStore) ListJobs(context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make([]domain.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		j.URL = cloneString(j.URL)
		res = append(res, j)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, nil
}

// UpdateStatus sets status of the job
func (m *MemStore) UpdateStatus(_ context.Context, id int64, status domain.Status) error {
	if status.IsZero() {
		return fmt.Errorf("failed to update job %d: %w: empty", id, domain.ErrInvalidStatus)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	job.Status = status
	m.jobs[id] = job
	return nil
}

// DeleteJob removes the job and all its notes
func (m *MemStore) DeleteJob(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return &NotFoundError{ID: id}
	}
	for nid, n := range m.notes {
		if n.JobID == id {
			delete(m.notes, nid)
		}
	}
	delete(m.jobs, id)
	return nil
}

// AddNote adds a note to existing job
func (m *MemStore) AddNote(_ context.Context, jobID int64, text string) (int64, error) {
	if err := validateNote(text); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[jobID]; !ok {
		return 0, &NotFoundError{ID: jobID}
	}
	m.lastNote++
	m.notes[m.lastNote] = domain.Note{ID: m.lastNote, JobID: jobID, Text: text, CreatedAt: m.opts.timestamp()}
	return m.lastNote, nil
}

// ListNotes returns notes of existing job, most recent first
func (m *MemStore) ListNotes(_ context.Context, jobID int64) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[jobID]; !ok {
		return nil, &NotFoundError{ID: jobID}
	}

	res := []domain.Note{}
	for _, n := range m.notes {
		if n.JobID == jobID {
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, nil
}

// Close does nothing, implements Store
func (m *MemStore) Close() error { return nil }

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
