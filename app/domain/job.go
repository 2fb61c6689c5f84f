package domain

import "time"

// Job is a tracked application to a company for a role
type Job struct {
	ID        int64     `json:"id" yaml:"id"`
	Company   string    `json:"company" yaml:"company"`
	Role      string    `json:"role" yaml:"role"`
	URL       *string   `json:"url,omitempty" yaml:"url,omitempty"` // nil if not provided, never validated
	Status    Status    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Note is a free-text annotation owned by exactly one job. Removed together with its job.
type Note struct {
	ID        int64     `json:"id" yaml:"id"`
	JobID     int64     `json:"job_id" yaml:"job_id"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Equal reports whether both jobs hold the same values, url compared by content
// and created_at as an instant
func (j Job) Equal(o Job) bool {
	if j.ID != o.ID || j.Company != o.Company || j.Role != o.Role || j.Status != o.Status {
		return false
	}
	if !j.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	if j.URL == nil || o.URL == nil {
		return j.URL == nil && o.URL == nil
	}
	return *j.URL == *o.URL
}

// URLOr returns job's url or def if url not set
func (j Job) URLOr(def string) string {
	if j.URL == nil || *j.URL == "" {
		return def
	}
	return *j.URL
}
