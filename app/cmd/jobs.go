package cmd

import (
	"fmt"

	"github.com/umputun/jobtrack/app/domain"
)

// AddCommand adds a new job application
type AddCommand struct {
	Company string        `long:"company" required:"true" description:"company name"`
	Role    string        `long:"role" required:"true" description:"role applied for"`
	URL     string        `long:"url" description:"job posting url"`
	Status  domain.Status `long:"status" default:"applied" description:"initial status (applied, interviewing, offer, rejected)"`

	CommonOpts
}

// Execute is the entry point for "add" command, called by flag parser
func (a *AddCommand) Execute(_ []string) error {
	var url *string
	if a.URL != "" {
		url = &a.URL
	}

	var id int64
	err := a.retry(func() (err error) {
		id, err = a.Store.AddJob(a.ctx(), a.Company, a.Role, url, a.Status)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out(), "Added job #%d: %s - %s\n", id, a.Company, a.Role)
	return err
}

// ListCommand prints all jobs, newest first
type ListCommand struct {
	CommonOpts
}

// Execute is the entry point for "list" command, called by flag parser
func (l *ListCommand) Execute(_ []string) error {
	var jobs []domain.Job
	err := l.retry(func() (err error) {
		jobs, err = l.Store.ListJobs(l.ctx())
		return err
	})
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		_, err = fmt.Fprintln(l.out(), "No jobs yet.")
		return err
	}
	for _, j := range jobs {
		if _, err := fmt.Fprintf(l.out(), "#%03d | %s | %s | %s | %s\n",
			j.ID, j.Company, j.Role, j.Status, j.URLOr("-")); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatusCommand moves a job to another status
type UpdateStatusCommand struct {
	ID     int64         `long:"id" required:"true" description:"job id"`
	Status domain.Status `long:"status" required:"true" description:"new status (applied, interviewing, offer, rejected)"`

	CommonOpts
}

// Execute is the entry point for "update-status" command, called by flag parser
func (u *UpdateStatusCommand) Execute(_ []string) error {
	if err := u.retry(func() error { return u.Store.UpdateStatus(u.ctx(), u.ID, u.Status) }); err != nil {
		return err
	}
	_, err := fmt.Fprintf(u.out(), "Updated job #%d -> %s\n", u.ID, u.Status)
	return err
}

// DeleteCommand removes a job with all its notes
type DeleteCommand struct {
	ID int64 `long:"id" required:"true" description:"job id"`

	CommonOpts
}

// Execute is the entry point for "delete" command, called by flag parser
func (d *DeleteCommand) Execute(_ []string) error {
	if err := d.retry(func() error { return d.Store.DeleteJob(d.ctx(), d.ID) }); err != nil {
		return err
	}
	_, err := fmt.Fprintf(d.out(), "Deleted job #%d\n", d.ID)
	return err
}
