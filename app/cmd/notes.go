package cmd

import (
	"fmt"

	"github.com/umputun/jobtrack/app/domain"
)

// NoteCommand groups note subcommands
type NoteCommand struct {
	Add  NoteAddCommand  `command:"add" description:"add a note to a job"`
	List NoteListCommand `command:"list" description:"list notes of a job"`
}

// NoteAddCommand attaches a note to existing job
type NoteAddCommand struct {
	ID   int64  `long:"id" required:"true" description:"job id"`
	Text string `long:"text" required:"true" description:"note text"`

	CommonOpts
}

// Execute is the entry point for "note add" command, called by flag parser
func (n *NoteAddCommand) Execute(_ []string) error {
	var noteID int64
	err := n.retry(func() (err error) {
		noteID, err = n.Store.AddNote(n.ctx(), n.ID, n.Text)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(n.out(), "Added note #%d to job #%d\n", noteID, n.ID)
	return err
}

// NoteListCommand prints notes of a job, newest first
type NoteListCommand struct {
	ID int64 `long:"id" required:"true" description:"job id"`

	CommonOpts
}

// Execute is the entry point for "note list" command, called by flag parser
func (n *NoteListCommand) Execute(_ []string) error {
	var notes []domain.Note
	err := n.retry(func() (err error) {
		notes, err = n.Store.ListNotes(n.ctx(), n.ID)
		return err
	})
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		_, err = fmt.Fprintf(n.out(), "No notes for job #%d.\n", n.ID)
		return err
	}
	for _, note := range notes {
		if _, err := fmt.Fprintf(n.out(), "#%03d | %s | %s\n",
			note.ID, note.CreatedAt.Format("2006-01-02 15:04:05"), note.Text); err != nil {
			return err
		}
	}
	return nil
}
