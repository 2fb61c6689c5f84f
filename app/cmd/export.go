package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/umputun/jobtrack/app/domain"
	"github.com/umputun/jobtrack/app/store"
)

// ExportDocument is a full dump of the store, jobs newest first with their notes
type ExportDocument struct {
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at" jsonschema:"description=time of export"`
	Jobs       []ExportJob `json:"jobs" yaml:"jobs" jsonschema:"description=all jobs ordered by id descending"`
}

// ExportJob is a job with its notes
type ExportJob struct {
	ID        int64         `json:"id" yaml:"id" jsonschema:"minimum=1"`
	Company   string        `json:"company" yaml:"company" jsonschema:"minLength=1"`
	Role      string        `json:"role" yaml:"role" jsonschema:"minLength=1"`
	URL       *string       `json:"url,omitempty" yaml:"url,omitempty"`
	Status    domain.Status `json:"status" yaml:"status"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	Notes     []ExportNote  `json:"notes" yaml:"notes"`
}

// ExportNote is a note without the redundant job id
type ExportNote struct {
	ID        int64     `json:"id" yaml:"id" jsonschema:"minimum=1"`
	Text      string    `json:"text" yaml:"text" jsonschema:"minLength=1"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ExportCommand dumps all jobs with notes as json or yaml
type ExportCommand struct {
	Format string `long:"format" choice:"json" choice:"yaml" default:"json" description:"output format"`
	File   string `long:"out" description:"output file, stdout if not set"`

	CommonOpts
	now func() time.Time
}

// Execute is the entry point for "export" command, called by flag parser
func (e *ExportCommand) Execute(_ []string) error {
	doc, err := e.collect()
	if err != nil {
		return err
	}

	var data []byte
	switch e.Format {
	case "yaml":
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
	default:
		if data, err = json.MarshalIndent(doc, "", "  "); err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		data = append(data, '\n')
	}

	if err := writeOutput(e.out(), e.File, data); err != nil {
		return err
	}
	log.Printf("[INFO] exported %d jobs as %s", len(doc.Jobs), e.Format)
	return nil
}

func (e *ExportCommand) collect() (ExportDocument, error) {
	now := time.Now
	if e.now != nil {
		now = e.now
	}
	doc := ExportDocument{ExportedAt: now().UTC().Truncate(time.Second), Jobs: []ExportJob{}}

	var jobs []domain.Job
	err := e.retry(func() (err error) {
		jobs, err = e.Store.ListJobs(e.ctx())
		return err
	})
	if err != nil {
		return ExportDocument{}, err
	}

	for _, j := range jobs {
		var notes []domain.Note
		err := e.retry(func() (err error) {
			notes, err = e.Store.ListNotes(e.ctx(), j.ID)
			return err
		})
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[INFO] job #%d removed during export, skipped", j.ID)
			continue
		}
		if err != nil {
			return ExportDocument{}, fmt.Errorf("failed to export notes of job %d: %w", j.ID, err)
		}

		ej := ExportJob{ID: j.ID, Company: j.Company, Role: j.Role, URL: j.URL, Status: j.Status,
			CreatedAt: j.CreatedAt, Notes: make([]ExportNote, 0, len(notes))}
		for _, n := range notes {
			ej.Notes = append(ej.Notes, ExportNote{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt})
		}
		doc.Jobs = append(doc.Jobs, ej)
	}
	return doc, nil
}

// SchemaCommand prints json schema of the export document
type SchemaCommand struct {
	File string `long:"out" description:"output file, stdout if not set"`

	CommonOpts
}

// NeedsStore is false, schema doesn't touch the database
func (s *SchemaCommand) NeedsStore() bool { return false }

// Execute is the entry point for "schema" command, called by flag parser
func (s *SchemaCommand) Execute(_ []string) error {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	return writeOutput(s.out(), s.File, append(data, '\n'))
}

// GenerateSchema makes json schema for ExportDocument
func GenerateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != reflect.TypeOf(domain.Status{}) {
				return nil
			}
			enum := make([]any, 0, len(domain.StatusNames))
			for _, name := range domain.StatusNames {
				enum = append(enum, name)
			}
			return &jsonschema.Schema{Type: "string", Enum: enum, Description: "application status"}
		},
	}
	schema := r.Reflect(&ExportDocument{})
	schema.Title = "Jobtrack Export Schema"
	schema.Description = "Schema for jobtrack export documents"
	return schema
}

func writeOutput(stdout io.Writer, file string, data []byte) error {
	if file == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
