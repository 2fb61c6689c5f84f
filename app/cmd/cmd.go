// Package cmd implements jobtrack commands. Each command is a go-flags commander
// with CommonOpts injected from main before Execute is called.
package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobtrack/app/domain"
	"github.com/umputun/jobtrack/app/store"
)

// CommonOptionsCommander extends flags.Commander with SetCommon.
// All commands should implement this interface.
type CommonOptionsCommander interface {
	SetCommon(commonOpts CommonOpts)
	NeedsStore() bool
	Execute(args []string) error
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// CommonOpts sets externally from main, shared across all commands
type CommonOpts struct {
	Context  context.Context
	Store    store.Store
	Repeater Repeater // optional, no retries if nil
	Out      io.Writer
}

// errStopRetry is returned to repeater to terminate on non-transient errors
var errStopRetry = errors.New("stop retry")

// SetCommon satisfies CommonOptionsCommander interface and sets common option fields.
// The method called by main for each command.
func (c *CommonOpts) SetCommon(commonOpts CommonOpts) {
	c.Context = commonOpts.Context
	c.Store = commonOpts.Store
	c.Repeater = commonOpts.Repeater
	c.Out = commonOpts.Out
}

// NeedsStore tells main to open the store before execution
func (c *CommonOpts) NeedsStore() bool { return true }

func (c *CommonOpts) ctx() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

func (c *CommonOpts) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// retry calls fn through the repeater. Domain and validation errors are returned right away,
// everything else (locked database, i/o) repeated as transient.
func (c *CommonOpts) retry(fn func() error) error {
	if c.Repeater == nil {
		return fn()
	}

	var critical error
	err := c.Repeater.Do(c.ctx(), func() error {
		e := fn()
		if isCritical(e) {
			critical = e
			return errStopRetry
		}
		if e != nil {
			log.Printf("[WARN] store call failed, %v", e)
		}
		return e
	}, errStopRetry)

	if critical != nil {
		return critical
	}
	return err
}

func isCritical(err error) bool {
	return errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidStatus) || errors.Is(err, context.Canceled)
}
