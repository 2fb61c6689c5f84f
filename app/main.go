package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/joho/godotenv"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobtrack/app/cmd"
	"github.com/umputun/jobtrack/app/store"
)

type options struct {
	DBPath string `long:"db" env:"JOBTRACK_DB" description:"sqlite database file (default ~/.local/share/job-tracker/job_tracker.db)"`
	Dbg    bool   `long:"dbg" env:"JOBTRACK_DEBUG" description:"debug mode"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"file" env:"FILE" description:"log file, stderr if not set"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"10" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"3" description:"max number of rotated files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"30" description:"max days to retain rotated files"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated files"`
	} `group:"log" namespace:"log" env-namespace:"JOBTRACK_LOG"`

	Retry struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to try a failed store call"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"100ms" description:"initial delay"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"2" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"retry" namespace:"retry" env-namespace:"JOBTRACK_RETRY"`

	Add          cmd.AddCommand          `command:"add" description:"add a job application"`
	List         cmd.ListCommand         `command:"list" description:"list job applications, newest first"`
	UpdateStatus cmd.UpdateStatusCommand `command:"update-status" description:"change status of a job"`
	Delete       cmd.DeleteCommand       `command:"delete" description:"delete a job with all its notes"`
	Note         cmd.NoteCommand         `command:"note" description:"manage notes of a job"`
	Export       cmd.ExportCommand       `command:"export" description:"export all jobs with notes"`
	Schema       cmd.SchemaCommand       `command:"schema" description:"print json schema of the export document"`
}

// exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

var revision = "unknown"

func main() {
	_ = godotenv.Load() // .env is optional

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGTERM and interrupt
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run parses args and executes the selected command, returns process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "jobtrack"
	p.LongDescription = "jobtrack " + revision + ", tracks job applications locally"

	p.CommandHandler = func(command flags.Commander, args []string) error {
		if rotated, ok := setupLogs(opts).(*lumberjack.Logger); ok {
			defer func() {
				if err := rotated.Close(); err != nil {
					fmt.Fprintf(stderr, "failed to close log file, %v\n", err)
				}
			}()
		}
		log.Printf("[DEBUG] jobtrack %s", revision)

		c, ok := command.(cmd.CommonOptionsCommander)
		if !ok {
			return command.Execute(args)
		}

		common := cmd.CommonOpts{
			Context: ctx,
			Out:     stdout,
			Repeater: repeater.New(&strategy.Backoff{Repeats: opts.Retry.Attempts, Duration: opts.Retry.Duration,
				Factor: opts.Retry.Factor, Jitter: opts.Retry.Jitter}),
		}

		if c.NeedsStore() {
			dbPath, err := makeDBPath(opts.DBPath)
			if err != nil {
				return err
			}
			st, err := store.NewSQLiteStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Printf("[WARN] failed to close store, %v", err)
				}
			}()
			common.Store = st
		}

		c.SetCommon(common)
		err := c.Execute(args)
		if err != nil {
			log.Printf("[DEBUG] command failed, %v", err)
		}
		return err
	}

	if _, err := p.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, err)
				return exitOK
			}
			fmt.Fprintln(stderr, err)
			return exitBadUsage
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// makeDBPath resolves the database location and creates its parent directory
func makeDBPath(dbPath string) (string, error) {
	if dbPath == ":memory:" {
		return dbPath, nil
	}
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return "", fmt.Errorf("failed to make directory for %s: %w", dbPath, err)
	}
	return dbPath, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "job-tracker", "job_tracker.db")
}

// setupLogs configures lgr and returns the log destination, the caller closes it if it is a rotated file
func setupLogs(opts options) io.Writer {
	if !opts.Log.Enabled {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return io.Discard
	}

	var out io.Writer = os.Stderr
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

// signals cancels the context on SIGTERM or interrupt, SIGQUIT prints stack traces
func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT {
				length := runtime.Stack(stacktrace, true)
				fmt.Fprintln(os.Stderr, string(stacktrace[:length]))
				continue
			}
			log.Printf("[WARN] %v received, terminating", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, os.Interrupt)
}
