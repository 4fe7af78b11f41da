package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrijs2005/gkeyring/internal/client/config"
	"github.com/dmitrijs2005/gkeyring/internal/client/keyring"
	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/dmitrijs2005/gkeyring/internal/client/services"
	"github.com/dmitrijs2005/gkeyring/internal/logging"
	"github.com/spf13/cobra"
)

// StoreOpener connects to the secret store. It is called once per invocation,
// after the command line has been parsed.
type StoreOpener func(ctx context.Context, log logging.Logger) (keyring.Store, error)

type App struct {
	open   StoreOpener
	term   Terminal
	stdout io.Writer
	stderr io.Writer
	level  *slog.LevelVar
	log    logging.Logger
}

// NewApp wires an App. Logs go to stderr.
func NewApp(open StoreOpener, term Terminal, stdout, stderr io.Writer) *App {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	return &App{
		open:   open,
		term:   term,
		stdout: stdout,
		stderr: stderr,
		level:  level,
		log:    logging.New(stderr, level),
	}
}

// Run executes one invocation and returns the process exit code. When ctx is
// cancelled before the invocation finishes, Run reports the interrupt, restores
// the terminal and returns ExitInterrupted without waiting any longer.
func (a *App) Run(ctx context.Context, args []string) int {
	done := make(chan int, 1)
	go func() {
		done <- a.run(ctx, args)
	}()

	select {
	case code := <-done:
		return code
	case <-ctx.Done():
		select {
		case code := <-done:
			return code
		default:
		}
		fmt.Fprintln(a.stdout, "Interrupted, exiting...")
		if r, ok := a.term.(restorer); ok {
			if err := r.Restore(); err != nil {
				a.log.Debug(ctx, "terminal restore failed", "error", err)
			}
		}
		return ExitInterrupted
	}
}

func (a *App) run(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{}
	}

	cfg, err := config.LoadConfig(args)
	if err != nil {
		return a.exitCode(&UsageError{Message: err.Error()})
	}
	if lvl, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		a.level.Set(lvl)
	}

	cmd := newRootCommand(cfg, a.execute)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return a.exitCode(cmd.ExecuteContext(ctx))
}

// execute runs the parsed command line against the store.
func (a *App) execute(cmd *cobra.Command, o *options) error {
	ctx := cmd.Context()
	if o.debug {
		a.level.Set(slog.LevelDebug)
	}

	store, err := a.open(ctx, a.log)
	if err != nil {
		a.log.Debug(ctx, "open store", "error", err)
		return &ExitError{Code: ExitUsage, Message: "Secret Service is not available!"}
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		a.log.Debug(ctx, "ping store", "error", err)
		return &ExitError{Code: ExitUsage, Message: "Secret Service is not available!"}
	}

	req, err := a.buildRequest(ctx, store, o)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "request", "mode", req.Mode, "keyring", req.Keyring, "type", req.Type,
		"id", req.ID, "attributes", req.Attributes.Names(), "columns", req.Columns)

	items := services.NewItemService(store, a.log)

	switch req.Mode {
	case models.ModeCreate:
		id, err := items.Create(ctx, req)
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("Error creating keyring item!\nDetails:\n%s", err)}
		}
		_, err = fmt.Fprintln(a.stdout, id)
		return err

	case models.ModeDelete:
		if err := items.Delete(ctx, req); err != nil {
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("Error deleting keyring item!\nDetails:\n%s", err)}
		}
		return nil
	}

	rows := items.Query(ctx, req)
	if len(rows) == 0 {
		return &ExitError{Code: ExitFailure}
	}
	return writeRows(a.stdout, rows, req.Columns, req.NoNewline)
}

// exitCode reports err on stderr and maps it to a process exit code.
func (a *App) exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(a.stderr, "Usage: gkeyring [options]\n\ngkeyring: error: %s\n", usage.Message)
		return ExitUsage
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		if exit.Message != "" {
			fmt.Fprintln(a.stderr, exit.Message)
		}
		return exit.Code
	}

	fmt.Fprintf(a.stderr, "gkeyring: %v\n", err)
	return ExitFatal
}
