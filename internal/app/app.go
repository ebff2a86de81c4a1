package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/dogyears/internal/cli"
	"github.com/agbru/dogyears/internal/config"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/logging"
	"github.com/agbru/dogyears/internal/server"
	"github.com/agbru/dogyears/internal/submission"
	"github.com/agbru/dogyears/internal/tui"
	"github.com/agbru/dogyears/internal/ui"
)

// ProviderFactory builds the fact provider from the parsed options.
type ProviderFactory func(ctx context.Context, opts fact.Options) (fact.Provider, error)

// Application represents the dogyears application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	programName string
	newProvider ProviderFactory
	in          io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithProviderFactory replaces fact.New.
func WithProviderFactory(f ProviderFactory) AppOption {
	return func(a *Application) { a.newProvider = f }
}

// WithInput sets the REPL input; stdin by default.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.in = in }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, newProvider: fact.New, in: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	app.programName = "dogyears"
	var cmdArgs []string
	if len(args) > 0 {
		app.programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(app.programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch a.Config.Mode() {
	case config.ModeVersion:
		PrintVersion(out)
		return apperrors.ExitSuccess
	case config.ModeCompletion:
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	provider, err := a.newProvider(ctx, a.Config.FactOptions())
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	provider = fact.NewTraced(provider)

	switch a.Config.Mode() {
	case config.ModeServe:
		return a.runServe(ctx, provider)
	case config.ModeTUI:
		return tui.Run(ctx, provider, Version, submission.WithTimeout(a.Config.FactTimeout))
	case config.ModeREPL:
		return a.runREPL(ctx, provider, out)
	default:
		return a.runOneShot(ctx, provider, out)
	}
}

func (a *Application) logger() logging.Logger {
	return logging.NewLeveledLogger(a.ErrWriter, "dogyears", a.Config.LogLevel)
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{Quiet: a.Config.Quiet, JSON: a.Config.JSON}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.programName); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runOneShot converts the age given on the command line and exits.
func (a *Application) runOneShot(ctx context.Context, provider fact.Provider, out io.Writer) int {
	opts := []submission.Option{
		submission.WithTimeout(a.Config.FactTimeout),
		submission.WithLogger(a.logger()),
	}
	if !a.Config.Quiet && !a.Config.JSON {
		opts = append(opts, submission.WithNotifier(cli.Notifier{Out: a.ErrWriter}))
	}
	ctrl := submission.New(provider, opts...)

	if _, err := cli.Calculate(ctx, ctrl, a.Config.Age, a.Config.Size, a.outputConfig(), out); err != nil {
		if !apperrors.IsContextError(err) {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		}
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive prompt.
func (a *Application) runREPL(ctx context.Context, provider fact.Provider, out io.Writer) int {
	ctrl := submission.New(provider,
		submission.WithTimeout(a.Config.FactTimeout),
		submission.WithLogger(a.logger()),
		submission.WithNotifier(cli.Notifier{Out: out}),
	)
	repl := cli.NewREPL(ctrl, cli.REPLConfig{
		DefaultSize:  a.Config.Size,
		ProviderName: fact.Name(provider),
		Output:       a.outputConfig(),
	})
	repl.SetInput(a.in)
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runServe serves the HTTP API until a signal arrives.
func (a *Application) runServe(ctx context.Context, provider fact.Provider) int {
	logger := a.logger()
	srv := server.New(provider, server.Config{
		Addr:        a.Config.Addr,
		FactTimeout: a.Config.FactTimeout,
	}, server.WithLogger(logger))

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
