package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/benetherington/anvil-runtime/internal/ctxlog"
	"github.com/benetherington/anvil-runtime/internal/prompt"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Env holds the process streams and the prompt driver used by commands.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Driver prompt.Driver
}

const usageText = `
anvil-types - inspect and build serializable plotly schema types.

Usage:
  anvil-types [options] <command> [arguments]

Commands:
  list                      List registered types.
  describe <type>           Show the attributes of a type.
  new <type> [flags]        Prompt for attributes and print a JSON envelope.
  decode [-file path]       Validate a JSON envelope and print it normalised.

Options:
`

// Run parses args and executes the selected command.
func Run(ctx context.Context, args []string, env Env) error {
	flagSet := flag.NewFlagSet("anvil-types", flag.ContinueOnError)
	flagSet.SetOutput(env.Stderr)
	flagSet.Usage = func() {
		fmt.Fprint(env.Stderr, usageText)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger, err := newLogger(*logLevelFlag, *logFormatFlag, env.Stderr)
	if err != nil {
		return usageError("%v", err)
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return usageError("a command is required")
	}

	a, err := newApp(logger)
	if err != nil {
		return err
	}

	command, rest := flagSet.Arg(0), flagSet.Args()[1:]
	logger.Debug("Running command.", "command", command, "args", rest)
	switch command {
	case "list":
		return a.list(env.Stdout)
	case "describe":
		return a.describe(rest, env.Stdout)
	case "new":
		return a.newValue(ctx, rest, env)
	case "decode":
		return a.decode(rest, env)
	default:
		flagSet.Usage()
		return usageError("unknown command %q", command)
	}
}
