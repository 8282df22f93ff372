package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/g-m-twostay/chain-table/internal/interp"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	flagLogFormat = pflag.String("log-format", "text", "The log format (json|text)")
	flagLogLevel  = pflag.String("log-level", slog.LevelWarn.String(),
		fmt.Sprintf(
			"The log level (%s>%s>%s>%s) (not case sensitive, from least to most restrictive)",
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		))
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: hashtable [flags] <command_file> <output_file>")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logLeveler := new(slog.LevelVar)
	if err := logLeveler.UnmarshalText([]byte(*flagLogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}
	opts := &slog.HandlerOptions{Level: logLeveler}
	switch *flagLogFormat {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
	default:
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, pflag.Args()); err != nil {
		slog.Debug("run failed", slog.String("err", fmt.Sprintf("%+v", err)))
		fmt.Println(interp.Message(err))
	}
}

// run the command file args[0], writing the outputs to args[1].
func run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.WithStack(interp.ErrUsage)
	}
	in, err := os.Open(args[0])
	if err != nil {
		return errors.WithStack(&interp.FileError{Path: args[0], Err: err})
	}
	defer in.Close()
	out, err := os.Create(args[1])
	if err != nil {
		return errors.WithStack(&interp.FileError{Path: args[1], Err: err})
	}
	defer out.Close()
	slog.Info("running", slog.String("commands", args[0]), slog.String("output", args[1]))
	return interp.New(interp.OptLogger(slog.Default())).Run(ctx, in, out)
}
