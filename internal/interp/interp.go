// Package interp runs line oriented command scripts against a ChainSet of strings.
//
// Each line holds a command and, for add, remove and find, a value:
//
//	add <value>     -> "add <value>"
//	remove <value>  -> "remove <value>"
//	find <value>    -> "find <value> true" or "find <value> false"
//	clear           -> "clear"
//	print           -> "print" followed by the set dump
//
// Anything else is an invalid command and stops the script.
package interp

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/g-m-twostay/chain-table/Lists"
	"github.com/g-m-twostay/chain-table/Sets/ChainSet"
	"github.com/pkg/errors"
)

var (
	ErrUsage          = errors.New("usage")
	ErrInvalidFile    = errors.New("invalid file")
	ErrInvalidCommand = errors.New("invalid command")
)

// FileError is a command or output file that can't be opened. It matches ErrInvalidFile with errors.Is
// and unwraps to the underlying open error.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return "invalid file " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrInvalidFile
}

// Message gives the text printed to the user for err.
func Message(err error) string {
	var ior *Lists.IndexOutOfRangeError
	switch {
	case errors.Is(err, ErrUsage):
		return "ERROR - USAGE: ./HashTable [command_file] [output_file]"
	case errors.Is(err, ErrInvalidFile):
		return "ERROR - INVALID FILE"
	case errors.Is(err, ErrInvalidCommand):
		return "ERROR - INVALID COMMAND"
	case errors.As(err, &ior):
		return "ERROR - INDEX OUT OF RANGE"
	}
	return "ERROR - " + err.Error()
}

// Option mutates an Interpreter.
type Option func(*Interpreter)

// OptLogger sets the logger, slog.Default() otherwise.
func OptLogger(log *slog.Logger) Option {
	return func(it *Interpreter) {
		it.log = log
	}
}

// OptSet runs the commands against an existing set.
func OptSet(set *ChainSet.ChainSet[string]) Option {
	return func(it *Interpreter) {
		it.set = set
	}
}

type Interpreter struct {
	set *ChainSet.ChainSet[string]
	log *slog.Logger
}

func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		set: ChainSet.NewString(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Set the commands run against.
func (it *Interpreter) Set() *ChainSet.ChainSet[string] {
	return it.set
}

// Execute one command line and return its output, newline terminated.
// Only the first two whitespace separated fields count; a missing value is the empty string.
func (it *Interpreter) Execute(line string) (string, error) {
	var cmd, value string
	if fields := strings.Fields(line); len(fields) > 1 {
		cmd, value = fields[0], fields[1]
	} else if len(fields) == 1 {
		cmd = fields[0]
	}
	switch cmd {
	case "add":
		it.set.Insert(value)
		return "add " + value + "\n", nil
	case "remove":
		it.set.Remove(value)
		return "remove " + value + "\n", nil
	case "find":
		if it.set.Has(value) {
			return "find " + value + " true\n", nil
		}
		return "find " + value + " false\n", nil
	case "clear":
		it.set.Clear()
		return "clear\n", nil
	case "print":
		return "print" + it.set.String(), nil
	}
	return "", errors.Wrapf(ErrInvalidCommand, "%q", line)
}

// Run executes every line of r and writes the outputs to w. It stops at the first failing command, keeping the
// output of the commands before it, or when ctx is done.
func (it *Interpreter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	bw := bufio.NewWriter(w)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(flushed(bw, err), "interrupted")
		}
		n++
		out, err := it.Execute(sc.Text())
		if err != nil {
			it.log.Debug("command failed", slog.Int("line", n), slog.String("text", sc.Text()), slog.Any("err", err))
			return errors.Wrapf(flushed(bw, err), "line %d", n)
		}
		it.log.Debug("command", slog.Int("line", n), slog.String("text", sc.Text()),
			slog.Int("size", it.set.Size()), slog.Int("table_size", it.set.TableSize()))
		if _, err = bw.WriteString(out); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(flushed(bw, err), "reading commands")
	}
	it.log.Debug("script done", slog.Int("lines", n))
	return errors.Wrap(bw.Flush(), "writing output")
}

// flushed flushes bw and returns err, or the flush error if err is nil.
func flushed(bw *bufio.Writer, err error) error {
	if ferr := bw.Flush(); err == nil {
		return ferr
	}
	return err
}
