// Command mmr3 hashes keys with MurmurHash3 and benchmarks the implementation.
//
// Usage:
//
//	mmr3 hash  [-bits 32|128] [-seed N] [-signed] [-hex] [-format text|json] [-o FILE] [KEY...]
//	mmr3 batch [-seed N] [-signed] [-workers N] [-chunk N] [-rate B/s] [-metrics ADDR] [-o FILE] [FILE...]
//	mmr3 bench [-scale F] [-format markdown|json]
//	mmr3 info  [-format text|json]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/mmr3"
	"github.com/hupe1980/mmr3/internal/fs"
)

var errUsage = errors.New("usage")

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	fs     fs.FileSystem
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"hash", "hash keys given as arguments or stdin lines", runHash},
	{"batch", "hash every line of the given files in parallel", runBatch},
	{"bench", "compare throughput against github.com/twmb/murmur3", runBench},
	{"info", "print platform and CPU information", runInfo},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, fs: fs.Default}
	if err := run(ctx, e, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "mmr3:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, e *env, args []string) error {
	if e.fs == nil {
		e.fs = fs.Default
	}
	if len(args) == 0 {
		usage(e.stderr)
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			err := c.run(ctx, e, args[1:])
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(e.stdout)
		return nil
	}

	fmt.Fprintf(e.stderr, "unknown command %q\n\n", args[0])
	usage(e.stderr)
	return errUsage
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: mmr3 <command> [options]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-6s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'mmr3 <command> -h' for command options.\n")
}

func newFlagSet(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func newLogger(w io.Writer, verbose bool) *mmr3.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return mmr3.NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
