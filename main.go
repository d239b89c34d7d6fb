package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/paniclog"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		Clock:     clock.New(),
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	LookupEnv func(string) (string, bool) // == os.LookupEnv
	Clock     clock.Clock
}

const (
	_name    = "huffcode"
	_optsEnv = "HUFFCODE_OPTS"
)

const _usage = `usage: %v [options] [FILE]

Compresses FILE with a Huffman code built from the frequencies of its bytes.
The code table is written next to the compressed file so that it may be
decompressed later with -d.

Reads from stdin if FILE is '-' or absent.

The following flags are available:

	-d
		decompress FILE instead of compressing it.
	-o OUTPUT
		file to write the result to.
		Defaults to FILE.huff when compressing, and to FILE without
		the .huff extension when decompressing.
		Uses stdout if FILE is read from stdin, or if OUTPUT is '-'.
	-code TABLE
		file holding the code table.
		This is written when compressing and read when decompressing.
		Defaults to FILE.code, with the .huff extension removed
		when decompressing.
		Required when reading from stdin.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output, including the code for every byte.
	-version
		display version information.

Default options may be specified in the HUFFCODE_OPTS environment
variable. Options on the command line take precedence.

	HUFFCODE_OPTS='-verbose -log /tmp/huffcode.log'
`

func (cmd *mainCmd) Run(args []string) (err error) {
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}

	cfg := newConfig(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.Input = args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	if opts, ok := cmd.lookupEnv(_optsEnv); ok {
		defaults, err := parseDefaults(opts)
		if err != nil {
			return err
		}
		cfg.FillFrom(defaults)
	}

	if err := cfg.resolve(); err != nil {
		return err
	}

	logW := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %w", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logW = f
	}

	logger := log.New(logW)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}
	defer paniclog.Recover(&err, logger)

	logger.Debug("starting",
		log.OmitEmpty(slog.String, "input", cfg.Input),
		log.OmitEmpty(slog.String, "output", cfg.Output),
		slog.String("code", cfg.CodeFile),
		slog.Any("args", cfg.Flags()),
	)

	clk := cmd.Clock
	if clk == nil {
		clk = clock.New()
	}

	t := transcoder{
		Log:   logger,
		Clock: clk,
	}
	if cfg.Decompress {
		return cmd.decompress(&t, cfg)
	}
	return cmd.compress(&t, cfg)
}

func (cmd *mainCmd) compress(t *transcoder, cfg *config) (err error) {
	src, err := cmd.readInput(cfg.Input)
	if err != nil {
		return err
	}

	// Encode before creating any files
	// so that a failure doesn't leave partial files behind.
	tree, bits, err := t.Encode(src)
	if err != nil {
		return err
	}

	table, err := createFile(cfg.CodeFile)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(table))

	out, err := cmd.createOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	return t.Write(tree, bits, table, out)
}

func (cmd *mainCmd) decompress(t *transcoder, cfg *config) (err error) {
	table, err := os.Open(cfg.CodeFile)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(table))

	var in io.Reader = cmd.Stdin
	if !cfg.stdio() {
		f, openErr := os.Open(cfg.Input)
		if openErr != nil {
			return openErr
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		in = f
	}

	// Decompress before creating the output
	// so that a failure doesn't leave a partial file behind.
	msg, err := t.Decompress(table, in)
	if err != nil {
		return err
	}

	out, err := cmd.createOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	_, err = out.Write(msg)
	return err
}

func (cmd *mainCmd) lookupEnv(k string) (string, bool) {
	if cmd.LookupEnv == nil {
		return "", false
	}
	return cmd.LookupEnv(k)
}

func (cmd *mainCmd) readInput(path string) ([]byte, error) {
	if len(path) == 0 || path == "-" {
		return io.ReadAll(cmd.Stdin)
	}
	return os.ReadFile(path)
}

func (cmd *mainCmd) createOutput(path string) (io.WriteCloser, error) {
	if len(path) == 0 || path == "-" {
		return nopWriteCloser{cmd.Stdout}, nil
	}
	return createFile(path)
}

func createFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
