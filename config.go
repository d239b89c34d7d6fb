package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

const (
	_tableExt  = ".code"
	_packedExt = ".huff"
)

type config struct {
	Input      string
	Output     string
	CodeFile   string
	Decompress bool
	LogFile    string
	Verbose    bool
}

func newConfig(flag *flag.FlagSet) *config {
	var c config
	c.RegisterFlags(flag)
	return &c
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.Output, "o", "", "")
	flag.StringVar(&c.CodeFile, "code", "", "")
	flag.BoolVar(&c.Decompress, "d", false, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// parseDefaults parses default options from a string of shell words,
// as found in the HUFFCODE_OPTS environment variable.
func parseDefaults(opts string) (*config, error) {
	args, err := shellwords.Parse(opts)
	if err != nil {
		return nil, fmt.Errorf("parse %v: %w", _optsEnv, err)
	}

	fset := flag.NewFlagSet(_optsEnv, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cfg := newConfig(fset)
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse %v: %w", _optsEnv, err)
	}
	if args := fset.Args(); len(args) > 0 {
		return nil, fmt.Errorf("parse %v: unexpected arguments %q", _optsEnv, args)
	}
	return cfg, nil
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Input) == 0 {
		c.Input = o.Input
	}
	if len(c.Output) == 0 {
		c.Output = o.Output
	}
	if len(c.CodeFile) == 0 {
		c.CodeFile = o.CodeFile
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Decompress = c.Decompress || o.Decompress
	c.Verbose = c.Verbose || o.Verbose
}

// Flags rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Flags() []string {
	var args []string
	if len(c.Output) > 0 {
		args = append(args, "-o", c.Output)
	}
	if len(c.CodeFile) > 0 {
		args = append(args, "-code", c.CodeFile)
	}
	if c.Decompress {
		args = append(args, "-d")
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if len(c.Input) > 0 {
		args = append(args, c.Input)
	}
	return args
}

// stdio reports whether the input is read from stdin.
func (c *config) stdio() bool {
	return len(c.Input) == 0 || c.Input == "-"
}

// resolve fills in the default code table and output paths
// based on the input path.
//
// An empty Output after resolve means stdout.
func (c *config) resolve() error {
	if c.stdio() {
		if len(c.CodeFile) == 0 {
			return errors.New("-code is required when reading from stdin")
		}
		return nil
	}

	base, packed := strings.CutSuffix(c.Input, _packedExt)
	if len(c.CodeFile) == 0 {
		if c.Decompress {
			c.CodeFile = base + _tableExt
		} else {
			c.CodeFile = c.Input + _tableExt
		}
	}

	if len(c.Output) == 0 {
		switch {
		case !c.Decompress:
			c.Output = c.Input + _packedExt
		case packed:
			c.Output = base
		default:
			c.Output = c.Input + ".out"
		}
	}
	return nil
}
