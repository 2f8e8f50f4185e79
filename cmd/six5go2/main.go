// main.go - six5go2 command-line runner for 6502 test ROMs and programs

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
Buy me a coffee: https://ko-fi.com/intuition/tip

License: GPLv3 or later
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/intuitionamiga/six5go2"
	"github.com/pkg/errors"
)

// conditionList collects repeated -until flags.
type conditionList []*six5go2.Condition

func (c *conditionList) String() string {
	parts := make([]string, len(*c))
	for i, cond := range *c {
		parts[i] = cond.String()
	}
	return strings.Join(parts, ",")
}

func (c *conditionList) Set(text string) error {
	cond, err := six5go2.ParseCondition(text)
	if err != nil {
		return err
	}
	*c = append(*c, cond)
	return nil
}

type options struct {
	loadAddr  uint16
	entry     uint16
	reset     uint16
	hasReset  bool
	image     bool
	until     conditionList
	maxCycles uint64
	trap      bool
	trace     string
	busTrace  bool
	disasm    bool
	noBCD     bool
	script    string
	step      bool
	jobs      int
	version   bool
	files     []string
}

func parseAddressFlag(name, text string) (uint16, error) {
	v, ok := six5go2.ParseAddress(text)
	if !ok || v > 0xFFFF {
		return 0, errors.Errorf("-%s: invalid address %q", name, text)
	}
	return uint16(v), nil
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var (
		opts      options
		loadAddr  string
		entryAddr string
		resetAddr string
	)

	flagSet := flag.NewFlagSet("six5go2", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&loadAddr, "load", "0x0600", "load address (hex or decimal)")
	flagSet.StringVar(&entryAddr, "entry", "", "entry address written to the vectors (default: load address)")
	flagSet.StringVar(&resetAddr, "reset", "", "override the reset vector after loading")
	flagSet.BoolVar(&opts.image, "image", false, "file is a raw memory image loaded at -load without touching the vectors")
	flagSet.Var(&opts.until, "until", "stop condition, e.g. pc==$3469 or [$0210]==$FF (repeatable)")
	flagSet.Uint64Var(&opts.maxCycles, "max-cycles", 0, "abort after this many clock cycles (0 = unlimited)")
	flagSet.BoolVar(&opts.trap, "trap", true, "stop when an instruction branches or jumps to itself")
	flagSet.StringVar(&opts.trace, "trace", "", "write a per-instruction trace to this file (- for stdout)")
	flagSet.BoolVar(&opts.busTrace, "bus-trace", false, "add every bus read and write to the trace")
	flagSet.BoolVar(&opts.disasm, "disasm", false, "add disassembly to the trace")
	flagSet.BoolVar(&opts.noBCD, "no-bcd", false, "disable decimal mode (NES-style 2A03)")
	flagSet.StringVar(&opts.script, "script", "", "Lua script with on_sync/on_write hooks")
	flagSet.BoolVar(&opts.step, "step", false, "single-step interactively (needs a terminal)")
	flagSet.IntVar(&opts.jobs, "jobs", 4, "ROMs to run at once when several are given")
	flagSet.BoolVar(&opts.version, "version", false, "print version information")

	flagSet.Usage = func() {
		flagSet.SetOutput(stderr)
		fmt.Fprintln(stderr, "Usage: six5go2 [options] file [file...]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		flagSet.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Examples:")
		fmt.Fprintln(stderr, "  six5go2 -image -load 0 -reset 0x0400 -until 'pc==$3469' 6502_functional_test.bin")
		fmt.Fprintln(stderr, "  six5go2 -load 0x4000 -until '[$0210]==$FF' AllSuiteA.bin")
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if opts.loadAddr, err = parseAddressFlag("load", loadAddr); err != nil {
		return nil, err
	}
	if entryAddr != "" {
		if opts.entry, err = parseAddressFlag("entry", entryAddr); err != nil {
			return nil, err
		}
	}
	if resetAddr != "" {
		if opts.reset, err = parseAddressFlag("reset", resetAddr); err != nil {
			return nil, err
		}
		opts.hasReset = true
	}

	opts.files = flagSet.Args()
	if opts.version {
		return &opts, nil
	}
	if len(opts.files) == 0 {
		flagSet.Usage()
		return nil, errors.New("no input file")
	}
	if len(opts.files) > 1 && (opts.trace != "" || opts.step) {
		return nil, errors.New("-trace and -step take a single file")
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	return &opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "six5go2: %v\n", err)
		return 1
	}

	if opts.version {
		printVersion(stdout)
		return 0
	}

	if len(opts.files) > 1 {
		failed := runSuite(ctx, opts, opts.files, stdout)
		if failed > 0 {
			return 1
		}
		return 0
	}

	result := runOne(ctx, opts, opts.files[0], stdout)
	fmt.Fprintln(stdout, result)
	if !result.ok() {
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
