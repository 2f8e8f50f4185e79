// monitor.go - interactive single-step monitor on a raw terminal (golang.org/x/term)

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/intuitionamiga/six5go2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const monitorHelp = "space/enter: step  c: continue  r: registers  d: disassemble  q: quit"

// errQuit ends a monitor session the user abandoned before any stop
// condition held, so the run is reported as a failure.
var errQuit = errors.New("quit from monitor")

// monitor reads single keys and drives the runner. Output uses CRLF
// because the terminal is in raw mode.
type monitor struct {
	runner *six5go2.CPU6502Runner
	in     io.Reader
	out    io.Writer
	stop   func(six5go2.ConditionTarget) bool
}

// runMonitor puts stdin into raw mode for the duration of the session.
func runMonitor(ctx context.Context, runner *six5go2.CPU6502Runner, stop func(six5go2.ConditionTarget) bool, stdin *os.File, out io.Writer) error {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("-step needs a terminal on stdin")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "monitor: failed to set raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	m := &monitor{runner: runner, in: stdin, out: out, stop: stop}
	return m.loop(ctx)
}

func (m *monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format+"\r\n", args...)
}

func (m *monitor) showInstruction() {
	line := six5go2.Disassemble6502(m.runner.Peek, m.runner.PC(), 1)[0]
	m.printf("%04X  %-8s  %-14s %s", line.Address, line.HexBytes, line.Mnemonic, m.runner.CPU())
}

func (m *monitor) showRegisters() {
	cpu := m.runner.CPU()
	m.printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%s cycles=%d",
		cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC.Uint16(), cpu.FlagString(), m.runner.Cycles())
}

func (m *monitor) showDisassembly() {
	for _, line := range six5go2.Disassemble6502(m.runner.Peek, m.runner.PC(), 8) {
		line.IsPC = line.Address == m.runner.PC()
		m.printf("%s", line)
	}
}

// loop returns nil when a stop condition holds and errQuit when the user
// quits or input ends first.
func (m *monitor) loop(ctx context.Context) error {
	m.printf("%s", monitorHelp)
	m.showInstruction()

	buf := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := m.in.Read(buf)
		if err == io.EOF {
			return errQuit
		}
		if err != nil {
			return errors.Wrap(err, "monitor: read")
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case ' ', '\r', '\n', 's':
			if _, err := m.runner.Step(); err != nil {
				return err
			}
			m.showInstruction()
			if m.stop != nil && m.stop(m.runner) {
				return nil
			}
		case 'c':
			err := m.runner.RunUntil(ctx, m.stop)
			m.showInstruction()
			return err
		case 'r':
			m.showRegisters()
		case 'd':
			m.showDisassembly()
		case 'q', 0x03: // Ctrl-C arrives as a byte in raw mode
			return errQuit
		default:
			m.printf("%s", monitorHelp)
		}
	}
}
