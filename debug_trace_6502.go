// debug_trace_6502.go - per-instruction and per-cycle trace output for the 6502 runner

package six5go2

import (
	"fmt"
	"io"
)

// Tracer6502 writes one line per instruction boundary in the layout used
// by the reference nestest trace:
//
//	C000  A:00 X:00 Y:00 P:24 SP:FD CPUC:7
//
// Bus lines, when enabled, follow each instruction line. Write errors are
// sticky and reported by Err.
type Tracer6502 struct {
	w        io.Writer
	busLines bool
	disasm   bool
	err      error
}

type TraceOption6502 func(t *Tracer6502)

// WithBusTrace adds a READ or WRITE line for every clock edge.
func WithBusTrace() TraceOption6502 {
	return func(t *Tracer6502) { t.busLines = true }
}

// WithDisassembly appends the decoded instruction to each boundary line.
func WithDisassembly() TraceOption6502 {
	return func(t *Tracer6502) { t.disasm = true }
}

func NewTracer6502(w io.Writer, options ...TraceOption6502) *Tracer6502 {
	t := &Tracer6502{w: w}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Tracer6502) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Instruction records the state at the start of the instruction at pc.
func (t *Tracer6502) Instruction(cpu *CPU_6502, pc uint16, cycles uint64, peek func(addr uint16) byte) {
	t.printf("%04X  A:%02X X:%02X Y:%02X P:%02X SP:%02X CPUC:%d",
		pc, cpu.A, cpu.X, cpu.Y, cpu.P.Byte(false), cpu.SP, cycles)
	if t.disasm && peek != nil {
		line := Disassemble6502(peek, pc, 1)[0]
		t.printf("  %-8s  %s", line.HexBytes, line.Mnemonic)
	}
	t.printf("\n")
}

// Bus records one bus transaction after it has been serviced.
func (t *Tracer6502) Bus(pins Pins) {
	if !t.busLines {
		return
	}
	if pins.RW {
		t.printf("READ      $%04X => $%02X\n", pins.Address(), pins.Data)
	} else {
		t.printf("WRITE     $%04X <= $%02X\n", pins.Address(), pins.Data)
	}
}

func (t *Tracer6502) Err() error {
	return t.err
}
