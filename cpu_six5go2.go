// cpu_six5go2.go - Cycle-Accurate 6502 CPU Core

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

/*
cpu_six5go2.go - Cycle-Accurate 6502 CPU Core

This module implements the MOS Technology 6502 as a pin-level state
machine. One call to Cycle is one clock edge: the caller hands in the
pins it drove (in particular the data byte for the address requested on
the previous edge) and gets back the pins the CPU drives next.

Core Features:
- Every documented and undocumented NMOS opcode
- Bus-exact cycle timing, including dummy reads and writes
- Page-cross penalties on indexed reads and taken branches
- NMOS decimal mode, switchable for BCD-less variants
- RESET, IRQ and NMI through the BRK sequence
- JAM lock-up released only by RES

Instruction Boundaries:
The last cycle of every instruction puts PC on the address bus and
raises SYNC. The next call treats the returned data byte as the opcode.
A pending RESET, NMI or IRQ is taken at that point by substituting the
BRK opcode and leaving PC where it is.

Interrupt Sampling:
- RES is sampled at each boundary and wins over everything else
- NMI is edge triggered: a rising edge on any cycle is latched until
  the next boundary
- IRQ is level triggered and sampled on the last cycle of an
  instruction against the I flag as it stood before that cycle, which
  gives CLI, SEI and PLP their one-instruction delay

Ownership:
The engine holds no references to memory or peripherals. It is not safe
for concurrent use; one goroutine owns one engine.
*/

package six5go2

import "fmt"

type CPU6502Options struct {
	// BCDEnabled turns decimal-mode ADC, SBC and ARR on. When false the
	// D flag is still stored but arithmetic stays binary.
	BCDEnabled bool
}

type CPU_6502 struct {
	/*
	   CPU_6502 implements a cycle-accurate MOS Technology 6502 processor.

	   Core Registers (embedded Registers):
	   - A, X, Y: 8-bit registers
	   - PC: Programme counter as separate low/high bytes
	   - SP: Stack pointer into page $01
	   - P: Status flags

	   Sequencing State:
	   - IR: Opcode being executed
	   - TR: Cycle index within IR
	   - AD: Address latch for the current instruction
	   - BrkFlags: Pending RESET/NMI/IRQ sequence

	   Signal Lines:
	   - nmiLine: NMI level on the previous edge
	   - nmiPending: NMI edge waiting for the next boundary
	*/

	Registers

	nmiLine    bool
	nmiPending bool
}

// NewCPU_6502 returns an NMOS 6502 with decimal mode enabled and the
// pins for its first edge. The first edge begins the RESET sequence.
func NewCPU_6502() (*CPU_6502, Pins) {
	return NewCPU_6502WithOptions(CPU6502Options{BCDEnabled: true})
}

func NewCPU_6502WithOptions(options CPU6502Options) (*CPU_6502, Pins) {
	cpu := &CPU_6502{
		Registers: Registers{BCDEnabled: options.BCDEnabled},
	}
	return cpu, Pins{SYNC: true, RES: true, RW: true}
}

func (cpu_6502 *CPU_6502) Cycle(pins Pins) Pins {
	/*
	   Cycle advances the CPU by one clock edge.

	   Sequence:
	   1. On SYNC, latch the opcode and start at TR 0. RES turns the
	      boundary into a RESET. Any pending sequence replaces the
	      opcode with BRK and keeps PC; otherwise PC steps past the opcode
	   2. Latch an NMI rising edge
	   3. Default the bus to read and run the (IR, TR) micro-operations
	   4. Advance TR
	   5. If the cycle ended an instruction, sample NMI and IRQ
	*/

	if pins.SYNC {
		cpu_6502.IR = pins.Data
		cpu_6502.TR = 0
		pins.SYNC = false

		if pins.RES {
			cpu_6502.BrkFlags = BrkReset
			cpu_6502.nmiPending = false
		}
		if cpu_6502.BrkFlags != BrkNone {
			cpu_6502.IR = 0x00
			pins.RES = false
		} else {
			cpu_6502.PC.Increment()
		}
	}

	cpu_6502.latchNMI(pins.NMI)

	irqMasked := cpu_6502.P.I
	pins.RW = true
	cpu_6502.execute(&pins)
	cpu_6502.TR++

	if pins.SYNC {
		cpu_6502.sampleInterrupts(&pins, irqMasked)
	}
	return pins
}

func (cpu_6502 *CPU_6502) execute(pins *Pins) {
	cycles := dispatch6502[cpu_6502.IR]
	if int(cpu_6502.TR) >= len(cycles) {
		panic(fmt.Sprintf("six5go2: unimplemented opcode 0x%02X timing %d", cpu_6502.IR, cpu_6502.TR))
	}
	for _, op := range cycles[cpu_6502.TR] {
		op(cpu_6502, pins)
	}
}

// latchNMI records a rising edge on the NMI line. The latch survives
// until the next instruction boundary takes it.
func (cpu_6502 *CPU_6502) latchNMI(level bool) {
	if level && !cpu_6502.nmiLine {
		cpu_6502.nmiPending = true
	}
	cpu_6502.nmiLine = level
}

func (cpu_6502 *CPU_6502) sampleInterrupts(pins *Pins, irqMasked bool) {
	if cpu_6502.nmiPending {
		cpu_6502.nmiPending = false
		cpu_6502.BrkFlags |= BrkNMI
	}
	if pins.IRQ && !irqMasked {
		cpu_6502.BrkFlags |= BrkIRQ
	}
}

// Jammed reports whether a JAM opcode has been latched. Only RES gets
// the CPU out again.
func (cpu_6502 *CPU_6502) Jammed() bool {
	return Opcodes6502[cpu_6502.IR].Mode == AMInvalid && cpu_6502.TR > 0
}

func (cpu_6502 *CPU_6502) String() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X IR=%02X TR=%d",
		cpu_6502.PC.Uint16(), cpu_6502.A, cpu_6502.X, cpu_6502.Y, cpu_6502.SP,
		cpu_6502.P.Byte(false), cpu_6502.IR, cpu_6502.TR)
}
