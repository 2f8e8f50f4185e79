// cpu_6502_runner.go - drives a CPU_6502 against a MemoryBus6502 one clock edge at a time

package six5go2

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

const (
	default6502LoadAddr = 0x0600

	// contextCheckInterval is how many instructions run between
	// cancellation checks in RunUntil.
	contextCheckInterval = 1024
)

var (
	ErrJammed     = errors.New("cpu jammed")
	ErrCycleLimit = errors.New("cycle limit reached")
	// ErrStopped is returned (wrapped) by hooks that want to end a run
	// successfully. RunUntil passes it through; callers test with errors.Cause.
	ErrStopped = errors.New("stopped")
)

type CPU6502Config struct {
	LoadAddr   uint16
	Entry      uint16
	DisableBCD bool
	MaxCycles  uint64 // 0 = unlimited
}

type CPU6502Runner struct {
	cpu  *CPU_6502
	bus  *MemoryBus6502
	pins Pins

	loadAddr  uint16
	entry     uint16
	bcd       bool
	maxCycles uint64

	cycles       uint64
	instructions uint64

	irq bool
	nmi bool
	rdy bool

	// stalled is set when the last Tick was held off by RDY.
	stalled bool

	tracer  *Tracer6502
	onSync  []func(pc uint16) error
	onWrite []func(addr uint16, value byte) error
	onStall []func(addr uint16) error
}

func NewCPU6502Runner(bus *MemoryBus6502, config CPU6502Config) *CPU6502Runner {
	if bus == nil {
		bus = NewMemoryBus6502()
	}
	loadAddr := config.LoadAddr
	if loadAddr == 0 {
		loadAddr = default6502LoadAddr
	}
	entry := config.Entry
	if entry == 0 {
		entry = loadAddr
	}

	r := &CPU6502Runner{
		bus:       bus,
		loadAddr:  loadAddr,
		entry:     entry,
		bcd:       !config.DisableBCD,
		maxCycles: config.MaxCycles,
	}
	r.cpu, r.pins = NewCPU_6502WithOptions(CPU6502Options{BCDEnabled: r.bcd})
	return r
}

func (r *CPU6502Runner) LoadProgram(filename string) error {
	program, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "load 6502 program")
	}

	r.bus.Reset()
	if err := r.bus.Load(r.loadAddr, program); err != nil {
		return errors.Wrapf(err, "load %s at $%04X", filename, r.loadAddr)
	}

	// Reset/NMI/IRQ vectors point at entry by default.
	r.SetVector(RESET_VECTOR, r.entry)
	r.SetVector(NMI_VECTOR, r.entry)
	r.SetVector(IRQ_VECTOR, r.entry)

	return r.Reset()
}

// LoadImage copies data to base without touching the vectors.
func (r *CPU6502Runner) LoadImage(data []byte, base uint16) error {
	return errors.Wrapf(r.bus.Load(base, data), "load image at $%04X", base)
}

func (r *CPU6502Runner) SetVector(vector uint16, target uint16) {
	r.bus.Poke(vector, uint8(target&0x00FF))
	r.bus.Poke(vector+1, uint8(target>>8))
}

// Reset powers the CPU up from scratch and runs the RESET sequence to
// the first opcode fetch. Counters restart at the fetch's cycle count.
func (r *CPU6502Runner) Reset() error {
	r.cpu, r.pins = NewCPU_6502WithOptions(CPU6502Options{BCDEnabled: r.bcd})
	r.cycles = 0
	r.instructions = 0
	_, err := r.Step()
	return err
}

// AssertReset raises RES; the CPU resets at its next instruction boundary.
func (r *CPU6502Runner) AssertReset() {
	r.pins.RES = true
}

func (r *CPU6502Runner) SetIRQ(level bool) { r.irq = level }
func (r *CPU6502Runner) SetNMI(level bool) { r.nmi = level }

// SetRDY stalls the CPU on read cycles while level is true.
func (r *CPU6502Runner) SetRDY(level bool) { r.rdy = level }

func (r *CPU6502Runner) SetTracer(t *Tracer6502) { r.tracer = t }

func (r *CPU6502Runner) OnSync(hook func(pc uint16) error) {
	r.onSync = append(r.onSync, hook)
}

func (r *CPU6502Runner) OnWrite(hook func(addr uint16, value byte) error) {
	r.onWrite = append(r.onWrite, hook)
}

// OnStall registers a hook run on every clock edge RDY holds the CPU.
// addr is the read being repeated. This is where a peripheral that
// raised RDY (a WSYNC-style register) counts down and releases it.
func (r *CPU6502Runner) OnStall(hook func(addr uint16) error) {
	r.onStall = append(r.onStall, hook)
}

// Tick runs one clock edge and services the resulting bus request.
func (r *CPU6502Runner) Tick() error {
	r.pins.IRQ = r.irq
	r.pins.NMI = r.nmi
	r.pins.RDY = r.rdy

	// RDY holds the CPU on read cycles only; the read is simply repeated.
	// The NMI input is still edge-detected so a pulse during the stall is
	// not lost.
	r.stalled = r.rdy && r.pins.RW
	if r.stalled {
		r.cpu.latchNMI(r.nmi)
		r.cycles++
		r.bus.Service(&r.pins)
		for _, hook := range r.onStall {
			if err := hook(r.pins.Address()); err != nil {
				return err
			}
		}
		return nil
	}

	r.pins = r.cpu.Cycle(r.pins)
	r.cycles++

	if r.pins.SYNC {
		r.instructions++
		pc := r.pins.Address()
		if r.tracer != nil {
			r.tracer.Instruction(r.cpu, pc, r.cycles, r.bus.Peek)
		}
		for _, hook := range r.onSync {
			if err := hook(pc); err != nil {
				r.bus.Service(&r.pins)
				return err
			}
		}
	}

	r.bus.Service(&r.pins)
	if r.tracer != nil {
		r.tracer.Bus(r.pins)
	}

	if !r.pins.RW {
		for _, hook := range r.onWrite {
			if err := hook(r.pins.Address(), r.pins.Data); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step runs to the next instruction boundary and returns the number of
// clock edges it took.
func (r *CPU6502Runner) Step() (int, error) {
	return r.step(context.Background())
}

// step is Step with the cycle limit and ctx also enforced while RDY
// holds the CPU, since an instruction stalled forever never reaches a
// boundary where RunUntil could check them.
func (r *CPU6502Runner) step(ctx context.Context) (int, error) {
	start := r.cycles
	stalls := 0
	for {
		if err := r.Tick(); err != nil {
			return int(r.cycles - start), err
		}
		if r.stalled {
			stalls++
			if r.maxCycles > 0 && r.cycles >= r.maxCycles {
				return int(r.cycles - start), errors.Wrapf(ErrCycleLimit, "%d cycles stalled by RDY at $%04X", r.cycles, r.pins.Address())
			}
			if stalls%contextCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return int(r.cycles - start), errors.Wrapf(err, "stalled by RDY at $%04X", r.pins.Address())
				}
			}
			continue
		}
		if r.pins.SYNC {
			return int(r.cycles - start), nil
		}
		if r.cpu.Jammed() && !r.pins.RES {
			return int(r.cycles - start), errors.Wrapf(ErrJammed, "opcode $%02X at $%04X", r.cpu.IR, r.cpu.PC.Uint16()-1)
		}
	}
}

// RunUntil steps instructions until stop reports true at a boundary, the
// CPU jams, the cycle limit is hit, a hook fails or ctx is cancelled.
func (r *CPU6502Runner) RunUntil(ctx context.Context, stop func(ConditionTarget) bool) error {
	for {
		if stop != nil && stop(r) {
			return nil
		}
		if r.maxCycles > 0 && r.cycles >= r.maxCycles {
			return errors.Wrapf(ErrCycleLimit, "%d cycles at PC=$%04X", r.cycles, r.PC())
		}
		if r.instructions%contextCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "stopped at PC=$%04X", r.PC())
			default:
			}
		}
		if _, err := r.step(ctx); err != nil {
			return err
		}
	}
}

// PC is the address of the next instruction when called at a boundary.
func (r *CPU6502Runner) PC() uint16 {
	return r.cpu.PC.Uint16()
}

func (r *CPU6502Runner) CPU() *CPU_6502        { return r.cpu }
func (r *CPU6502Runner) Bus() *MemoryBus6502   { return r.bus }
func (r *CPU6502Runner) Pins() Pins            { return r.pins }
func (r *CPU6502Runner) Cycles() uint64        { return r.cycles }
func (r *CPU6502Runner) Instructions() uint64  { return r.instructions }
func (r *CPU6502Runner) Peek(addr uint16) byte { return r.bus.Peek(addr) }

func (r *CPU6502Runner) GetRegister(name string) (uint64, bool) {
	return r.cpu.GetRegister(name)
}
