package six5go2

import (
	"os"
	"testing"
)

const testProgramBase = 0x0200

type cpu6502TestRig struct {
	bus    *MemoryBus6502
	runner *CPU6502Runner
}

func newCPU6502TestRig() *cpu6502TestRig {
	bus := NewMemoryBus6502()
	return &cpu6502TestRig{
		bus:    bus,
		runner: NewCPU6502Runner(bus, CPU6502Config{LoadAddr: testProgramBase}),
	}
}

func (r *cpu6502TestRig) cpu() *CPU_6502 {
	return r.runner.CPU()
}

// resetAndLoad places program at start, points every vector there and runs
// the RESET sequence so the next Step executes the first instruction.
func (r *cpu6502TestRig) resetAndLoad(t *testing.T, start uint16, program []byte) {
	t.Helper()

	r.bus.Reset()
	if err := r.bus.Load(start, program); err != nil {
		t.Fatalf("load: %v", err)
	}
	r.setVectors(start)
	if err := r.runner.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func (r *cpu6502TestRig) setVectors(entry uint16) {
	r.runner.SetVector(RESET_VECTOR, entry)
	r.runner.SetVector(NMI_VECTOR, entry)
	r.runner.SetVector(IRQ_VECTOR, entry)
}

// step runs one instruction and returns the clock edges it took.
func (r *cpu6502TestRig) step(t *testing.T) int {
	t.Helper()

	cycles, err := r.runner.Step()
	if err != nil {
		t.Fatalf("step at PC=0x%04X: %v", r.runner.PC(), err)
	}
	return cycles
}

func (r *cpu6502TestRig) stepN(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		r.step(t)
	}
}

// busCycle is the bus state after one clock edge was serviced.
type busCycle struct {
	addr uint16
	data uint8
	rw   bool
	sync bool
}

// tickBus runs n edges and records every bus transaction.
func (r *cpu6502TestRig) tickBus(t *testing.T, n int) []busCycle {
	t.Helper()

	cycles := make([]busCycle, 0, n)
	for i := 0; i < n; i++ {
		if err := r.runner.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		pins := r.runner.Pins()
		cycles = append(cycles, busCycle{addr: pins.Address(), data: pins.Data, rw: pins.RW, sync: pins.SYNC})
	}
	return cycles
}

func requireTestFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skipf("missing test file %s", path)
		}
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func expectFlags(t *testing.T, cpu *CPU_6502, want string) {
	t.Helper()
	if got := cpu.FlagString(); got != want {
		t.Fatalf("flags=%s, want %s", got, want)
	}
}
