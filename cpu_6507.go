// cpu_6507.go - MOS 6507, the 28-pin 6502 used by the Atari 2600

package six5go2

// ADDRESS_MASK_6507 covers A0-A12, the only address lines the 6507 bonds out.
const ADDRESS_MASK_6507 = 0x1FFF

// Pins6507 is the reduced pin set of the 6507: 13 address lines, data,
// R/W, RES and RDY. There are no IRQ, NMI or SYNC pins.
type Pins6507 struct {
	Address uint16
	Data    uint8
	RW      bool
	RES     bool
	RDY     bool
}

// CPU_6507 wraps a 6502 core. The core still sees SYNC internally; it
// just never leaves the package.
type CPU_6507 struct {
	core *CPU_6502
	pins Pins
}

func NewCPU_6507() (*CPU_6507, Pins6507) {
	core, pins := NewCPU_6502WithOptions(CPU6502Options{BCDEnabled: true})
	cpu := &CPU_6507{core: core, pins: pins}
	return cpu, cpu.external()
}

func (cpu_6507 *CPU_6507) Cycle(pins Pins6507) Pins6507 {
	p := cpu_6507.pins
	p.Data = pins.Data
	p.RES = pins.RES
	p.RDY = pins.RDY
	p.IRQ = false
	p.NMI = false

	cpu_6507.pins = cpu_6507.core.Cycle(p)
	return cpu_6507.external()
}

func (cpu_6507 *CPU_6507) external() Pins6507 {
	return Pins6507{
		Address: cpu_6507.pins.Address() & ADDRESS_MASK_6507,
		Data:    cpu_6507.pins.Data,
		RW:      cpu_6507.pins.RW,
		RES:     cpu_6507.pins.RES,
		RDY:     cpu_6507.pins.RDY,
	}
}

// Registers exposes the core's register file for debuggers and tests.
func (cpu_6507 *CPU_6507) Registers() *Registers {
	return &cpu_6507.core.Registers
}

// AtInstructionBoundary reports whether the last edge fetched an opcode.
func (cpu_6507 *CPU_6507) AtInstructionBoundary() bool {
	return cpu_6507.pins.SYNC
}
