// cpu_6502_registers.go - 6502 register file, status flags and interrupt request set

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

package six5go2

const (
	// Status Register Flags

	CARRY_FLAG     = 0x01 // Carry flag
	ZERO_FLAG      = 0x02 // Zero flag
	INTERRUPT_FLAG = 0x04 // Interrupt disable
	DECIMAL_FLAG   = 0x08 // Decimal mode
	BREAK_FLAG     = 0x10 // Break command (only exists on the stack)
	UNUSED_FLAG    = 0x20 // Unused (always 1)
	OVERFLOW_FLAG  = 0x40 // Overflow flag
	NEGATIVE_FLAG  = 0x80 // Negative flag
)

const (
	STACK_PAGE   = 0x01   // Stack lives at $01xx
	NMI_VECTOR   = 0xFFFA // NMI vector location
	RESET_VECTOR = 0xFFFC // Reset vector location
	IRQ_VECTOR   = 0xFFFE // IRQ and BRK vector location
)

// Register16 is a 16-bit register kept as two bytes, mirroring the
// separate low and high incrementers of the real chip.
type Register16 struct {
	Lo uint8
	Hi uint8
}

func NewRegister16(value uint16) Register16 {
	return Register16{Lo: uint8(value), Hi: uint8(value >> 8)}
}

func (r Register16) Uint16() uint16 {
	return uint16(r.Hi)<<8 | uint16(r.Lo)
}

func (r *Register16) Set(value uint16) {
	r.Lo = uint8(value)
	r.Hi = uint8(value >> 8)
}

// Increment adds one with carry from the low byte into the high byte.
func (r *Register16) Increment() {
	r.Lo++
	if r.Lo == 0 {
		r.Hi++
	}
}

// Add returns r + n as a full 16-bit add (wrapping at $FFFF).
func (r Register16) Add(n uint8) Register16 {
	return NewRegister16(r.Uint16() + uint16(n))
}

// AddSigned returns r + offset, used for branch targets.
func (r Register16) AddSigned(offset int8) Register16 {
	return NewRegister16(r.Uint16() + uint16(int16(offset)))
}

// StatusRegister holds the six real flags. Bits 4 and 5 do not exist
// inside the chip; they only appear when the register is pushed.
type StatusRegister struct {
	C bool
	Z bool
	I bool
	D bool
	V bool
	N bool
}

// Byte packs the flags. Bit 5 is always set; bit 4 is set when the push
// comes from BRK or PHP and clear for IRQ and NMI.
func (p StatusRegister) Byte(software bool) uint8 {
	v := uint8(UNUSED_FLAG)
	if p.C {
		v |= CARRY_FLAG
	}
	if p.Z {
		v |= ZERO_FLAG
	}
	if p.I {
		v |= INTERRUPT_FLAG
	}
	if p.D {
		v |= DECIMAL_FLAG
	}
	if software {
		v |= BREAK_FLAG
	}
	if p.V {
		v |= OVERFLOW_FLAG
	}
	if p.N {
		v |= NEGATIVE_FLAG
	}
	return v
}

func (p *StatusRegister) SetByte(v uint8) {
	p.C = v&CARRY_FLAG != 0
	p.Z = v&ZERO_FLAG != 0
	p.I = v&INTERRUPT_FLAG != 0
	p.D = v&DECIMAL_FLAG != 0
	p.V = v&OVERFLOW_FLAG != 0
	p.N = v&NEGATIVE_FLAG != 0
}

// SetZN truncates value to 8 bits, updates Z and N from it and returns
// the truncated byte.
func (p *StatusRegister) SetZN(value int) uint8 {
	v := uint8(value)
	p.Z = v == 0
	p.N = v&0x80 != 0
	return v
}

// BrkFlags is the set of pending BRK-like sequences. RESET takes
// precedence over NMI, and NMI over IRQ, when the vector is chosen.
type BrkFlags uint8

const (
	BrkNone  BrkFlags = 0
	BrkIRQ   BrkFlags = 1 << 0
	BrkNMI   BrkFlags = 1 << 1
	BrkReset BrkFlags = 1 << 2
)

func (f BrkFlags) Has(flag BrkFlags) bool {
	return f&flag != 0
}

// vector returns the low byte of the vector the sequence reads from page $FF.
func (f BrkFlags) vector() uint8 {
	switch {
	case f.Has(BrkReset):
		return uint8(RESET_VECTOR & 0xFF)
	case f.Has(BrkNMI):
		return uint8(NMI_VECTOR & 0xFF)
	default:
		return uint8(IRQ_VECTOR & 0xFF)
	}
}

func (f BrkFlags) String() string {
	switch {
	case f == BrkNone:
		return "NONE"
	case f.Has(BrkReset):
		return "RESET"
	case f.Has(BrkNMI) && f.Has(BrkIRQ):
		return "NMI|IRQ"
	case f.Has(BrkNMI):
		return "NMI"
	default:
		return "IRQ"
	}
}

// Registers is the CPU-internal state touched by micro-operations.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	PC Register16
	SP uint8
	P  StatusRegister

	IR uint8 // opcode being executed
	TR uint8 // cycle index within IR

	// AD is the scratch latch used while an effective address is built.
	// It is only meaningful inside a single instruction.
	AD Register16

	BrkFlags   BrkFlags
	BCDEnabled bool
}

func (r *Registers) stackAddress() Register16 {
	return Register16{Lo: r.SP, Hi: STACK_PAGE}
}

func (r *Registers) decimalMode() bool {
	return r.P.D && r.BCDEnabled
}
