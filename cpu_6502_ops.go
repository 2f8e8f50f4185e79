// cpu_6502_ops.go - documented 6502 operations, grouped by how they use the bus

package six5go2

// readOp6502 consumes the operand the bus returned on the previous cycle.
type readOp6502 func(cpu_6502 *CPU_6502, value byte)

// writeOp6502 returns the byte to drive onto the data bus.
type writeOp6502 func(cpu_6502 *CPU_6502, pins *Pins) byte

// modifyOp6502 maps the fetched operand to the value written back. It is
// shared by read-modify-write memory forms and the accumulator forms.
type modifyOp6502 func(cpu_6502 *CPU_6502, value byte) byte

// impliedOp6502 touches registers only.
type impliedOp6502 func(cpu_6502 *CPU_6502)

var readOps6502 = map[string]readOp6502{
	"LDA": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.A = cpu_6502.P.SetZN(int(v)) },
	"LDX": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.X = cpu_6502.P.SetZN(int(v)) },
	"LDY": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.Y = cpu_6502.P.SetZN(int(v)) },
	"ORA": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.A | v)) },
	"AND": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.A & v)) },
	"EOR": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.A ^ v)) },
	"ADC": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.adc(v) },
	"SBC": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.sbc(v) },
	"CMP": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.compare(cpu_6502.A, v) },
	"CPX": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.compare(cpu_6502.X, v) },
	"CPY": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.compare(cpu_6502.Y, v) },
	"BIT": func(cpu_6502 *CPU_6502, v byte) { cpu_6502.bit(v) },
	"NOP": func(cpu_6502 *CPU_6502, v byte) {},
}

var writeOps6502 = map[string]writeOp6502{
	"STA": func(cpu_6502 *CPU_6502, pins *Pins) byte { return cpu_6502.A },
	"STX": func(cpu_6502 *CPU_6502, pins *Pins) byte { return cpu_6502.X },
	"STY": func(cpu_6502 *CPU_6502, pins *Pins) byte { return cpu_6502.Y },
}

var modifyOps6502 = map[string]modifyOp6502{
	"ASL": (*CPU_6502).asl,
	"LSR": (*CPU_6502).lsr,
	"ROL": (*CPU_6502).rol,
	"ROR": (*CPU_6502).ror,
	"INC": (*CPU_6502).inc,
	"DEC": (*CPU_6502).dec,
}

var impliedOps6502 = map[string]impliedOp6502{
	"CLC": func(cpu_6502 *CPU_6502) { cpu_6502.P.C = false },
	"SEC": func(cpu_6502 *CPU_6502) { cpu_6502.P.C = true },
	"CLI": func(cpu_6502 *CPU_6502) { cpu_6502.P.I = false },
	"SEI": func(cpu_6502 *CPU_6502) { cpu_6502.P.I = true },
	"CLD": func(cpu_6502 *CPU_6502) { cpu_6502.P.D = false },
	"SED": func(cpu_6502 *CPU_6502) { cpu_6502.P.D = true },
	"CLV": func(cpu_6502 *CPU_6502) { cpu_6502.P.V = false },
	"TAX": func(cpu_6502 *CPU_6502) { cpu_6502.X = cpu_6502.P.SetZN(int(cpu_6502.A)) },
	"TAY": func(cpu_6502 *CPU_6502) { cpu_6502.Y = cpu_6502.P.SetZN(int(cpu_6502.A)) },
	"TXA": func(cpu_6502 *CPU_6502) { cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.X)) },
	"TYA": func(cpu_6502 *CPU_6502) { cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.Y)) },
	"TSX": func(cpu_6502 *CPU_6502) { cpu_6502.X = cpu_6502.P.SetZN(int(cpu_6502.SP)) },
	"TXS": func(cpu_6502 *CPU_6502) { cpu_6502.SP = cpu_6502.X }, // no flags
	"INX": func(cpu_6502 *CPU_6502) { cpu_6502.X = cpu_6502.P.SetZN(int(cpu_6502.X) + 1) },
	"INY": func(cpu_6502 *CPU_6502) { cpu_6502.Y = cpu_6502.P.SetZN(int(cpu_6502.Y) + 1) },
	"DEX": func(cpu_6502 *CPU_6502) { cpu_6502.X = cpu_6502.P.SetZN(int(cpu_6502.X) - 1) },
	"DEY": func(cpu_6502 *CPU_6502) { cpu_6502.Y = cpu_6502.P.SetZN(int(cpu_6502.Y) - 1) },
	"NOP": func(cpu_6502 *CPU_6502) {},
}

var branchConditions6502 = map[string]func(p StatusRegister) bool{
	"BPL": func(p StatusRegister) bool { return !p.N },
	"BMI": func(p StatusRegister) bool { return p.N },
	"BVC": func(p StatusRegister) bool { return !p.V },
	"BVS": func(p StatusRegister) bool { return p.V },
	"BCC": func(p StatusRegister) bool { return !p.C },
	"BCS": func(p StatusRegister) bool { return p.C },
	"BNE": func(p StatusRegister) bool { return !p.Z },
	"BEQ": func(p StatusRegister) bool { return p.Z },
}

// Micro-operation adapters. Each returns a microOp6502 that performs the
// operation on the current cycle.

func readStep6502(op readOp6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		op(cpu_6502, pins.Data)
	}
}

func writeStep6502(op writeOp6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.Data = op(cpu_6502, pins)
		pins.RW = false
	}
}

func impliedStep6502(op impliedOp6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		op(cpu_6502)
	}
}

func accumulatorStep6502(op modifyOp6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.A = op(cpu_6502, cpu_6502.A)
	}
}

// rmwLatch6502 latches the operand and writes it straight back, the
// dummy write every NMOS read-modify-write instruction performs.
func rmwLatch6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.AD.Lo = pins.Data
	pins.RW = false
}

func rmwWriteBack6502(op modifyOp6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.Data = op(cpu_6502, cpu_6502.AD.Lo)
		pins.RW = false
	}
}
