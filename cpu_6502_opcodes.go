// cpu_6502_opcodes.go - 6502 opcode metadata (mnemonic, addressing mode, bus access)

package six5go2

// AddressingMode selects the bus cycles that build an operand address.
type AddressingMode uint8

const (
	AMImplied          AddressingMode = iota // no operand
	AMAccumulator                            // A
	AMImmediate                              // #nn (also branch offsets)
	AMZeroPage                               // nn
	AMZeroPageX                              // nn,X
	AMZeroPageY                              // nn,Y
	AMAbsolute                               // nnnn
	AMAbsoluteX                              // nnnn,X
	AMAbsoluteY                              // nnnn,Y
	AMIndexedIndirectX                       // (nn,X)
	AMIndirectIndexedY                       // (nn),Y
	AMIndirect                               // (nnnn), JMP only
	AMJSR                                    // JSR nnnn
	AMInvalid                                // JAM
)

var addressingModeNames = [...]string{
	AMImplied:          "Implied",
	AMAccumulator:      "Accumulator",
	AMImmediate:        "Immediate",
	AMZeroPage:         "ZeroPage",
	AMZeroPageX:        "ZeroPageX",
	AMZeroPageY:        "ZeroPageY",
	AMAbsolute:         "Absolute",
	AMAbsoluteX:        "AbsoluteX",
	AMAbsoluteY:        "AbsoluteY",
	AMIndexedIndirectX: "IndexedIndirectX",
	AMIndirectIndexedY: "IndirectIndexedY",
	AMIndirect:         "Indirect",
	AMJSR:              "JSR",
	AMInvalid:          "Invalid",
}

func (m AddressingMode) String() string {
	if int(m) < len(addressingModeNames) {
		return addressingModeNames[m]
	}
	return "Unknown"
}

// Size is the instruction length in bytes including the opcode.
func (m AddressingMode) Size() int {
	switch m {
	case AMImplied, AMAccumulator, AMInvalid:
		return 1
	case AMAbsolute, AMAbsoluteX, AMAbsoluteY, AMIndirect, AMJSR:
		return 3
	default:
		return 2
	}
}

// MemoryAccess says how the operation uses the effective address, which
// decides where its cycles are placed after the addressing cycles.
type MemoryAccess uint8

const (
	AccessNone MemoryAccess = iota
	AccessRead
	AccessWrite
	AccessReadModifyWrite
)

func (a MemoryAccess) String() string {
	switch a {
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	case AccessReadModifyWrite:
		return "ReadModifyWrite"
	default:
		return "None"
	}
}

type OpcodeInfo struct {
	Name   string
	Mode   AddressingMode
	Access MemoryAccess
}

const (
	imp = AMImplied
	acc = AMAccumulator
	imm = AMImmediate
	zp  = AMZeroPage
	zpx = AMZeroPageX
	zpy = AMZeroPageY
	abs = AMAbsolute
	abx = AMAbsoluteX
	aby = AMAbsoluteY
	izx = AMIndexedIndirectX
	izy = AMIndirectIndexedY
	ind = AMIndirect
	jsr = AMJSR
	inv = AMInvalid

	none = AccessNone
	rd   = AccessRead
	wr   = AccessWrite
	rmw  = AccessReadModifyWrite
)

// Opcodes6502 describes every NMOS 6502 opcode, documented or not.
var Opcodes6502 = [256]OpcodeInfo{
	// 0x00-0x0F
	0x00: {"BRK", imp, none}, 0x01: {"ORA", izx, rd}, 0x02: {"JAM", inv, none}, 0x03: {"SLO", izx, rmw},
	0x04: {"NOP", zp, rd}, 0x05: {"ORA", zp, rd}, 0x06: {"ASL", zp, rmw}, 0x07: {"SLO", zp, rmw},
	0x08: {"PHP", imp, wr}, 0x09: {"ORA", imm, rd}, 0x0A: {"ASL", acc, none}, 0x0B: {"ANC", imm, rd},
	0x0C: {"NOP", abs, rd}, 0x0D: {"ORA", abs, rd}, 0x0E: {"ASL", abs, rmw}, 0x0F: {"SLO", abs, rmw},
	// 0x10-0x1F
	0x10: {"BPL", imm, none}, 0x11: {"ORA", izy, rd}, 0x12: {"JAM", inv, none}, 0x13: {"SLO", izy, rmw},
	0x14: {"NOP", zpx, rd}, 0x15: {"ORA", zpx, rd}, 0x16: {"ASL", zpx, rmw}, 0x17: {"SLO", zpx, rmw},
	0x18: {"CLC", imp, none}, 0x19: {"ORA", aby, rd}, 0x1A: {"NOP", imp, none}, 0x1B: {"SLO", aby, rmw},
	0x1C: {"NOP", abx, rd}, 0x1D: {"ORA", abx, rd}, 0x1E: {"ASL", abx, rmw}, 0x1F: {"SLO", abx, rmw},
	// 0x20-0x2F
	0x20: {"JSR", jsr, none}, 0x21: {"AND", izx, rd}, 0x22: {"JAM", inv, none}, 0x23: {"RLA", izx, rmw},
	0x24: {"BIT", zp, rd}, 0x25: {"AND", zp, rd}, 0x26: {"ROL", zp, rmw}, 0x27: {"RLA", zp, rmw},
	0x28: {"PLP", imp, rd}, 0x29: {"AND", imm, rd}, 0x2A: {"ROL", acc, none}, 0x2B: {"ANC", imm, rd},
	0x2C: {"BIT", abs, rd}, 0x2D: {"AND", abs, rd}, 0x2E: {"ROL", abs, rmw}, 0x2F: {"RLA", abs, rmw},
	// 0x30-0x3F
	0x30: {"BMI", imm, none}, 0x31: {"AND", izy, rd}, 0x32: {"JAM", inv, none}, 0x33: {"RLA", izy, rmw},
	0x34: {"NOP", zpx, rd}, 0x35: {"AND", zpx, rd}, 0x36: {"ROL", zpx, rmw}, 0x37: {"RLA", zpx, rmw},
	0x38: {"SEC", imp, none}, 0x39: {"AND", aby, rd}, 0x3A: {"NOP", imp, none}, 0x3B: {"RLA", aby, rmw},
	0x3C: {"NOP", abx, rd}, 0x3D: {"AND", abx, rd}, 0x3E: {"ROL", abx, rmw}, 0x3F: {"RLA", abx, rmw},
	// 0x40-0x4F
	0x40: {"RTI", imp, none}, 0x41: {"EOR", izx, rd}, 0x42: {"JAM", inv, none}, 0x43: {"SRE", izx, rmw},
	0x44: {"NOP", zp, rd}, 0x45: {"EOR", zp, rd}, 0x46: {"LSR", zp, rmw}, 0x47: {"SRE", zp, rmw},
	0x48: {"PHA", imp, wr}, 0x49: {"EOR", imm, rd}, 0x4A: {"LSR", acc, none}, 0x4B: {"ASR", imm, rd},
	0x4C: {"JMP", abs, none}, 0x4D: {"EOR", abs, rd}, 0x4E: {"LSR", abs, rmw}, 0x4F: {"SRE", abs, rmw},
	// 0x50-0x5F
	0x50: {"BVC", imm, none}, 0x51: {"EOR", izy, rd}, 0x52: {"JAM", inv, none}, 0x53: {"SRE", izy, rmw},
	0x54: {"NOP", zpx, rd}, 0x55: {"EOR", zpx, rd}, 0x56: {"LSR", zpx, rmw}, 0x57: {"SRE", zpx, rmw},
	0x58: {"CLI", imp, none}, 0x59: {"EOR", aby, rd}, 0x5A: {"NOP", imp, none}, 0x5B: {"SRE", aby, rmw},
	0x5C: {"NOP", abx, rd}, 0x5D: {"EOR", abx, rd}, 0x5E: {"LSR", abx, rmw}, 0x5F: {"SRE", abx, rmw},
	// 0x60-0x6F
	0x60: {"RTS", imp, none}, 0x61: {"ADC", izx, rd}, 0x62: {"JAM", inv, none}, 0x63: {"RRA", izx, rmw},
	0x64: {"NOP", zp, rd}, 0x65: {"ADC", zp, rd}, 0x66: {"ROR", zp, rmw}, 0x67: {"RRA", zp, rmw},
	0x68: {"PLA", imp, rd}, 0x69: {"ADC", imm, rd}, 0x6A: {"ROR", acc, none}, 0x6B: {"ARR", imm, rd},
	0x6C: {"JMP", ind, none}, 0x6D: {"ADC", abs, rd}, 0x6E: {"ROR", abs, rmw}, 0x6F: {"RRA", abs, rmw},
	// 0x70-0x7F
	0x70: {"BVS", imm, none}, 0x71: {"ADC", izy, rd}, 0x72: {"JAM", inv, none}, 0x73: {"RRA", izy, rmw},
	0x74: {"NOP", zpx, rd}, 0x75: {"ADC", zpx, rd}, 0x76: {"ROR", zpx, rmw}, 0x77: {"RRA", zpx, rmw},
	0x78: {"SEI", imp, none}, 0x79: {"ADC", aby, rd}, 0x7A: {"NOP", imp, none}, 0x7B: {"RRA", aby, rmw},
	0x7C: {"NOP", abx, rd}, 0x7D: {"ADC", abx, rd}, 0x7E: {"ROR", abx, rmw}, 0x7F: {"RRA", abx, rmw},
	// 0x80-0x8F
	0x80: {"NOP", imm, rd}, 0x81: {"STA", izx, wr}, 0x82: {"NOP", imm, rd}, 0x83: {"SAX", izx, wr},
	0x84: {"STY", zp, wr}, 0x85: {"STA", zp, wr}, 0x86: {"STX", zp, wr}, 0x87: {"SAX", zp, wr},
	0x88: {"DEY", imp, none}, 0x89: {"NOP", imm, rd}, 0x8A: {"TXA", imp, none}, 0x8B: {"ANE", imm, rd},
	0x8C: {"STY", abs, wr}, 0x8D: {"STA", abs, wr}, 0x8E: {"STX", abs, wr}, 0x8F: {"SAX", abs, wr},
	// 0x90-0x9F
	0x90: {"BCC", imm, none}, 0x91: {"STA", izy, wr}, 0x92: {"JAM", inv, none}, 0x93: {"SHA", izy, wr},
	0x94: {"STY", zpx, wr}, 0x95: {"STA", zpx, wr}, 0x96: {"STX", zpy, wr}, 0x97: {"SAX", zpy, wr},
	0x98: {"TYA", imp, none}, 0x99: {"STA", aby, wr}, 0x9A: {"TXS", imp, none}, 0x9B: {"SHS", aby, wr},
	0x9C: {"SHY", abx, wr}, 0x9D: {"STA", abx, wr}, 0x9E: {"SHX", aby, wr}, 0x9F: {"SHA", aby, wr},
	// 0xA0-0xAF
	0xA0: {"LDY", imm, rd}, 0xA1: {"LDA", izx, rd}, 0xA2: {"LDX", imm, rd}, 0xA3: {"LAX", izx, rd},
	0xA4: {"LDY", zp, rd}, 0xA5: {"LDA", zp, rd}, 0xA6: {"LDX", zp, rd}, 0xA7: {"LAX", zp, rd},
	0xA8: {"TAY", imp, none}, 0xA9: {"LDA", imm, rd}, 0xAA: {"TAX", imp, none}, 0xAB: {"LXA", imm, rd},
	0xAC: {"LDY", abs, rd}, 0xAD: {"LDA", abs, rd}, 0xAE: {"LDX", abs, rd}, 0xAF: {"LAX", abs, rd},
	// 0xB0-0xBF
	0xB0: {"BCS", imm, none}, 0xB1: {"LDA", izy, rd}, 0xB2: {"JAM", inv, none}, 0xB3: {"LAX", izy, rd},
	0xB4: {"LDY", zpx, rd}, 0xB5: {"LDA", zpx, rd}, 0xB6: {"LDX", zpy, rd}, 0xB7: {"LAX", zpy, rd},
	0xB8: {"CLV", imp, none}, 0xB9: {"LDA", aby, rd}, 0xBA: {"TSX", imp, none}, 0xBB: {"LAS", aby, rd},
	0xBC: {"LDY", abx, rd}, 0xBD: {"LDA", abx, rd}, 0xBE: {"LDX", aby, rd}, 0xBF: {"LAX", aby, rd},
	// 0xC0-0xCF
	0xC0: {"CPY", imm, rd}, 0xC1: {"CMP", izx, rd}, 0xC2: {"NOP", imm, rd}, 0xC3: {"DCP", izx, rmw},
	0xC4: {"CPY", zp, rd}, 0xC5: {"CMP", zp, rd}, 0xC6: {"DEC", zp, rmw}, 0xC7: {"DCP", zp, rmw},
	0xC8: {"INY", imp, none}, 0xC9: {"CMP", imm, rd}, 0xCA: {"DEX", imp, none}, 0xCB: {"SBX", imm, rd},
	0xCC: {"CPY", abs, rd}, 0xCD: {"CMP", abs, rd}, 0xCE: {"DEC", abs, rmw}, 0xCF: {"DCP", abs, rmw},
	// 0xD0-0xDF
	0xD0: {"BNE", imm, none}, 0xD1: {"CMP", izy, rd}, 0xD2: {"JAM", inv, none}, 0xD3: {"DCP", izy, rmw},
	0xD4: {"NOP", zpx, rd}, 0xD5: {"CMP", zpx, rd}, 0xD6: {"DEC", zpx, rmw}, 0xD7: {"DCP", zpx, rmw},
	0xD8: {"CLD", imp, none}, 0xD9: {"CMP", aby, rd}, 0xDA: {"NOP", imp, none}, 0xDB: {"DCP", aby, rmw},
	0xDC: {"NOP", abx, rd}, 0xDD: {"CMP", abx, rd}, 0xDE: {"DEC", abx, rmw}, 0xDF: {"DCP", abx, rmw},
	// 0xE0-0xEF
	0xE0: {"CPX", imm, rd}, 0xE1: {"SBC", izx, rd}, 0xE2: {"NOP", imm, rd}, 0xE3: {"ISB", izx, rmw},
	0xE4: {"CPX", zp, rd}, 0xE5: {"SBC", zp, rd}, 0xE6: {"INC", zp, rmw}, 0xE7: {"ISB", zp, rmw},
	0xE8: {"INX", imp, none}, 0xE9: {"SBC", imm, rd}, 0xEA: {"NOP", imp, none}, 0xEB: {"SBC", imm, rd},
	0xEC: {"CPX", abs, rd}, 0xED: {"SBC", abs, rd}, 0xEE: {"INC", abs, rmw}, 0xEF: {"ISB", abs, rmw},
	// 0xF0-0xFF
	0xF0: {"BEQ", imm, none}, 0xF1: {"SBC", izy, rd}, 0xF2: {"JAM", inv, none}, 0xF3: {"ISB", izy, rmw},
	0xF4: {"NOP", zpx, rd}, 0xF5: {"SBC", zpx, rd}, 0xF6: {"INC", zpx, rmw}, 0xF7: {"ISB", zpx, rmw},
	0xF8: {"SED", imp, none}, 0xF9: {"SBC", aby, rd}, 0xFA: {"NOP", imp, none}, 0xFB: {"ISB", aby, rmw},
	0xFC: {"NOP", abx, rd}, 0xFD: {"SBC", abx, rd}, 0xFE: {"INC", abx, rmw}, 0xFF: {"ISB", abx, rmw},
}

// isBranch6502 reports whether name is one of the eight conditional branches.
func isBranch6502(name string) bool {
	_, ok := branchConditions6502[name]
	return ok
}

// documented6502 lists the mnemonics of the official instruction set.
var documented6502 = map[string]bool{
	"ADC": true, "AND": true, "ASL": true, "BCC": true, "BCS": true, "BEQ": true, "BIT": true,
	"BMI": true, "BNE": true, "BPL": true, "BRK": true, "BVC": true, "BVS": true, "CLC": true,
	"CLD": true, "CLI": true, "CLV": true, "CMP": true, "CPX": true, "CPY": true, "DEC": true,
	"DEX": true, "DEY": true, "EOR": true, "INC": true, "INX": true, "INY": true, "JMP": true,
	"JSR": true, "LDA": true, "LDX": true, "LDY": true, "LSR": true, "NOP": true, "ORA": true,
	"PHA": true, "PHP": true, "PLA": true, "PLP": true, "ROL": true, "ROR": true, "RTI": true,
	"RTS": true, "SBC": true, "SEC": true, "SED": true, "SEI": true, "STA": true, "STX": true,
	"STY": true, "TAX": true, "TAY": true, "TSX": true, "TXA": true, "TXS": true, "TYA": true,
}

// Undocumented6502 reports whether opcode is outside the official set.
func Undocumented6502(opcode uint8) bool {
	info := Opcodes6502[opcode]
	if opcode == 0xEB {
		return true
	}
	if info.Name == "NOP" {
		return opcode != 0xEA
	}
	return !documented6502[info.Name]
}
