// debug_disasm_6502.go - 6502 disassembler driven by the opcode metadata table

package six5go2

import (
	"fmt"
	"strings"
)

// DisassembledLine represents one disassembled instruction.
type DisassembledLine struct {
	Address  uint16
	HexBytes string
	Mnemonic string
	Size     int
	IsPC     bool // true if this is the current PC
}

// formatOperand6502 renders the operand of the instruction at addr.
// data holds the opcode followed by its operand bytes.
func formatOperand6502(info OpcodeInfo, addr uint16, data []byte) string {
	var nn uint16
	if len(data) >= 3 {
		nn = uint16(data[1]) | uint16(data[2])<<8
	}
	var n byte
	if len(data) >= 2 {
		n = data[1]
	}

	switch info.Mode {
	case AMImplied, AMInvalid:
		return ""
	case AMAccumulator:
		return "A"
	case AMImmediate:
		if isBranch6502(info.Name) {
			return fmt.Sprintf("$%04X", addr+2+uint16(int8(n)))
		}
		return fmt.Sprintf("#$%02X", n)
	case AMZeroPage:
		return fmt.Sprintf("$%02X", n)
	case AMZeroPageX:
		return fmt.Sprintf("$%02X,X", n)
	case AMZeroPageY:
		return fmt.Sprintf("$%02X,Y", n)
	case AMAbsolute, AMJSR:
		return fmt.Sprintf("$%04X", nn)
	case AMAbsoluteX:
		return fmt.Sprintf("$%04X,X", nn)
	case AMAbsoluteY:
		return fmt.Sprintf("$%04X,Y", nn)
	case AMIndirect:
		return fmt.Sprintf("($%04X)", nn)
	case AMIndexedIndirectX:
		return fmt.Sprintf("($%02X,X)", n)
	case AMIndirectIndexedY:
		return fmt.Sprintf("($%02X),Y", n)
	}
	return "?"
}

// Disassemble6502 decodes count instructions starting at addr. read must
// not have side effects; use MemoryBus6502.Peek rather than Read8.
func Disassemble6502(read func(addr uint16) byte, addr uint16, count int) []DisassembledLine {
	lines := make([]DisassembledLine, 0, count)
	for i := 0; i < count; i++ {
		op := read(addr)
		info := Opcodes6502[op]
		size := info.Mode.Size()

		data := make([]byte, size)
		hexParts := make([]string, size)
		for j := 0; j < size; j++ {
			data[j] = read(addr + uint16(j))
			hexParts[j] = fmt.Sprintf("%02X", data[j])
		}

		mnemonic := info.Name
		if operand := formatOperand6502(info, addr, data); operand != "" {
			mnemonic += " " + operand
		}
		if Undocumented6502(op) {
			mnemonic = "*" + mnemonic
		}

		lines = append(lines, DisassembledLine{
			Address:  addr,
			HexBytes: strings.Join(hexParts, " "),
			Mnemonic: mnemonic,
			Size:     size,
		})
		addr += uint16(size)
	}
	return lines
}

func (line DisassembledLine) String() string {
	marker := " "
	if line.IsPC {
		marker = ">"
	}
	return fmt.Sprintf("%s%04X  %-8s  %s", marker, line.Address, line.HexBytes, line.Mnemonic)
}
