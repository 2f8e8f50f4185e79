// debug_cpu_6502.go - 6502 register access by name for monitors, scripts and stop conditions

package six5go2

import "strings"

// RegisterInfo describes one register for display.
type RegisterInfo struct {
	Name     string
	BitWidth int
	Value    uint64
	Group    string
}

func (cpu_6502 *CPU_6502) GetRegisters() []RegisterInfo {
	c := cpu_6502
	return []RegisterInfo{
		{Name: "A", BitWidth: 8, Value: uint64(c.A), Group: "general"},
		{Name: "X", BitWidth: 8, Value: uint64(c.X), Group: "general"},
		{Name: "Y", BitWidth: 8, Value: uint64(c.Y), Group: "general"},
		{Name: "SP", BitWidth: 8, Value: uint64(c.SP), Group: "general"},
		{Name: "PC", BitWidth: 16, Value: uint64(c.PC.Uint16()), Group: "general"},
		{Name: "P", BitWidth: 8, Value: uint64(c.P.Byte(false)), Group: "flags"},
		{Name: "IR", BitWidth: 8, Value: uint64(c.IR), Group: "internal"},
		{Name: "TR", BitWidth: 8, Value: uint64(c.TR), Group: "internal"},
		{Name: "AD", BitWidth: 16, Value: uint64(c.AD.Uint16()), Group: "internal"},
	}
}

// GetRegister looks a register up by name, case-insensitively. SR is
// accepted as an alias for P.
func (cpu_6502 *CPU_6502) GetRegister(name string) (uint64, bool) {
	c := cpu_6502
	switch strings.ToUpper(name) {
	case "A":
		return uint64(c.A), true
	case "X":
		return uint64(c.X), true
	case "Y":
		return uint64(c.Y), true
	case "SP", "S":
		return uint64(c.SP), true
	case "PC":
		return uint64(c.PC.Uint16()), true
	case "P", "SR":
		return uint64(c.P.Byte(false)), true
	case "IR":
		return uint64(c.IR), true
	case "TR":
		return uint64(c.TR), true
	case "AD":
		return uint64(c.AD.Uint16()), true
	}
	return 0, false
}

// SetRegister writes a register by name. Writing PC between instructions
// redirects the next opcode fetch only after the current one completes,
// so callers normally follow it with a reset or use it on a fresh CPU.
func (cpu_6502 *CPU_6502) SetRegister(name string, value uint64) bool {
	c := cpu_6502
	switch strings.ToUpper(name) {
	case "A":
		c.A = byte(value)
	case "X":
		c.X = byte(value)
	case "Y":
		c.Y = byte(value)
	case "SP", "S":
		c.SP = byte(value)
	case "PC":
		c.PC.Set(uint16(value))
	case "P", "SR":
		c.P.SetByte(byte(value))
	default:
		return false
	}
	return true
}

// FlagString renders P as NV-BDIZC with lower case for clear flags.
func (cpu_6502 *CPU_6502) FlagString() string {
	p := cpu_6502.P
	flag := func(set bool, name byte) byte {
		if set {
			return name
		}
		return name + ('a' - 'A')
	}
	return string([]byte{
		flag(p.N, 'N'), flag(p.V, 'V'), '-', '-',
		flag(p.D, 'D'), flag(p.I, 'I'), flag(p.Z, 'Z'), flag(p.C, 'C'),
	})
}
