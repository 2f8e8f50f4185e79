// cpu_6502_alu.go - 6502 arithmetic, logic and shift helpers shared by micro-operations

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

func (cpu_6502 *CPU_6502) adc(value byte) {
	/*
	   adc performs addition with carry.

	   Parameters:
	   - value: Value to add to accumulator

	   Operation Modes:
	   - Binary: 9-bit sum, C from bit 8, V from the signed overflow test
	   - Decimal: NMOS nibble correction when D is set and BCD is enabled

	   Decimal Flag Quirks:
	   - Z comes from the uncorrected binary sum
	   - N and V come from the high nibble before its decimal correction
	   - C comes from the corrected high nibble
	*/

	a := uint(cpu_6502.A)
	v := uint(value)
	carry := uint(0)
	if cpu_6502.P.C {
		carry = 1
	}

	if !cpu_6502.decimalMode() {
		sum := a + v + carry
		cpu_6502.P.V = (a^sum)&(v^sum)&0x80 != 0
		cpu_6502.P.C = sum > 0xFF
		cpu_6502.A = cpu_6502.P.SetZN(int(sum))
		return
	}

	cpu_6502.P.Z = uint8(a+v+carry) == 0

	lo := (a & 0x0F) + (v & 0x0F) + carry
	hi := (a >> 4) + (v >> 4)
	if lo > 9 {
		lo += 6
	}
	if lo > 0x0F {
		hi++
	}

	cpu_6502.P.N = hi&0x08 != 0
	cpu_6502.P.V = (a^v)&0x80 == 0 && (a^(hi<<4))&0x80 != 0

	if hi > 9 {
		hi += 6
	}
	cpu_6502.P.C = hi > 0x0F
	cpu_6502.A = uint8((lo & 0x0F) | (hi << 4))
}

func (cpu_6502 *CPU_6502) sbc(value byte) {
	/*
	   sbc performs subtraction with borrow (inverted carry).

	   Operation Modes:
	   - Binary: ADC of the one's complement
	   - Decimal: nibble-wise subtract with a -6 correction per borrowing
	     nibble; every flag still comes from the binary difference
	*/

	if !cpu_6502.decimalMode() {
		cpu_6502.adc(^value)
		return
	}

	a := int(cpu_6502.A)
	v := int(value)
	borrow := 0
	if !cpu_6502.P.C {
		borrow = 1
	}

	diff := a - v - borrow
	lo := (a & 0x0F) - (v & 0x0F) - borrow
	hi := (a >> 4) - (v >> 4)
	if lo&0x10 != 0 {
		lo -= 6
		hi--
	}
	if hi&0x10 != 0 {
		hi -= 6
	}

	cpu_6502.P.C = diff >= 0
	cpu_6502.P.V = (a^diff)&(a^v)&0x80 != 0
	cpu_6502.P.SetZN(diff)
	cpu_6502.A = uint8((lo & 0x0F) | ((hi << 4) & 0xF0))
}

// compare sets flags as reg - value without storing the result.
func (cpu_6502 *CPU_6502) compare(reg, value byte) {
	cpu_6502.P.SetZN(int(reg) - int(value))
	cpu_6502.P.C = reg >= value
}

func (cpu_6502 *CPU_6502) bit(value byte) {
	cpu_6502.P.Z = cpu_6502.A&value == 0
	cpu_6502.P.V = value&0x40 != 0
	cpu_6502.P.N = value&0x80 != 0
}

func (cpu_6502 *CPU_6502) asl(value byte) byte {
	cpu_6502.P.C = value&0x80 != 0
	return cpu_6502.P.SetZN(int(value) << 1)
}

func (cpu_6502 *CPU_6502) lsr(value byte) byte {
	cpu_6502.P.C = value&0x01 != 0
	return cpu_6502.P.SetZN(int(value >> 1))
}

func (cpu_6502 *CPU_6502) rol(value byte) byte {
	carryIn := 0
	if cpu_6502.P.C {
		carryIn = 1
	}
	cpu_6502.P.C = value&0x80 != 0
	return cpu_6502.P.SetZN(int(value)<<1 | carryIn)
}

func (cpu_6502 *CPU_6502) ror(value byte) byte {
	carryIn := 0
	if cpu_6502.P.C {
		carryIn = 0x80
	}
	cpu_6502.P.C = value&0x01 != 0
	return cpu_6502.P.SetZN(int(value>>1) | carryIn)
}

func (cpu_6502 *CPU_6502) inc(value byte) byte {
	return cpu_6502.P.SetZN(int(value) + 1)
}

func (cpu_6502 *CPU_6502) dec(value byte) byte {
	return cpu_6502.P.SetZN(int(value) - 1)
}

func (cpu_6502 *CPU_6502) arr(value byte) {
	/*
	   arr is AND #imm followed by a ROR A that sets C and V from the
	   adder rather than from the shift.

	   Binary mode:
	   - C = bit 6 of the result, V = bit 6 XOR bit 5

	   Decimal mode (NMOS):
	   - N copies the old carry, Z tests the rotated value, V tests bit 6
	     change between the AND result and the rotated value
	   - each nibble of the AND result that is above 5 (rounded up to even)
	     gets a +6 correction, and the high nibble's correction sets C
	*/

	t := cpu_6502.A & value
	carryIn := byte(0)
	if cpu_6502.P.C {
		carryIn = 0x80
	}
	r := t>>1 | carryIn

	if !cpu_6502.decimalMode() {
		cpu_6502.A = cpu_6502.P.SetZN(int(r))
		cpu_6502.P.C = r&0x40 != 0
		cpu_6502.P.V = (r>>6^r>>5)&0x01 != 0
		return
	}

	cpu_6502.P.N = cpu_6502.P.C
	cpu_6502.P.Z = r == 0
	cpu_6502.P.V = (t^r)&0x40 != 0

	lo := t & 0x0F
	hi := t >> 4
	if lo+(lo&0x01) > 5 {
		r = r&0xF0 | (r+6)&0x0F
	}
	cpu_6502.P.C = hi+(hi&0x01) > 5
	if cpu_6502.P.C {
		r += 0x60
	}
	cpu_6502.A = r
}
