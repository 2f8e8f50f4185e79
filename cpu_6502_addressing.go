// cpu_6502_addressing.go - per-cycle addressing-mode steps for the 6502

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

/*
Addressing-mode cycles

Every step below runs on one clock edge. A step sets the address the
bus must read (or write) before the next edge; the byte that comes back
is in pins.Data when the following step runs. The opcode fetch itself is
not listed: it is the cycle that returned SYNC.

  Implied / Accumulator  dummy read of PC
  Immediate              read operand at PC
  Zero page              operand, then $00nn
  Zero page,X/Y          operand, dummy read of $00nn, then $00(nn+i)
  Absolute               low, high, then hhll
  Absolute,X/Y           low, high, hh(ll+i) uncorrected, then hhll+i
  (zp,X)                 operand, dummy $00nn, ptr lo at $00(nn+X),
                         ptr hi at $00(nn+X+1), then target
  (zp),Y                 operand, ptr lo, ptr hi, hh(ll+Y) uncorrected,
                         then hhll+Y
  (abs)                  low, high, ptr lo at hhll, ptr hi at hh(ll+1)

Zero-page arithmetic always wraps inside page zero. The uncorrected
indexed read skips its fix-up cycle on read instructions when no carry
was generated; write and read-modify-write forms always pay for it.
*/

type index6502 func(cpu_6502 *CPU_6502) uint8

func indexX6502(cpu_6502 *CPU_6502) uint8 { return cpu_6502.X }
func indexY6502(cpu_6502 *CPU_6502) uint8 { return cpu_6502.Y }

// readPC6502 puts PC on the bus without advancing it.
func readPC6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.setAddress(cpu_6502.PC)
}

// fetchOperand6502 reads the byte at PC and advances PC.
func fetchOperand6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.setAddress(cpu_6502.PC)
	cpu_6502.PC.Increment()
}

// fetchAddressHigh6502 latches the low operand byte and reads the high one.
func fetchAddressHigh6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.AD.Lo = pins.Data
	pins.setAddress(cpu_6502.PC)
	cpu_6502.PC.Increment()
}

func zeroPage6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.AddressLo = pins.Data
	pins.AddressHi = 0
}

// zeroPageBase6502 latches the operand into AD and performs the dummy
// read of the unindexed zero-page address.
func zeroPageBase6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.AD = Register16{Lo: pins.Data}
	pins.setAddress(cpu_6502.AD)
}

func zeroPageIndexed6502(index index6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.AddressLo = cpu_6502.AD.Lo + index(cpu_6502)
		pins.AddressHi = 0
	}
}

func absolute6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.AddressHi = pins.Data
	pins.AddressLo = cpu_6502.AD.Lo
}

// indexedUncorrected6502 drives the base high byte with the indexed low
// byte, the address the chip reads before it knows about the carry. For
// read instructions the fix-up cycle is skipped when there is no carry.
func indexedUncorrected6502(index index6502, skipFixup bool) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.AD.Hi = pins.Data
		i := index(cpu_6502)
		pins.AddressHi = cpu_6502.AD.Hi
		pins.AddressLo = cpu_6502.AD.Lo + i
		if skipFixup && uint16(cpu_6502.AD.Lo)+uint16(i) <= 0xFF {
			cpu_6502.TR++
		}
	}
}

func indexedCorrected6502(index index6502) microOp6502 {
	return func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.setAddress(cpu_6502.AD.Add(index(cpu_6502)))
	}
}

// indexPointer6502 adds X to the zero-page pointer address (wrapping in
// page zero) and reads the pointer's low byte.
func indexPointer6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.AD.Lo += cpu_6502.X
	pins.setAddress(cpu_6502.AD)
}

// pointerLow6502 latches the pointer's low byte and reads the high byte
// from the next address in the same page. Used by (zp,X), (zp),Y and
// (abs), which gives JMP ($xxFF) its page-wrap bug.
func pointerLow6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.AddressLo = cpu_6502.AD.Lo + 1
	cpu_6502.AD.Lo = pins.Data
}

func pointerHigh6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.AddressHi = pins.Data
	pins.AddressLo = cpu_6502.AD.Lo
}

// indirectPointer6502 latches the high pointer byte and reads the
// pointer's low byte at hhll.
func indirectPointer6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.AD.Hi = pins.Data
	pins.setAddress(cpu_6502.AD)
}

// jam6502 holds the bus at $FFFF/$FF and re-runs itself forever. RES
// is the only way out: it ends the cycle with an opcode fetch so the
// next edge starts the reset sequence.
func jam6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.SetAddress(0xFFFF)
	pins.Data = 0xFF
	cpu_6502.TR--
	if pins.RES {
		fetchNextInstruction6502(cpu_6502, pins)
	}
}

// addressingCycles6502 returns the cycle list for mode. access only
// matters for the indexed modes, where it decides whether the page-cross
// fix-up cycle may be skipped.
func addressingCycles6502(mode AddressingMode, access MemoryAccess) []cycle6502 {
	skip := access == AccessRead

	switch mode {
	case AMImplied, AMAccumulator:
		return []cycle6502{{readPC6502}}
	case AMImmediate:
		return []cycle6502{{fetchOperand6502}}
	case AMZeroPage:
		return []cycle6502{{fetchOperand6502}, {zeroPage6502}}
	case AMZeroPageX:
		return []cycle6502{{fetchOperand6502}, {zeroPageBase6502}, {zeroPageIndexed6502(indexX6502)}}
	case AMZeroPageY:
		return []cycle6502{{fetchOperand6502}, {zeroPageBase6502}, {zeroPageIndexed6502(indexY6502)}}
	case AMAbsolute:
		return []cycle6502{{fetchOperand6502}, {fetchAddressHigh6502}, {absolute6502}}
	case AMAbsoluteX:
		return []cycle6502{
			{fetchOperand6502},
			{fetchAddressHigh6502},
			{indexedUncorrected6502(indexX6502, skip)},
			{indexedCorrected6502(indexX6502)},
		}
	case AMAbsoluteY:
		return []cycle6502{
			{fetchOperand6502},
			{fetchAddressHigh6502},
			{indexedUncorrected6502(indexY6502, skip)},
			{indexedCorrected6502(indexY6502)},
		}
	case AMIndexedIndirectX:
		return []cycle6502{
			{fetchOperand6502},
			{zeroPageBase6502},
			{indexPointer6502},
			{pointerLow6502},
			{pointerHigh6502},
		}
	case AMIndirectIndexedY:
		return []cycle6502{
			{fetchOperand6502},
			{zeroPageBase6502},
			{pointerLow6502},
			{indexedUncorrected6502(indexY6502, skip)},
			{indexedCorrected6502(indexY6502)},
		}
	case AMIndirect:
		return []cycle6502{
			{fetchOperand6502},
			{fetchAddressHigh6502},
			{indirectPointer6502},
			{pointerLow6502},
			{pointerHigh6502},
		}
	case AMJSR:
		return nil
	case AMInvalid:
		return []cycle6502{{readPC6502}, {jam6502}}
	}
	return nil
}
