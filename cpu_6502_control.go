// cpu_6502_control.go - 6502 stack, subroutine, branch and BRK/interrupt sequences

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

// fetchNextInstruction6502 ends an instruction: the bus reads the next
// opcode at PC and SYNC marks the edge as an instruction boundary.
func fetchNextInstruction6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.setAddress(cpu_6502.PC)
	pins.SYNC = true
}

// push6502 writes value at the stack pointer and decrements it. During
// RESET the write is suppressed: the address and SP still move but the
// bus stays in read mode.
func push6502(cpu_6502 *CPU_6502, pins *Pins, value byte) {
	pins.setAddress(cpu_6502.stackAddress())
	cpu_6502.SP--
	if cpu_6502.BrkFlags.Has(BrkReset) {
		return
	}
	pins.Data = value
	pins.RW = false
}

/*
BRK, IRQ, NMI and RESET share one sequence. The engine forces IR to $00
at the opcode boundary whenever BrkFlags is set, so a hardware request
runs the same six cycles as a software BRK:

  0  push PCH     (software BRK first skips its signature byte)
  1  push PCL
  2  push P       (B set only for software BRK), choose vector
  3  read vector low, set I, clear BrkFlags
  4  read vector high
  5  load PC, fetch
*/

var brkCycles6502 = []cycle6502{
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		if cpu_6502.BrkFlags == BrkNone {
			cpu_6502.PC.Increment()
		}
		push6502(cpu_6502, pins, cpu_6502.PC.Hi)
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		push6502(cpu_6502, pins, cpu_6502.PC.Lo)
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		push6502(cpu_6502, pins, cpu_6502.P.Byte(cpu_6502.BrkFlags == BrkNone))
		cpu_6502.AD = Register16{Lo: cpu_6502.BrkFlags.vector(), Hi: 0xFF}
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.setAddress(cpu_6502.AD)
		cpu_6502.AD.Lo++
		cpu_6502.P.I = true
		cpu_6502.BrkFlags = BrkNone
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		pins.AddressLo = cpu_6502.AD.Lo
		cpu_6502.AD.Lo = pins.Data
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.PC = Register16{Lo: cpu_6502.AD.Lo, Hi: pins.Data}
		fetchNextInstruction6502(cpu_6502, pins)
	}},
}

// JSR reads the low target byte, does a dummy stack read, pushes the
// address of its own last byte, then reads the high target byte.
var jsrCycles6502 = []cycle6502{
	{fetchOperand6502},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.AD.Lo = pins.Data
		pins.setAddress(cpu_6502.stackAddress())
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		push6502(cpu_6502, pins, cpu_6502.PC.Hi)
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		push6502(cpu_6502, pins, cpu_6502.PC.Lo)
	}},
	{readPC6502},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.PC = Register16{Lo: cpu_6502.AD.Lo, Hi: pins.Data}
		fetchNextInstruction6502(cpu_6502, pins)
	}},
}

// stackDummyRead6502 reads the current stack slot and pre-increments SP,
// the first step of every pull.
func stackDummyRead6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.setAddress(cpu_6502.stackAddress())
	cpu_6502.SP++
}

func stackPull6502(cpu_6502 *CPU_6502, pins *Pins) {
	pins.AddressLo = cpu_6502.SP
}

var rtsCycles6502 = []cycle6502{
	{stackDummyRead6502},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		stackPull6502(cpu_6502, pins)
		cpu_6502.SP++
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		stackPull6502(cpu_6502, pins)
		cpu_6502.AD.Lo = pins.Data
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.PC = Register16{Lo: cpu_6502.AD.Lo, Hi: pins.Data}
		fetchOperand6502(cpu_6502, pins)
	}},
	{fetchNextInstruction6502},
}

var rtiCycles6502 = []cycle6502{
	{stackDummyRead6502},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		stackPull6502(cpu_6502, pins)
		cpu_6502.SP++
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		stackPull6502(cpu_6502, pins)
		cpu_6502.SP++
		cpu_6502.P.SetByte(pins.Data)
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		stackPull6502(cpu_6502, pins)
		cpu_6502.AD.Lo = pins.Data
	}},
	{func(cpu_6502 *CPU_6502, pins *Pins) {
		cpu_6502.PC = Register16{Lo: cpu_6502.AD.Lo, Hi: pins.Data}
		fetchNextInstruction6502(cpu_6502, pins)
	}},
}

func pullCycles6502(load func(cpu_6502 *CPU_6502, value byte)) []cycle6502 {
	return []cycle6502{
		{stackDummyRead6502},
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			pins.setAddress(cpu_6502.stackAddress())
		}},
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			load(cpu_6502, pins.Data)
			fetchNextInstruction6502(cpu_6502, pins)
		}},
	}
}

func pushCycles6502(value func(cpu_6502 *CPU_6502) byte) []cycle6502 {
	return []cycle6502{
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			push6502(cpu_6502, pins, value(cpu_6502))
		}},
		{fetchNextInstruction6502},
	}
}

// jmp6502 loads PC from the address the last addressing cycle drove
// and fetches from it on the same edge.
func jmp6502(cpu_6502 *CPU_6502, pins *Pins) {
	cpu_6502.PC = pins.addressRegister()
	fetchNextInstruction6502(cpu_6502, pins)
}

/*
Branches

  0  dummy read at PC, compute target in AD; not taken: fetch
  1  read hh(ll) with the uncorrected high byte; same page: fetch
  2  page crossed: load corrected PC, fetch
*/
func branchCycles6502(taken func(p StatusRegister) bool) []cycle6502 {
	return []cycle6502{
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			pins.setAddress(cpu_6502.PC)
			cpu_6502.AD = cpu_6502.PC.AddSigned(int8(pins.Data))
			if !taken(cpu_6502.P) {
				fetchNextInstruction6502(cpu_6502, pins)
			}
		}},
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			pins.AddressLo = cpu_6502.AD.Lo
			if cpu_6502.AD.Hi == cpu_6502.PC.Hi {
				cpu_6502.PC = cpu_6502.AD
				fetchNextInstruction6502(cpu_6502, pins)
			}
		}},
		{func(cpu_6502 *CPU_6502, pins *Pins) {
			cpu_6502.PC = cpu_6502.AD
			fetchNextInstruction6502(cpu_6502, pins)
		}},
	}
}
