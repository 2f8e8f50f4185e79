// cpu_6502_undocumented.go - NMOS 6502 undocumented (illegal) opcodes

package six5go2

/*
Undocumented opcodes fall into three groups:

  - combined read-modify-write ops (SLO, RLA, SRE, RRA, DCP, ISB) that run a
    documented shift/inc/dec and then feed the written value into the
    documented accumulator op
  - single-effect immediate or read ops (ANC, ASR, ARR, ANE, LXA, SBX, LAX, LAS)
  - store ops (SAX, SHA, SHS, SHX, SHY)

SHA, SHS, SHX and SHY AND the stored value with the high byte of the
target address plus one. Real chips vary with revision and bus load; this
is the commonly cited approximation and is kept as-is.
*/

// magic6502 is the constant ANE and LXA OR into A before the AND. It
// varies between chips; $EE matches the majority of tested NMOS parts.
const magic6502 = 0xEE

func registerUndocumented6502() {
	combined := map[string]struct {
		modify modifyOp6502
		then   readOp6502
	}{
		"SLO": {(*CPU_6502).asl, readOps6502["ORA"]},
		"RLA": {(*CPU_6502).rol, readOps6502["AND"]},
		"SRE": {(*CPU_6502).lsr, readOps6502["EOR"]},
		"RRA": {(*CPU_6502).ror, readOps6502["ADC"]},
		"DCP": {(*CPU_6502).dec, readOps6502["CMP"]},
		"ISB": {(*CPU_6502).inc, readOps6502["SBC"]},
	}
	for name, c := range combined {
		modify, then := c.modify, c.then
		modifyOps6502[name] = func(cpu_6502 *CPU_6502, value byte) byte {
			result := modify(cpu_6502, value)
			then(cpu_6502, result)
			return result
		}
	}

	readOps6502["LAX"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.A = cpu_6502.P.SetZN(int(v))
		cpu_6502.X = cpu_6502.A
	}
	readOps6502["ANC"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.A & v))
		cpu_6502.P.C = cpu_6502.P.N
	}
	readOps6502["ASR"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.A = cpu_6502.lsr(cpu_6502.A & v)
	}
	readOps6502["ARR"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.arr(v)
	}
	readOps6502["ANE"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.A = cpu_6502.P.SetZN(int((cpu_6502.A | magic6502) & cpu_6502.X & v))
	}
	readOps6502["LXA"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.A = cpu_6502.P.SetZN(int((cpu_6502.A | magic6502) & v))
		cpu_6502.X = cpu_6502.A
	}
	readOps6502["LAS"] = func(cpu_6502 *CPU_6502, v byte) {
		cpu_6502.SP &= v
		cpu_6502.A = cpu_6502.P.SetZN(int(cpu_6502.SP))
		cpu_6502.X = cpu_6502.A
	}
	readOps6502["SBX"] = func(cpu_6502 *CPU_6502, v byte) {
		ax := cpu_6502.A & cpu_6502.X
		cpu_6502.P.C = ax >= v
		cpu_6502.X = cpu_6502.P.SetZN(int(ax) - int(v))
	}

	writeOps6502["SAX"] = func(cpu_6502 *CPU_6502, pins *Pins) byte {
		return cpu_6502.A & cpu_6502.X
	}
	writeOps6502["SHA"] = func(cpu_6502 *CPU_6502, pins *Pins) byte {
		return cpu_6502.A & cpu_6502.X & (pins.AddressHi + 1)
	}
	writeOps6502["SHS"] = func(cpu_6502 *CPU_6502, pins *Pins) byte {
		cpu_6502.SP = cpu_6502.A & cpu_6502.X
		return cpu_6502.SP & (pins.AddressHi + 1)
	}
	writeOps6502["SHX"] = func(cpu_6502 *CPU_6502, pins *Pins) byte {
		return cpu_6502.X & (pins.AddressHi + 1)
	}
	writeOps6502["SHY"] = func(cpu_6502 *CPU_6502, pins *Pins) byte {
		return cpu_6502.Y & (pins.AddressHi + 1)
	}
}
