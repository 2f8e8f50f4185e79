// cpu_6502_dispatch.go - (opcode, cycle) dispatch table built from the opcode metadata

package six5go2

import "fmt"

// microOp6502 is one action performed during a bus cycle.
type microOp6502 func(cpu_6502 *CPU_6502, pins *Pins)

// cycle6502 is everything that happens on one clock edge, in order.
type cycle6502 []microOp6502

// dispatch6502 maps IR to its cycle list, indexed by TR. It is filled
// once at package initialisation and never written again.
var dispatch6502 = buildDispatchTable6502()

type dispatchBuilder6502 struct {
	cycles []cycle6502
}

func (b *dispatchBuilder6502) add(ops ...microOp6502) {
	b.cycles = append(b.cycles, cycle6502(ops))
}

func (b *dispatchBuilder6502) addCycles(cycles []cycle6502) {
	for _, c := range cycles {
		b.add(c...)
	}
}

// merge folds ops into the last cycle so they share its bus access.
func (b *dispatchBuilder6502) merge(ops ...microOp6502) {
	last := len(b.cycles) - 1
	merged := make(cycle6502, 0, len(b.cycles[last])+len(ops))
	merged = append(merged, b.cycles[last]...)
	b.cycles[last] = append(merged, ops...)
}

func buildDispatchTable6502() [256][]cycle6502 {
	registerUndocumented6502()

	var table [256][]cycle6502
	for op := 0; op < 256; op++ {
		cycles, err := buildOpcodeCycles6502(Opcodes6502[op])
		if err != nil {
			panic(fmt.Sprintf("six5go2: opcode 0x%02X: %v", op, err))
		}
		table[op] = cycles
	}
	return table
}

/*
buildOpcodeCycles6502 concatenates an addressing-mode sequence with the
operation's cycles.

Placement rules:
- none/read: the operation and the next opcode fetch share one new cycle
  after the addressing cycles
- write: the store rides on the final addressing cycle, the fetch gets
  its own cycle
- read-modify-write: latch + dummy write, then compute + write back,
  then fetch
- JMP: loads PC on the final addressing cycle and fetches there
- BRK, JSR, RTS, RTI, PHA, PHP, PLA, PLP and branches use fixed lists
- JAM: addressing cycles only, the second of which never ends
*/
func buildOpcodeCycles6502(info OpcodeInfo) ([]cycle6502, error) {
	b := &dispatchBuilder6502{}
	b.addCycles(addressingCycles6502(info.Mode, info.Access))

	if info.Mode == AMInvalid {
		return b.cycles, nil
	}

	switch info.Name {
	case "BRK":
		b.addCycles(brkCycles6502)
		return b.cycles, nil
	case "JSR":
		b.addCycles(jsrCycles6502)
		return b.cycles, nil
	case "RTS":
		b.addCycles(rtsCycles6502)
		return b.cycles, nil
	case "RTI":
		b.addCycles(rtiCycles6502)
		return b.cycles, nil
	case "PHA":
		b.addCycles(pushCycles6502(func(cpu_6502 *CPU_6502) byte { return cpu_6502.A }))
		return b.cycles, nil
	case "PHP":
		b.addCycles(pushCycles6502(func(cpu_6502 *CPU_6502) byte { return cpu_6502.P.Byte(true) }))
		return b.cycles, nil
	case "PLA":
		b.addCycles(pullCycles6502(func(cpu_6502 *CPU_6502, v byte) { cpu_6502.A = cpu_6502.P.SetZN(int(v)) }))
		return b.cycles, nil
	case "PLP":
		b.addCycles(pullCycles6502(func(cpu_6502 *CPU_6502, v byte) { cpu_6502.P.SetByte(v) }))
		return b.cycles, nil
	case "JMP":
		b.merge(jmp6502)
		return b.cycles, nil
	}

	if taken, ok := branchConditions6502[info.Name]; ok {
		b.addCycles(branchCycles6502(taken))
		return b.cycles, nil
	}

	switch info.Access {
	case AccessNone:
		if info.Mode == AMAccumulator {
			op, ok := modifyOps6502[info.Name]
			if !ok {
				return nil, fmt.Errorf("no accumulator operation for %s", info.Name)
			}
			b.add(accumulatorStep6502(op), fetchNextInstruction6502)
			return b.cycles, nil
		}
		op, ok := impliedOps6502[info.Name]
		if !ok {
			return nil, fmt.Errorf("no implied operation for %s", info.Name)
		}
		b.add(impliedStep6502(op), fetchNextInstruction6502)
	case AccessRead:
		op, ok := readOps6502[info.Name]
		if !ok {
			return nil, fmt.Errorf("no read operation for %s", info.Name)
		}
		b.add(readStep6502(op), fetchNextInstruction6502)
	case AccessWrite:
		op, ok := writeOps6502[info.Name]
		if !ok {
			return nil, fmt.Errorf("no write operation for %s", info.Name)
		}
		b.merge(writeStep6502(op))
		b.add(fetchNextInstruction6502)
	case AccessReadModifyWrite:
		op, ok := modifyOps6502[info.Name]
		if !ok {
			return nil, fmt.Errorf("no read-modify-write operation for %s", info.Name)
		}
		b.add(rmwLatch6502)
		b.add(rmwWriteBack6502(op))
		b.add(fetchNextInstruction6502)
	default:
		return nil, fmt.Errorf("unknown access kind %v", info.Access)
	}
	return b.cycles, nil
}

// CycleCount6502 returns the number of dispatch entries for opcode. Since
// the opcode fetch overlaps the previous instruction's last entry, this is
// the longest the instruction can take: page-cross and taken-branch
// cycles included. JAM opcodes report 2 and never finish.
func CycleCount6502(opcode uint8) int {
	return len(dispatch6502[opcode])
}
