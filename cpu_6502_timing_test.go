package six5go2

import "testing"

// cycleTable6502 holds the NMOS cycle counts without page-cross or
// taken-branch penalties. Zero marks the JAM opcodes.
var cycleTable6502 = [256]int{
	7, 6, 0, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6, // 0x00
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0x10
	6, 6, 0, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6, // 0x20
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0x30
	6, 6, 0, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6, // 0x40
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0x50
	6, 6, 0, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6, // 0x60
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0x70
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4, // 0x80
	2, 6, 0, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5, // 0x90
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4, // 0xA0
	2, 5, 0, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4, // 0xB0
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, // 0xC0
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0xD0
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, // 0xE0
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 0xF0
}

func TestDispatchTableCoversEveryOpcode(t *testing.T) {
	for op := 0; op < 256; op++ {
		info := Opcodes6502[op]
		if info.Name == "" {
			t.Fatalf("opcode 0x%02X has no metadata", op)
		}
		cycles := dispatch6502[op]
		if len(cycles) == 0 {
			t.Fatalf("opcode 0x%02X (%s) has no cycles", op, info.Name)
		}
		for tr, c := range cycles {
			if len(c) == 0 {
				t.Fatalf("opcode 0x%02X (%s) cycle %d is empty", op, info.Name, tr)
			}
		}
		if info.Mode == AMInvalid && cycleTable6502[op] != 0 {
			t.Fatalf("opcode 0x%02X is JAM but has a cycle count", op)
		}
	}
}

// notTaken returns flags under which a branch falls through.
func notTaken(name string) StatusRegister {
	set := StatusRegister{C: true, Z: true, V: true, N: true, I: true}
	if !branchConditions6502[name](set) {
		return set
	}
	return StatusRegister{I: true}
}

func Test6502CycleCountsPerOpcode(t *testing.T) {
	for op := 0; op < 256; op++ {
		want := cycleTable6502[op]
		if want == 0 {
			continue
		}
		info := Opcodes6502[op]

		rig := newCPU6502TestRig()
		rig.resetAndLoad(t, 0x0200, []byte{byte(op), 0x10, 0x03})
		if isBranch6502(info.Name) {
			rig.cpu().P = notTaken(info.Name)
		}

		if got := rig.step(t); got != want {
			t.Errorf("opcode 0x%02X %s %s: %d cycles, want %d", op, info.Name, info.Mode, got, want)
		}
	}
}

func Test6502CycleCountUpperBound(t *testing.T) {
	for op := 0; op < 256; op++ {
		info := Opcodes6502[op]
		if info.Mode == AMInvalid {
			if got := CycleCount6502(uint8(op)); got != 2 {
				t.Fatalf("JAM 0x%02X reports %d cycles, want 2", op, got)
			}
			continue
		}
		if got := CycleCount6502(uint8(op)); got < cycleTable6502[op] {
			t.Fatalf("opcode 0x%02X reports %d cycles, below the base %d", op, got, cycleTable6502[op])
		}
	}
}

func Test6502PageCrossPenalty(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(rig *cpu6502TestRig)
		want    int
	}{
		{
			name:    "LDA abs,X same page",
			program: []byte{0xBD, 0x10, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().X = 0x01 },
			want:    4,
		},
		{
			name:    "LDA abs,X crossing",
			program: []byte{0xBD, 0xFF, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().X = 0x01 },
			want:    5,
		},
		{
			name:    "LDX abs,Y crossing",
			program: []byte{0xBE, 0x80, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().Y = 0x80 },
			want:    5,
		},
		{
			name:    "STA abs,X never shortened",
			program: []byte{0x9D, 0x10, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().X = 0x01 },
			want:    5,
		},
		{
			name:    "LDA (zp),Y crossing",
			program: []byte{0xB1, 0x10},
			setup: func(rig *cpu6502TestRig) {
				rig.bus.Poke(0x0010, 0xFF)
				rig.bus.Poke(0x0011, 0x03)
				rig.cpu().Y = 0x01
			},
			want: 6,
		},
		{
			name:    "INC abs,X crossing",
			program: []byte{0xFE, 0xFF, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().X = 0x01 },
			want:    7,
		},
		{
			name:    "LAX abs,Y crossing",
			program: []byte{0xBF, 0xFF, 0x03},
			setup:   func(rig *cpu6502TestRig) { rig.cpu().Y = 0x01 },
			want:    5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newCPU6502TestRig()
			rig.resetAndLoad(t, 0x0200, tc.program)
			tc.setup(rig)
			if got := rig.step(t); got != tc.want {
				t.Fatalf("%d cycles, want %d", got, tc.want)
			}
		})
	}
}

func Test6502BranchTiming(t *testing.T) {
	tests := []struct {
		name   string
		start  uint16
		offset byte
		z      bool
		want   int
		target uint16
	}{
		{name: "not taken", start: 0x0200, offset: 0x10, z: true, want: 2, target: 0x0202},
		{name: "taken same page", start: 0x0200, offset: 0x10, want: 3, target: 0x0212},
		{name: "taken forward crossing", start: 0x02F0, offset: 0x20, want: 4, target: 0x0312},
		{name: "taken backward crossing", start: 0x0300, offset: 0xF0, want: 4, target: 0x02F2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newCPU6502TestRig()
			rig.resetAndLoad(t, tc.start, []byte{0xD0, tc.offset}) // BNE
			rig.cpu().P.Z = tc.z
			if got := rig.step(t); got != tc.want {
				t.Fatalf("%d cycles, want %d", got, tc.want)
			}
			if pc := rig.runner.PC(); pc != tc.target {
				t.Fatalf("PC=0x%04X, want 0x%04X", pc, tc.target)
			}
		})
	}
}

func Test6502ReadModifyWriteBusSequence(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{0xE6, 0x10}) // INC $10
	rig.bus.Poke(0x0010, 0x41)

	got := rig.tickBus(t, 5)
	want := []busCycle{
		{addr: 0x0201, data: 0x10, rw: true},
		{addr: 0x0010, data: 0x41, rw: true},
		{addr: 0x0010, data: 0x41, rw: false},
		{addr: 0x0010, data: 0x42, rw: false},
		{addr: 0x0202, data: 0x00, rw: true, sync: true},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cycle %d: got %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

func Test6502JSRBusSequence(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{0x20, 0x10, 0x03}) // JSR $0310

	got := rig.tickBus(t, 6)
	want := []busCycle{
		{addr: 0x0201, data: 0x10, rw: true},
		{addr: 0x01FD, data: 0x00, rw: true},
		{addr: 0x01FD, data: 0x02, rw: false},
		{addr: 0x01FC, data: 0x02, rw: false},
		{addr: 0x0202, data: 0x03, rw: true},
		{addr: 0x0310, data: 0x00, rw: true, sync: true},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cycle %d: got %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

func Test6502IndexedDummyReadUsesUncorrectedAddress(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{0xBD, 0xFF, 0x03}) // LDA $03FF,X
	rig.cpu().X = 0x02

	got := rig.tickBus(t, 5)
	wantAddrs := []uint16{0x0201, 0x0202, 0x0301, 0x0401, 0x0203}
	for i, addr := range wantAddrs {
		if got[i].addr != addr || !got[i].rw {
			t.Fatalf("cycle %d: read $%04X, want $%04X", i+1, got[i].addr, addr)
		}
	}
	if !got[4].sync {
		t.Fatalf("cycle 5 is not an opcode fetch")
	}
}

func Test6502Determinism(t *testing.T) {
	program := []byte{
		0xA2, 0x08, // LDX #$08
		0xB5, 0x10, // loop: LDA $10,X
		0x69, 0x07, // ADC #$07
		0x95, 0x20, // STA $20,X
		0x3E, 0x00, 0x03, // ROL $0300,X
		0xCA,       // DEX
		0x10, 0xF4, // BPL loop
		0x4C, 0x0E, 0x02, // JMP *
	}

	trace := func() []busCycle {
		rig := newCPU6502TestRig()
		rig.resetAndLoad(t, 0x0200, program)
		for i := 0; i < 16; i++ {
			rig.bus.Poke(uint16(0x10+i), byte(i*13))
			rig.bus.Poke(uint16(0x0300+i), byte(0xF0-i))
		}
		return rig.tickBus(t, 400)
	}

	first, second := trace(), trace()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cycle %d differs: %+v vs %+v", i+1, first[i], second[i])
		}
	}
}

func Test6502CycleIsPure(t *testing.T) {
	cpu1, _ := NewCPU_6502()
	cpu1.A, cpu1.X, cpu1.SP = 0x12, 0x34, 0xF0
	cpu1.PC.Set(0x0400)
	cpu2 := *cpu1

	pins := Pins{SYNC: true, RW: true, Data: 0x69} // ADC #
	pins.SetAddress(0x0400)

	out1 := cpu1.Cycle(pins)
	out2 := cpu2.Cycle(pins)
	if out1 != out2 || cpu1.Registers != cpu2.Registers {
		t.Fatalf("identical inputs diverged: %v / %v", out1, out2)
	}
}
