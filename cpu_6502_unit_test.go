package six5go2

import "testing"

func Test6502LDAImmediate(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA9, 0x42, // LDA #$42
		0xEA, // NOP
	})

	rig.step(t)

	if rig.cpu().A != 0x42 {
		t.Fatalf("A=0x%02X, want 0x42", rig.cpu().A)
	}
	expectFlags(t, rig.cpu(), "nv--dIzc")
}

func Test6502LDAZeroAndNegative(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA9, 0x00, // LDA #$00
		0xA9, 0x80, // LDA #$80
	})

	rig.step(t)
	expectFlags(t, rig.cpu(), "nv--dIZc")
	rig.step(t)
	expectFlags(t, rig.cpu(), "Nv--dIzc")
}

func Test6502STAZeroPage(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA9, 0x55, // LDA #$55
		0x85, 0x10, // STA $10
		0xEA, // NOP
	})

	rig.stepN(t, 2)

	if got := rig.bus.Peek(0x0010); got != 0x55 {
		t.Fatalf("memory[0x0010]=0x%02X, want 0x55", got)
	}
}

func Test6502ZeroPageIndexWraps(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA2, 0x01, // LDX #$01
		0xB5, 0xFF, // LDA $FF,X
		0xA9, 0x3C, // LDA #$3C
		0x95, 0xFF, // STA $FF,X
	})
	rig.bus.Poke(0x0000, 0x77)
	rig.bus.Poke(0x0100, 0x99)

	rig.stepN(t, 2)
	if rig.cpu().A != 0x77 {
		t.Fatalf("A=0x%02X, want 0x77 from $0000", rig.cpu().A)
	}

	rig.stepN(t, 2)
	if got := rig.bus.Peek(0x0000); got != 0x3C {
		t.Fatalf("memory[0x0000]=0x%02X, want 0x3C", got)
	}
	if got := rig.bus.Peek(0x0100); got != 0x99 {
		t.Fatalf("memory[0x0100]=0x%02X, store escaped page zero", got)
	}
}

func Test6502IndexedIndirectPointerWraps(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA2, 0x00, // LDX #$00
		0xA1, 0xFF, // LDA ($FF,X)
	})
	rig.bus.Poke(0x00FF, 0x34)
	rig.bus.Poke(0x0000, 0x03) // pointer high byte comes from $00, not $0100
	rig.bus.Poke(0x0100, 0x09)
	rig.bus.Poke(0x0334, 0xA5)

	rig.stepN(t, 2)
	if rig.cpu().A != 0xA5 {
		t.Fatalf("A=0x%02X, want 0xA5 from $0334", rig.cpu().A)
	}
}

func Test6502IndirectIndexedY(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA0, 0x10, // LDY #$10
		0xB1, 0x40, // LDA ($40),Y
		0x91, 0x42, // STA ($42),Y
	})
	rig.bus.Poke(0x0040, 0x00)
	rig.bus.Poke(0x0041, 0x03)
	rig.bus.Poke(0x0042, 0x00)
	rig.bus.Poke(0x0043, 0x04)
	rig.bus.Poke(0x0310, 0x5A)

	rig.stepN(t, 3)
	if got := rig.bus.Peek(0x0410); got != 0x5A {
		t.Fatalf("memory[0x0410]=0x%02X, want 0x5A", got)
	}
}

func Test6502IndirectJMPPageBug(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0400, []byte{
		0x6C, 0xFF, 0x02, // JMP ($02FF)
	})
	rig.bus.Poke(0x02FF, 0x34)
	rig.bus.Poke(0x0200, 0x12)
	rig.bus.Poke(0x0300, 0x56)

	rig.step(t)
	if pc := rig.runner.PC(); pc != 0x1234 {
		t.Fatalf("PC=0x%04X, want 0x1234", pc)
	}
}

func Test6502JSRAndRTS(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0x20, 0x10, 0x02, // JSR $0210
		0xA9, 0x01, // LDA #$01
	})
	rig.bus.Poke(0x0210, 0x60) // RTS

	rig.step(t)
	if pc := rig.runner.PC(); pc != 0x0210 {
		t.Fatalf("PC=0x%04X after JSR, want 0x0210", pc)
	}
	if hi, lo := rig.bus.Peek(0x01FD), rig.bus.Peek(0x01FC); hi != 0x02 || lo != 0x02 {
		t.Fatalf("return address on stack=$%02X%02X, want $0202", hi, lo)
	}
	if rig.cpu().SP != 0xFB {
		t.Fatalf("SP=0x%02X, want 0xFB", rig.cpu().SP)
	}

	rig.step(t)
	if pc := rig.runner.PC(); pc != 0x0203 {
		t.Fatalf("PC=0x%04X after RTS, want 0x0203", pc)
	}
	if rig.cpu().SP != 0xFD {
		t.Fatalf("SP=0x%02X, want 0xFD", rig.cpu().SP)
	}
}

func Test6502StackPointerWraps(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA2, 0x00, // LDX #$00
		0x9A,       // TXS
		0xA9, 0xE7, // LDA #$E7
		0x48, // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	})

	rig.stepN(t, 4)
	if got := rig.bus.Peek(0x0100); got != 0xE7 {
		t.Fatalf("memory[0x0100]=0x%02X, want 0xE7", got)
	}
	if rig.cpu().SP != 0xFF {
		t.Fatalf("SP=0x%02X, want 0xFF", rig.cpu().SP)
	}

	rig.stepN(t, 2)
	if rig.cpu().A != 0xE7 || rig.cpu().SP != 0x00 {
		t.Fatalf("A=0x%02X SP=0x%02X, want A=0xE7 SP=0x00", rig.cpu().A, rig.cpu().SP)
	}
}

func Test6502FlagRoundTrip(t *testing.T) {
	for _, pushed := range []byte{0x00, 0xFF, 0xC3, 0x0C, 0x10, 0x20} {
		rig := newCPU6502TestRig()
		rig.resetAndLoad(t, 0x0200, []byte{
			0xA9, pushed, // LDA #pushed
			0x48, // PHA
			0x28, // PLP
			0x08, // PHP
			0x68, // PLA
		})

		rig.stepN(t, 3)
		want := pushed&^(BREAK_FLAG|UNUSED_FLAG) | UNUSED_FLAG
		if got := rig.cpu().P.Byte(false); got != want {
			t.Fatalf("pulled 0x%02X: P=0x%02X, want 0x%02X", pushed, got, want)
		}

		rig.stepN(t, 2)
		if got := rig.cpu().A; got != want|BREAK_FLAG {
			t.Fatalf("pushed back 0x%02X, want 0x%02X", got, want|BREAK_FLAG)
		}
	}
}

func Test6502CompareAndBranch(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA2, 0x03, // LDX #$03
		0xCA,       // loop: DEX
		0xD0, 0xFD, // BNE loop
		0xE0, 0x00, // CPX #$00
	})

	rig.stepN(t, 1+3*2)
	if rig.cpu().X != 0 {
		t.Fatalf("X=0x%02X, want 0", rig.cpu().X)
	}
	if pc := rig.runner.PC(); pc != 0x0205 {
		t.Fatalf("PC=0x%04X, want 0x0205", pc)
	}
	rig.step(t)
	expectFlags(t, rig.cpu(), "nv--dIZC")
}

func Test6502ReadModifyWrite(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0x38,       // SEC
		0x26, 0x10, // ROL $10
		0x46, 0x10, // LSR $10
		0xEE, 0x11, 0x00, // INC $0011
		0xCE, 0x12, 0x00, // DEC $0012
		0x0A, // ASL A
	})
	rig.bus.Poke(0x0010, 0x81)
	rig.bus.Poke(0x0011, 0xFF)
	rig.bus.Poke(0x0012, 0x00)

	rig.stepN(t, 2)
	if got := rig.bus.Peek(0x0010); got != 0x03 || !rig.cpu().P.C {
		t.Fatalf("ROL: memory=0x%02X C=%v, want 0x03 C=true", got, rig.cpu().P.C)
	}
	rig.step(t)
	if got := rig.bus.Peek(0x0010); got != 0x01 || !rig.cpu().P.C {
		t.Fatalf("LSR: memory=0x%02X C=%v, want 0x01 C=true", got, rig.cpu().P.C)
	}
	rig.step(t)
	if got := rig.bus.Peek(0x0011); got != 0x00 || !rig.cpu().P.Z {
		t.Fatalf("INC: memory=0x%02X Z=%v, want 0x00 Z=true", got, rig.cpu().P.Z)
	}
	rig.step(t)
	if got := rig.bus.Peek(0x0012); got != 0xFF || !rig.cpu().P.N {
		t.Fatalf("DEC: memory=0x%02X N=%v, want 0xFF N=true", got, rig.cpu().P.N)
	}
}

func Test6502BITSetsFlagsFromMemory(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xA9, 0x01, // LDA #$01
		0x24, 0x10, // BIT $10
	})
	rig.bus.Poke(0x0010, 0xC0)

	rig.stepN(t, 2)
	expectFlags(t, rig.cpu(), "NV--dIZc")
}

func Test6502BinaryArithmeticVectors(t *testing.T) {
	tests := []struct {
		name    string
		a, v    byte
		carry   bool
		decimal bool
		want    byte
		flags   string
	}{
		{name: "0+1", a: 0, v: 1, want: 1, flags: "nv--dizc"},
		{name: "255+1", a: 255, v: 1, want: 0, flags: "nv--diZC"},
		{name: "127+1", a: 127, v: 1, want: 128, flags: "NV--dizc"},
		{name: "decimal 0+0", a: 0, v: 0, decimal: true, want: 0, flags: "nv--DiZc"},
		{name: "80+80", a: 0x80, v: 0x80, want: 0, flags: "nV--diZC"},
		{name: "carry in", a: 0x10, v: 0x20, carry: true, want: 0x31, flags: "nv--dizc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cpu, _ := NewCPU_6502()
			cpu.A = tc.a
			cpu.P.C = tc.carry
			cpu.P.D = tc.decimal
			cpu.adc(tc.v)
			if cpu.A != tc.want {
				t.Fatalf("A=0x%02X, want 0x%02X", cpu.A, tc.want)
			}
			expectFlags(t, cpu, tc.flags)
		})
	}
}

func Test6502DecimalAdd(t *testing.T) {
	tests := []struct {
		a, v  byte
		carry bool
		want  byte
		c     bool
	}{
		{a: 0x09, v: 0x01, want: 0x10},
		{a: 0x58, v: 0x46, carry: true, want: 0x05, c: true},
		{a: 0x12, v: 0x34, want: 0x46},
		{a: 0x99, v: 0x01, want: 0x00, c: true},
		{a: 0x50, v: 0x50, want: 0x00, c: true},
	}

	for _, tc := range tests {
		cpu, _ := NewCPU_6502()
		cpu.A = tc.a
		cpu.P.C = tc.carry
		cpu.P.D = true
		cpu.adc(tc.v)
		if cpu.A != tc.want || cpu.P.C != tc.c {
			t.Fatalf("$%02X+$%02X: A=0x%02X C=%v, want 0x%02X C=%v", tc.a, tc.v, cpu.A, cpu.P.C, tc.want, tc.c)
		}
	}
}

func Test6502DecimalSubtract(t *testing.T) {
	tests := []struct {
		a, v  byte
		carry bool
		want  byte
		c     bool
	}{
		{a: 0x46, v: 0x12, carry: true, want: 0x34, c: true},
		{a: 0x40, v: 0x13, carry: true, want: 0x27, c: true},
		{a: 0x32, v: 0x02, carry: false, want: 0x29, c: true},
		{a: 0x12, v: 0x21, carry: true, want: 0x91, c: false},
		{a: 0x00, v: 0x01, carry: true, want: 0x99, c: false},
	}

	for _, tc := range tests {
		cpu, _ := NewCPU_6502()
		cpu.A = tc.a
		cpu.P.C = tc.carry
		cpu.P.D = true
		cpu.sbc(tc.v)
		if cpu.A != tc.want || cpu.P.C != tc.c {
			t.Fatalf("$%02X-$%02X: A=0x%02X C=%v, want 0x%02X C=%v", tc.a, tc.v, cpu.A, cpu.P.C, tc.want, tc.c)
		}
	}
}

func Test6502DecimalDisabledStaysBinary(t *testing.T) {
	cpu, _ := NewCPU_6502WithOptions(CPU6502Options{BCDEnabled: false})
	cpu.A = 0x09
	cpu.P.D = true
	cpu.adc(0x01)
	if cpu.A != 0x0A {
		t.Fatalf("A=0x%02X, want 0x0A", cpu.A)
	}
	cpu.P.C = true
	cpu.sbc(0x01)
	if cpu.A != 0x09 {
		t.Fatalf("A=0x%02X, want 0x09", cpu.A)
	}
	if !cpu.P.D {
		t.Fatalf("D flag lost")
	}
}

func Test6502DecimalProgram(t *testing.T) {
	rig := newCPU6502TestRig()
	rig.resetAndLoad(t, 0x0200, []byte{
		0xF8,       // SED
		0x18,       // CLC
		0xA9, 0x19, // LDA #$19
		0x69, 0x28, // ADC #$28
		0x38,       // SEC
		0xE9, 0x07, // SBC #$07
	})

	rig.stepN(t, 4)
	if rig.cpu().A != 0x47 {
		t.Fatalf("A=0x%02X after ADC, want 0x47", rig.cpu().A)
	}
	rig.stepN(t, 2)
	if rig.cpu().A != 0x40 {
		t.Fatalf("A=0x%02X after SBC, want 0x40", rig.cpu().A)
	}
}
