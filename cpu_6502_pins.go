// cpu_6502_pins.go - 6502 pin snapshot exchanged with the bus on every clock edge

package six5go2

import "fmt"

// Pins is the value of every CPU pin for one clock edge. Cycle consumes
// the pins the bus driver produced and returns the pins the CPU drives.
type Pins struct {
	AddressLo uint8
	AddressHi uint8
	Data      uint8

	RW   bool // true = read, false = write
	SYNC bool // opcode fetch cycle
	RES  bool
	IRQ  bool
	NMI  bool
	RDY  bool
}

func (p *Pins) Address() uint16 {
	return uint16(p.AddressHi)<<8 | uint16(p.AddressLo)
}

func (p *Pins) SetAddress(addr uint16) {
	p.AddressLo = uint8(addr)
	p.AddressHi = uint8(addr >> 8)
}

func (p *Pins) setAddress(r Register16) {
	p.AddressLo = r.Lo
	p.AddressHi = r.Hi
}

func (p *Pins) addressRegister() Register16 {
	return Register16{Lo: p.AddressLo, Hi: p.AddressHi}
}

func (p Pins) String() string {
	dir := "R"
	if !p.RW {
		dir = "W"
	}
	s := fmt.Sprintf("%04X %02X %s", p.Address(), p.Data, dir)
	if p.SYNC {
		s += " SYNC"
	}
	if p.RES {
		s += " RES"
	}
	if p.IRQ {
		s += " IRQ"
	}
	if p.NMI {
		s += " NMI"
	}
	if p.RDY {
		s += " RDY"
	}
	return s
}
