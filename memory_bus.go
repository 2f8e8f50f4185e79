// memory_bus.go - 64KB memory bus that services 6502 pin requests

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

/*
memory_bus.go - Memory Bus for six5go2

This module is the system side of the pin interface: after every
CPU_6502.Cycle the returned pins name an address and a direction, and
the bus either places the addressed byte on the data lines or stores
the byte the CPU drove.

Core Features:

    64KB of RAM as one contiguous block.
    Memory-mapped I/O regions registered per 256-byte page, with read and
    write callbacks that intercept accesses inside the region.
    Image loading at any base address with wraparound checking.
    Full memory reset.

Concurrency:

    A sync.RWMutex guards RAM and the mapping table so a monitor or script
    can peek at memory while a runner owns the CPU.
*/

package six5go2

import (
	"sync"

	"github.com/pkg/errors"
)

const (
	MEMORY_SIZE_6502 = 0x10000
	PAGE_SIZE        = 0x100
	PAGE_MASK        = 0xFF00
)

// ErrProgramTooLarge is returned when an image does not fit above its base.
var ErrProgramTooLarge = errors.New("program does not fit in 64KB")

type IORegion struct {
	/*
		IORegion is a memory-mapped I/O range. onRead may be nil, in which
		case reads fall through to RAM. Writes always reach RAM as well as
		onWrite, so a later read without onRead sees the last value.
	*/
	start   uint16
	end     uint16
	onRead  func(addr uint16) byte
	onWrite func(addr uint16, value byte)
}

type MemoryBus6502 struct {
	memory  []byte
	mutex   sync.RWMutex
	mapping map[uint16][]IORegion
}

func NewMemoryBus6502() *MemoryBus6502 {
	return &MemoryBus6502{
		memory:  make([]byte, MEMORY_SIZE_6502),
		mapping: make(map[uint16][]IORegion),
	}
}

func (bus *MemoryBus6502) MapIO(start, end uint16, onRead func(addr uint16) byte, onWrite func(addr uint16, value byte)) {
	/*
		MapIO registers a memory-mapped I/O region. The region is appended
		to the mapping of every page between start and end inclusive.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	region := IORegion{start: start, end: end, onRead: onRead, onWrite: onWrite}
	for page := uint32(start & PAGE_MASK); page <= uint32(end&PAGE_MASK); page += PAGE_SIZE {
		bus.mapping[uint16(page)] = append(bus.mapping[uint16(page)], region)
	}
}

func (bus *MemoryBus6502) region(addr uint16) (IORegion, bool) {
	for _, region := range bus.mapping[addr&PAGE_MASK] {
		if addr >= region.start && addr <= region.end {
			return region, true
		}
	}
	return IORegion{}, false
}

func (bus *MemoryBus6502) Read8(addr uint16) byte {
	bus.mutex.RLock()
	region, mapped := bus.region(addr)
	bus.mutex.RUnlock()

	if mapped && region.onRead != nil {
		return region.onRead(addr)
	}

	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return bus.memory[addr]
}

func (bus *MemoryBus6502) Write8(addr uint16, value byte) {
	bus.mutex.Lock()
	region, mapped := bus.region(addr)
	bus.memory[addr] = value
	bus.mutex.Unlock()

	if mapped && region.onWrite != nil {
		region.onWrite(addr, value)
	}
}

// Peek reads RAM directly, bypassing I/O callbacks.
func (bus *MemoryBus6502) Peek(addr uint16) byte {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return bus.memory[addr]
}

// Poke writes RAM directly, bypassing I/O callbacks.
func (bus *MemoryBus6502) Poke(addr uint16, value byte) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.memory[addr] = value
}

// Load copies data into RAM starting at base.
func (bus *MemoryBus6502) Load(base uint16, data []byte) error {
	end := uint32(base) + uint32(len(data))
	if end > MEMORY_SIZE_6502 {
		return errors.Wrapf(ErrProgramTooLarge, "end=0x%X, limit=0x%X", end, MEMORY_SIZE_6502)
	}

	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	copy(bus.memory[base:], data)
	return nil
}

// Service performs the bus transaction the CPU requested: a read places
// the addressed byte on pins.Data, a write stores pins.Data.
func (bus *MemoryBus6502) Service(pins *Pins) {
	addr := pins.Address()
	if pins.RW {
		pins.Data = bus.Read8(addr)
	} else {
		bus.Write8(addr, pins.Data)
	}
}

// Reset clears RAM. I/O mappings are kept.
func (bus *MemoryBus6502) Reset() {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	for i := range bus.memory {
		bus.memory[i] = 0
	}
}
