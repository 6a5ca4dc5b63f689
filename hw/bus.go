package hw

import (
	"fmt"
	"io"

	"w65c02/emu/log"
)

// Bus routes 16-bit addresses to the region that owns them and records
// every instruction-driven access in the execution trace.
type Bus struct {
	regions [3]*Region

	// Log enables trace records. Accesses are only recorded when Log is
	// true and a sink is attached.
	Log  bool
	sink io.Writer
}

func NewBus(ram, regs, rom *Region) *Bus {
	return &Bus{regions: [3]*Region{ram, regs, rom}}
}

// SetTraceOutput attaches the trace sink. A nil writer detaches it.
func (b *Bus) SetTraceOutput(w io.Writer) {
	b.sink = w
}

func (b *Bus) region(addr uint16) *Region {
	for _, r := range b.regions {
		if r.contains(addr) {
			return r
		}
	}
	return nil
}

// Read8 returns the byte at addr and emits a trace record.
func (b *Bus) Read8(addr uint16) uint8 {
	r := b.region(addr)
	if r == nil {
		panic(&Fault{Kind: FaultUnmapped, Addr: addr, Write: false})
	}
	val := *r.At(addr)
	b.trace("read  0x%04x -> 0x%02x\n", addr, val)
	return val
}

// Write8 stores val at addr and emits a trace record. All three regions
// are writable; the region split is address routing, not protection.
func (b *Bus) Write8(addr uint16, val uint8) {
	r := b.region(addr)
	if r == nil {
		panic(&Fault{Kind: FaultUnmapped, Addr: addr, Write: true})
	}
	*r.At(addr) = val
	b.trace("write 0x%04x <- 0x%02x\n", addr, val)
}

// Peek8 reads the byte at addr without a trace record. Debug introspection
// only; instruction execution always goes through Read8.
func (b *Bus) Peek8(addr uint16) uint8 {
	r := b.region(addr)
	if r == nil {
		log.ModBus.WarnZ("peek at unmapped address").Hex16("addr", addr).End()
		return 0
	}
	return *r.At(addr)
}

// Read16 reads a little-endian word, low byte first.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Peek16 reads a little-endian word without trace records.
func (b *Bus) Peek16(addr uint16) uint16 {
	lo := b.Peek8(addr)
	hi := b.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *Bus) trace(format string, addr uint16, val uint8) {
	if b.Log && b.sink != nil {
		fmt.Fprintf(b.sink, format, addr, val)
	}
}
