package hw

import (
	"w65c02/emu/log"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request / BRK
)

type CPU struct {
	bus *Bus

	// architectural registers
	A, X, Y uint8
	SP      uint8 // stacked at 0x0100 | SP
	PC      uint16
	P       P

	Clock Clock

	// PC of the opcode currently executing, for fault reports.
	opPC uint16
}

// NewCPU creates a new CPU connected to bus, at power-up state.
func NewCPU(bus *Bus) *CPU {
	return &CPU{
		bus: bus,
		A:   0x00,
		X:   0x00,
		Y:   0x00,
		SP:  0xFD,
		P:   (1 << pbitI) | (1 << pbitU),
	}
}

func (c *CPU) Bus() *Bus { return c.bus }

// Reset puts the CPU in its post-reset state and loads PC from the reset
// vector. RAM is left untouched.
func (c *CPU) Reset() {
	// Raw reads: the reset sequence must not pollute the trace.
	c.ResetTo(c.bus.Peek16(ResetVector))
}

// ResetTo is Reset with an explicit PC, bypassing the reset vector.
func (c *CPU) ResetTo(pc uint16) {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFD
	c.P = (1 << pbitI) | (1 << pbitU)
	c.PC = pc
	c.Clock.Reset()
}

// Step retires one instruction.
func (c *CPU) Step() error {
	return c.Execute(1)
}

// Execute runs the fetch-execute loop until n instructions have retired.
// A fault aborts the run and is returned; partial instructions never
// retire but their bus traffic is already in the trace.
func (c *CPU) Execute(n uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			fault.PC = c.opPC
			log.ModCPU.ErrorZ("execution fault").
				String("fault", fault.Error()).
				Hex16("PC", fault.PC).
				End()
			err = fault
		}
	}()

	for i := uint64(0); i < n; i++ {
		c.opPC = c.PC
		opcode := c.Read8(c.PC)
		c.PC++
		ops[opcode](c)
	}
	return nil
}

func (c *CPU) tick() {
	c.Clock.Add(1)
}

// Read8 reads one byte through the bus, charging one cycle.
func (c *CPU) Read8(addr uint16) uint8 {
	c.tick()
	return c.bus.Read8(addr)
}

// Write8 writes one byte through the bus, charging one cycle.
func (c *CPU) Write8(addr uint16, val uint8) {
	c.tick()
	c.bus.Write8(addr, val)
}

// Read16 reads a little-endian word, low byte first.
func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Write8(top, val)
	c.SP -= 1
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* interrupt entry points */

// IRQ services a maskable interrupt request: ignored with I set, otherwise
// PC and P (B clear) are pushed and execution vectors through 0xFFFE.
func (c *CPU) IRQ() {
	if c.P.I() {
		return
	}
	c.interrupt(IRQVector)
}

// NMI services a non-maskable interrupt through 0xFFFA.
func (c *CPU) NMI() {
	c.interrupt(NMIVector)
}

func (c *CPU) interrupt(vector uint16) {
	c.tick()
	c.tick()
	c.push16(c.PC)

	p := c.P
	p.clearBit(pbitB)
	p.setBit(pbitU)
	c.push8(uint8(p))

	c.P.setBit(pbitI)
	c.P.clearBit(pbitD)
	c.PC = c.Read16(vector)
}

/* helpers */

func pagecrossed(a, b uint16) bool {
	return 0xFF00&a != 0xFF00&b
}

// read 16 bits from the zero page, the high byte fetch wraps within it.
func (c *CPU) zpr16(addr uint8) uint16 {
	lo := c.Read8(uint16(addr))
	hi := c.Read8(uint16(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

/* addressing modes */

// Each helper starts with PC on the first operand byte, consumes the
// operand through the bus (so the trace sees low before high) and leaves
// PC on the next opcode.

func (c *CPU) imm() uint8 {
	v := c.Read8(c.PC)
	c.PC++
	return v
}

func (c *CPU) zp() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	return uint16(oper)
}

func (c *CPU) zpx() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	c.tick()
	return uint16(oper + c.X) // 8-bit wrap, never leaves page zero
}

func (c *CPU) zpy() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	c.tick()
	return uint16(oper + c.Y)
}

func (c *CPU) abs() uint16 {
	addr := c.Read16(c.PC)
	c.PC += 2
	return addr
}

// absolute indexed x, read flavor: +1 cycle only on page cross.
func (c *CPU) abx() uint16 {
	addr := c.abs()
	dst := addr + uint16(c.X)
	if pagecrossed(addr, dst) {
		c.tick()
	}
	return dst
}

// absolute indexed x, write/modify flavor: worst case is always charged.
func (c *CPU) abxW() uint16 {
	c.tick()
	return c.abs() + uint16(c.X)
}

func (c *CPU) aby() uint16 {
	addr := c.abs()
	dst := addr + uint16(c.Y)
	if pagecrossed(addr, dst) {
		c.tick()
	}
	return dst
}

func (c *CPU) abyW() uint16 {
	c.tick()
	return c.abs() + uint16(c.Y)
}

// zeropage indexed indirect (zp,x).
func (c *CPU) izx() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	c.tick()
	return c.zpr16(oper + c.X)
}

// zeropage indirect indexed (zp),y, read flavor.
func (c *CPU) izy() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	addr := c.zpr16(oper)
	dst := addr + uint16(c.Y)
	if pagecrossed(addr, dst) {
		c.tick()
	}
	return dst
}

// zeropage indirect indexed (zp),y, write flavor.
func (c *CPU) izyW() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	addr := c.zpr16(oper)
	c.tick()
	return addr + uint16(c.Y)
}

// zeropage indirect (zp).
func (c *CPU) zpi() uint16 {
	oper := c.Read8(c.PC)
	c.PC++
	return c.zpr16(oper)
}

// absolute indirect, JMP only. Reading from 0xXXFF correctly carries into
// the next page.
func (c *CPU) ind() uint16 {
	oper := c.abs()
	c.tick()
	return c.Read16(oper)
}

// absolute indexed indirect (abs,x), JMP only.
func (c *CPU) iax() uint16 {
	oper := c.abs()
	c.tick()
	return c.Read16(oper + uint16(c.X))
}

// branch consumes the relative operand and redirects PC when cond holds.
// Taken branches cost one extra cycle, two when crossing a page.
func (c *CPU) branch(cond bool) {
	off := int8(c.Read8(c.PC))
	c.PC++
	if !cond {
		return
	}
	target := uint16(int16(c.PC) + int16(off))
	c.tick()
	if pagecrossed(c.PC, target) {
		c.tick()
	}
	c.PC = target
}
