package hw

import (
	"fmt"
	"io"
	"strings"
)

// DisasmOp is one decoded instruction, for display only. Decoding uses raw
// reads and never perturbs the trace or the clock.
type DisasmOp struct {
	PC   uint16
	Name string
	Oper string
	Buf  []byte // raw instruction bytes
}

func (d DisasmOp) String() string {
	var raw string
	for _, b := range d.Buf {
		raw += fmt.Sprintf("%02x ", b)
	}
	s := fmt.Sprintf("%04X  %-9s %s %s", d.PC, raw, d.Name, d.Oper)
	return strings.TrimRight(s, " ")
}

// Disasm decodes the instruction at pc.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.bus.Peek8(pc)
	name, mode, size := Def(opcode)

	buf := make([]byte, size)
	for i := range buf {
		buf[i] = c.bus.Peek8(pc + uint16(i))
	}

	var oper string
	switch mode {
	case ModeImp:
	case ModeAcc:
		oper = "A"
	case ModeImm:
		oper = fmt.Sprintf("#$%02X", buf[1])
	case ModeZP:
		oper = fmt.Sprintf("$%02X", buf[1])
	case ModeZPX:
		oper = fmt.Sprintf("$%02X,X", buf[1])
	case ModeZPY:
		oper = fmt.Sprintf("$%02X,Y", buf[1])
	case ModeABS:
		oper = fmt.Sprintf("$%04X", word(buf[1], buf[2]))
	case ModeABX:
		oper = fmt.Sprintf("$%04X,X", word(buf[1], buf[2]))
	case ModeABY:
		oper = fmt.Sprintf("$%04X,Y", word(buf[1], buf[2]))
	case ModeIZX:
		oper = fmt.Sprintf("($%02X,X)", buf[1])
	case ModeIZY:
		oper = fmt.Sprintf("($%02X),Y", buf[1])
	case ModeZPI:
		oper = fmt.Sprintf("($%02X)", buf[1])
	case ModeIND:
		oper = fmt.Sprintf("($%04X)", word(buf[1], buf[2]))
	case ModeIAX:
		oper = fmt.Sprintf("($%04X,X)", word(buf[1], buf[2]))
	case ModeREL:
		target := pc + 2 + uint16(int16(int8(buf[1])))
		oper = fmt.Sprintf("$%04X", target)
	case ModeZPREL:
		target := pc + 3 + uint16(int16(int8(buf[2])))
		oper = fmt.Sprintf("$%02X,$%04X", buf[1], target)
	}

	return DisasmOp{PC: pc, Name: name, Oper: oper, Buf: buf}
}

func word(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// ExecuteDisasm is Execute with a running disassembly written to w, one
// line per retired instruction, register state appended.
func (c *CPU) ExecuteDisasm(n uint64, w io.Writer) error {
	for i := uint64(0); i < n; i++ {
		dis := c.Disasm(c.PC)
		fmt.Fprintf(w, "%-32s A:%02X X:%02X Y:%02X P:%s S:%02X CYC:%d\n",
			dis.String(), c.A, c.X, c.Y, c.P, c.SP, c.Clock.Ticks())
		if err := c.Execute(1); err != nil {
			return err
		}
	}
	return nil
}
