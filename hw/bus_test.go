package hw

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBusRouting(t *testing.T) {
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}

	tests := []struct {
		addr   uint16
		region *Region
	}{
		{0x0000, sys.RAM},
		{0x3FFF, sys.RAM},
		{0x6000, sys.IO},
		{0x7FFF, sys.IO},
		{0x8000, sys.EEPROM},
		{0xFFFF, sys.EEPROM},
	}
	for _, tt := range tests {
		sys.Bus.Write8(tt.addr, 0x5A)
		if got := *tt.region.At(tt.addr); got != 0x5A {
			t.Errorf("write $%04X did not land in %s", tt.addr, tt.region.Name)
		}
		if got := sys.Bus.Read8(tt.addr); got != 0x5A {
			t.Errorf("read $%04X = $%02X, want $5A", tt.addr, got)
		}
	}
}

func TestBusEEPROMWritable(t *testing.T) {
	// The region split is address routing only, not write protection.
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}
	sys.Bus.Write8(0x9000, 0xEE)
	if got := sys.Bus.Read8(0x9000); got != 0xEE {
		t.Errorf("eeprom write: got $%02X, want $EE", got)
	}
}

func TestBusUnmappedAccess(t *testing.T) {
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}

	// 0x4000..0x5FFF is a gap in the default layout.
	yes, msg := hasPanicked(func() { sys.Bus.Read8(0x4800) })
	if !yes {
		t.Fatal("unmapped read did not fault")
	}
	fault, ok := msg.(*Fault)
	if !ok || fault.Kind != FaultUnmapped || fault.Addr != 0x4800 || fault.Write {
		t.Errorf("got %v, want unmapped read fault at $4800", msg)
	}

	yes, msg = hasPanicked(func() { sys.Bus.Write8(0x5000, 0x01) })
	if !yes {
		t.Fatal("unmapped write did not fault")
	}
	if fault := msg.(*Fault); !fault.Write {
		t.Errorf("got %v, want a write fault", fault)
	}
}

func TestUnmappedAccessSurfacesFromExecute(t *testing.T) {
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}

	// LDA $4800 at $0200: the data fetch hits the gap.
	copy(sys.RAM.Data[0x0200:], []byte{0xAD, 0x00, 0x48})
	sys.CPU.ResetTo(0x0200)

	execErr := sys.CPU.Execute(1)
	fault, ok := execErr.(*Fault)
	if !ok {
		t.Fatalf("got %v, want a fault", execErr)
	}
	if fault.Kind != FaultUnmapped || fault.Addr != 0x4800 {
		t.Errorf("got %s, want unmapped read at $4800", fault)
	}
	if fault.PC != 0x0200 {
		t.Errorf("got fault PC=$%04X, want $0200", fault.PC)
	}
}

func TestBusTraceRecords(t *testing.T) {
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}

	buf := &bytes.Buffer{}
	sys.Bus.Log = true
	sys.Bus.SetTraceOutput(buf)

	sys.Bus.Write8(0x0010, 0xAB)
	sys.Bus.Read8(0x0010)
	sys.Bus.Peek8(0x0010) // raw read, no record

	want := "write 0x0010 <- 0xab\nread  0x0010 -> 0xab\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestBusTraceDisabled(t *testing.T) {
	sys, err := New(DefaultLayout())
	if err != nil {
		t.Fatalf("new system: %s", err)
	}

	buf := &bytes.Buffer{}
	sys.Bus.SetTraceOutput(buf)
	// Log stays false: nothing must be recorded.
	sys.Bus.Write8(0x0010, 0xAB)

	if buf.Len() != 0 {
		t.Errorf("trace emitted with logging disabled: %q", buf.String())
	}
}

func TestTraceOrderWithinInstruction(t *testing.T) {
	// LDA ($10),Y: operand, pointer low, pointer high, then the data
	// access, in this exact order.
	sys := newTestSystem(t)
	copy(sys.RAM.Data[0x0010:], []byte{0xF0, 0x20})
	copy(sys.RAM.Data[0x0200:], []byte{0xB1, 0x10})
	sys.RAM.Data[0x2100] = 0x55
	sys.CPU.ResetTo(0x0200)
	sys.CPU.Y = 0x10

	buf := &bytes.Buffer{}
	sys.Bus.Log = true
	sys.Bus.SetTraceOutput(buf)

	if err := sys.CPU.Execute(1); err != nil {
		t.Fatalf("execute: %s", err)
	}

	want := "read  0x0200 -> 0xb1\n" +
		"read  0x0201 -> 0x10\n" +
		"read  0x0010 -> 0xf0\n" +
		"read  0x0011 -> 0x20\n" +
		"read  0x2100 -> 0x55\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}
