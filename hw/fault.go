package hw

import "fmt"

// FaultKind discriminates the fatal runtime faults execution can hit.
type FaultKind int

const (
	// FaultUnmapped is a bus access to an address no region covers.
	FaultUnmapped FaultKind = iota

	// FaultUnimplemented is an opcode this model does not execute
	// (WAI and STP).
	FaultUnimplemented
)

// Fault is a fatal execution fault. It aborts Execute and is surfaced to
// the caller; no state rollback is performed, the trace holds the last
// good state.
type Fault struct {
	Kind   FaultKind
	Addr   uint16 // faulting address (unmapped access)
	Write  bool   // access direction (unmapped access)
	Opcode uint8  // faulting opcode (unimplemented)
	PC     uint16 // address of the faulting instruction
}

func (f *Fault) Error() string {
	switch f.Kind {
	case FaultUnmapped:
		dir := "read"
		if f.Write {
			dir = "write"
		}
		return fmt.Sprintf("unmapped %s at $%04X", dir, f.Addr)
	case FaultUnimplemented:
		return fmt.Sprintf("unimplemented opcode $%02X at $%04X", f.Opcode, f.PC)
	}
	return "unknown fault"
}
