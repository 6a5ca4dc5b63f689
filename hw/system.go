package hw

import (
	"fmt"
	"io"

	"w65c02/emu/log"
)

// Layout is the address map and clock rate a System is built with. A
// bound pair of (-1, -1) omits that region.
type Layout struct {
	RAMMin int     `toml:"ram_min"`
	RAMMax int     `toml:"ram_max"`
	IOMin  int     `toml:"io_min"`
	IOMax  int     `toml:"io_max"`
	ROMMin int     `toml:"rom_min"`
	ROMMax int     `toml:"rom_max"`
	MHz    float64 `toml:"mhz"`
}

// DefaultLayout mirrors the breadboard computer this emulates: 16K RAM,
// the 65C22 register window, 32K EEPROM holding the vectors, 1 MHz.
func DefaultLayout() Layout {
	return Layout{
		RAMMin: 0x0000, RAMMax: 0x3FFF,
		IOMin: 0x6000, IOMax: 0x7FFF,
		ROMMin: 0x8000, ROMMax: 0xFFFF,
		MHz: 1,
	}
}

func (l Layout) validate() error {
	if l.MHz <= 0 {
		return fmt.Errorf("clock frequency must be positive, got %g MHz", l.MHz)
	}
	return nil
}

// System owns the three memory regions, the bus and the CPU for one run.
type System struct {
	RAM    *Region
	IO     *Region
	EEPROM *Region
	Bus    *Bus
	CPU    *CPU
}

// New builds a system for the given layout. The regions must be disjoint,
// inside the 16-bit address space, and non-inverted.
func New(layout Layout) (*System, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	// Bounds are checked before any backing array is allocated.
	regions := []*Region{
		{Name: "ram", Min: layout.RAMMin, Max: layout.RAMMax},
		{Name: "io", Min: layout.IOMin, Max: layout.IOMax},
		{Name: "eeprom", Min: layout.ROMMin, Max: layout.ROMMax},
	}
	for i, r := range regions {
		if err := r.validate(); err != nil {
			return nil, err
		}
		for _, o := range regions[:i] {
			if r.overlaps(o) {
				return nil, fmt.Errorf("regions %s and %s overlap", o.Name, r.Name)
			}
		}
	}

	sys := &System{
		RAM:    NewRegion("ram", layout.RAMMin, layout.RAMMax),
		IO:     NewRegion("io", layout.IOMin, layout.IOMax),
		EEPROM: NewRegion("eeprom", layout.ROMMin, layout.ROMMax),
	}
	sys.Bus = NewBus(sys.RAM, sys.IO, sys.EEPROM)
	sys.CPU = NewCPU(sys.Bus)
	sys.CPU.Clock.SetMHz(layout.MHz)
	return sys, nil
}

// LoadROM loads a flat program image into the EEPROM region.
func (sys *System) LoadROM(path string) error {
	rom, err := ReadROM(path)
	if err != nil {
		return err
	}
	return rom.CopyTo(sys.EEPROM)
}

// ExecuteProgram loads the program image, resets the CPU so PC comes from
// the reset vector, and retires n instructions. When trace is non-nil
// every bus access of the run is recorded to it.
func (sys *System) ExecuteProgram(path string, n uint64, trace io.Writer) error {
	if err := sys.LoadROM(path); err != nil {
		return err
	}

	sys.CPU.Reset()
	sys.Bus.Log = trace != nil
	sys.Bus.SetTraceOutput(trace)

	log.ModSys.DebugZ("executing program").
		String("rom", path).
		Uint("instructions", n).
		Hex16("PC", sys.CPU.PC).
		End()

	return sys.CPU.Execute(n)
}
