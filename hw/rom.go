package hw

import (
	"fmt"
	"os"
)

// ROM is a flat binary program image. No header, no checksum: byte i of
// the file lands at EEPROM low address + i, so the image length must
// equal the EEPROM region size exactly.
type ROM struct {
	Data []byte
}

// ReadROM loads a flat image from path.
func ReadROM(path string) (*ROM, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rom: %w", err)
	}
	return &ROM{Data: buf}, nil
}

// CopyTo fills the EEPROM region with the image, erroring out on any size
// mismatch.
func (rom *ROM) CopyTo(eeprom *Region) error {
	if eeprom.absent() {
		return fmt.Errorf("load rom: system has no eeprom region")
	}
	if len(rom.Data) != eeprom.Size() {
		return fmt.Errorf("load rom: image is %d bytes, eeprom region is %d",
			len(rom.Data), eeprom.Size())
	}
	copy(eeprom.Data, rom.Data)
	return nil
}

// Vector returns the 16-bit little-endian word the image holds for the
// given vector address, assuming the image is mapped at base.
func (rom *ROM) Vector(base int, vector uint16) (uint16, error) {
	off := int(vector) - base
	if off < 0 || off+1 >= len(rom.Data) {
		return 0, fmt.Errorf("vector $%04X outside image", vector)
	}
	return word(rom.Data[off], rom.Data[off+1]), nil
}
