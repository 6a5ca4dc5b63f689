package hw

import "testing"

func TestRegionBounds(t *testing.T) {
	r := NewRegion("ram", 0x1000, 0x1FFF)
	if r.Size() != 0x1000 {
		t.Errorf("got size %d, want %d", r.Size(), 0x1000)
	}
	for _, addr := range []uint16{0x1000, 0x1800, 0x1FFF} {
		if !r.contains(addr) {
			t.Errorf("$%04X not contained", addr)
		}
	}
	for _, addr := range []uint16{0x0FFF, 0x2000, 0x0000} {
		if r.contains(addr) {
			t.Errorf("$%04X wrongly contained", addr)
		}
	}

	*r.At(0x1000) = 0xAA
	if r.Data[0] != 0xAA {
		t.Error("At(min) is not the first backing byte")
	}
	*r.At(0x1FFF) = 0xBB
	if r.Data[0xFFF] != 0xBB {
		t.Error("At(max) is not the last backing byte")
	}
}

func TestRegionAbsent(t *testing.T) {
	r := NewRegion("io", Absent, Absent)
	if r.Size() != 0 {
		t.Errorf("absent region has size %d", r.Size())
	}
	if r.contains(0x0000) || r.contains(0xFFFF) {
		t.Error("absent region contains addresses")
	}
	if err := r.validate(); err != nil {
		t.Errorf("absent region does not validate: %s", err)
	}
}

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		ok       bool
	}{
		{"valid", 0x0000, 0xFFFF, true},
		{"single byte", 0x42, 0x42, true},
		{"inverted", 0x2000, 0x1000, false},
		{"above space", 0x8000, 0x10000, false},
		{"half absent", Absent, 0x1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Region{Name: "r", Min: tt.min, Max: tt.max}
			err := r.validate()
			if tt.ok && err != nil {
				t.Errorf("got error %s, want none", err)
			}
			if !tt.ok && err == nil {
				t.Error("got no error")
			}
		})
	}
}

func TestRegionOverlaps(t *testing.T) {
	a := &Region{Name: "a", Min: 0x0000, Max: 0x3FFF}
	b := &Region{Name: "b", Min: 0x4000, Max: 0x7FFF}
	c := &Region{Name: "c", Min: 0x3FFF, Max: 0x5000}
	absent := &Region{Name: "x", Min: Absent, Max: Absent}

	if a.overlaps(b) || b.overlaps(a) {
		t.Error("disjoint regions reported overlapping")
	}
	if !a.overlaps(c) || !b.overlaps(c) {
		t.Error("overlapping regions not reported")
	}
	if a.overlaps(absent) || absent.overlaps(a) {
		t.Error("absent region reported overlapping")
	}
}
