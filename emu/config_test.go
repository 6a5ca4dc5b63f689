package emu

import (
	"os"
	"path/filepath"
	"testing"

	"w65c02/hw"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[layout]
ram_min = 0x0000
ram_max = 0x1FFF
io_min = -1
io_max = -1
rom_min = 0xC000
rom_max = 0xFFFF
mhz = 2.0

[trace]
enabled = true
file = "trace.log"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %s", err)
	}

	want := hw.Layout{
		RAMMin: 0x0000, RAMMax: 0x1FFF,
		IOMin: -1, IOMax: -1,
		ROMMin: 0xC000, ROMMax: 0xFFFF,
		MHz: 2.0,
	}
	if cfg.Layout != want {
		t.Errorf("got layout %+v, want %+v", cfg.Layout, want)
	}
	if !cfg.Trace.Enabled || cfg.Trace.File != "trace.log" {
		t.Errorf("got trace %+v", cfg.Trace)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	// Fields absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nmhz = 4.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %s", err)
	}
	if cfg.Layout.MHz != 4.0 {
		t.Errorf("got mhz %g, want 4", cfg.Layout.MHz)
	}
	if cfg.Layout.ROMMax != 0xFFFF {
		t.Errorf("got rom_max $%X, want $FFFF", cfg.Layout.ROMMax)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile("does/not/exist.toml"); err == nil {
		t.Error("got no error")
	}
}
