package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"w65c02/emu"
	"w65c02/emu/log"
	"w65c02/hw"
)

func main() {
	cli, command := parseArgs(os.Args[1:])

	switch {
	case strings.HasPrefix(command, "run"):
		runROM(cli.Run)
	case strings.HasPrefix(command, "vectors"):
		showVectors(cli.Vectors)
	case command == "version":
		fmt.Println("w65c02", version)
	default:
		fatalf("unknown command %q", command)
	}
}

func loadConfig(path string) emu.Config {
	if path == "" {
		return emu.LoadConfigOrDefault()
	}
	cfg, err := emu.LoadConfigFile(path)
	checkf(err, "failed to load config %s", path)
	return cfg
}

func runROM(run Run) {
	cfg := loadConfig(run.Config)

	sys, err := hw.New(cfg.Layout)
	checkf(err, "invalid system layout")

	trace := traceSink(run, cfg)
	if c, ok := trace.(io.Closer); ok {
		defer c.Close()
	}

	if run.Disasm != nil {
		defer run.Disasm.Close()
		checkf(sys.LoadROM(run.RomPath), "failed to load rom")
		sys.CPU.Reset()
		sys.Bus.Log = trace != nil
		sys.Bus.SetTraceOutput(trace)
		checkf(sys.CPU.ExecuteDisasm(run.Instructions, run.Disasm), "execution fault")
		return
	}

	checkf(sys.ExecuteProgram(run.RomPath, run.Instructions, trace), "execution fault")
}

// traceSink resolves the trace destination: the --trace flag wins over the
// config file. A config-driven sink that cannot be opened disables tracing
// for the run instead of aborting it.
func traceSink(run Run, cfg emu.Config) io.Writer {
	if run.Trace != nil {
		return run.Trace
	}
	if !cfg.Trace.Enabled || cfg.Trace.File == "" {
		return nil
	}
	fd, err := os.Create(cfg.Trace.File)
	if err != nil {
		log.ModSys.WarnZ("cannot open trace file, tracing disabled").
			String("file", cfg.Trace.File).
			Err(err).
			End()
		return nil
	}
	return fd
}

func showVectors(v Vectors) {
	cfg := loadConfig(v.Config)

	rom, err := hw.ReadROM(v.RomPath)
	checkf(err, "failed to load rom")

	for _, vec := range []struct {
		name string
		addr uint16
	}{
		{"NMI", hw.NMIVector},
		{"RESET", hw.ResetVector},
		{"IRQ/BRK", hw.IRQVector},
	} {
		word, err := rom.Vector(cfg.Layout.ROMMin, vec.addr)
		if err != nil {
			fmt.Printf("%-8s $%04X  <outside image>\n", vec.name, vec.addr)
			continue
		}
		fmt.Printf("%-8s $%04X  -> $%04X\n", vec.name, vec.addr, word)
	}
}
