package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"w65c02/emu/log"
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Run a ROM image in the emulator."`
		Vectors Vectors `cmd:"" help:"Show the vector table of a ROM image."`
		Version Version `cmd:"" help:"Show version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"${rompath_help}" required:"true" type:"existingfile"`

		Instructions uint64 `name:"instructions" short:"n" required:"true" help:"Number of instructions to execute."`
		Trace        *sink  `name:"trace" help:"Write bus trace log." placeholder:"FILE|stdout|stderr"`
		Disasm       *sink  `name:"disasm" help:"Write execution disassembly." placeholder:"FILE|stdout|stderr"`
		Config       string `name:"config" help:"System profile to use instead of the default one." type:"existingfile"`
	}

	Vectors struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
		Config  string `name:"config" type:"existingfile"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"rompath_help": "Flat binary image, its size must match the EEPROM region.",
	"log_help":     "Enable debug logging for specified modules.",
}

func parseArgs(args []string) (CLI, string) {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("w65c02"),
		kong.Description("W65C02 system emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "bad command line")
	checkf(ctx.Error, "bad command line")

	return cfg, ctx.Command()
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		fmt.Fprintf(os.Stderr, `
Log modules:
  --log takes a comma-separated list among: %s.
  Two special values are accepted: 'all' enables every module,
  'no' (alone) silences the emulator completely.
`, strings.Join(log.ModuleNames(), ", "))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()

	var mask log.ModuleMask
	var all, none bool
	for _, name := range strings.Split(tok.Value.(string), ",") {
		switch name {
		case "all":
			all = true
		case "no":
			none = true
		default:
			mod, ok := log.ModuleByName(name)
			if !ok {
				return fmt.Errorf("unknown log module %q (have: %s)",
					name, strings.Join(log.ModuleNames(), ", "))
			}
			mask |= mod.Mask()
		}
	}

	switch {
	case none && (all || mask != 0):
		return errors.New("'no' excludes every other log module")
	case none:
		log.Disable()
	case all:
		log.EnableDebugModules(log.ModuleMaskAll)
	default:
		log.EnableDebugModules(mask)
	}
	return nil
}

// sink is a destination for the trace and disassembly logs, decoded from
// a FILE|stdout|stderr flag value. Only file sinks have something to
// close; the process streams are left alone.
type sink struct {
	io.Writer
	name string
	file *os.File
}

// Decode implements kong.MapperValue.
func (s *sink) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s.name, _ = tok.Value.(string)

	switch s.name {
	case "stdout":
		s.Writer = os.Stdout
	case "stderr":
		s.Writer = os.Stderr
	default:
		f, err := os.Create(s.name)
		if err != nil {
			return fmt.Errorf("cannot open log destination: %w", err)
		}
		s.file = f
		s.Writer = f
	}
	return nil
}

func (s *sink) String() string { return s.name }

func (s *sink) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

func checkf(err error, format string, args ...any) {
	if err != nil {
		fatalf("%s: %s", fmt.Sprintf(format, args...), err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "w65c02: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
