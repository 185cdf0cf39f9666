// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"go/token"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/opcodegen/internal/config"
	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by UsageError.ShowUsage
	opts := config.DefaultProgram()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(arguments); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if args := flags.Args(); len(args) > 0 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s, the template file is passed with -i", args[0]),
		}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: opcodegen [options]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Target = strings.ToLower(opts.Target)
	opts.ISA = strings.ToLower(opts.ISA)

	if opts.Target != "" && !slices.Contains(emitter.Targets, opts.Target) {
		return fmt.Errorf("unsupported target: %s. Valid options: %s",
			opts.Target, strings.Join(emitter.Targets, ", "))
	}
	if !token.IsIdentifier(opts.Name) {
		return fmt.Errorf("array name '%s' is not a valid identifier", opts.Name)
	}
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("package name '%s' is not a valid identifier", opts.Package)
	}
	if opts.PerLine < 1 {
		return fmt.Errorf("entries per line must be positive, got %d", opts.PerLine)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", opts.Input, "name of the input template file, the embedded templates of the isa are used if no name given")
	flags.StringVar(&opts.Output, "o", opts.Output, "name of the output source file, printed on console if no name given")
	flags.StringVar(&opts.Target, "t", opts.Target, "output language (go/rust/c) - if not auto-detected from output file extension")
	flags.StringVar(&opts.Name, "n", opts.Name, "name of the emitted array")
	flags.StringVar(&opts.Package, "p", opts.Package, "package name of go output")
	flags.IntVar(&opts.PerLine, "l", opts.PerLine, "table entries per output line")
	flags.StringVar(&opts.ISA, "isa", opts.ISA, "instruction set to compile the opcode table for (sm83)")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by parsing it back and check if it matches the table")
	flags.BoolVar(&opts.Dump, "dump", false, "dump the loaded templates to stderr")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
