// Package main implements a linear SM83 disassembler that decodes a Game Boy
// ROM range using the generated opcode table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/opcodegen/internal/arch/sm83"
	"github.com/retroenv/opcodegen/internal/config"
	"github.com/retroenv/opcodegen/internal/disasm"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

const addressSpace = 0x10000

type optionFlags struct {
	input  string
	start  string
	length int
	debug  bool
	quiet  bool
}

func main() {
	ctx := app.Context()
	opts := readArguments()
	logger := config.CreateLogger(opts.debug, opts.quiet)

	if err := disasmFile(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts optionFlags

	flags.StringVar(&opts.start, "start", "0100", "hex address of the first byte to disassemble")
	flags.IntVar(&opts.length, "n", 0x50, "number of bytes to disassemble, 0 disassembles until the end of the file or address $FFFF")
	flags.BoolVar(&opts.debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) != 1 {
		fmt.Printf("usage: sm83disasm [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.input = args[0]
	return opts
}

func disasmFile(ctx context.Context, logger *log.Logger, opts optionFlags) error {
	start, err := strconv.ParseUint(opts.start, 16, 16)
	if err != nil {
		return fmt.Errorf("parsing start address '%s': %w", opts.start, err)
	}

	data, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	end, err := rangeEnd(int(start), opts.length, len(data))
	if err != nil {
		return err
	}

	logger.Info("Disassembling", log.String("file", opts.input), log.Hex("start", uint16(start)))
	dis := disasm.New(logger, &sm83.Opcodes)
	return dis.Process(ctx, os.Stdout, data[start:end], uint16(start))
}

// rangeEnd returns the end offset of the range to disassemble. The range
// ends at the end of the file or the 16 bit address space.
func rangeEnd(start, length, size int) (int, error) {
	if start >= size {
		return 0, fmt.Errorf("start address $%04X is outside of the %d byte file", start, size)
	}

	end := min(size, addressSpace)
	if length > 0 {
		end = min(end, start+length)
	}
	return end, nil
}
