// Package verification verifies that the generated output recreates the opcode table.
package verification

import (
	"fmt"

	"github.com/retroenv/opcodegen/internal/emitter"
	"github.com/retroenv/opcodegen/internal/table"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

// VerifyOutput parses the emitted source back and compares every entry with
// the table that it was generated from.
func VerifyOutput(logger *log.Logger, target string, output []byte, expected table.Table) error {
	parsed, err := emitter.Parse(target, output)
	if err != nil {
		return fmt.Errorf("parsing %s output: %w", target, err)
	}

	if err := checkTableEqual(logger, expected, parsed); err != nil {
		return fmt.Errorf("table mismatch: %w", err)
	}
	return nil
}

func checkTableEqual(logger *log.Logger, expected, got table.Table) error {
	var diffs uint64
	for i := range expected {
		if expected[i] == got[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Opcode mismatch",
				log.Hex("opcode", uint8(i)),
				log.String("expected", expected[i]),
				log.String("got", got[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d opcode mismatches", diffs)
}
