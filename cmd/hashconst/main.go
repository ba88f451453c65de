// Command hashconst generates constant values for accumulative hashing
// implementations: a golden-ratio seed, shift constants, and multiplier
// constants derived from the fractional parts of prime square roots.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	var (
		shiftCount = flag.Int("shift-count", 3, "Number of shift constants to generate")
		bits       = flag.Int("bits", 64, "Bit size of the target integer type")
		output     = flag.String("output", "json", "Output format (json or go)")
	)
	flag.Parse()

	if err := run(*shiftCount, *bits, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(shiftCount, bits int, output string) error {
	if shiftCount < 2 {
		return fmt.Errorf("shift-count must be at least 2, got %d", shiftCount)
	}
	if bits < 2 || bits > maxBits {
		return fmt.Errorf("bits must be between 2 and %d, got %d", maxBits, bits)
	}

	constantSet, err := generateConstantSet(shiftCount, bits)
	if err != nil {
		return err
	}

	switch output {
	case "go":
		fmt.Println(formatGo(constantSet))
	case "json":
		data, err := json.MarshalIndent(constantSet, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}

// formatGo renders the constant set as a Go source snippet. Widths
// without a native Go unsigned type still render, with a warning.
func formatGo(cs ConstantSet) string {
	switch cs.Bits {
	case 8, 16, 32, 64:
	default:
		fmt.Fprintf(os.Stderr, "Warning: no native Go uint type for %d bits\n", cs.Bits)
	}

	shifts := make([]string, len(cs.ShiftConstants))
	for i, shift := range cs.ShiftConstants {
		shifts[i] = fmt.Sprintf("%d", shift)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Constants for the %d-bit accumulative hash state.\n", cs.Bits)
	fmt.Fprintf(&sb, "// Generated by hashconst -bits %d -output go.\n", cs.Bits)
	fmt.Fprintf(&sb, "const hashSeed%d = %s\n\n", cs.Bits, cs.Seed)
	fmt.Fprintf(&sb, "var hashShifts%d = []uint{%s}\n\n", cs.Bits, strings.Join(shifts, ", "))
	fmt.Fprintf(&sb, "var hashMultipliers%d = []uint%d{\n", cs.Bits, cs.Bits)
	for _, mult := range cs.MultiplierConstants {
		fmt.Fprintf(&sb, "\t%s,\n", mult)
	}
	sb.WriteString("}")
	return sb.String()
}
