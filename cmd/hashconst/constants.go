package main

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/pkg/errors"
)

const (
	// rngSeed keeps shift generation reproducible across runs
	rngSeed = 42

	// floatPrec gives plenty of fractional bits beyond the widest
	// supported constant (128 bits)
	floatPrec = 512

	maxBits = 128
)

// ConstantSet is a generated set of constants for an accumulative hash
// implementation over a fixed-width integer type.
type ConstantSet struct {
	Bits                int      `json:"bits"`
	Seed                string   `json:"seed"`
	ShiftConstants      []int    `json:"shiftConstants"`
	MultiplierConstants []string `json:"multiplierConstants"`
}

// primeFactory returns a generator over the primes in order. Trial
// division against the primes found so far is plenty here; only a
// handful are ever generated.
func primeFactory() func() int {
	found := []int{2}
	first := true
	candidate := 2

	return func() int {
		if first {
			first = false
			return 2
		}
		for {
			candidate++
			for _, prime := range found {
				if prime*prime > candidate {
					found = append(found, candidate)
					return candidate
				}
				if candidate%prime == 0 {
					break
				}
			}
		}
	}
}

// goldenRatioConstant returns floor(2^n / phi) = floor(2^n * (sqrt(5) - 1) / 2)
// where phi is the golden ratio. Valid for n up to 128 bits.
func goldenRatioConstant(n int) (*big.Int, error) {
	if n < 0 || n > maxBits {
		return nil, errors.Errorf("[goldenRatioConstant] n must be between 0 and %d, got %d", maxBits, n)
	}

	sqrt5 := new(big.Float).SetPrec(floatPrec).Sqrt(big.NewFloat(5))
	invPhi := new(big.Float).SetPrec(floatPrec).Quo(
		new(big.Float).SetPrec(floatPrec).Sub(sqrt5, big.NewFloat(1)),
		big.NewFloat(2),
	)

	scaled := new(big.Float).SetPrec(floatPrec).Mul(invPhi, pow2(n))
	constant, _ := scaled.Int(nil)
	return constant, nil
}

// constantFromPrime derives a constant from the first bits of the
// fractional part of the prime's square root.
func constantFromPrime(prime, bits int) *big.Int {
	sqrt := new(big.Float).SetPrec(floatPrec).Sqrt(
		new(big.Float).SetPrec(floatPrec).SetInt64(int64(prime)),
	)

	intPart, _ := sqrt.Int(nil)
	frac := new(big.Float).SetPrec(floatPrec).Sub(sqrt, new(big.Float).SetInt(intPart))

	scaled := new(big.Float).SetPrec(floatPrec).Mul(frac, pow2(bits))
	constant, _ := scaled.Int(nil)
	return constant
}

// nextMultiplier returns a generator over multiplier constants. The
// multipliers must be odd, so primes whose constants come out even are
// skipped.
func nextMultiplier(bits int) func() *big.Int {
	nextPrime := primeFactory()

	return func() *big.Int {
		for {
			constant := constantFromPrime(nextPrime(), bits)
			if constant.Bit(0) == 1 {
				return constant
			}
		}
	}
}

// generateShifts derives shiftCount shift constants from the first
// primes, shuffled with a fixed seed, deduplicated in order and cycled.
// Every shift lands in [1, bits/2].
func generateShifts(bits, shiftCount int) []int {
	var (
		nextPrime = primeFactory()
		rng       = rand.New(rand.NewSource(rngSeed))
		raw       = make([]int, shiftCount)
	)

	// Don't over shift -- keep the raw values under bits/2
	for i := range raw {
		raw[i] = nextPrime() % (bits / 2)
	}
	rng.Shuffle(len(raw), func(i, j int) {
		raw[i], raw[j] = raw[j], raw[i]
	})

	// Deduplicate preserving order, then cycle back around
	seen := make(map[int]bool, len(raw))
	uniq := make([]int, 0, len(raw))
	for _, shift := range raw {
		if !seen[shift] {
			seen[shift] = true
			uniq = append(uniq, shift)
		}
	}

	shifts := make([]int, shiftCount)
	for i := range shifts {
		shifts[i] = bits/2 - uniq[i%len(uniq)]
	}
	return shifts
}

// generateConstantSet builds the full constant set: one seed,
// shiftCount shifts, and shiftCount-1 multipliers.
func generateConstantSet(shiftCount, bits int) (ConstantSet, error) {
	seed, err := goldenRatioConstant(bits)
	if err != nil {
		return ConstantSet{}, errors.Wrap(err, "[generateConstantSet] failed to generate seed")
	}

	multiplier := nextMultiplier(bits)
	multipliers := make([]string, shiftCount-1)
	for i := range multipliers {
		multipliers[i] = displayAsHex(multiplier())
	}

	return ConstantSet{
		Bits:                bits,
		Seed:                displayAsHex(seed),
		ShiftConstants:      generateShifts(bits, shiftCount),
		MultiplierConstants: multipliers,
	}, nil
}

// displayAsHex formats a constant as an uppercase 0x-prefixed hex string
func displayAsHex(value *big.Int) string {
	return fmt.Sprintf("0x%X", value)
}

// pow2 returns 2^n as a big.Float
func pow2(n int) *big.Float {
	return new(big.Float).SetPrec(floatPrec).SetInt(
		new(big.Int).Lsh(big.NewInt(1), uint(n)),
	)
}
