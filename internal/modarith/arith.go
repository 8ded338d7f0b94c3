package modarith

import (
	"fmt"
	"strconv"
	"strings"
)

// ReductionResult is the outcome of reducing Operand by Modulus.
type ReductionResult struct {
	Operand   int
	Modulus   int
	Remainder int
}

// Quotient is the number of whole turns around the modulus.
func (r ReductionResult) Quotient() int {
	return (r.Operand - r.Remainder) / r.Modulus
}

func (r ReductionResult) String() string {
	return fmt.Sprintf("%d mod %d = %d", r.Operand, r.Modulus, r.Remainder)
}

// CycleSequence is the orbit of 0 under x -> x+Generator (mod Modulus).
// Residues starts at 0 and, when the orbit closes, ends with the
// repeated 0.
type CycleSequence struct {
	Generator int
	Modulus   int
	Residues  []int
}

// Closed reports whether the sequence ends by revisiting its start.
func (c CycleSequence) Closed() bool {
	n := len(c.Residues)
	return n > 1 && c.Residues[n-1] == c.Residues[0]
}

// Len is the number of distinct residues visited.
func (c CycleSequence) Len() int {
	if c.Closed() {
		return len(c.Residues) - 1
	}
	return len(c.Residues)
}

func (c CycleSequence) String() string {
	parts := make([]string, len(c.Residues))
	for i, r := range c.Residues {
		parts[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("+%d mod %d: %s", c.Generator, c.Modulus, strings.Join(parts, " -> "))
}

// Reduce computes operand mod modulus.
func Reduce(operand, modulus int) (ReductionResult, error) {
	if modulus <= 0 {
		return ReductionResult{}, fmt.Errorf("reduce %d by %d: %w", operand, modulus, ErrInvalidModulus)
	}
	if operand < 0 {
		return ReductionResult{}, fmt.Errorf("reduce %d: %w", operand, ErrInvalidInput)
	}
	return ReductionResult{
		Operand:   operand,
		Modulus:   modulus,
		Remainder: operand % modulus,
	}, nil
}

// GenerateCycle repeatedly adds generator to an accumulator starting at 0,
// reducing each step, until 0 comes around again. At most modulus steps are
// taken. A generator that is a multiple of the modulus never leaves 0 and
// yields the single-element sequence [0].
func GenerateCycle(generator, modulus int) (CycleSequence, error) {
	if modulus <= 0 {
		return CycleSequence{}, fmt.Errorf("cycle +%d mod %d: %w", generator, modulus, ErrInvalidModulus)
	}
	if generator < 0 {
		return CycleSequence{}, fmt.Errorf("cycle +%d: %w", generator, ErrInvalidInput)
	}

	seq := CycleSequence{Generator: generator, Modulus: modulus, Residues: []int{0}}
	step := generator % modulus
	if step == 0 {
		return seq, nil
	}

	acc := 0
	for i := 0; i < modulus; i++ {
		acc = (acc + step) % modulus
		seq.Residues = append(seq.Residues, acc)
		if acc == 0 {
			break
		}
	}
	return seq, nil
}

// OrbitLength is the number of distinct residues in the orbit of 0,
// m / gcd(g, m).
func OrbitLength(generator, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	g := generator % modulus
	if g == 0 {
		return 1
	}
	return modulus / gcd(g, modulus)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ParseNatural parses a UI or command-line field as a natural number.
func ParseNatural(field, s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, &InputError{Field: field, Value: s, Wrapped: ErrInvalidInput}
	}
	return int(n), nil
}
