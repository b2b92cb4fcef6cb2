// Package calories totals the calorie lists written down by each elf.
//
// The input is one decimal count per line. Each elf's list is separated
// from the next by an empty line, and the last list need not be followed by
// one:
//
//	1000
//	2000
//
//	3000
//
// describes two elves carrying 3000 calories each.
package calories

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	aoc "github.com/maisem/aoc2022"
)

var (
	// ErrBadCount is returned when a line is not a decimal count.
	ErrBadCount = errors.New("invalid calorie count")

	// ErrTooFewGroups is returned by TopSum when there are not enough
	// elves to pick from.
	ErrTooFewGroups = errors.New("not enough elves")
)

// Parse returns the calorie total of each elf in input order.
//
// The final list is always emitted, so the result has one more entry than
// there are empty lines. An empty trailing line (including an empty buffer)
// is not a count and fails to parse.
func Parse(buf []byte) ([]uint64, error) {
	var (
		records []uint64
		count   uint64

		// start is the offset of the current line, position the byte
		// being read.
		start, position int
	)
	add := func() error {
		v, err := parseCount(buf, start, position)
		if err != nil {
			return err
		}
		if count > math.MaxUint64-v {
			return fmt.Errorf("%w: elf %d overflows at offset %d", ErrBadCount, len(records)+1, start)
		}
		count += v
		return nil
	}
	push := func() {
		records = append(records, count)
		count = 0
	}

	for i, b := range buf {
		if b != '\n' {
			position = i + 1
			continue
		}
		if position == start {
			// Empty line; end of this elf's list.
			push()
		} else if err := add(); err != nil {
			return nil, err
		}
		start = i + 1
		position = i + 1
	}

	// The last line has no terminator.
	if err := add(); err != nil {
		return nil, err
	}
	push()
	return records, nil
}

func parseCount(buf []byte, start, end int) (uint64, error) {
	s := string(buf[start:end])
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q at offset %d", ErrBadCount, s, start)
	}
	return v, nil
}

// Max returns the largest total.
func Max(sums []uint64) uint64 {
	return aoc.Max(sums...)
}

// TopSum returns the combined total of the n elves carrying the most.
func TopSum(sums []uint64, n int) (uint64, error) {
	if len(sums) < n {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFewGroups, n, len(sums))
	}
	return aoc.Sum(aoc.Largest(n, sums...)...), nil
}
