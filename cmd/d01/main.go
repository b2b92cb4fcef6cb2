// The d01 command finds how many calories the best-stocked elves carry.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/calories"
)

func main() {
	aoc.Run(source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) totals() ([]uint64, error) {
	sums, err := calories.Parse(s.Input())
	if err != nil {
		return nil, err
	}
	s.Debugf("%d elves", len(sums))
	return sums, nil
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) PartOne() (any, error) {
	sums, err := s.totals()
	if err != nil {
		return nil, err
	}
	return calories.Max(sums), nil
}

// want=45000
func (s solver) PartTwo() (any, error) {
	sums, err := s.totals()
	if err != nil {
		return nil, err
	}
	return calories.TopSum(sums, 3)
}
