// The d02 command scores a rock paper scissors strategy guide.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/rps"
)

func main() {
	aoc.Run(source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) PartOne() (any, error) {
	return rps.Compute(s.Input(), rps.Direct)
}

// want=12
func (s solver) PartTwo() (any, error) {
	return rps.Compute(s.Input(), rps.OutcomeDirected)
}
