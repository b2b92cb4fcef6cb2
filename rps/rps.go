// Package rps scores a rock paper scissors strategy guide.
//
// The guide has one round per line, `<opponent> <column>`, where the
// opponent plays A (Rock), B (Paper) or C (Scissors). What the second
// column (X, Y or Z) means depends on the Strategy used to read it.
//
// Each round is worth the value of your weapon (Rock 1, Paper 2,
// Scissors 3) plus the outcome (Win 6, Tie 3, Loss 0).
package rps

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeapon is returned when the first column is not A, B or C.
	ErrInvalidWeapon = errors.New("invalid weapon code")

	// ErrInvalidTableCode is returned when the second column is not X, Y
	// or Z.
	ErrInvalidTableCode = errors.New("invalid table code")

	// ErrMalformedRound is returned when a line is not two codes separated
	// by a single space.
	ErrMalformedRound = errors.New("malformed round")
)

// Weapon is one of Rock, Paper or Scissors.
type Weapon uint8

const (
	Rock Weapon = iota
	Paper
	Scissors
)

// numWeapons is the length of the beats cycle: each weapon beats the one
// before it.
const numWeapons = 3

func (w Weapon) String() string {
	switch w {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Weapon(%d)", uint8(w))
}

// Value is what playing w is worth.
func (w Weapon) Value() uint64 {
	return uint64(w) + 1
}

// Beats reports whether w wins against other.
func (w Weapon) Beats(other Weapon) bool {
	return other == w.Loser()
}

// Loser returns the weapon that w beats.
func (w Weapon) Loser() Weapon {
	return (w + numWeapons - 1) % numWeapons
}

// Winner returns the weapon that beats w.
func (w Weapon) Winner() Weapon {
	return (w + 1) % numWeapons
}

// Outcome is the result of a round for the player.
type Outcome uint8

const (
	Win Outcome = iota
	Tie
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Tie:
		return "Tie"
	case Loss:
		return "Loss"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Value is what the outcome is worth.
func (o Outcome) Value() uint64 {
	switch o {
	case Win:
		return 6
	case Tie:
		return 3
	}
	return 0
}

// Round is one line of the guide.
type Round struct {
	Opp Weapon
	You Weapon
}

// Play returns the outcome of the round for You.
func (r Round) Play() Outcome {
	switch {
	case r.You == r.Opp:
		return Tie
	case r.You.Beats(r.Opp):
		return Win
	}
	return Loss
}

// Score is the weapon value plus the outcome value.
func (r Round) Score() uint64 {
	return r.You.Value() + r.Play().Value()
}

// OpponentWeapon decodes the first column of the guide.
func OpponentWeapon(code byte) (Weapon, error) {
	switch code {
	case 'A':
		return Rock, nil
	case 'B':
		return Paper, nil
	case 'C':
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidWeapon, code)
}

// A Strategy turns a line of the guide, without its terminator, into a
// Round.
type Strategy func(line []byte) (Round, error)

var (
	_ Strategy = Direct
	_ Strategy = OutcomeDirected
)

// splitRound validates the shape of line and decodes the opponent.
func splitRound(line []byte) (opp Weapon, code byte, err error) {
	if len(line) != 3 || line[1] != ' ' {
		return 0, 0, fmt.Errorf("%w %q", ErrMalformedRound, line)
	}
	opp, err = OpponentWeapon(line[0])
	if err != nil {
		return 0, 0, err
	}
	return opp, line[2], nil
}

// Direct reads the second column as your weapon: X (Rock), Y (Paper),
// Z (Scissors).
func Direct(line []byte) (Round, error) {
	opp, code, err := splitRound(line)
	if err != nil {
		return Round{}, err
	}
	r := Round{Opp: opp}
	switch code {
	case 'X':
		r.You = Rock
	case 'Y':
		r.You = Paper
	case 'Z':
		r.You = Scissors
	default:
		return Round{}, fmt.Errorf("%w %q", ErrInvalidTableCode, code)
	}
	return r, nil
}

// OutcomeDirected reads the second column as how the round must end:
// X lose, Y tie, Z win. Your weapon is whatever gets that outcome.
func OutcomeDirected(line []byte) (Round, error) {
	opp, code, err := splitRound(line)
	if err != nil {
		return Round{}, err
	}
	r := Round{Opp: opp}
	switch code {
	case 'X':
		r.You = opp.Loser()
	case 'Y':
		r.You = opp
	case 'Z':
		r.You = opp.Winner()
	default:
		return Round{}, fmt.Errorf("%w %q", ErrInvalidTableCode, code)
	}
	return r, nil
}

// ParseRounds reads every line of buf with strategy. The line feed is
// optional on the last line only; any other empty line is malformed.
func ParseRounds(buf []byte, strategy Strategy) ([]Round, error) {
	var rounds []Round
	for n := 1; len(buf) > 0; n++ {
		var line []byte
		line, buf, _ = bytes.Cut(buf, []byte{'\n'})
		r, err := strategy(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// Compute returns the total score of the guide read with strategy.
func Compute(buf []byte, strategy Strategy) (uint64, error) {
	rounds, err := ParseRounds(buf, strategy)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, r := range rounds {
		total += r.Score()
	}
	return total, nil
}
