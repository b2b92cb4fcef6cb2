package main

import (
	"bytes"
	"io"
	"testing"

	aoc "github.com/maisem/aoc2022"
)

const sample = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000"

func TestParts(t *testing.T) {
	s := solver{aoc.NewPuzzle([]byte(sample))}
	for name, tt := range map[string]struct {
		fn   func() (any, error)
		want uint64
	}{
		"one": {s.PartOne, 24000},
		"two": {s.PartTwo, 45000},
	} {
		got, err := tt.fn()
		if err != nil {
			t.Fatalf("part %s: %v", name, err)
		}
		if got != tt.want {
			t.Errorf("part %s = %v, want %v", name, got, tt.want)
		}
	}
}

func TestPartTwoTooFew(t *testing.T) {
	s := solver{aoc.NewPuzzle([]byte("1\n\n2"))}
	if _, err := s.PartTwo(); err == nil {
		t.Error("PartTwo succeeded with two elves")
	}
}

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	if err := aoc.RunArgs(source, &solver{}, []string{"d01", "--sample"}, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	if want := "part one sample: 24000 ok\npart two sample: 45000 ok\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
