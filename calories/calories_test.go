package calories

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint64
	}{
		{"sample", sample, []uint64{6000, 4000, 11000, 24000, 10000}},
		{"one-elf", "1\n2\n3", []uint64{6}},
		{"single", "42", []uint64{42}},
		{"leading-blank", "\n5", []uint64{0, 5}},
		{"max", "18446744073709551615", []uint64{18446744073709551615}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"1\n2\n",
		"1\n\n",
		"12a",
		"1\n-2",
		"1\n 2",
		"1\r\n2",
		"18446744073709551616",
		"18446744073709551615\n1",
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrBadCount) {
			t.Errorf("Parse(%q) err = %v; want ErrBadCount", in, err)
		}
	}
}

// TestParseRandom checks that there is one total per group and that the
// totals add up to the sum of every count.
func TestParseRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		var (
			groups []string
			total  uint64
		)
		n := 1 + r.Intn(20)
		for range n {
			var lines []string
			for range 1 + r.Intn(10) {
				v := uint64(r.Intn(100000))
				total += v
				lines = append(lines, strconv.FormatUint(v, 10))
			}
			groups = append(groups, strings.Join(lines, "\n"))
		}
		got, err := Parse([]byte(strings.Join(groups, "\n\n")))
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != n {
			t.Errorf("got %d totals, want %d", len(got), n)
		}
		var sum uint64
		for _, v := range got {
			sum += v
		}
		if sum != total {
			t.Errorf("totals add up to %d, want %d", sum, total)
		}
	}
}

func TestMaxTopSum(t *testing.T) {
	sums, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if got := Max(sums); got != 24000 {
		t.Errorf("Max = %d, want 24000", got)
	}
	got, err := TopSum(sums, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 45000 {
		t.Errorf("TopSum = %d, want 45000", got)
	}
}

func TestTopSumTooFew(t *testing.T) {
	if _, err := TopSum([]uint64{1, 2}, 3); !errors.Is(err, ErrTooFewGroups) {
		t.Errorf("TopSum err = %v; want ErrTooFewGroups", err)
	}
}
