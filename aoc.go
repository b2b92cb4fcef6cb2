// Package aoc runs Maisem's Advent of Code 2022 solvers. (forked from
// maisem/aoc, itself forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle with one method per part, named
// PartOne, PartTwo and so on, each with the signature
//
//	func() (any, error)
//
// A part method may carry its sample in its doc comment:
//
//	/*
//	want=15
//
//	A Y
//	B X
//	C Z
//	*/
//
// Parts without their own sample input reuse the previous part's.
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want: strings.TrimSpace(m[1]),
			// The newline before the comment terminator is not input.
			input: strings.TrimSuffix(m[2], "\n"),
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle gives a part access to its input.
type Puzzle struct {
	SampleMode bool

	input   []byte
	log     zerolog.Logger
	solver  partSolver
	samples map[string]sample
}

// NewPuzzle returns a Puzzle reading input, for calling parts directly.
func NewPuzzle(input []byte) *Puzzle {
	return &Puzzle{input: input, log: zerolog.Nop()}
}

// Input returns the puzzle input: the file named by --file, or the current
// part's sample in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

// Debugf logs at debug level. It is a no-op unless --debug is set.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debug().Str("part", p.solver.Part).Msgf(format, args...)
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var (
	partRx    = regexp.MustCompile(`^Part([A-Z][a-z]+)$`)
	partOrder = map[string]int{"one": 1, "two": 2, "three": 3}
)

// bindParts points the Puzzle field of slvr, which must be a pointer to a
// struct, at p and returns its part methods in order.
func bindParts(slvr any, p *Puzzle) ([]partSolver, error) {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	v = v.Elem()
	f := v.FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))

	vt := v.Type()
	var parts []partSolver
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := partRx.FindStringSubmatch(mn)
		if len(matches) != 2 {
			continue
		}
		part := strings.ToLower(matches[1])
		if _, ok := partOrder[part]; !ok {
			return nil, fmt.Errorf("solver: unknown part %q", mn)
		}
		fn, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("solver: %s is %v; want func() (any, error)", mn, vt.Method(i).Type)
		}
		parts = append(parts, partSolver{
			fn:   fn,
			Part: part,
			Name: mn,
		})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("solver: %T has no parts", slvr)
	}
	slices.SortFunc(parts, func(a, b partSolver) int {
		return partOrder[a.Part] - partOrder[b.Part]
	})
	return parts, nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	return zerolog.New(cw).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// solve runs the selected parts and returns the lines to print. Nothing is
// returned unless every part succeeds.
func solve(p *Puzzle, parts []partSolver, only string) ([]string, error) {
	var out []string
	ran := false
	for _, ps := range parts {
		if only != "" && ps.Part != only {
			continue
		}
		ran = true
		p.solver = ps

		var want string
		if p.SampleMode {
			s, ok := p.samples[ps.Name]
			if !ok {
				return nil, fmt.Errorf("no sample found for %v", ps.Name)
			}
			want = s.want
		}

		t0 := time.Now()
		got, err := ps.fn()
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", ps.Part, err)
		}
		p.log.Debug().
			Str("part", ps.Part).
			Bool("sample", p.SampleMode).
			Dur("took", time.Since(t0).Round(time.Microsecond)).
			Msg("solved")

		if !p.SampleMode {
			out = append(out, fmt.Sprintf("part %s: %v", ps.Part, got))
			continue
		}
		if fmt.Sprint(got) != want {
			return nil, fmt.Errorf("part %s sample: got %v; want %v", ps.Part, got, want)
		}
		out = append(out, fmt.Sprintf("part %s sample: %v ok", ps.Part, got))
	}
	if !ran {
		return nil, fmt.Errorf("no part %q", only)
	}
	return out, nil
}

func newApp(src []byte, slvr any) *cli.App {
	return &cli.App{
		Usage:       "solve an Advent of Code puzzle",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "puzzle input to read",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "part",
				Usage: "only run this part (one, two)",
			},
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "run the samples embedded in the source instead of --file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			p := &Puzzle{
				SampleMode: c.Bool("sample"),
				log:        newLogger(c.App.ErrWriter, c.Bool("debug")),
			}
			if p.SampleMode {
				samples, err := extractSamples(src)
				if err != nil {
					return err
				}
				p.samples = samples
			} else {
				file := c.String("file")
				if file == "" {
					return errors.New(`required flag "file" not set`)
				}
				in, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				p.input = in
				p.log.Debug().Str("file", file).Int("bytes", len(in)).Msg("read input")
			}

			parts, err := bindParts(slvr, p)
			if err != nil {
				return err
			}
			lines, err := solve(p, parts, c.String("part"))
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(c.App.Writer, l)
			}
			return nil
		},
	}
}

// RunArgs solves slvr with the command line args, writing answers to stdout
// and logs to stderr. src is the solver's source, from which samples are
// read.
func RunArgs(src []byte, slvr any, args []string, stdout, stderr io.Writer) error {
	app := newApp(src, slvr)
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.Run(args)
}

// Run is RunArgs on the process's command line. Any failure is fatal.
func Run(src []byte, slvr any) {
	if err := RunArgs(src, slvr, os.Args, os.Stdout, os.Stderr); err != nil {
		l := newLogger(os.Stderr, false)
		l.Fatal().Err(err).Msg("aoc")
	}
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
