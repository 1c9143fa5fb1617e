package tannen

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Terminal starfield: a one-shot batch painter with no relation to the
// overlay. It scatters a density-proportional set of colored glyphs over the
// terminal via cursor addressing and exits; the prompt underneath survives
// because the screen is never cleared.

const (
	defaultCols = 80
	defaultRows = 24

	// One star per this many cells.
	starDivisor = 35
)

// Star is one glyph of the starfield. Col and Row are 1-based terminal cells.
type Star struct {
	Col, Row   int
	Kind       int // color ramp, 0..7
	Brightness int // 0..100, selects glyph and brightens the ramp
}

// Glyph returns the character drawn for this star.
func (s Star) Glyph() byte {
	switch {
	case s.Brightness > 85:
		return '*'
	case s.Brightness > 65:
		return '+'
	}
	return '.'
}

// RGB returns the star's 24-bit color: one of eight base ramps lifted by
// brightness, clamped per channel.
func (s Star) RGB() (r, g, b int) {
	br := s.Brightness
	switch s.Kind {
	case 0: // cyan
		r, g, b = 40+br, 180+br/2, 220+br/3
	case 1: // magenta
		r, g, b = 180+br/2, 50+br/2, 180+br/2
	case 2: // yellow
		r, g, b = 200+br/3, 180+br/3, 40+br/3
	case 3: // green
		r, g, b = 40+br/2, 180+br/2, 80+br/2
	case 4: // orange
		r, g, b = 220+br/4, 120+br/3, 30+br/4
	case 5: // blue
		r, g, b = 60+br/2, 100+br/2, 200+br/3
	case 6: // white
		r, g, b = 160+br/2, 170+br/2, 190+br/2
	case 7: // red
		r, g, b = 200+br/3, 50+br/3, 60+br/3
	default:
		r, g, b = 200, 200, 200
	}
	return min(r, 255), min(g, 255), min(b, 255)
}

// Starfield scatters stars over a cols×rows terminal region.
type Starfield struct {
	cols, rows int
	rng        *rand.Rand
}

// NewStarfield creates a randomly seeded starfield. Sizes too small to hold
// the scatter margins fall back to the 80×24 default.
func NewStarfield(cols, rows int) *Starfield {
	return NewStarfieldSeeded(cols, rows, rand.Uint64(), rand.Uint64())
}

// NewStarfieldSeeded creates a starfield with a fixed PCG seed, for
// reproducible output.
func NewStarfieldSeeded(cols, rows int, seed1, seed2 uint64) *Starfield {
	if cols < 5 {
		cols = defaultCols
	}
	if rows < 6 {
		rows = defaultRows
	}
	return &Starfield{
		cols: cols,
		rows: rows,
		rng:  rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Scatter draws cols·rows/35 stars at uniform positions inside the region,
// keeping clear of the edges: columns [3, cols-2], rows [4, rows-2] so the
// field never collides with a prompt at the top or bottom line.
func (f *Starfield) Scatter() []Star {
	count := f.cols * f.rows / starDivisor
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			Col:        3 + f.rng.IntN(f.cols-4),
			Row:        4 + f.rng.IntN(f.rows-5),
			Kind:       f.rng.IntN(8),
			Brightness: f.rng.IntN(101),
		}
	}
	return stars
}

// Paint scatters a fresh set of stars and writes them to w as one pass of
// ANSI cursor-positioning and 24-bit color sequences. The cursor is saved
// before and restored after, and the color attribute is reset.
func (f *Starfield) Paint(w io.Writer) error {
	if _, err := io.WriteString(w, "\x1b[s"); err != nil {
		return fmt.Errorf("paint starfield: %w", err)
	}
	for _, s := range f.Scatter() {
		r, g, b := s.RGB()
		if _, err := fmt.Fprintf(w, "\x1b[%d;%dH\x1b[38;2;%d;%d;%dm%c", s.Row, s.Col, r, g, b, s.Glyph()); err != nil {
			return fmt.Errorf("paint starfield: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\x1b[0m\x1b[u"); err != nil {
		return fmt.Errorf("paint starfield: %w", err)
	}
	return nil
}

// ResolveTerminalSize determines the terminal geometry for the starfield.
// Positional args (cols, then rows) win over the COLUMNS/LINES environment
// variables, which win over the terminal's reported size when stdout is a
// tty. Anything unresolvable defaults to 80×24.
func ResolveTerminalSize(args []string) (cols, rows int) {
	return resolveTerminalSize(args, os.Getenv, func() (int, int, bool) {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		return w, h, err == nil
	})
}

func resolveTerminalSize(args []string, getenv func(string) string, ttySize func() (int, int, bool)) (cols, rows int) {
	cols, rows = defaultCols, defaultRows
	if w, h, ok := ttySize(); ok && w > 0 && h > 0 {
		cols, rows = w, h
	}
	if v, err := strconv.Atoi(getenv("COLUMNS")); err == nil && v > 0 {
		cols = v
	}
	if v, err := strconv.Atoi(getenv("LINES")); err == nil && v > 0 {
		rows = v
	}
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			cols = v
		}
	}
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
			rows = v
		}
	}
	return cols, rows
}
