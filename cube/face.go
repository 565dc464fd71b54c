package cube

import (
	"fmt"
	"strings"
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

// Color of one sticker. Color k is the color of face k on a solved cube.
type Color uint8

// Valid reports whether c is one of the six cube colors.
func (c Color) Valid() bool { return c < NumColors }

// String renders the letter of the face the color belongs to when solved.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return string(rune('A' + c))
}

// cellBits is the width of one packed sticker.
const cellBits = 3

// Face packs nine sticker colors, three bits each, into the low 27 bits.
// Cells are indexed row by row, 0 top-left to 8 bottom-right.
type Face uint32

// NewFace packs colors into a Face.
func NewFace(colors [9]Color) Face {
	var f Face
	for i, c := range colors {
		f = f.Set(i, c)
	}
	return f
}

// Uniform returns a face with all nine cells set to c.
func Uniform(c Color) Face {
	var colors [9]Color
	for i := range colors {
		colors[i] = c
	}
	return NewFace(colors)
}

// Get returns the color at cell i.
func (f Face) Get(i int) Color {
	return Color((f >> (i * cellBits)) & 0b111)
}

// Set returns a copy of f with cell i set to c.
func (f Face) Set(i int, c Color) Face {
	shift := i * cellBits
	f &^= 0b111 << shift
	return f | Face(c&0b111)<<shift
}

// Colors unpacks the nine cells.
func (f Face) Colors() [9]Color {
	var out [9]Color
	for i := range out {
		out[i] = f.Get(i)
	}
	return out
}

// IsUniform reports whether all cells share one color.
func (f Face) IsUniform() bool {
	return f == Uniform(f.Get(0))
}

// String renders the face as three rows of letters.
func (f Face) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c < 3; c++ {
			b.WriteString(f.Get(r*3 + c).String())
		}
	}
	return b.String()
}
