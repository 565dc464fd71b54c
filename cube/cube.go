package cube

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/midway/meet"
)

// Sentinel errors for cube construction.
var (
	// ErrInvalidColor indicates a sticker color outside 0..5.
	ErrInvalidColor = errors.New("cube: invalid sticker color")
	// ErrColorCount indicates a color not used by exactly nine stickers.
	ErrColorCount = errors.New("cube: every color must appear exactly nine times")
	// ErrNotAdjacent indicates two consecutive cubes of a path differ by more
	// than one rotation.
	ErrNotAdjacent = errors.New("cube: states are not one rotation apart")
)

// FaceID names a face of the net.
type FaceID uint8

const (
	Top FaceID = iota
	Left
	Front
	Right
	Back
	Bottom

	faceCount = 6
)

// String renders the net letter A..F.
func (f FaceID) String() string {
	if f >= faceCount {
		return fmt.Sprintf("FaceID(%d)", uint8(f))
	}
	return string(rune('A' + f))
}

// Cube is one configuration of the puzzle. The zero Cube has every sticker
// colored A and is not a valid configuration; use Solved or New.
type Cube struct {
	faces [faceCount]Face
}

// Solved returns the solved cube, face k uniformly colored k.
func Solved() Cube {
	var c Cube
	for f := range c.faces {
		c.faces[f] = Uniform(Color(f))
	}
	return c
}

// New builds a cube from sticker colors per face, rejecting colors outside
// 0..5 and any color not used exactly nine times.
func New(faces [faceCount][9]Color) (Cube, error) {
	var counts [NumColors]int
	var c Cube
	for f, colors := range faces {
		for i, col := range colors {
			if !col.Valid() {
				return Cube{}, fmt.Errorf("%w: %d at %s%d", ErrInvalidColor, uint8(col), FaceID(f), i)
			}
			counts[col]++
		}
		c.faces[f] = NewFace(colors)
	}
	for col, n := range counts {
		if n != 9 {
			return Cube{}, fmt.Errorf("%w: %s appears %d times", ErrColorCount, Color(col), n)
		}
	}
	return c, nil
}

// Face returns one face.
func (c Cube) Face(f FaceID) Face { return c.faces[f] }

// Faces unpacks all stickers, the inverse of New.
func (c Cube) Faces() [faceCount][9]Color {
	var out [faceCount][9]Color
	for f, face := range c.faces {
		out[f] = face.Colors()
	}
	return out
}

// IsSolved reports whether every face is uniform.
func (c Cube) IsSolved() bool {
	for _, face := range c.faces {
		if !face.IsUniform() {
			return false
		}
	}
	return true
}

// Transitions lists all 18 rotations; every rotation applies to every cube.
func (c Cube) Transitions() []Rotation {
	all := AllRotations
	return all[:]
}

// Apply returns the cube after rotation r.
func (c Cube) Apply(r Rotation) Cube {
	p := &permutations[r.ordinal()]
	var out Cube
	for dst, src := range p {
		color := c.faces[src/9].Get(int(src % 9))
		out.faces[dst/9] = out.faces[dst/9].Set(dst%9, color)
	}
	return out
}

// String renders the unfolded net, one letter per sticker.
func (c Cube) String() string {
	var b strings.Builder
	row := func(f FaceID, r int) {
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.faces[f].Get(r*3 + col).String())
		}
	}
	pad := strings.Repeat(" ", 6)

	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(Top, r)
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for i, f := range []FaceID{Left, Front, Right, Back} {
			if i > 0 {
				b.WriteByte(' ')
			}
			row(f, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(Bottom, r)
		if r < 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Scramble applies n rotations drawn from rng to the solved cube.
// The result is at most n rotations away from solved.
func Scramble(rng *rand.Rand, n int) Cube {
	c := Solved()
	for i := 0; i < n; i++ {
		c = c.Apply(AllRotations[rng.Intn(len(AllRotations))])
	}
	return c
}

// Solve returns a shortest sequence of cubes from c to the solved cube,
// both included. opts are passed to meet.FindPath.
func Solve(c Cube, opts ...meet.Option) ([]Cube, error) {
	return meet.FindPath[Cube, Rotation](c, Solved(), opts...)
}

// Rotations translates a path of cubes into the rotations linking them.
// Returns ErrNotAdjacent if two consecutive cubes are not one rotation apart.
func Rotations(path []Cube) ([]Rotation, error) {
	if len(path) == 0 {
		return nil, nil
	}
	out := make([]Rotation, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		r, ok := rotationBetween(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: step %d", ErrNotAdjacent, i)
		}
		out = append(out, r)
	}
	return out, nil
}

// rotationBetween finds the first rotation taking a to b.
func rotationBetween(a, b Cube) (Rotation, bool) {
	for _, r := range AllRotations {
		if a.Apply(r) == b {
			return r, true
		}
	}
	return 0, false
}
