package cube

import "fmt"

// Axis of a layer rotation.
type Axis uint8

const (
	// X runs through Left and Right.
	X Axis = iota
	// Y runs through Top and Bottom.
	Y
	// Z runs through Front and Back.
	Z
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Layer selects one of the two outer layers along an axis.
type Layer uint8

const (
	// LayerFirst is the layer holding sticker C0.
	LayerFirst Layer = iota
	// LayerLast is the layer opposite LayerFirst.
	LayerLast
)

// String implements fmt.Stringer.
func (l Layer) String() string {
	if l == LayerFirst {
		return "first"
	}
	return "last"
}

// Times is the number of quarter turns minus one.
type Times uint8

const (
	Once Times = iota
	Twice
	Thrice
)

// QuarterTurns returns 1, 2 or 3.
func (t Times) QuarterTurns() int { return int(t) + 1 }

// Rotation packs axis, layer and turn count into one byte:
// two axis bits, one layer bit, two times bits, three unused bits.
type Rotation uint8

const (
	axisShift  = 6
	layerShift = 5
	timesShift = 3

	axisMask  Rotation = 0b1100_0000
	layerMask Rotation = 0b0010_0000
	timesMask Rotation = 0b0001_1000
)

// NewRotation packs a rotation.
func NewRotation(a Axis, l Layer, t Times) Rotation {
	return Rotation(uint8(a)<<axisShift | uint8(l)<<layerShift | uint8(t)<<timesShift)
}

// Axis returns the rotation axis.
func (r Rotation) Axis() Axis { return Axis((r & axisMask) >> axisShift) }

// Layer returns the rotated layer.
func (r Rotation) Layer() Layer { return Layer((r & layerMask) >> layerShift) }

// Times returns the turn count.
func (r Rotation) Times() Times { return Times((r & timesMask) >> timesShift) }

// Valid reports whether r names one of the 18 rotations.
func (r Rotation) Valid() bool {
	return r.Axis() <= Z && r.Times() <= Thrice && r&^(axisMask|layerMask|timesMask) == 0
}

// Inverse returns the rotation undoing r.
func (r Rotation) Inverse() Rotation {
	return NewRotation(r.Axis(), r.Layer(), Thrice-r.Times())
}

// ordinal is r's position in AllRotations.
func (r Rotation) ordinal() int {
	return int(r.Axis())*6 + int(r.Layer())*3 + int(r.Times())
}

// String renders e.g. "X-first-1".
func (r Rotation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rotation(%#08b)", uint8(r))
	}
	return fmt.Sprintf("%s-%s-%d", r.Axis(), r.Layer(), r.Times().QuarterTurns())
}

// AllRotations lists every rotation, axis-major, then layer, then turns.
var AllRotations = func() [18]Rotation {
	var all [18]Rotation
	i := 0
	for a := X; a <= Z; a++ {
		for l := LayerFirst; l <= LayerLast; l++ {
			for t := Once; t <= Thrice; t++ {
				all[i] = NewRotation(a, l, t)
				i++
			}
		}
	}
	return all
}()
