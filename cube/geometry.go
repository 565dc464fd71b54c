package cube

// stickerCount is the number of stickers on a cube.
const stickerCount = 6 * 9

// vec is a point or direction with integer coordinates in -1..1.
// x points to Right, y to Top, z to Front.
type vec [3]int

// turn rotates v by +90° around axis a.
func (v vec) turn(a Axis) vec {
	x, y, z := v[0], v[1], v[2]
	switch a {
	case X:
		return vec{x, -z, y}
	case Y:
		return vec{z, y, -x}
	default:
		return vec{-y, x, z}
	}
}

// sticker is identified by the cubie it sits on and the way it faces.
type sticker struct {
	pos, normal vec
}

// stickerAt places cell i of face f in space, following the net in doc.go.
func stickerAt(f FaceID, i int) sticker {
	r, c := i/3, i%3
	switch f {
	case Top:
		return sticker{vec{c - 1, 1, r - 1}, vec{0, 1, 0}}
	case Left:
		return sticker{vec{-1, 1 - r, c - 1}, vec{-1, 0, 0}}
	case Front:
		return sticker{vec{c - 1, 1 - r, 1}, vec{0, 0, 1}}
	case Right:
		return sticker{vec{1, 1 - r, 1 - c}, vec{1, 0, 0}}
	case Back:
		return sticker{vec{1 - c, 1 - r, -1}, vec{0, 0, -1}}
	default:
		return sticker{vec{c - 1, -1, 1 - r}, vec{0, -1, 0}}
	}
}

// layerCoord is the coordinate along r's axis shared by every cubie of the
// turned layer. LayerFirst holds C0 at (-1, 1, 1).
func layerCoord(r Rotation) int {
	first := [...]int{X: -1, Y: 1, Z: 1}[r.Axis()]
	if r.Layer() == LayerLast {
		return -first
	}
	return first
}

// permutations[k][dst] is the sticker whose color lands on dst when
// AllRotations[k] is applied. Stickers are numbered face*9 + cell.
var permutations = buildPermutations()

func buildPermutations() [len(AllRotations)][stickerCount]uint8 {
	index := make(map[sticker]int, stickerCount)
	for f := FaceID(0); f < faceCount; f++ {
		for i := 0; i < 9; i++ {
			index[stickerAt(f, i)] = int(f)*9 + i
		}
	}

	var perms [len(AllRotations)][stickerCount]uint8
	for k, r := range AllRotations {
		p := &perms[k]
		for i := range p {
			p[i] = uint8(i)
		}
		axis, coord := r.Axis(), layerCoord(r)
		for f := FaceID(0); f < faceCount; f++ {
			for i := 0; i < 9; i++ {
				s := stickerAt(f, i)
				if s.pos[axis] != coord {
					continue
				}
				for n := 0; n < r.Times().QuarterTurns(); n++ {
					s = sticker{s.pos.turn(axis), s.normal.turn(axis)}
				}
				p[index[s]] = uint8(int(f)*9 + i)
			}
		}
	}
	return perms
}
