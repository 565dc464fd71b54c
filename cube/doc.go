// Package cube models a 3×3×3 Rubik's cube as a meet.State so that
// scrambled cubes can be solved with meet-in-the-middle search.
//
// Layout
//
//	The cube is stored as six faces laid out as the net below. Each face
//	packs its nine stickers, three bits per color, into a uint32, so a
//	whole Cube is a comparable 24-byte value.
//
//	                   Top (A)
//	                A0  A1  A2
//	                A3  A4  A5
//	                A6  A7  A8
//
//	     Left (B)     Front (C)     Right (D)     Back (E)
//	  B0  B1  B2    C0  C1  C2    D0  D1  D2    E0  E1  E2
//	  B3  B4  B5    C3  C4  C5    D3  D4  D5    E3  E4  E5
//	  B6  B7  B8    C6  C7  C8    D6  D7  D8    E6  E7  E8
//
//	                  Bottom (F)
//	                F0  F1  F2
//	                F3  F4  F5
//	                F6  F7  F8
//
// Rotations
//
//	A Rotation turns one outer layer a number of quarter turns. Axis X runs
//	through Left and Right, Y through Top and Bottom, Z through Front and
//	Back. LayerFirst is the layer holding sticker C0, LayerLast the
//	opposite one. One quarter turn is +90° by the right-hand rule around
//	the axis pointing towards Right, Top and Front respectively. Three axes
//	× two layers × three turn counts give the 18 transitions of every state.
//
// Errors
//
//   - ErrInvalidColor: a sticker color outside 0..5.
//   - ErrColorCount:   a color does not appear exactly nine times.
//   - ErrNotAdjacent:  Rotations got two cubes more than one turn apart.
package cube
