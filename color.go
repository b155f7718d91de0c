/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

// Color is the two-valued pixel color of a bilevel raster line.
type Color uint8

// Every scan line begins in White; a Color flips each time a transition
// position is crossed.
const (
	White Color = iota
	Black
)

// Negate returns the opposite color.
func (c Color) Negate() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
