/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

// Materialize expands a line's sorted transition positions into exactly
// width pixel colors. The line begins White; each transition position
// flips the color of every pixel from that column onward. If transitions
// has odd length, the trailing run (from the last transition to width)
// uses the negation of White, and the run is padded out to width with
// that ending color.
//
// Materialize is a pure function with no relation to decoder state; it is
// the caller's responsibility to invoke it from a LineFunc if per-pixel
// output, rather than a transition list, is what's wanted.
func Materialize(transitions []int, width int) []Color {
	out := make([]Color, width)
	color := White
	pos := 0
	for _, t := range transitions {
		if t > width {
			t = width
		}
		for ; pos < t; pos++ {
			out[pos] = color
		}
		color = color.Negate()
	}
	for ; pos < width; pos++ {
		out[pos] = color
	}
	return out
}
