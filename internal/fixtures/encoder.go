/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fixtures provides a from-scratch Group 4 encoder, used only by
// tests, to synthesize known-good T.6 bit streams from raw pixel rows so
// the decoder can be exercised on round-trip vectors instead of on
// hand-transcribed bit patterns alone. It knows nothing about
// Group4Decoder and shares no code with it beyond the code tables.
package fixtures

import (
	"github.com/unidoc/ccittfax"
	"github.com/unidoc/ccittfax/internal/codes"
)

// EncodeGroup4 encodes rows, a sequence of full scan lines each width
// pixels wide, into a T.6 bit stream. It appends an EOFB marker at the
// end, so the result round-trips through a height-unbounded
// Group4Decoder as well as a height-bounded one.
func EncodeGroup4(rows [][]ccittfax.Color, width int) []byte {
	w := newBitWriter()

	reference := make([]ccittfax.Color, width)
	for i := range reference {
		reference[i] = ccittfax.White
	}

	for _, row := range rows {
		encodeLine(w, reference, row, width)
		reference = row
	}

	eol := codes.EncodeEOL()
	w.write(eol.Value, eol.Bits)
	w.write(eol.Value, eol.Bits)

	return w.bytes()
}

// encodeLine writes one coding line's worth of Pass/Vertical/Horizontal
// mode codewords, comparing current against reference.
func encodeLine(w *bitWriter, reference, current []ccittfax.Color, width int) {
	a0 := -1
	color := ccittfax.White

	for a0 < width {
		a1 := changingElement(current, a0, width)
		b1 := seekB1(reference, a0, color, width)
		b2 := changingElement(reference, b1, width)

		switch {
		case b2 < a1:
			writeMode(w, codes.ModeSymbol{Kind: codes.ModePass})
			a0 = b2

		case abs(b1-a1) > 3:
			a2 := changingElement(current, a1, width)
			writeMode(w, codes.ModeSymbol{Kind: codes.ModeHorizontal})
			writeRun(w, a0, a1, color == ccittfax.Black)
			writeRun(w, a1, a2, color == ccittfax.White)
			a0 = a2

		default:
			writeMode(w, codes.ModeSymbol{Kind: codes.ModeVertical, Delta: int8(a1 - b1)})
			color = color.Negate()
			a0 = a1
		}
	}
}

func writeMode(w *bitWriter, sym codes.ModeSymbol) {
	cw := codes.EncodeMode(sym)
	w.write(cw.Value, cw.Bits)
}

// writeRun writes the codeword chain for one run, covering the columns
// from `from` (or from column 0 when `from` is -1) up to but not including
// `to`. black selects which run-length table the run belongs to.
func writeRun(w *bitWriter, from, to int, black bool) {
	run := to - from - 1
	if from >= 0 {
		run = to - from
	}
	for _, cw := range codes.EncodeRun(run, black) {
		w.write(cw.Value, cw.Bits)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// changingElement returns the smallest index strictly greater than at in
// line whose color differs from the color at position at (treating an at
// of -1 as the line's implicit White start, and any at at or past width as
// already at the line's end). It returns width if no such index exists.
func changingElement(line []ccittfax.Color, at, width int) int {
	if at >= width {
		return width
	}
	var c ccittfax.Color
	if at < 0 {
		c = ccittfax.White
	} else {
		c = line[at]
	}
	i := at + 1
	for i < width && line[i] == c {
		i++
	}
	return i
}

// seekB1 locates the first changing element of reference to the right of
// a0 whose color is the opposite of color (the current coding color),
// i.e. the reference-line analogue of TransitionCursor.nextColor.
func seekB1(reference []ccittfax.Color, a0 int, color ccittfax.Color, width int) int {
	b := changingElement(reference, a0, width)
	for b < width && reference[b] != color.Negate() {
		b = changingElement(reference, b, width)
	}
	return b
}
