/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import (
	"io"

	"github.com/unidoc/ccittfax/common"
	"github.com/unidoc/ccittfax/internal/bitio"
	"github.com/unidoc/ccittfax/internal/codes"
)

// maxConsecutiveEOLs is the number of consecutive EOL markers that signals
// end-of-page in Group 3, counting a line's own terminating EOL as the
// first: up to five consecutive EOLs are tolerated as a gap, the sixth
// halts the decode.
const maxConsecutiveEOLs = 6

// Group3Decoder decodes a T.4 (Group 3) one-dimensional bilevel image: a
// sequence of EOL-delimited lines, each a plain run-length encoding with
// no reference to any other line. It shares its run-length tables with
// Group4Decoder but carries no two-dimensional state.
type Group3Decoder struct {
	br    *bitio.Reader
	width int
}

// NewGroup3Decoder prepares a decoder for lines of the given width.
func NewGroup3Decoder(src io.ByteReader, width int) *Group3Decoder {
	return &Group3Decoder{br: bitio.NewReader(src), width: width}
}

// Decode drives the decoder to completion, invoking fn once per line, in
// scan order. It returns a non-nil *Error on malformed input, and stops
// cleanly once it has consumed maxConsecutiveEOLs consecutive EOL markers
// (the Group 3 end-of-page signal).
func (d *Group3Decoder) Decode(fn LineFunc) error {
	eolValue, eolBits := codes.EOLCodeword()

	if err := d.br.Expect(eolValue, eolBits); err != nil {
		return newError(MissingMarker, "group3: initial eol", err)
	}

	current := make([]int, 0, d.width)
	row := 0
	for {
		current = current[:0]
		a0 := 0
		color := White

		for a0 < d.width {
			run, err := decodeRun(d.br, color)
			if err != nil {
				return err
			}
			a0 += run
			if a0 < d.width {
				current = append(current, a0)
			}
			color = color.Negate()
		}

		if err := d.br.Expect(eolValue, eolBits); err != nil {
			return newError(MissingMarker, "group3: line eol", err)
		}

		if err := fn(current); err != nil {
			return err
		}
		common.Log.Trace("group3: row %d: %d transitions", row, len(current))
		row++

		// The line's terminating EOL above counts as the first of a
		// possible run of consecutive EOLs; six in a row (with no
		// line data between) is the Group 3 end-of-page signal.
		consecutiveEOLs := 1
		for {
			got, err := d.br.Peek(eolBits)
			if err != nil || got != eolValue {
				break
			}
			d.br.Consume(eolBits)
			consecutiveEOLs++
			if consecutiveEOLs >= maxConsecutiveEOLs {
				common.Log.Debug("group3: decoded %d rows, end-of-page after %d EOLs", row, consecutiveEOLs)
				return nil
			}
		}
	}
}
