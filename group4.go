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

// LineFunc is invoked once per decoded scan line, in scan order, with a
// sorted sequence of transition positions in [0, width) at which the
// line's color toggles; the line begins in White, so a line whose first
// pixel is Black reports a transition at 0.
// The slice is only valid for the duration of the call: implementations
// must not retain it past return, since the backing array is reused for
// the next line.
type LineFunc func(transitions []int) error

// Group4Decoder decodes a T.6 (Group 4) two-dimensional bilevel image: a
// sequence of coding lines, each described relative to the previous
// (reference) line via Pass, Vertical and Horizontal modes, terminated
// either after a known number of rows or by an EOFB marker.
//
// A Group4Decoder is not safe for concurrent use; it is a strictly
// sequential, single-threaded state machine with no suspension points
// beyond reads from its byte source.
type Group4Decoder struct {
	br     *bitio.Reader
	width  int
	height int // 0 means unbounded: run until EOFB

	extensionCode int
	sawExtension  bool
}

// NewGroup4Decoder prepares a decoder for an image of the given width in
// pixels. height is the number of coding lines to decode; pass 0 to decode
// until an EOFB marker is found instead of a fixed row count.
func NewGroup4Decoder(src io.ByteReader, width, height int) *Group4Decoder {
	return &Group4Decoder{br: bitio.NewReader(src), width: width, height: height}
}

// Decode drives the decoder to completion, invoking fn once per line.
// It returns a non-nil *Error on any malformed input; no partial line is
// ever delivered to fn for the line during which a failure occurred.
func (d *Group4Decoder) Decode(fn LineFunc) error {
	reference := []int{}
	current := make([]int, 0, d.width)

	row := 0
	for d.height == 0 || row < d.height {
		current = current[:0]
		done, err := d.decodeLine(reference, &current)
		if err != nil {
			common.Log.Debug("group4: row %d: %v", row, err)
			return err
		}
		if done {
			common.Log.Trace("group4: stream-level end after %d rows", row)
			break
		}
		if err := fn(current); err != nil {
			return err
		}
		reference, current = current, reference
		row++
	}

	if d.height == 0 {
		if err := d.expectEOFBTail(); err != nil {
			return err
		}
	}
	common.Log.Debug("group4: decoded %d rows", row)
	return nil
}

// decodeLine decodes one coding line against reference, appending its
// transitions to *current. done is true if a stream-level EOF or
// Extension sentinel ended the decode instead of a line.
func (d *Group4Decoder) decodeLine(reference []int, current *[]int) (done bool, err error) {
	cursor := newTransitionCursor(reference)
	a0 := 0
	color := White
	startOfRow := true

	for {
		mode, err := decodeMode(d.br)
		if err != nil {
			return false, err
		}

		switch mode.Kind {
		case ModePass:
			var b2 int
			var ok bool
			if startOfRow && color == White {
				b2, ok = cursor.skipLeadingTransition()
			} else {
				if _, ok = cursor.nextColor(a0, color.Negate(), false); !ok {
					return false, newError(InvalidMode, "group4: pass", nil)
				}
				b2, ok = cursor.next()
			}
			if !ok {
				b2 = d.width
			}
			a0 = b2

		case ModeVertical:
			b1, ok := cursor.nextColor(a0, color.Negate(), startOfRow)
			if !ok {
				b1 = d.width
			}
			a1 := b1 + mode.Delta
			if a1 < 0 || a1 >= d.width {
				return false, nil
			}
			*current = append(*current, a1)
			color = color.Negate()
			a0 = a1
			if mode.Delta < 0 {
				cursor.seekBack(a0)
			}

		case ModeHorizontal:
			a0a1, err := decodeRun(d.br, color)
			if err != nil {
				return false, err
			}
			a1b1, err := decodeRun(d.br, color.Negate())
			if err != nil {
				return false, err
			}
			a1 := a0 + a0a1
			a2 := a1 + a1b1
			if a1 < d.width {
				*current = append(*current, a1)
			}
			if a2 >= d.width {
				a0 = a2
			} else {
				*current = append(*current, a2)
				a0 = a2
			}

		case ModeExtension:
			window, err := d.br.Peek(3)
			if err != nil {
				return false, newError(UnexpectedEnd, "group4: extension", err)
			}
			d.br.Consume(3)
			d.extensionCode = int(window)
			d.sawExtension = true
			return true, nil

		case ModeEOF:
			return true, nil

		default:
			return false, newError(InvalidMode, "group4: dispatch", nil)
		}

		startOfRow = false
		if a0 >= d.width {
			return false, nil
		}
	}
}

// ExtensionCode returns the 3-bit identifier following an Extension mode
// codeword, if Decode's stream ended on one. ok is false if decoding ended
// any other way (a fixed row count, EOF, or an error).
func (d *Group4Decoder) ExtensionCode() (code int, ok bool) {
	return d.extensionCode, d.sawExtension
}

// expectEOFBTail consumes the remaining EOL half of an EOFB marker once
// the first half has already been consumed as an in-band ModeEOF symbol,
// for unbounded-height streams.
func (d *Group4Decoder) expectEOFBTail() error {
	value, bits := codes.EOLCodeword()
	if err := d.br.Expect(value, bits); err != nil {
		return newError(MissingMarker, "group4: eofb", err)
	}
	return nil
}
