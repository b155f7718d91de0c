/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/ccittfax/internal/codes"
	"github.com/unidoc/ccittfax/internal/fixtures"
)

// packBits MSB-first packs a sequence of (value, bits) codewords into a
// byte slice, padding the final byte with zero bits.
func packBits(cws ...codes.Codeword) []byte {
	var buf []byte
	var bitPos uint
	for _, cw := range cws {
		for i := 0; i < cw.Bits; i++ {
			bit := (cw.Value >> uint(cw.Bits-1-i)) & 1
			if bitPos == 0 {
				buf = append(buf, 0)
			}
			buf[len(buf)-1] |= byte(bit) << (7 - bitPos)
			bitPos = (bitPos + 1) % 8
		}
	}
	// Pad with enough trailing zero bytes that a final Peek(windowBits)
	// past the last real codeword never starves the reader.
	return append(buf, 0, 0, 0)
}

// S1: width=8, one line of Vertical(0) against an empty (all-white)
// reference terminates the line immediately with no transitions.
func TestGroup4S1AllWhiteFirstLine(t *testing.T) {
	v0 := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeVertical, Delta: 0})
	data := packBits(v0)

	var lines [][]int
	d := NewGroup4Decoder(bytes.NewReader(data), 8, 1)
	err := d.Decode(func(transitions []int) error {
		lines = append(lines, append([]int(nil), transitions...))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Empty(t, lines[0])
}

// S3: Horizontal at a0=0, color=White, white-run=2, black-run=3, width=8
// -> current = [2, 5].
func TestGroup4S3Horizontal(t *testing.T) {
	h := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeHorizontal})
	white2 := codes.EncodeRun(2, false)
	black3 := codes.EncodeRun(3, true)
	// After the Horizontal pair, a0=5 < width=8, so the line isn't over
	// yet; a trailing Vertical(0) against the (empty, first-line)
	// reference falls back to b1=width, landing a1=8>=width and ending
	// the line cleanly without contributing any further transition.
	v0 := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeVertical, Delta: 0})
	cws := append([]codes.Codeword{h}, white2...)
	cws = append(cws, black3...)
	cws = append(cws, v0)
	data := packBits(cws...)

	var got []int
	d := NewGroup4Decoder(bytes.NewReader(data), 8, 1)
	err := d.Decode(func(transitions []int) error {
		got = append([]int(nil), transitions...)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, got)
}

// S4: reference=[3], a0=0, color=White, start_of_row=true, width=8,
// Vertical(+1) -> b1=3, a1=4, current=[4].
func TestGroup4S4Vertical(t *testing.T) {
	v0 := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeVertical, Delta: 0})
	vr1 := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeVertical, Delta: 1})

	// Line 1 establishes reference=[3]. Vertical against the empty
	// first-line reference cannot land exactly on 3, so line 1 is built
	// with Horizontal: white-run=3 (a1=3), black-run=5 (a2=8, equals
	// width, not pushed) -> reference becomes [3].
	h := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeHorizontal})
	white3 := codes.EncodeRun(3, false)
	black5 := codes.EncodeRun(5, true)
	line1 := append([]codes.Codeword{h}, white3...)
	line1 = append(line1, black5...)

	// After Vertical(+1) lands a0=4 < width=8, a trailing Vertical(0)
	// against reference=[3] (which has no further transitions past
	// column 3) falls back to b1=width, ending the line cleanly.
	line2 := []codes.Codeword{vr1, v0}

	all := append(line1, line2...)
	data := packBits(all...)

	var lines [][]int
	d := NewGroup4Decoder(bytes.NewReader(data), 8, 2)
	err := d.Decode(func(transitions []int) error {
		lines = append(lines, append([]int(nil), transitions...))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, []int{3}, lines[0])
	require.Equal(t, []int{4}, lines[1])
}

// S6: after the last line, the next 24 bits are two EOLs; decode returns
// success with no further callback.
func TestGroup4S6EOFBDetection(t *testing.T) {
	v0 := codes.EncodeMode(codes.ModeSymbol{Kind: codes.ModeVertical, Delta: 0})
	eol := codes.EncodeEOL()
	data := packBits(v0, eol, eol)

	lineCount := 0
	d := NewGroup4Decoder(bytes.NewReader(data), 8, 0)
	err := d.Decode(func(transitions []int) error {
		lineCount++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, lineCount)
}

func TestGroup4RoundTripViaFixtures(t *testing.T) {
	width := 12
	rows := [][]Color{
		Materialize([]int{3, 7}, width),
		Materialize([]int{3, 7}, width),
		Materialize([]int{1, 2, 9}, width),
	}
	data := fixtures.EncodeGroup4(rows, width)

	var decoded [][]Color
	d := NewGroup4Decoder(bytes.NewReader(data), width, 0)
	err := d.Decode(func(transitions []int) error {
		decoded = append(decoded, Materialize(transitions, width))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, rows, decoded)
}
