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
)

// S2: Width=4, Group 3, stream = EOL + white-run-4 + EOL + 6xEOL -> one
// line, current=[], materializes to WWWW.
func TestGroup3S2(t *testing.T) {
	eol := codes.EncodeEOL()
	white4 := codes.EncodeRun(4, false)

	var cws []codes.Codeword
	cws = append(cws, eol) // initial EOL
	cws = append(cws, white4...)
	cws = append(cws, eol) // line terminator
	for i := 0; i < 6; i++ {
		cws = append(cws, eol)
	}
	data := packBits(cws...)

	var lines [][]int
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		lines = append(lines, append([]int(nil), transitions...))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Empty(t, lines[0])
	require.Equal(t, "WWWW", colorString(Materialize(lines[0], 4)))
}

func TestGroup3TwoLines(t *testing.T) {
	eol := codes.EncodeEOL()
	white0 := codes.EncodeRun(0, false)
	white2 := codes.EncodeRun(2, false)
	black2 := codes.EncodeRun(2, true)

	var cws []codes.Codeword
	cws = append(cws, eol)
	cws = append(cws, white2...)
	cws = append(cws, black2...)
	cws = append(cws, eol)
	// Every line begins White, so a line that opens Black starts with a
	// zero-length white run.
	cws = append(cws, white0...)
	cws = append(cws, black2...)
	cws = append(cws, white2...)
	cws = append(cws, eol)
	for i := 0; i < 6; i++ {
		cws = append(cws, eol)
	}
	data := packBits(cws...)

	var lines [][]int
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		lines = append(lines, append([]int(nil), transitions...))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, []int{2}, lines[0])
	require.Equal(t, []int{0, 2}, lines[1])
}

// packBitsExact is packBits without the 3 trailing zero-byte pad, so a
// stream ends exactly where its real codewords end: used to provoke a
// genuine short read.
func packBitsExact(cws ...codes.Codeword) []byte {
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
	return buf
}

func TestGroup3MissingInitialEOL(t *testing.T) {
	white4 := codes.EncodeRun(4, false)
	data := packBits(white4...) // no leading EOL

	called := false
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		called = true
		return nil
	})
	require.Error(t, err)
	var decodeErr *Error
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, MissingMarker, decodeErr.Kind)
	require.False(t, called)
}

func TestGroup3MissingLineEOL(t *testing.T) {
	eol := codes.EncodeEOL()
	white4 := codes.EncodeRun(4, false)
	var cws []codes.Codeword
	cws = append(cws, eol)
	cws = append(cws, white4...)
	// no terminating EOL after the line's content
	data := packBits(cws...)

	called := false
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		called = true
		return nil
	})
	require.Error(t, err)
	var decodeErr *Error
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, MissingMarker, decodeErr.Kind)
	require.False(t, called)
}

func TestGroup3InvalidRunCode(t *testing.T) {
	eol := codes.EncodeEOL()
	garbage := codes.Codeword{Value: 0, Bits: 13} // all-zero: no run table entry
	data := packBits(eol, garbage)

	called := false
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		called = true
		return nil
	})
	require.Error(t, err)
	var decodeErr *Error
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, InvalidCode, decodeErr.Kind)
	require.False(t, called)
}

func TestGroup3TruncatedStream(t *testing.T) {
	eol := codes.EncodeEOL()
	data := packBitsExact(eol) // nothing follows the initial EOL

	called := false
	d := NewGroup3Decoder(bytes.NewReader(data), 4)
	err := d.Decode(func(transitions []int) error {
		called = true
		return nil
	})
	require.Error(t, err)
	var decodeErr *Error
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, UnexpectedEnd, decodeErr.Kind)
	require.False(t, called)
}
