/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/ccitt"

	"github.com/unidoc/ccittfax/internal/fixtures"
)

// packRow packs one row of Color values into BlackIs1=false bits (0=black,
// 1=white), MSB first, matching the PDF/TIFF CCITTFaxDecode default and the
// golang.org/x/image/ccitt.Reader output format.
func packRow(row []Color) []byte {
	out := make([]byte, (len(row)+7)/8)
	for i, c := range row {
		if c == White {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// TestOracleAgainstXImageCCITT cross-checks this package's Group 4 decoder
// against the standard library's golang.org/x/image/ccitt implementation on
// the same bit stream, produced by the internal/fixtures test encoder.
func TestOracleAgainstXImageCCITT(t *testing.T) {
	width := 24
	rows := [][]Color{
		Materialize([]int{0, 3, 10}, width),
		Materialize(nil, width),
		Materialize([]int{1, 2, 3, 4, 23}, width),
		Materialize([]int{12}, width),
	}
	data := fixtures.EncodeGroup4(rows, width)

	var decoded [][]Color
	d := NewGroup4Decoder(bytes.NewReader(data), width, len(rows))
	err := d.Decode(func(transitions []int) error {
		decoded = append(decoded, Materialize(transitions, width))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, rows, decoded)

	var ours []byte
	for _, row := range decoded {
		ours = append(ours, packRow(row)...)
	}

	r := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, ccitt.Group4, width, len(rows), &ccitt.Options{})
	oracle, err := io.ReadAll(r)
	require.NoError(t, err)

	if diff := cmp.Diff(oracle, ours); diff != "" {
		t.Errorf("golang.org/x/image/ccitt decoded different pixels: %s", diff)
	}
}
