/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import "io"

// Options configures a decoder. It mirrors the handful of parameters a
// T.4/T.6 bit stream needs from its container (a PDF CCITTFaxDecode
// filter dictionary, or a TIFF strip's tag set) without binding to either
// format: callers extract these values from their own framing and pass
// them in directly.
type Options struct {
	// Columns is the image width in pixels. Required; there is no
	// in-stream encoding of width for either Group 3 or Group 4.
	Columns int

	// Rows is the number of coding lines to decode. Zero means the
	// stream's length is unknown in advance and decoding continues
	// until an EOFB marker is found (Group 4 only; Group 3 always
	// terminates on six consecutive EOLs regardless of Rows).
	Rows int

	// BlackIs1 records the container's pixel polarity: when false (the
	// TIFF/PDF default), White pixels encode as 1 and Black as 0. No
	// decoder or Materialize reads it; Materialize always reports semantic
	// Color values, and BlackIs1 only matters to callers translating those
	// into packed bits.
	BlackIs1 bool
}

// NewGroup3Decoder builds a Group3Decoder from opts, reading from src.
func (o Options) NewGroup3Decoder(src io.ByteReader) *Group3Decoder {
	return NewGroup3Decoder(src, o.Columns)
}

// NewGroup4Decoder builds a Group4Decoder from opts, reading from src.
func (o Options) NewGroup4Decoder(src io.ByteReader) *Group4Decoder {
	return NewGroup4Decoder(src, o.Columns, o.Rows)
}
