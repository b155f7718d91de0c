/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package ccittfax decodes bilevel raster images compressed under the
// ITU-T T.4 (Group 3, one-dimensional) and T.6 (Group 4, two-dimensional)
// facsimile coding schemes, the encoding used for monochrome image streams
// in TIFF and PDF documents.
//
// The decoder is a pure, streaming state machine: it consumes a byte
// source and, for each decoded scan line, reports the sorted column
// positions at which the line's color toggles. It owns no I/O and performs
// no per-bit allocation; materializing pixels from the reported
// transitions is left to the caller, via Materialize.
//
// Encoding, the uncompressed Mode H fallback, color images and any framing
// wrapper (TIFF strip layout, PDF filter plumbing) are out of scope: the
// byte source and the pixel consumer are external collaborators.
package ccittfax
