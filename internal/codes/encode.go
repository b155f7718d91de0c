/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package codes

// Codeword is a codeword value together with its bit length, ready to be
// bit-packed MSB-first by a caller. It is the encoding-side counterpart of
// the decode tables: DecodeWhite/DecodeBlack/DecodeMode answer "what does
// this bit pattern mean", these answer "what bit pattern means this".
type Codeword struct {
	Value uint16
	Bits  int
}

func fromCode(c code) Codeword {
	return Codeword{Value: c.Code >> uint(16-c.BitsWritten), Bits: c.BitsWritten}
}

// EncodeRun returns the sequence of codewords (zero or more chained makeup
// codes followed by a single terminator) that together encode run pixels
// of the given color (black=true selects the black tables). It panics if
// run is negative; callers never pass a run longer than an image row.
func EncodeRun(run int, black bool) []Codeword {
	if run < 0 {
		panic("codes: negative run length")
	}
	terms, makeups := wTerms, wMakeups
	if black {
		terms, makeups = bTerms, bMakeups
	}

	var out []Codeword
	for run >= 64 {
		multiplier := run / 64
		switch {
		case multiplier > 40:
			out = append(out, fromCode(commonMakeups[2560]))
			run -= 2560
		case multiplier > 27:
			out = append(out, fromCode(commonMakeups[multiplier*64]))
			run -= multiplier * 64
		default:
			out = append(out, fromCode(makeups[multiplier*64]))
			run -= multiplier * 64
		}
	}
	out = append(out, fromCode(terms[run]))
	return out
}

// EncodeMode returns the codeword for a two-dimensional mode symbol.
func EncodeMode(sym ModeSymbol) Codeword {
	switch sym.Kind {
	case ModePass:
		return fromCode(p)
	case ModeHorizontal:
		return fromCode(h)
	case ModeVertical:
		switch sym.Delta {
		case 0:
			return fromCode(v0)
		case 1:
			return fromCode(v1r)
		case 2:
			return fromCode(v2r)
		case 3:
			return fromCode(v3r)
		case -1:
			return fromCode(v1l)
		case -2:
			return fromCode(v2l)
		case -3:
			return fromCode(v3l)
		}
	case ModeExtension:
		return fromCode(ext)
	case ModeEOF:
		return fromCode(eol)
	}
	return Codeword{}
}

// EncodeEOL returns the 12-bit EOL marker codeword.
func EncodeEOL() Codeword {
	return fromCode(eol)
}
