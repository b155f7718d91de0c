/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import "github.com/unidoc/ccittfax/internal/codes"

// ModeKind identifies one of the three T.6 two-dimensional coding modes, or
// one of the two stream-level sentinels (Extension, EOF) that share the
// same codeword space.
type ModeKind int

const (
	ModePass ModeKind = iota
	ModeVertical
	ModeHorizontal
	ModeExtension
	ModeEOF
)

// Mode is a decoded two-dimensional mode codeword. Delta is only meaningful
// when Kind is ModeVertical, and is in [-3, 3].
type Mode struct {
	Kind  ModeKind
	Delta int
}

func modeFromSymbol(sym codes.ModeSymbol) Mode {
	switch sym.Kind {
	case codes.ModePass:
		return Mode{Kind: ModePass}
	case codes.ModeVertical:
		return Mode{Kind: ModeVertical, Delta: int(sym.Delta)}
	case codes.ModeHorizontal:
		return Mode{Kind: ModeHorizontal}
	case codes.ModeExtension:
		return Mode{Kind: ModeExtension}
	default:
		return Mode{Kind: ModeEOF}
	}
}

// decodeMode reads one two-dimensional mode codeword from br.
func decodeMode(br bitPeeker) (Mode, error) {
	window, err := br.Peek(codes.WindowBits)
	if err != nil {
		return Mode{}, newError(UnexpectedEnd, "mode", err)
	}
	sym, bits, ok := codes.DecodeMode(window)
	if !ok {
		return Mode{}, newError(InvalidCode, "mode", nil)
	}
	br.Consume(bits)
	return modeFromSymbol(sym), nil
}
