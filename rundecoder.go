/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import "github.com/unidoc/ccittfax/internal/codes"

// decodeRun decodes one run length of color from br: it repeatedly
// consults the white or black code table, summing the run length each
// codeword reports, until a terminating code (<64) is found. Makeup
// codes (multiples of 64, including the common codes above 1728 that are
// shared between colors) may chain arbitrarily before the terminator.
func decodeRun(br bitPeeker, color Color) (int, error) {
	decode := codes.DecodeWhite
	if color == Black {
		decode = codes.DecodeBlack
	}

	total := 0
	for {
		window, err := br.Peek(codes.WindowBits)
		if err != nil {
			return 0, newError(UnexpectedEnd, "run", err)
		}
		run, bits, ok := decode(window)
		if !ok {
			return 0, newError(InvalidCode, "run", nil)
		}
		br.Consume(bits)
		total += run
		if run < 64 {
			return total, nil
		}
	}
}
