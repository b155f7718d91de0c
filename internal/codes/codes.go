/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package codes

// ModeKind identifies which of the T.6 two-dimensional coding modes a mode
// codeword decoded to.
type ModeKind uint8

// The two-dimensional coding modes, plus the in-band end markers that share
// the mode codeword space.
const (
	ModePass ModeKind = iota
	ModeVertical
	ModeHorizontal
	ModeExtension
	ModeEOF
)

// ModeSymbol is a decoded two-dimensional mode codeword. Delta is only
// meaningful when Kind is ModeVertical, and holds the signed displacement
// in [-3, 3].
type ModeSymbol struct {
	Kind  ModeKind
	Delta int8
}

// runEntry is one slot of a flat prefix-code lookup table: the run length a
// codeword decodes to, and how many bits of the window it consumes. bits==0
// marks an unfilled (invalid) slot.
type runEntry struct {
	run  int32
	bits uint8
}

type modeEntry struct {
	sym  ModeSymbol
	bits uint8
}

// windowBits is the width of the lookup tables: the longest T.4/T.6 codeword
// (the makeup codes above 512, and the extended EOF sentinel) is 13 bits.
const windowBits = 13
const windowSize = 1 << windowBits

// WindowBits is the number of bits callers must peek from the bit stream
// before consulting DecodeWhite, DecodeBlack or DecodeMode: the longest
// codeword in any of the three tables.
const WindowBits = windowBits

var (
	whiteTable [windowSize]runEntry
	blackTable [windowSize]runEntry
	modeTable  [windowSize]modeEntry
)

func fillRuns(table *[windowSize]runEntry, runs map[int]code) {
	for run, c := range runs {
		fillOne(table, c, func(e *runEntry) { *e = runEntry{run: int32(run), bits: uint8(c.BitsWritten)} })
	}
}

func fillOne(table *[windowSize]runEntry, c code, set func(*runEntry)) {
	value := int(c.Code >> uint(16-c.BitsWritten))
	shift := windowBits - c.BitsWritten
	start := value << uint(shift)
	end := start + 1<<uint(shift)
	for i := start; i < end; i++ {
		set(&table[i])
	}
}

func fillMode(table *[windowSize]modeEntry, c code, sym ModeSymbol) {
	value := int(c.Code >> uint(16-c.BitsWritten))
	shift := windowBits - c.BitsWritten
	start := value << uint(shift)
	end := start + 1<<uint(shift)
	for i := start; i < end; i++ {
		table[i] = modeEntry{sym: sym, bits: uint8(c.BitsWritten)}
	}
}

// ext is the 2-D extension codeword (0000001, 7 bits). ModeEOF reuses the
// plain 12-bit eol pattern: decoding the first half of an EOFB marker as a
// mode codeword yields EOF, after which the caller still expects one more
// bare EOL to consume the second half (see Group4Decoder.expectEOFBTail).
var ext = code{Code: 1 << 9, BitsWritten: 7}

func init() {
	initTables()

	fillRuns(&whiteTable, wTerms)
	fillRuns(&whiteTable, wMakeups)
	fillRuns(&whiteTable, commonMakeups)

	fillRuns(&blackTable, bTerms)
	fillRuns(&blackTable, bMakeups)
	fillRuns(&blackTable, commonMakeups)

	fillMode(&modeTable, p, ModeSymbol{Kind: ModePass})
	fillMode(&modeTable, h, ModeSymbol{Kind: ModeHorizontal})
	fillMode(&modeTable, v0, ModeSymbol{Kind: ModeVertical, Delta: 0})
	fillMode(&modeTable, v1r, ModeSymbol{Kind: ModeVertical, Delta: 1})
	fillMode(&modeTable, v2r, ModeSymbol{Kind: ModeVertical, Delta: 2})
	fillMode(&modeTable, v3r, ModeSymbol{Kind: ModeVertical, Delta: 3})
	fillMode(&modeTable, v1l, ModeSymbol{Kind: ModeVertical, Delta: -1})
	fillMode(&modeTable, v2l, ModeSymbol{Kind: ModeVertical, Delta: -2})
	fillMode(&modeTable, v3l, ModeSymbol{Kind: ModeVertical, Delta: -3})
	fillMode(&modeTable, ext, ModeSymbol{Kind: ModeExtension})
	fillMode(&modeTable, eol, ModeSymbol{Kind: ModeEOF})
}

// DecodeWhite matches the longest white run-length prefix against the top
// bits of window (a windowBits-wide MSB-aligned peek, e.g. from
// bitio.Reader.Peek(windowBits)). It reports the decoded run (a terminator
// in [0,63] or a makeup, a multiple of 64) and how many bits of window the
// codeword consumed. ok is false if no table entry matches the window.
func DecodeWhite(window uint16) (run int, bits int, ok bool) {
	return decodeRun(&whiteTable, window)
}

// DecodeBlack is DecodeWhite for the black run-length table.
func DecodeBlack(window uint16) (run int, bits int, ok bool) {
	return decodeRun(&blackTable, window)
}

func decodeRun(table *[windowSize]runEntry, window uint16) (int, int, bool) {
	e := table[window&(windowSize-1)]
	if e.bits == 0 {
		return 0, 0, false
	}
	return int(e.run), int(e.bits), true
}

// DecodeMode matches the longest two-dimensional mode codeword prefix
// against the top bits of window.
func DecodeMode(window uint16) (sym ModeSymbol, bits int, ok bool) {
	e := modeTable[window&(windowSize-1)]
	if e.bits == 0 {
		return ModeSymbol{}, 0, false
	}
	return e.sym, int(e.bits), true
}

// EOLCodeword reports the canonical EOL bit pattern (0000 0000 0001) and its
// length in bits, for callers that need to match it directly (Group3 line
// and page synchronization, and the second half of an EOFB marker).
func EOLCodeword() (value uint16, bits int) {
	return eol.Code >> uint(16-eol.BitsWritten), eol.BitsWritten
}
