package othello

import "math/bits"

// wordCount is the number of 64-bit words needed for the largest supported
// board (12x12 = 144 bits).
const wordCount = 3

// boardWords holds the raw bits of one bitboard, least significant word first.
// Bit index = y*size + x, row-major from the top-left corner.
type boardWords [wordCount]uint64

func (w boardWords) and(o boardWords) boardWords {
	for i := range w {
		w[i] &= o[i]
	}
	return w
}

func (w boardWords) or(o boardWords) boardWords {
	for i := range w {
		w[i] |= o[i]
	}
	return w
}

func (w boardWords) xor(o boardWords) boardWords {
	for i := range w {
		w[i] ^= o[i]
	}
	return w
}

func (w boardWords) andNot(o boardWords) boardWords {
	for i := range w {
		w[i] &^= o[i]
	}
	return w
}

func (w boardWords) isZero() bool {
	return w == boardWords{}
}

func (w boardWords) popcount() int {
	n := 0
	for _, word := range w {
		n += bits.OnesCount64(word)
	}
	return n
}

// shl shifts the whole bit string left by n bits. Shift distances never
// exceed size+1, so n is always below 64.
func (w boardWords) shl(n uint) boardWords {
	var r boardWords
	for i := wordCount - 1; i > 0; i-- {
		r[i] = w[i]<<n | w[i-1]>>(64-n)
	}
	r[0] = w[0] << n
	return r
}

// shr shifts the whole bit string right by n bits, n below 64.
func (w boardWords) shr(n uint) boardWords {
	var r boardWords
	for i := 0; i < wordCount-1; i++ {
		r[i] = w[i]>>n | w[i+1]<<(64-n)
	}
	r[wordCount-1] = w[wordCount-1] >> n
	return r
}

func (w boardWords) test(idx int) bool {
	return w[idx>>6]&(1<<(uint(idx)&63)) != 0
}

func (w *boardWords) setBit(idx int) {
	w[idx>>6] |= 1 << (uint(idx) & 63)
}

func (w *boardWords) clearBit(idx int) {
	w[idx>>6] &^= 1 << (uint(idx) & 63)
}

// Direction is one of the eight compass directions a bitboard can be
// shifted in.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// directions lists all eight directions in a fixed order. Move generation
// iterates this slice, which keeps enumeration deterministic.
var directions = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// Per-size masks, indexed by board size. fullMasks[n] has the low n*n bits
// set; westMasks[n] excludes column 0 and eastMasks[n] excludes column n-1.
// The column masks keep horizontal and diagonal shifts from wrapping a bit
// from one row edge onto the opposite edge of the adjacent row.
var (
	fullMasks [MaxBoardSize + 1]boardWords
	westMasks [MaxBoardSize + 1]boardWords
	eastMasks [MaxBoardSize + 1]boardWords
)

func init() {
	for _, size := range boardSizes {
		n := int(size)
		for i := 0; i < n*n; i++ {
			fullMasks[n].setBit(i)
			if i%n != 0 {
				westMasks[n].setBit(i)
			}
			if i%n != n-1 {
				eastMasks[n].setBit(i)
			}
		}
	}
}

// Bitboard is an N x N grid of cells packed one bit per cell. Boolean
// operations return new values; Set mutates in place. All operations keep
// the invariant that no bit outside the N*N square is ever set.
type Bitboard struct {
	size int
	bits boardWords
}

// NewBitboard returns a zero-filled bitboard of the given size.
func NewBitboard(size BoardSize) Bitboard {
	return Bitboard{size: int(size)}
}

// BitboardFromWords builds a bitboard from raw 64-bit words, least
// significant first. Bits beyond the board square are masked off. Intended
// for tests and fixtures with known bit patterns.
func BitboardFromWords(size BoardSize, w ...uint64) Bitboard {
	bb := Bitboard{size: int(size)}
	for i := 0; i < len(w) && i < wordCount; i++ {
		bb.bits[i] = w[i]
	}
	bb.bits = bb.bits.and(fullMasks[bb.size])
	return bb
}

// Size returns the side length of the board.
func (bb Bitboard) Size() int { return bb.size }

// Words returns the raw bit words, least significant first.
func (bb Bitboard) Words() [wordCount]uint64 { return bb.bits }

func (bb Bitboard) index(x, y int) int {
	if x < 0 || x >= bb.size || y < 0 || y >= bb.size {
		panic("othello: bitboard coordinates out of range")
	}
	return y*bb.size + x
}

// Get reports whether the bit at (x, y) is set. Panics if the coordinates
// are outside the board.
func (bb Bitboard) Get(x, y int) bool {
	return bb.bits.test(bb.index(x, y))
}

// Set sets or clears the bit at (x, y). Panics if the coordinates are
// outside the board.
func (bb *Bitboard) Set(x, y int, value bool) {
	idx := bb.index(x, y)
	if value {
		bb.bits.setBit(idx)
	} else {
		bb.bits.clearBit(idx)
	}
}

func (bb Bitboard) sameSize(o Bitboard) {
	if bb.size != o.size {
		panic("othello: bitboard size mismatch")
	}
}

// And returns the intersection of two bitboards of identical size.
func (bb Bitboard) And(o Bitboard) Bitboard {
	bb.sameSize(o)
	return Bitboard{size: bb.size, bits: bb.bits.and(o.bits)}
}

// Or returns the union of two bitboards of identical size.
func (bb Bitboard) Or(o Bitboard) Bitboard {
	bb.sameSize(o)
	return Bitboard{size: bb.size, bits: bb.bits.or(o.bits)}
}

// Xor returns the symmetric difference of two bitboards of identical size.
func (bb Bitboard) Xor(o Bitboard) Bitboard {
	bb.sameSize(o)
	return Bitboard{size: bb.size, bits: bb.bits.xor(o.bits)}
}

// AndNot returns the cells of bb that are not set in o.
func (bb Bitboard) AndNot(o Bitboard) Bitboard {
	bb.sameSize(o)
	return Bitboard{size: bb.size, bits: bb.bits.andNot(o.bits)}
}

// IsZero reports whether no bit is set.
func (bb Bitboard) IsZero() bool { return bb.bits.isZero() }

// Equal reports bit-for-bit equality between two bitboards of the same size.
func (bb Bitboard) Equal(o Bitboard) bool {
	return bb.size == o.size && bb.bits == o.bits
}

// Popcount returns the number of set bits.
func (bb Bitboard) Popcount() int { return bb.bits.popcount() }

// Shift moves every bit one cell in the given direction. Bits shifted off
// the board vanish; the west/east column masks stop bits from wrapping
// across row boundaries.
func (bb Bitboard) Shift(d Direction) Bitboard {
	n := uint(bb.size)
	var r boardWords
	switch d {
	case North:
		r = bb.bits.shr(n)
	case South:
		r = bb.bits.shl(n)
	case East:
		r = bb.bits.shl(1).and(westMasks[bb.size])
	case West:
		r = bb.bits.shr(1).and(eastMasks[bb.size])
	case NorthEast:
		r = bb.bits.shr(n - 1).and(westMasks[bb.size])
	case NorthWest:
		r = bb.bits.shr(n + 1).and(eastMasks[bb.size])
	case SouthEast:
		r = bb.bits.shl(n + 1).and(westMasks[bb.size])
	case SouthWest:
		r = bb.bits.shl(n - 1).and(eastMasks[bb.size])
	default:
		panic("othello: unknown shift direction")
	}
	return Bitboard{size: bb.size, bits: r.and(fullMasks[bb.size])}
}

// Coordinates returns the coordinates of every set bit in ascending bit
// index order (left to right, top to bottom).
func (bb Bitboard) Coordinates() []Move {
	moves := make([]Move, 0, bb.Popcount())
	for i, word := range bb.bits {
		for word != 0 {
			idx := i*64 + bits.TrailingZeros64(word)
			moves = append(moves, Move{X: idx % bb.size, Y: idx / bb.size})
			word &= word - 1
		}
	}
	return moves
}

// String renders the bitboard as a grid, one row per line, with "·" for set
// bits and a space for clear ones. Debug helper; stable for snapshots.
func (bb Bitboard) String() string {
	buf := make([]byte, 0, bb.size*(bb.size*4+1))
	for y := 0; y < bb.size; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, '|')
		for x := 0; x < bb.size; x++ {
			if bb.Get(x, y) {
				buf = append(buf, "·"...)
			} else {
				buf = append(buf, ' ')
			}
			buf = append(buf, '|')
		}
	}
	return string(buf)
}
