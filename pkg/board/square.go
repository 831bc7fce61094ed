package board

import "fmt"

// Square is a 0x88 board index: bit 3 (0x08) marks the unused half of each
// rank pair, so off-board detection is a single bitwise AND. Valid squares
// satisfy sq&0x88==0 and lie in [0,128). int16 because int8 tops out at 127
// and wraps negative exactly at NumBoardCells, which would make every
// "< NumBoardCells" scan loop forever.
type Square int16

// offBoard is the bit pattern that, when set, means sq is not a real square.
const offBoard = 0x88

// NumBoardCells is the size of the 0x88 array, including the unused half.
const NumBoardCells = 128

// NewSquare builds a square from a 0-based file and rank (both in [0,7]).
// Rank 0 is White's first rank; file 0 is the a-file.
func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// IsValid reports whether sq is an on-board square.
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq)&offBoard == 0
}

// Rank returns the 0-based rank (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// File returns the 0-based file (0 = a-file).
func (sq Square) File() int {
	return int(sq) & 7
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return fmt.Sprintf("<invalid:%d>", sq)
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// maxDisplacement is the largest |to-from| between two on-board squares.
// displacementIndex maps a (to-from) displacement into an index in
// [0, 2*maxDisplacement], the indexing used by the move-legality
// adjudicator's constant-time displacement table.
const maxDisplacement = 119

func displacementIndex(from, to Square) int {
	return int(to) - int(from) + maxDisplacement
}
