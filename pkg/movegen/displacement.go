// Package movegen is the hub of the engine: pseudo-legal move generation,
// king-safety filtering (a reversible probe), castling rules, null moves,
// in-place apply (Play has no inverse), the legality adjudicator for a
// single proposed move, and the promotion factory. It depends on package board for the data model and attack
// primitives.
package movegen

import "github.com/herohde/chesscore/pkg/board"

// pieceMask is a bitset over the 12 colored-piece codes.
type pieceMask uint16

func (m pieceMask) has(p board.Piece) bool {
	return m&(1<<uint(p)) != 0
}

func (m *pieceMask) set(p board.Piece) {
	*m |= 1 << uint(p)
}

// displacementTableSize covers every value of to-from+119 for on-board
// squares (0x00 through 0x77).
const displacementTableSize = 2*119 + 1

// displacementLookup is indexed by
// to-from+119, bit cp set iff colored piece cp can in principle displace by
// that offset, ignoring occupancy. Two cases are deliberately excluded here
// and handled as fallbacks by resolvePseudoLegal: a
// pawn's two-square home-rank advance, and a king's two-square castling
// hop.
var displacementLookup [displacementTableSize]pieceMask

// Direction tables shared with the move generator (movegen.go), which walks
// these same offsets to enumerate destination candidates per piece kind
// instead of re-deriving them.
var (
	knightSteps = []int{-33, -31, -18, -14, 14, 18, 31, 33}
	kingSteps   = []int{-17, -16, -15, -1, 1, 15, 16, 17}
	rookRays    = []int{-16, -1, 1, 16}
	bishopRays  = []int{-17, -15, 15, 17}
	queenRays   = append(append([]int{}, rookRays...), bishopRays...)
)

func displacementIndex(from, to board.Square) int {
	return int(to) - int(from) + 119
}

func init() {
	for from := board.Square(0); int(from) < board.NumBoardCells; from++ {
		if !from.IsValid() {
			continue
		}
		for _, c := range [board.NumColors]board.Color{board.White, board.Black} {
			markSteps(from, knightSteps, board.NewPiece(board.Knight, c))
			markSteps(from, kingSteps, board.NewPiece(board.King, c))
			markRays(from, rookRays, board.NewPiece(board.Rook, c))
			markRays(from, bishopRays, board.NewPiece(board.Bishop, c))
			markRays(from, queenRays, board.NewPiece(board.Queen, c))
		}

		// Pawn: one square forward and the two forward-diagonal captures.
		// The two-square home-rank advance is handled as a fallback.
		markSteps(from, []int{16}, board.NewPiece(board.Pawn, board.White))
		markSteps(from, []int{15, 17}, board.NewPiece(board.Pawn, board.White))
		markSteps(from, []int{-16}, board.NewPiece(board.Pawn, board.Black))
		markSteps(from, []int{-15, -17}, board.NewPiece(board.Pawn, board.Black))
	}
}

func markSteps(from board.Square, steps []int, cp board.Piece) {
	for _, d := range steps {
		to := from + board.Square(d)
		if !to.IsValid() {
			continue
		}
		displacementLookup[displacementIndex(from, to)].set(cp)
	}
}

func markRays(from board.Square, dirs []int, cp board.Piece) {
	for _, d := range dirs {
		to := from
		for {
			next := to + board.Square(d)
			if !next.IsValid() {
				break
			}
			to = next
			displacementLookup[displacementIndex(from, to)].set(cp)
		}
	}
}

// isDisplacementAdmissible reports whether cp can geometrically move from
// "from" to "to" by the ordinary displacement table, ignoring the two
// fallback cases (pawn double-push, castling) which callers check
// separately.
func isDisplacementAdmissible(from, to board.Square, cp board.Piece) bool {
	idx := displacementIndex(from, to)
	if idx < 0 || idx >= displacementTableSize {
		return false
	}
	return displacementLookup[idx].has(cp)
}
