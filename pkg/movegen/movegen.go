package movegen

import "github.com/herohde/chesscore/pkg/board"

// yieldFunc receives each pseudo-legal-then-king-safe move in turn. It
// returns false to stop generation early (used by HasMove to short-circuit
// on the first accepted move).
type yieldFunc func(board.Move) bool

// GenerateMoves returns every legal move for the side to move, in the order
// the generator produces them: source square ascending by 0x88 index, then
// per-piece direction order. An illegal position yields no moves.
func GenerateMoves(pos *board.Position) []board.Move {
	var out []board.Move
	generate(pos, func(m board.Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// HasMove reports whether the side to move has at least one legal move,
// short-circuiting generation at the first hit.
func HasMove(pos *board.Position) bool {
	found := false
	generate(pos, func(board.Move) bool {
		found = true
		return false
	})
	return found
}

// IsCheck reports whether the side to move is in check.
func IsCheck(pos *board.Position) bool {
	return pos.IsLegal() && pos.IsChecked(pos.Turn())
}

// IsCheckmate reports check with no legal reply.
func IsCheckmate(pos *board.Position) bool {
	return pos.IsLegal() && pos.IsChecked(pos.Turn()) && !HasMove(pos)
}

// IsStalemate reports no check and no legal move.
func IsStalemate(pos *board.Position) bool {
	return pos.IsLegal() && !pos.IsChecked(pos.Turn()) && !HasMove(pos)
}

// generate walks the 64 real squares via the classic 0x88 increment
// (from += (from&7)==7 ? 9 : 1), emitting every pseudo-legal move for a
// piece of the side to move, each filtered by the reversible king-safety
// probe.
func generate(pos *board.Position, yield yieldFunc) {
	if !pos.IsLegal() {
		return
	}
	turn := pos.Turn()

	for from := board.Square(0); int(from) < board.NumBoardCells; {
		piece := pos.At(from)
		if !piece.IsPiece() || piece.Color() != turn {
			from = nextSquare(from)
			continue
		}

		if !generatePieceMoves(pos, from, piece, yield) {
			return
		}
		from = nextSquare(from)
	}
}

func nextSquare(from board.Square) board.Square {
	if from.File() == 7 {
		return from + 9
	}
	return from + 1
}

// generatePieceMoves emits every pseudo-legal, king-safe move for the piece
// on "from". Returns false if the caller's yield asked to stop.
func generatePieceMoves(pos *board.Position, from board.Square, piece board.Piece, yield yieldFunc) bool {
	switch piece.Kind() {
	case board.Pawn:
		return generatePawnMoves(pos, from, piece, yield)
	case board.Knight:
		return generateStepMoves(pos, from, piece, knightSteps, yield)
	case board.King:
		if !generateStepMoves(pos, from, piece, kingSteps, yield) {
			return false
		}
		if pos.Castling(piece.Color()) == 0 {
			return true
		}
		for _, m := range generateCastlingMoves(pos) {
			if probeSafety(pos, m, piece.Color()) {
				if !yield(m) {
					return false
				}
			}
		}
		return true
	case board.Rook:
		return generateSliderMoves(pos, from, piece, rookRays, yield)
	case board.Bishop:
		return generateSliderMoves(pos, from, piece, bishopRays, yield)
	case board.Queen:
		return generateSliderMoves(pos, from, piece, queenRays, yield)
	default:
		return true
	}
}

func emit(pos *board.Position, from, to board.Square, piece board.Piece, yield yieldFunc) bool {
	m, ok := resolveOrdinaryMove(pos, from, to, piece)
	if !ok || !probeSafety(pos, m, piece.Color()) {
		return true
	}
	return yield(m)
}

func generateStepMoves(pos *board.Position, from board.Square, piece board.Piece, steps []int, yield yieldFunc) bool {
	for _, d := range steps {
		to := from + board.Square(d)
		if !to.IsValid() {
			continue
		}
		if !emit(pos, from, to, piece, yield) {
			return false
		}
	}
	return true
}

func generateSliderMoves(pos *board.Position, from board.Square, piece board.Piece, dirs []int, yield yieldFunc) bool {
	for _, d := range dirs {
		to := from
		for {
			next := to + board.Square(d)
			if !next.IsValid() {
				break
			}
			to = next
			occ := pos.At(to)
			if !emit(pos, from, to, piece, yield) {
				return false
			}
			if occ != board.Empty {
				break
			}
		}
	}
	return true
}

// generatePawnMoves emits diagonal captures (including en passant), the
// single and (from the home rank) double forward advance, expanding any
// move landing on the last rank into the four promotion variants.
func generatePawnMoves(pos *board.Position, from board.Square, piece board.Piece, yield yieldFunc) bool {
	turn := piece.Color()
	fwd := 16
	diag := [2]int{15, 17}
	homeRank, lastRank := 1, 7
	if turn == board.Black {
		fwd = -16
		diag = [2]int{-15, -17}
		homeRank, lastRank = 6, 0
	}

	for _, d := range diag {
		to := from + board.Square(d)
		if !to.IsValid() {
			continue
		}
		dest := pos.At(to)
		var m board.Move
		var ok bool
		switch {
		case dest.IsPiece() && dest.Color() != turn:
			m, ok = resolvePawnSingleMove(pos, from, to, piece)
		case dest == board.Empty:
			if epSq, has := pos.EnPassantSquare(); has && epSq == to {
				m, ok = resolvePawnSingleMove(pos, from, to, piece)
			}
		}
		if ok {
			if !yieldPawnMove(pos, m, to, lastRank, turn, yield) {
				return false
			}
		}
	}

	oneStep := from + board.Square(fwd)
	if oneStep.IsValid() && pos.At(oneStep) == board.Empty {
		m, _ := resolvePawnSingleMove(pos, from, oneStep, piece)
		if !yieldPawnMove(pos, m, oneStep, lastRank, turn, yield) {
			return false
		}

		if from.Rank() == homeRank {
			twoStep := oneStep + board.Square(fwd)
			if twoStep.IsValid() && pos.At(twoStep) == board.Empty {
				m2 := board.Move{From: from, To: twoStep, MovingPiece: piece, FinalPiece: piece,
					OptionalSquare1: board.NoSquare, OptionalSquare2: board.NoSquare}
				if probeSafety(pos, m2, turn) {
					if !yield(m2) {
						return false
					}
				}
			}
		}
	}

	return true
}

// yieldPawnMove checks king safety once and then yields either the plain
// move or its four promotion expansions.
func yieldPawnMove(pos *board.Position, m board.Move, to board.Square, lastRank int, turn board.Color, yield yieldFunc) bool {
	if !probeSafety(pos, m, turn) {
		return true
	}
	if to.Rank() != lastRank {
		return yield(m)
	}
	for _, k := range [4]board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight} {
		pm := m
		pm.Flags |= board.FlagPromotion
		pm.FinalPiece = board.NewPiece(k, turn)
		if !yield(pm) {
			return false
		}
	}
	return true
}
