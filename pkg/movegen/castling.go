package movegen

import "github.com/herohde/chesscore/pkg/board"

// castlingMove builds the castling descriptor for the side to move's king
// going from "from" to "to" (to = from+2 for kingside, from-2 for
// queenside), or reports false if castling is not legal here.
// It requires: the castling bit set for the corresponding rook file, all
// squares between king and rook empty, and the king's origin, pass-through
// and destination squares all unattacked by the opponent.
func castlingMove(pos *board.Position, from, to board.Square) (board.Move, bool) {
	color := pos.Turn()
	rank := board.BackRank(color)
	kingHome := board.NewSquare(4, rank)
	if from != kingHome {
		return board.Move{}, false
	}

	kingside := to > from
	file := board.QueensideFile
	if kingside {
		file = board.KingsideFile
	}
	if !pos.Castling(color).Has(file) {
		return board.Move{}, false
	}

	rookFrom := board.NewSquare(file, rank)
	passThrough := board.Square((int(from) + int(to)) / 2)
	rookTo := passThrough

	lo, hi := from, rookFrom
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo + 1; sq < hi; sq++ {
		if pos.At(sq) != board.Empty {
			return board.Move{}, false
		}
	}

	opp := color.Opponent()
	for _, sq := range [3]board.Square{from, passThrough, to} {
		if pos.IsAttacked(sq, opp) {
			return board.Move{}, false
		}
	}

	kingPiece := pos.At(from)
	rookPiece := pos.At(rookFrom)

	return board.Move{
		Flags:           board.FlagCastling,
		From:            from,
		To:              to,
		MovingPiece:     kingPiece,
		FinalPiece:      kingPiece,
		OptionalPiece:   rookPiece,
		OptionalSquare1: rookFrom,
		OptionalSquare2: rookTo,
	}, true
}

// generateCastlingMoves tries both castling directions for the side to
// move, filtered by king safety like any other pseudo-legal move (the
// inner unattacked checks above already subsume that, but probeSafety is
// still run for symmetry with the rest of the generator).
func generateCastlingMoves(pos *board.Position) []board.Move {
	color := pos.Turn()
	rank := board.BackRank(color)
	from := board.NewSquare(4, rank)
	if king := pos.At(from); !king.IsPiece() || king.Kind() != board.King {
		return nil
	}

	var out []board.Move
	for _, to := range [2]board.Square{from + 2, from - 2} {
		if m, ok := castlingMove(pos, from, to); ok {
			out = append(out, m)
		}
	}
	return out
}
