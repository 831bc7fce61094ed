package movegen

import "github.com/herohde/chesscore/pkg/board"

// probeSafety tentatively applies m's board effect, checks whether mover's
// king is left attacked, then reverses every mutation before returning the
// answer, so pos is left exactly as it was found.
//
// This relies on single-threaded, exclusive-ownership access to pos; a
// concurrent caller would need to buffer the probe into a scratch copy
// instead.
func probeSafety(pos *board.Position, m board.Move, mover board.Color) bool {
	type saved struct {
		sq    board.Square
		piece board.Piece
	}
	var saves []saved
	set := func(sq board.Square, p board.Piece) {
		saves = append(saves, saved{sq, pos.At(sq)})
		_ = pos.SetSquare(sq, p)
	}

	set(m.From, board.Empty)
	if m.IsEnPassant() {
		set(m.OptionalSquare1, board.Empty)
	}
	set(m.To, m.FinalPiece)
	if m.IsCastling() {
		set(m.OptionalSquare1, board.Empty)
		set(m.OptionalSquare2, m.OptionalPiece)
	}

	kingSq := m.To
	if m.MovingPiece.Kind() != board.King {
		kingSq = pos.KingSquare(mover)
	}
	safe := kingSq != board.NoSquare && !pos.IsAttacked(kingSq, mover.Opponent())

	for i := len(saves) - 1; i >= 0; i-- {
		_ = pos.SetSquare(saves[i].sq, saves[i].piece)
	}
	return safe
}
