package movegen

import "github.com/herohde/chesscore/pkg/board"

// Play applies m to pos in place. m must have been produced by this package
// for this position; behavior on a foreign descriptor is undefined. The
// legality cache is preserved as
// "legal" afterwards, since descriptors only ever come from the generator —
// every mutation below still goes through Position's public setters, which
// would otherwise invalidate it, so Play restores it explicitly at the end.
func Play(pos *board.Position, m board.Move) {
	turn := pos.Turn()

	_ = pos.SetSquare(m.From, board.Empty)
	if m.IsEnPassant() {
		_ = pos.SetSquare(m.OptionalSquare1, board.Empty)
	}
	_ = pos.SetSquare(m.To, m.FinalPiece)
	if m.IsCastling() {
		_ = pos.SetSquare(m.OptionalSquare1, board.Empty)
		_ = pos.SetSquare(m.OptionalSquare2, m.OptionalPiece)
	}

	updateCastlingRights(pos, m, turn)
	updateEnPassant(pos, m, turn)

	_ = pos.SetTurn(turn.Opponent())
	pos.MarkLegal()
}

// updateCastlingRights clears rights invalidated by this move: a king move
// clears both of the mover's bits; a move touching either back-rank file
// that still carries a bit (the mover's own rook moving away, or an
// opponent's rook being captured on its home square) clears that bit.
func updateCastlingRights(pos *board.Position, m board.Move, turn board.Color) {
	if m.MovingPiece.Kind() == board.King {
		_ = pos.SetCastling(turn, 0)
	}

	for _, c := range [board.NumColors]board.Color{board.White, board.Black} {
		rank := board.BackRank(c)
		rights := pos.Castling(c)
		if rights == 0 {
			continue
		}
		for _, file := range [2]int{board.QueensideFile, board.KingsideFile} {
			if !rights.Has(file) {
				continue
			}
			sq := board.NewSquare(file, rank)
			if m.From == sq || m.To == sq {
				rights = rights.Without(file)
			}
		}
		if rights != pos.Castling(c) {
			_ = pos.SetCastling(c, rights)
		}
	}
}

// updateEnPassant stamps the file of a just-played two-square pawn advance
// when an opposing pawn stands adjacent to capture it, and clears the field
// otherwise.
func updateEnPassant(pos *board.Position, m board.Move, turn board.Color) {
	if m.MovingPiece.Kind() != board.Pawn || abs(int(m.To)-int(m.From)) != 32 {
		_ = pos.SetEnPassantFile(-1)
		return
	}

	file := m.To.File()
	opp := turn.Opponent()
	adjacent := false
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		sq := board.NewSquare(f, m.To.Rank())
		if piece := pos.At(sq); piece.IsPiece() && piece.Kind() == board.Pawn && piece.Color() == opp {
			adjacent = true
		}
	}
	if adjacent {
		_ = pos.SetEnPassantFile(file)
	} else {
		_ = pos.SetEnPassantFile(-1)
	}
}

// PlayNull toggles the side to move and clears the en-passant file without
// moving any piece. Callers must first confirm with
// IsNullMoveLegal.
func PlayNull(pos *board.Position) {
	turn := pos.Turn()
	_ = pos.SetEnPassantFile(-1)
	_ = pos.SetTurn(turn.Opponent())
	pos.MarkLegal()
}

// IsNullMoveLegal reports whether a null move may be played: the position
// must be legal and the side to move must not be in check.
func IsNullMoveLegal(pos *board.Position) bool {
	return pos.IsLegal() && !pos.IsChecked(pos.Turn())
}
