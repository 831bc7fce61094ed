package board

// IsLegal refreshes the king cache and reports whether the position
// satisfies the structural invariants: exactly one king per
// color, no pawn on the back ranks, the side not to move is not attacked on
// its king square, every set castling bit has its rook and king on their
// home squares, and the en-passant invariant holds when a file is set. The
// result is cached in p.legal until the next mutation.
func (p *Position) IsLegal() bool {
	if p.legal != legalUnknown {
		return p.legal == legalYes
	}
	ok := p.checkLegal()
	if ok {
		p.legal = legalYes
	} else {
		p.legal = legalNo
	}
	return ok
}

func (p *Position) checkLegal() bool {
	p.kingCacheValid = false
	p.ensureKingCache()

	if p.kingSquare[White] == NoSquare || p.kingSquare[Black] == NoSquare {
		return false
	}
	if p.countKings(White) != 1 || p.countKings(Black) != 1 {
		return false
	}
	for file := 0; file < 8; file++ {
		if piece := p.At(NewSquare(file, 0)); piece.IsPiece() && piece.Kind() == Pawn {
			return false
		}
		if piece := p.At(NewSquare(file, 7)); piece.IsPiece() && piece.Kind() == Pawn {
			return false
		}
	}

	notToMove := p.turn.Opponent()
	if p.IsAttacked(p.kingSquare[notToMove], p.turn) {
		return false
	}

	for _, c := range [NumColors]Color{White, Black} {
		rank := BackRank(c)
		kingHome := NewSquare(4, rank)
		if p.kingSquare[c] != kingHome && p.castling[c] != 0 {
			return false
		}
		for file := 0; file < 8; file++ {
			if !p.castling[c].Has(file) {
				continue
			}
			rookSq := NewSquare(file, rank)
			piece := p.At(rookSq)
			if !piece.IsPiece() || piece.Kind() != Rook || piece.Color() != c {
				return false
			}
		}
	}

	if file, ok := p.EnPassantFile(); ok {
		skipped := NewSquare(file, 5-3*int(p.turn))
		pawnSq := NewSquare(file, 4-int(p.turn))
		vacated := NewSquare(file, 6-5*int(p.turn))
		if p.At(skipped) != Empty {
			return false
		}
		pawn := p.At(pawnSq)
		if !pawn.IsPiece() || pawn.Kind() != Pawn || pawn.Color() == p.turn {
			return false
		}
		if p.At(vacated) != Empty {
			return false
		}
	}

	return true
}

func (p *Position) countKings(c Color) int {
	n := 0
	for sq := Square(0); int(sq) < NumBoardCells; sq++ {
		if !sq.IsValid() {
			continue
		}
		piece := p.cells[sq]
		if piece.IsPiece() && piece.Kind() == King && piece.Color() == c {
			n++
		}
	}
	return n
}
