package board

// attackDirections enumerates, per colored piece, the 0x88 offsets such
// that target+offset names a square the piece could attack FROM. For
// sliders the offset is walked as a ray until blocked or off-board; for
// knights and kings it is a single step. Non-pawn entries are identical for
// both colors; pawns are color-dependent, which is why the table is
// indexed by colored piece rather than by kind.
var attackDirections [NumPieces][]int

// slidingDirections marks which colored pieces walk rays instead of single
// steps.
var slidingDirections [NumPieces]bool

func init() {
	king := []int{-17, -16, -15, -1, 1, 15, 16, 17}
	knight := []int{-33, -31, -18, -14, 14, 18, 31, 33}
	rook := []int{-16, -1, 1, 16}
	bishop := []int{-17, -15, 15, 17}
	queen := append(append([]int{}, rook...), bishop...)

	for c := Color(0); c < NumColors; c++ {
		attackDirections[NewPiece(King, c)] = king
		attackDirections[NewPiece(Knight, c)] = knight
		attackDirections[NewPiece(Rook, c)] = rook
		attackDirections[NewPiece(Bishop, c)] = bishop
		attackDirections[NewPiece(Queen, c)] = queen
		slidingDirections[NewPiece(Rook, c)] = true
		slidingDirections[NewPiece(Bishop, c)] = true
		slidingDirections[NewPiece(Queen, c)] = true
	}

	// A White pawn on s attacks s+15 and s+17, so from the target square the
	// attacking pawn sits at target-15 or target-17.
	attackDirections[NewPiece(Pawn, White)] = []int{-15, -17}
	// A Black pawn on s attacks s-15 and s-17.
	attackDirections[NewPiece(Pawn, Black)] = []int{15, 17}
}

// IsAttacked reports whether sq is attacked by any piece of color byColor.
func (p *Position) IsAttacked(sq Square, byColor Color) bool {
	for k := Kind(0); k < NumKinds; k++ {
		cp := NewPiece(k, byColor)
		for _, dir := range attackDirections[cp] {
			if p.rayHits(sq, dir, cp, slidingDirections[cp]) != NoSquare {
				return true
			}
		}
	}
	return false
}

// AttackersOf returns every square occupied by byPiece that attacks sq. It
// does not require pos to be a legal position, since it is also used for SAN
// disambiguation and strict-mode verification against pseudo-legal
// candidates.
func (p *Position) AttackersOf(sq Square, byPiece Piece) []Square {
	var out []Square
	for _, dir := range attackDirections[byPiece] {
		if from := p.rayHits(sq, dir, byPiece, slidingDirections[byPiece]); from != NoSquare {
			out = append(out, from)
		}
	}
	return out
}

// rayHits walks from sq in the given direction (one step, or a full ray if
// sliding) and returns the square of the first occupied cell encountered, if
// it holds exactly cp, else NoSquare.
func (p *Position) rayHits(sq Square, dir int, cp Piece, sliding bool) Square {
	cur := sq
	for {
		next := cur + Square(dir)
		if !next.IsValid() {
			return NoSquare
		}
		cur = next
		occ := p.At(cur)
		if occ == Empty {
			if sliding {
				continue
			}
			return NoSquare
		}
		if occ == cp {
			return cur
		}
		return NoSquare
	}
}

// IsChecked reports whether color c's king is attacked. Requires the king
// cache, which KingSquare computes lazily.
func (p *Position) IsChecked(c Color) bool {
	king := p.KingSquare(c)
	if king == NoSquare {
		return false
	}
	return p.IsAttacked(king, c.Opponent())
}
