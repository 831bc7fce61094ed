package board

import "github.com/seekerror/stdlib/pkg/lang"

// legalState is a tri-state cache: unknown, legal or illegal. Modeled as an
// enum rather than a nullable bool, so a stale cache can never be silently
// mistaken for "definitely legal".
type legalState uint8

const (
	legalUnknown legalState = iota
	legalYes
	legalNo
)

// Position is the central aggregate: a 0x88 board, side to move, castling
// rights, en-passant file and two small caches. It has exclusive-
// ownership, single-threaded semantics: callers must not share one
// Position across goroutines concurrently, and Copy produces a fully
// independent clone.
type Position struct {
	cells    [NumBoardCells]Piece
	turn     Color
	castling [NumColors]CastlingRights

	// enPassantFile is the file of a just-played two-square pawn advance,
	// unset if none.
	enPassantFile lang.Optional[int]

	kingSquare     [NumColors]Square
	kingCacheValid bool

	legal legalState
}

// MakeEmpty returns a Position with every on-board cell Empty, White to
// move, no castling rights and no en-passant file.
func MakeEmpty() *Position {
	p := &Position{}
	for sq := Square(0); int(sq) < NumBoardCells; sq++ {
		if sq.IsValid() {
			p.cells[sq] = Empty
		} else {
			p.cells[sq] = Invalid
		}
	}
	return p
}

// initialSetup is the standard chess starting arrangement, by file on each
// back rank.
var initialSetup = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// MakeInitial returns a Position set up for a new standard chess game.
func MakeInitial() *Position {
	p := MakeEmpty()
	for file, k := range initialSetup {
		p.cells[NewSquare(file, 0)] = NewPiece(k, White)
		p.cells[NewSquare(file, 1)] = NewPiece(Pawn, White)
		p.cells[NewSquare(file, 6)] = NewPiece(Pawn, Black)
		p.cells[NewSquare(file, 7)] = NewPiece(k, Black)
	}
	p.castling[White] = p.castling[White].With(QueensideFile).With(KingsideFile)
	p.castling[Black] = p.castling[Black].With(QueensideFile).With(KingsideFile)
	p.turn = White
	p.invalidate()
	return p
}

// Copy returns an independent value clone: the returned Position shares no
// state with p, and mutating one never affects the other.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// At returns the content of sq: a colored piece, Empty or Invalid.
func (p *Position) At(sq Square) Piece {
	if sq < 0 || int(sq) >= NumBoardCells {
		return Invalid
	}
	return p.cells[sq]
}

// SetSquare places piece (or Empty) on sq. It is illegal to touch an
// off-board cell. Invalidates the legality and king caches.
func (p *Position) SetSquare(sq Square, piece Piece) error {
	if !sq.IsValid() {
		return NewIllegalArgumentError("SetSquare", ReasonInvalidSquare, sq)
	}
	if piece != Empty && !piece.IsPiece() {
		return NewIllegalArgumentError("SetSquare", ReasonInvalidSquare, piece)
	}
	p.cells[sq] = piece
	p.invalidate()
	return nil
}

func (p *Position) Turn() Color {
	return p.turn
}

// SetTurn sets the side to move. Invalidates the legality cache.
func (p *Position) SetTurn(c Color) error {
	if !c.IsValid() {
		return NewIllegalArgumentError("SetTurn", ReasonInvalidColor, c)
	}
	p.turn = c
	p.invalidate()
	return nil
}

// Castling returns the castling-rights bitset for color c.
func (p *Position) Castling(c Color) CastlingRights {
	return p.castling[c]
}

// SetCastling replaces the castling-rights bitset for color c. Invalidates
// the legality cache.
func (p *Position) SetCastling(c Color, rights CastlingRights) error {
	if !c.IsValid() {
		return NewIllegalArgumentError("SetCastling", ReasonInvalidColor, c)
	}
	p.castling[c] = rights
	p.invalidate()
	return nil
}

// EnPassantFile returns the file a two-square pawn advance just skipped, and
// whether one is set at all.
func (p *Position) EnPassantFile() (int, bool) {
	return p.enPassantFile.V()
}

// SetEnPassantFile sets the en-passant file, or clears it when file is
// negative. Invalidates the legality cache.
func (p *Position) SetEnPassantFile(file int) error {
	if file > 7 {
		return NewIllegalArgumentError("SetEnPassantFile", ReasonInvalidEnPassant, file)
	}
	if file < 0 {
		p.enPassantFile = lang.Optional[int]{}
	} else {
		p.enPassantFile = lang.Some(file)
	}
	p.invalidate()
	return nil
}

// EnPassantSquare returns the square a pawn may move to when capturing
// en-passant (the square the two-square-advancing pawn skipped over), given
// the side to move.
func (p *Position) EnPassantSquare() (Square, bool) {
	file, ok := p.EnPassantFile()
	if !ok {
		return NoSquare, false
	}
	// White to move: rights sit on rank 6 (index 5); Black to move: rank 3
	// (index 2).
	rank := 5 - 3*int(p.turn)
	return NewSquare(file, rank), true
}

// EffectiveEnPassant reports the en-passant file only if an opposing pawn
// actually stands adjacent to the just-advanced pawn and could capture it.
func (p *Position) EffectiveEnPassant() (int, bool) {
	file, ok := p.EnPassantFile()
	if !ok {
		return 0, false
	}
	pawnRank := 4 - int(p.turn)
	capturer := p.turn
	for _, df := range []int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		sq := NewSquare(f, pawnRank)
		if piece := p.At(sq); piece.IsPiece() && piece.Kind() == Pawn && piece.Color() == capturer {
			return file, true
		}
	}
	return 0, false
}

// KingSquare returns the cached square of color c's king, computing it
// lazily by scanning the board. Returns NoSquare if no king of that color is
// present (a momentarily-illegal position during a reversible probe).
func (p *Position) KingSquare(c Color) Square {
	p.ensureKingCache()
	return p.kingSquare[c]
}

func (p *Position) ensureKingCache() {
	if p.kingCacheValid {
		return
	}
	p.kingSquare[White] = NoSquare
	p.kingSquare[Black] = NoSquare
	for sq := Square(0); int(sq) < NumBoardCells; sq++ {
		if !sq.IsValid() {
			continue
		}
		piece := p.cells[sq]
		if piece.IsPiece() && piece.Kind() == King {
			p.kingSquare[piece.Color()] = sq
		}
	}
	p.kingCacheValid = true
}

// invalidate clears the legality and king-square caches. Every mutator
// calls this; a stale legal cache is a contract violation.
func (p *Position) invalidate() {
	p.legal = legalUnknown
	p.kingCacheValid = false
}

// MarkLegal forces the legality cache to "legal" without recomputation. Only
// package movegen calls this, after applying a move descriptor it produced
// itself and therefore already knows preserves legality: a
// descriptor's mutations individually invalidate the cache via the setters
// above, even though the net effect is a legal position.
func (p *Position) MarkLegal() {
	p.kingCacheValid = false
	p.legal = legalYes
}
