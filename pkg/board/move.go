package board

import "strings"

// MoveFlag is a bitfield describing the special-case handling a move needs
// beyond "relocate a piece". A move may combine EnPassant+Capture or
// Promotion+Capture, but never combines with Castling.
type MoveFlag uint8

const (
	FlagCastling MoveFlag = 1 << iota
	FlagEnPassant
	FlagCapture
	FlagPromotion
)

// NoSquare is the sentinel for an unused optional square field.
const NoSquare Square = -1

// Move is an immutable, fully-resolved move descriptor: everything needed
// to apply it to a Position or render it, without re-deriving anything from
// the board. It is produced exclusively by the move generator / legality
// adjudicator in package movegen; board never constructs one
// itself.
type Move struct {
	Flags MoveFlag
	From  Square
	To    Square

	// MovingPiece is the colored piece at From. For promotions this is the
	// pawn, not the piece it becomes.
	MovingPiece Piece

	// FinalPiece is the colored piece that ends up on To. Differs from
	// MovingPiece only for promotions.
	FinalPiece Piece

	// OptionalPiece is the captured piece (FlagCapture) or the moving rook
	// (FlagCastling). Unused otherwise, and left at its zero value.
	OptionalPiece Piece

	// OptionalSquare1 is the captured pawn's square (FlagEnPassant) or the
	// rook's origin square (FlagCastling). NoSquare otherwise.
	OptionalSquare1 Square

	// OptionalSquare2 is the rook's destination square (FlagCastling).
	// NoSquare otherwise.
	OptionalSquare2 Square
}

func (m Move) IsCastling() bool   { return m.Flags&FlagCastling != 0 }
func (m Move) IsEnPassant() bool  { return m.Flags&FlagEnPassant != 0 }
func (m Move) IsCapture() bool    { return m.Flags&FlagCapture != 0 }
func (m Move) IsPromotion() bool  { return m.Flags&FlagPromotion != 0 }

// Equals reports whether two descriptors describe the identical move,
// including the chosen promotion piece.
func (m Move) Equals(o Move) bool {
	return m == o
}

// EqualsIgnoringPromotion reports whether two descriptors agree on
// everything but the promoted-to piece.
func (m Move) EqualsIgnoringPromotion(o Move) bool {
	if m.IsPromotion() != o.IsPromotion() {
		return false
	}
	cp := m
	co := o
	if cp.IsPromotion() {
		cp.FinalPiece = 0
		co.FinalPiece = 0
	}
	return cp == co
}

// UCI renders the move as UCI-style pure coordinate notation: source
// square, destination square and, for promotions, the promoted piece letter
// in uppercase.
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.FinalPiece.Kind().String()[0])
	}
	return sb.String()
}

func (m Move) String() string {
	return m.UCI()
}
