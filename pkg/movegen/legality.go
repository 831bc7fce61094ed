package movegen

import "github.com/herohde/chesscore/pkg/board"

// AdjudicationKind discriminates the three possible outcomes of IsMoveLegal.
type AdjudicationKind int

const (
	// Illegal means the proposed (from, to) is not a legal move at all.
	Illegal AdjudicationKind = iota
	// LegalMove means the move is fully resolved; use Adjudication.Move.
	LegalMove
	// NeedsPromotion means the move is legal except that the caller must
	// pick a promoted piece; call Adjudication.Promote(kind).
	NeedsPromotion
)

// Adjudication is the result of IsMoveLegal. Exactly one of Move or
// Promote is meaningful, selected by Kind.
type Adjudication struct {
	Kind    AdjudicationKind
	Move    board.Move
	Promote func(board.Kind) (board.Move, error)
}

// IsMoveLegal decides whether moving the piece on "from" to "to" is legal in
// pos, following steps 1-9 in order. It never raises an error on
// legality grounds — a rejected move simply comes back Illegal. Only the
// promotion factory returned for NeedsPromotion can raise IllegalArgument,
// and only if called with a non-promotable kind.
func IsMoveLegal(pos *board.Position, from, to board.Square) Adjudication {
	if !pos.IsLegal() {
		return Adjudication{Kind: Illegal}
	}

	mover := pos.At(from)
	if !mover.IsPiece() || mover.Color() != pos.Turn() {
		return Adjudication{Kind: Illegal}
	}

	lastRank := 7
	if pos.Turn() == board.Black {
		lastRank = 0
	}
	promotionRequired := mover.Kind() == board.Pawn && to.Rank() == lastRank

	cand, ok := resolvePseudoLegal(pos, from, to, mover)
	if !ok {
		return Adjudication{Kind: Illegal}
	}

	if !probeSafety(pos, cand, pos.Turn()) {
		return Adjudication{Kind: Illegal}
	}

	if !promotionRequired {
		return Adjudication{Kind: LegalMove, Move: cand}
	}

	base := cand
	return Adjudication{
		Kind: NeedsPromotion,
		Promote: func(k board.Kind) (board.Move, error) {
			if !k.IsPromotable() {
				return board.Move{}, board.NewIllegalArgumentError(
					"Promote", board.ReasonIllegalPromotion, k)
			}
			m := base
			m.Flags |= board.FlagPromotion
			m.FinalPiece = board.NewPiece(k, pos.Turn())
			return m, nil
		},
	}
}

// resolvePseudoLegal implements steps 4-6: geometric
// admissibility (with the pawn-double-push and castling fallbacks),
// destination-content rules, and the path-clear rule for sliders and
// two-square pawn advances. It does not check king safety. The returned
// move's FinalPiece is a placeholder (the moving piece) when the move
// turns out to require promotion; callers must overwrite it via the
// promotion factory.
func resolvePseudoLegal(pos *board.Position, from, to board.Square, mover board.Piece) (board.Move, bool) {
	turn := pos.Turn()

	if mover.Kind() == board.King && abs(int(to)-int(from)) == 2 && to.Rank() == from.Rank() {
		return castlingMove(pos, from, to)
	}

	if isDisplacementAdmissible(from, to, mover) {
		return resolveOrdinaryMove(pos, from, to, mover)
	}

	if mover.Kind() == board.Pawn && isPawnDoublePush(turn, from, to) {
		return resolvePawnDoublePush(pos, from, to, mover)
	}

	return board.Move{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// resolveOrdinaryMove handles every geometrically-admissible move except the
// pawn double push and castling, which have their own path/occupancy rules.
func resolveOrdinaryMove(pos *board.Position, from, to board.Square, mover board.Piece) (board.Move, bool) {
	turn := pos.Turn()
	dest := pos.At(to)

	if mover.Kind() == board.Pawn {
		return resolvePawnSingleMove(pos, from, to, mover)
	}

	if dest != board.Empty && (dest == board.Invalid || dest.Color() == turn) {
		return board.Move{}, false
	}
	if mover.IsSlider() && !pathEmpty(pos, from, to) {
		return board.Move{}, false
	}

	m := board.Move{From: from, To: to, MovingPiece: mover, FinalPiece: mover}
	if dest.IsPiece() {
		m.Flags |= board.FlagCapture
		m.OptionalPiece = dest
	}
	m.OptionalSquare1 = board.NoSquare
	m.OptionalSquare2 = board.NoSquare
	return m, true
}

// resolvePawnSingleMove handles a one-step pawn displacement: either the
// forward push (destination must be empty) or a diagonal (capture, or
// en-passant when the destination is the en-passant target).
func resolvePawnSingleMove(pos *board.Position, from, to board.Square, mover board.Piece) (board.Move, bool) {
	forward := to.File() == from.File()
	dest := pos.At(to)

	if forward {
		if dest != board.Empty {
			return board.Move{}, false
		}
		return board.Move{From: from, To: to, MovingPiece: mover, FinalPiece: mover,
			OptionalSquare1: board.NoSquare, OptionalSquare2: board.NoSquare}, true
	}

	// Diagonal.
	if dest == board.Empty {
		epSq, ok := pos.EnPassantSquare()
		if !ok || epSq != to {
			return board.Move{}, false
		}
		capturedRank := from.Rank()
		captured := board.NewSquare(to.File(), capturedRank)
		return board.Move{
			Flags:           board.FlagEnPassant | board.FlagCapture,
			From:            from,
			To:              to,
			MovingPiece:     mover,
			FinalPiece:      mover,
			OptionalPiece:   pos.At(captured),
			OptionalSquare1: captured,
			OptionalSquare2: board.NoSquare,
		}, true
	}
	if dest.Color() == mover.Color() {
		return board.Move{}, false
	}
	return board.Move{
		Flags:           board.FlagCapture,
		From:            from,
		To:              to,
		MovingPiece:     mover,
		FinalPiece:      mover,
		OptionalPiece:   dest,
		OptionalSquare1: board.NoSquare,
		OptionalSquare2: board.NoSquare,
	}, true
}

func isPawnDoublePush(turn board.Color, from, to board.Square) bool {
	homeRank := 1
	delta := 32
	if turn == board.Black {
		homeRank = 6
		delta = -32
	}
	return from.Rank() == homeRank && int(to)-int(from) == delta
}

func resolvePawnDoublePush(pos *board.Position, from, to board.Square, mover board.Piece) (board.Move, bool) {
	mid := board.Square((int(from) + int(to)) / 2)
	if pos.At(mid) != board.Empty || pos.At(to) != board.Empty {
		return board.Move{}, false
	}
	return board.Move{From: from, To: to, MovingPiece: mover, FinalPiece: mover,
		OptionalSquare1: board.NoSquare, OptionalSquare2: board.NoSquare}, true
}

// pathEmpty reports whether every square strictly between from and to is
// empty, for a slider move already known to lie on one ray.
func pathEmpty(pos *board.Position, from, to board.Square) bool {
	dir := rayDirection(from, to)
	if dir == 0 {
		return true
	}
	for sq := from + board.Square(dir); sq != to; sq += board.Square(dir) {
		if pos.At(sq) != board.Empty {
			return false
		}
	}
	return true
}

// rayDirection returns the unit step from from towards to along a rank,
// file or diagonal, or 0 if they are not aligned.
func rayDirection(from, to board.Square) int {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	switch {
	case dr == 0 && df != 0:
		if df > 0 {
			return 1
		}
		return -1
	case df == 0 && dr != 0:
		if dr > 0 {
			return 16
		}
		return -16
	case abs(df) == abs(dr) && df != 0:
		switch {
		case df > 0 && dr > 0:
			return 17
		case df > 0 && dr < 0:
			return -15
		case df < 0 && dr > 0:
			return 15
		default:
			return -17
		}
	default:
		return 0
	}
}
