// Package notation implements Standard Algebraic Notation: rendering a
// resolved move descriptor against the position it was played from, and
// parsing SAN text back into one by matching it against the legal moves of
// that position.
package notation

import (
	"strings"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
)

// San renders m as Standard Algebraic Notation. pos is the position before m
// is played. The check/checkmate suffix is computed by applying m to a copy
// of pos.
func San(pos *board.Position, m board.Move) string {
	if m.IsCastling() {
		return san(pos, m, castlingText(m))
	}

	var sb strings.Builder
	kind := m.MovingPiece.Kind()
	if kind != board.Pawn {
		sb.WriteString(kind.String())
		sb.WriteString(disambiguate(pos, m))
	} else if m.IsCapture() {
		sb.WriteByte(byte('a' + m.From.File()))
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteString(m.FinalPiece.Kind().String())
	}

	return san(pos, m, sb.String())
}

func castlingText(m board.Move) string {
	if m.OptionalSquare1.File() == board.KingsideFile {
		return "O-O"
	}
	return "O-O-O"
}

// san appends the check/checkmate suffix to body by playing m on a scratch
// copy of pos.
func san(pos *board.Position, m board.Move, body string) string {
	next := pos.Copy()
	movegen.Play(next, m)

	switch {
	case movegen.IsCheckmate(next):
		return body + "#"
	case movegen.IsCheck(next):
		return body + "+"
	default:
		return body
	}
}

// disambiguate returns the minimal file/rank/both prefix needed to tell m's
// source square apart from any other legal move of the same piece kind to
// the same destination.
func disambiguate(pos *board.Position, m board.Move) string {
	var sameFile, sameRank, other bool
	for _, cand := range movegen.GenerateMoves(pos) {
		if cand.To != m.To || cand.From == m.From || cand.MovingPiece.Kind() != m.MovingPiece.Kind() {
			continue
		}
		other = true
		if cand.From.File() == m.From.File() {
			sameFile = true
		}
		if cand.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}
	switch {
	case !sameFile:
		return string([]byte{byte('a' + m.From.File())})
	case !sameRank:
		return string([]byte{byte('1' + m.From.Rank())})
	default:
		return m.From.String()
	}
}
