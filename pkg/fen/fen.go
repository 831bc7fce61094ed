// Package fen implements the external FEN position format: parsing
// (tolerant and strict modes) and rendering.
package fen

import (
	"strconv"
	"strings"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string in tolerant mode: castling letters may appear
// in any order, and the half-move counter accepts a leading zero such as
// "00". The decoded position is not required to be legal; callers check
// that themselves via Position.IsLegal.
func Decode(s string) (*board.Position, int, int, error) {
	return decode(s, false)
}

// DecodeStrict parses a FEN string in strict mode: castling letters must
// appear in canonical "KQkq" order, counters must have no leading zeros,
// and the en-passant rank must match the side to move.
func DecodeStrict(s string) (*board.Position, int, int, error) {
	return decode(s, true)
}

func decode(s string, strict bool) (*board.Position, int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, 0, 0, newError(s, ReasonWrongFieldCount, len(fields))
	}

	pos := board.MakeEmpty()
	if err := decodePlacement(pos, s, fields[0]); err != nil {
		return nil, 0, 0, err
	}

	turn, ok := decodeTurn(fields[1])
	if !ok {
		return nil, 0, 0, newError(s, ReasonBadTurn, fields[1])
	}
	_ = pos.SetTurn(turn)

	rights, err := decodeCastling(s, fields[2], strict)
	if err != nil {
		return nil, 0, 0, err
	}
	_ = pos.SetCastling(board.White, rights[board.White])
	_ = pos.SetCastling(board.Black, rights[board.Black])

	if err := decodeEnPassant(pos, s, fields[3], turn, strict); err != nil {
		return nil, 0, 0, err
	}

	halfmove, err := decodeCounter(s, fields[4], strict, true)
	if err != nil {
		return nil, 0, 0, err
	}
	fullmove, err := decodeCounter(s, fields[5], strict, false)
	if err != nil {
		return nil, 0, 0, err
	}

	return pos, halfmove, fullmove, nil
}

func decodePlacement(pos *board.Position, fenStr, field string) error {
	rank := 7
	file := 0
	for _, r := range field {
		switch {
		case r == '/':
			if file != 8 {
				return newError(fenStr, ReasonBadPlacement, field)
			}
			rank--
			file = 0
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			piece, ok := board.ParsePieceSymbol(byte(r))
			if !ok {
				return newError(fenStr, ReasonBadPlacement, field)
			}
			if rank < 0 || file > 7 {
				return newError(fenStr, ReasonBadPlacement, field)
			}
			_ = pos.SetSquare(board.NewSquare(file, rank), piece)
			file++
		}
		if file > 8 || rank < 0 {
			return newError(fenStr, ReasonBadPlacement, field)
		}
	}
	if rank != 0 || file != 8 {
		return newError(fenStr, ReasonBadPlacement, field)
	}
	return nil
}

func decodeTurn(field string) (board.Color, bool) {
	switch field {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func decodeCastling(fenStr, field string, strict bool) ([board.NumColors]board.CastlingRights, error) {
	var rights [board.NumColors]board.CastlingRights
	if field == "-" {
		return rights, nil
	}

	order := []byte{'K', 'Q', 'k', 'q'}
	if strict {
		pos := 0
		for _, r := range []byte(field) {
			for pos < len(order) && order[pos] != r {
				pos++
			}
			if pos >= len(order) {
				return rights, newError(fenStr, ReasonNonCanonical, field)
			}
		}
	}

	seen := map[byte]bool{}
	for _, r := range []byte(field) {
		if seen[r] {
			return rights, newError(fenStr, ReasonBadCastling, field)
		}
		seen[r] = true
		switch r {
		case 'K':
			rights[board.White] = rights[board.White].With(board.KingsideFile)
		case 'Q':
			rights[board.White] = rights[board.White].With(board.QueensideFile)
		case 'k':
			rights[board.Black] = rights[board.Black].With(board.KingsideFile)
		case 'q':
			rights[board.Black] = rights[board.Black].With(board.QueensideFile)
		default:
			return rights, newError(fenStr, ReasonBadCastling, field)
		}
	}
	return rights, nil
}

func decodeEnPassant(pos *board.Position, fenStr, field string, turn board.Color, strict bool) error {
	if field == "-" {
		return pos.SetEnPassantFile(-1)
	}
	sq, ok := board.ParseSquare(field)
	if !ok {
		return newError(fenStr, ReasonBadEnPassant, field)
	}
	// En-passant square is on rank 6 (index 5) if White is to move (Black
	// just played a double push), rank 3 (index 2) if Black is to move.
	wantRank := 5
	if turn == board.Black {
		wantRank = 2
	}
	if strict && sq.Rank() != wantRank {
		return newError(fenStr, ReasonBadEnPassantRank, field)
	}
	return pos.SetEnPassantFile(sq.File())
}

func decodeCounter(fenStr, field string, strict, allowZero bool) (int, error) {
	if strict && len(field) > 1 && field[0] == '0' {
		return 0, newError(fenStr, ReasonLeadingZero, field)
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, newError(fenStr, ReasonBadCounter, field)
	}
	if !allowZero && n < 1 {
		if strict {
			return 0, newError(fenStr, ReasonBadCounter, field)
		}
	}
	return n, nil
}

// Encode renders pos, the half-move and full-move counters as a FEN string.
// Castling letters are always emitted in canonical KQkq order.
func Encode(pos *board.Position, halfmove, fullmove int) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < 8; file++ {
			piece := pos.At(board.NewSquare(file, rank))
			if !piece.IsPiece() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteByte(board.PieceSymbols[piece])
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.Turn().String())

	sb.WriteByte(' ')
	var rights [board.NumColors]board.CastlingRights
	rights[board.White] = pos.Castling(board.White)
	rights[board.Black] = pos.Castling(board.Black)
	sb.WriteString(encodeCastling(rights))

	sb.WriteByte(' ')
	if sq, ok := pos.EnPassantSquare(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}

	// Field 5 is non-negative, field 6 is positive; clamp rather than emit
	// a FEN no decoder could read back.
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(mathx.Max(0, halfmove)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(mathx.Max(1, fullmove)))

	return sb.String()
}

func encodeCastling(rights [board.NumColors]board.CastlingRights) string {
	var sb strings.Builder
	if rights[board.White].Has(board.KingsideFile) {
		sb.WriteByte('K')
	}
	if rights[board.White].Has(board.QueensideFile) {
		sb.WriteByte('Q')
	}
	if rights[board.Black].Has(board.KingsideFile) {
		sb.WriteByte('k')
	}
	if rights[board.Black].Has(board.QueensideFile) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
