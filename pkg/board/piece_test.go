package board_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestNewPiece(t *testing.T) {
	assert.Equal(t, board.WhiteKing, board.NewPiece(board.King, board.White))
	assert.Equal(t, board.BlackKing, board.NewPiece(board.King, board.Black))
	assert.Equal(t, board.WhiteQueen, board.NewPiece(board.Queen, board.White))
	assert.Equal(t, board.BlackPawn, board.NewPiece(board.Pawn, board.Black))
}

func TestPieceKindAndColor(t *testing.T) {
	for kind := board.King; kind <= board.Pawn; kind++ {
		for _, c := range []board.Color{board.White, board.Black} {
			p := board.NewPiece(kind, c)
			assert.True(t, p.IsPiece())
			assert.Equal(t, kind, p.Kind())
			assert.Equal(t, c, p.Color())
		}
	}
	assert.False(t, board.Empty.IsPiece())
	assert.False(t, board.Invalid.IsPiece())
}

func TestPieceIsSlider(t *testing.T) {
	for _, p := range []board.Piece{board.WhiteQueen, board.BlackQueen, board.WhiteRook, board.BlackRook, board.WhiteBishop, board.BlackBishop} {
		assert.True(t, p.IsSlider(), p.String())
	}
	for _, p := range []board.Piece{board.WhiteKing, board.WhiteKnight, board.WhitePawn, board.BlackKnight} {
		assert.False(t, p.IsSlider(), p.String())
	}
}

func TestPieceSymbolRoundTrip(t *testing.T) {
	for p := board.WhiteKing; p <= board.BlackPawn; p++ {
		sym := board.PieceSymbols[p]
		got, ok := board.ParsePieceSymbol(sym)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := board.ParsePieceSymbol('z')
	assert.False(t, ok)
}

func TestKindPromotable(t *testing.T) {
	assert.True(t, board.Queen.IsPromotable())
	assert.True(t, board.Knight.IsPromotable())
	assert.False(t, board.King.IsPromotable())
	assert.False(t, board.Pawn.IsPromotable())
}
