package board_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeInitial(t *testing.T) {
	pos := board.MakeInitial()

	assert.Equal(t, board.White, pos.Turn())
	assert.Equal(t, board.WhiteRook, pos.At(board.NewSquare(0, 0)))
	assert.Equal(t, board.BlackKing, pos.At(board.NewSquare(4, 7)))
	assert.Equal(t, board.Empty, pos.At(board.NewSquare(4, 4)))

	assert.True(t, pos.Castling(board.White).Has(board.KingsideFile))
	assert.True(t, pos.Castling(board.White).Has(board.QueensideFile))
	assert.True(t, pos.Castling(board.Black).Has(board.KingsideFile))

	assert.True(t, pos.IsLegal())
}

func TestPositionCopyIsIndependent(t *testing.T) {
	pos := board.MakeInitial()
	clone := pos.Copy()

	require.NoError(t, clone.SetSquare(board.NewSquare(4, 4), board.WhitePawn))
	assert.Equal(t, board.Empty, pos.At(board.NewSquare(4, 4)))
	assert.Equal(t, board.WhitePawn, clone.At(board.NewSquare(4, 4)))
}

func TestEnPassantSquare(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetTurn(board.White))
	require.NoError(t, pos.SetEnPassantFile(4))

	sq, ok := pos.EnPassantSquare()
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 5), sq)

	require.NoError(t, pos.SetTurn(board.Black))
	sq, ok = pos.EnPassantSquare()
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 2), sq)
}

func TestSetEnPassantFileRejectsOutOfRange(t *testing.T) {
	pos := board.MakeEmpty()
	assert.Error(t, pos.SetEnPassantFile(8))
	assert.NoError(t, pos.SetEnPassantFile(-1))
}

func TestKingSquare(t *testing.T) {
	pos := board.MakeInitial()
	assert.Equal(t, board.NewSquare(4, 0), pos.KingSquare(board.White))
	assert.Equal(t, board.NewSquare(4, 7), pos.KingSquare(board.Black))
}
