package board_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegalRejectsMissingKing(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 0), board.WhiteKing))
	assert.False(t, pos.IsLegal())
}

func TestIsLegalRejectsPawnOnBackRank(t *testing.T) {
	pos := board.MakeInitial()
	require.NoError(t, pos.SetSquare(board.NewSquare(0, 0), board.WhitePawn))
	assert.False(t, pos.IsLegal())
}

func TestIsLegalRejectsOpponentKingInCheck(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 0), board.WhiteKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 7), board.BlackKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 4), board.WhiteRook))
	require.NoError(t, pos.SetTurn(board.White))

	// It's White to move, but Black's king is already attacked: illegal.
	assert.False(t, pos.IsLegal())
}

func TestIsLegalRejectsCastlingRightsWithoutRook(t *testing.T) {
	pos := board.MakeInitial()
	require.NoError(t, pos.SetSquare(board.NewSquare(7, 0), board.Empty))
	assert.False(t, pos.IsLegal())
}
