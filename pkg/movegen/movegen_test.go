package movegen_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMovesInitialPosition(t *testing.T) {
	pos := board.MakeInitial()
	moves := movegen.GenerateMoves(pos)
	assert.Len(t, moves, 20)
}

func TestHasMove(t *testing.T) {
	pos := board.MakeInitial()
	assert.True(t, movegen.HasMove(pos))
}

func TestIsCheckmateFoolsMate(t *testing.T) {
	pos := board.MakeInitial()

	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m := findMove(t, pos, uci)
		movegen.Play(pos, m)
	}

	assert.True(t, movegen.IsCheck(pos))
	assert.True(t, movegen.IsCheckmate(pos))
	assert.False(t, movegen.HasMove(pos))
}

func TestIsStalemate(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(0, 0), board.BlackKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(2, 1), board.WhiteKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(1, 2), board.WhiteQueen))
	require.NoError(t, pos.SetTurn(board.Black))

	assert.False(t, movegen.IsCheck(pos))
	assert.True(t, movegen.IsStalemate(pos))
}

func TestCastlingBothSides(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 0), board.WhiteKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(0, 0), board.WhiteRook))
	require.NoError(t, pos.SetSquare(board.NewSquare(7, 0), board.WhiteRook))
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 7), board.BlackKing))
	require.NoError(t, pos.SetCastling(board.White, pos.Castling(board.White).With(board.KingsideFile).With(board.QueensideFile)))
	require.NoError(t, pos.SetTurn(board.White))
	require.True(t, pos.IsLegal())

	kingside := findMove(t, pos, "e1g1")
	assert.True(t, kingside.IsCastling())
	next := pos.Copy()
	movegen.Play(next, kingside)
	assert.Equal(t, board.WhiteRook, next.At(board.NewSquare(5, 0)))
	assert.Equal(t, board.Empty, next.At(board.NewSquare(7, 0)))

	queenside := findMove(t, pos, "e1c1")
	assert.True(t, queenside.IsCastling())
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 0), board.WhiteKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(7, 0), board.WhiteRook))
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 7), board.BlackKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(5, 7), board.BlackRook))
	require.NoError(t, pos.SetCastling(board.White, pos.Castling(board.White).With(board.KingsideFile)))
	require.NoError(t, pos.SetTurn(board.White))
	require.True(t, pos.IsLegal())

	for _, m := range movegen.GenerateMoves(pos) {
		assert.False(t, m.IsCastling(), "castling through an attacked square must not be generated")
	}
}

func TestPlayNullTogglesTurn(t *testing.T) {
	pos := board.MakeInitial()
	require.True(t, movegen.IsNullMoveLegal(pos))
	movegen.PlayNull(pos)
	assert.Equal(t, board.Black, pos.Turn())
	_, ok := pos.EnPassantFile()
	assert.False(t, ok)
}

func findMove(t *testing.T, pos *board.Position, uci string) board.Move {
	t.Helper()
	for _, m := range movegen.GenerateMoves(pos) {
		if m.UCI() == uci {
			return m
		}
	}
	require.Failf(t, "move not found", "no legal move %q in position", uci)
	return board.Move{}
}
