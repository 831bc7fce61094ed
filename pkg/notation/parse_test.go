package notation_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/herohde/chesscore/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePawnAdvance(t *testing.T) {
	pos := board.MakeInitial()
	m, err := notation.Parse(pos, "e4")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", m.UCI())
}

func TestParseKnightMove(t *testing.T) {
	pos := board.MakeInitial()
	m, err := notation.Parse(pos, "Nf3")
	require.NoError(t, err)
	assert.Equal(t, "g1f3", m.UCI())
}

func TestParseCastlingTolerantSpellings(t *testing.T) {
	pos := board.MakeEmpty()
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 0), board.WhiteKing))
	require.NoError(t, pos.SetSquare(board.NewSquare(7, 0), board.WhiteRook))
	require.NoError(t, pos.SetSquare(board.NewSquare(4, 7), board.BlackKing))
	require.NoError(t, pos.SetCastling(board.White, pos.Castling(board.White).With(board.KingsideFile)))
	require.NoError(t, pos.SetTurn(board.White))
	require.True(t, pos.IsLegal())

	m, err := notation.Parse(pos, "0-0")
	require.NoError(t, err)
	assert.True(t, m.IsCastling())

	_, err = notation.ParseStrict(pos, "0-0")
	assert.Error(t, err)

	m2, err := notation.ParseStrict(pos, "O-O")
	require.NoError(t, err)
	assert.True(t, m2.IsCastling())
}

func TestParseNoSuchMove(t *testing.T) {
	pos := board.MakeInitial()
	_, err := notation.Parse(pos, "e5")
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	pos := board.MakeInitial()
	_, err := notation.Parse(pos, "")
	assert.Error(t, err)
}

func TestParseStrictRejectsWrongCheckSuffix(t *testing.T) {
	pos := board.MakeInitial()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		for _, m := range movegen.GenerateMoves(pos) {
			if m.UCI() == uci {
				movegen.Play(pos, m)
				break
			}
		}
	}

	_, err := notation.ParseStrict(pos, "Qh4")
	assert.Error(t, err)

	m, err := notation.ParseStrict(pos, "Qh4#")
	require.NoError(t, err)
	assert.Equal(t, "d8h4", m.UCI())
}
