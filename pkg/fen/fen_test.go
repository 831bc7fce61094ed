package fen_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitial(t *testing.T) {
	pos, halfmove, fullmove, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.True(t, pos.IsLegal())
	assert.Equal(t, board.White, pos.Turn())
	assert.Equal(t, 0, halfmove)
	assert.Equal(t, 1, fullmove)
	assert.Equal(t, board.WhiteRook, pos.At(board.NewSquare(0, 0)))
	assert.Equal(t, board.BlackKing, pos.At(board.NewSquare(4, 7)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos := board.MakeInitial()
	s := fen.Encode(pos, 0, 1)
	assert.Equal(t, fen.Initial, s)

	decoded, halfmove, fullmove, err := fen.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 0, halfmove)
	assert.Equal(t, 1, fullmove)
	for sq := board.Square(0); int(sq) < board.NumBoardCells; sq++ {
		if !sq.IsValid() {
			continue
		}
		assert.Equal(t, pos.At(sq), decoded.At(sq), sq.String())
	}
}

func TestDecodeEnPassant(t *testing.T) {
	pos, _, _, err := fen.Decode("rnbqkbnr/pp1ppppp/8/8/2pP4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2")
	require.NoError(t, err)
	sq, ok := pos.EnPassantSquare()
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(3, 2), sq)
}

func TestDecodeWrongFieldCount(t *testing.T) {
	_, _, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.Error(t, err)
}

func TestDecodeTolerantAcceptsScrambledCastling(t *testing.T) {
	_, _, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w qkQK - 0 1")
	require.NoError(t, err)
}

func TestDecodeStrictRejectsScrambledCastling(t *testing.T) {
	_, _, _, err := fen.DecodeStrict("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w qkQK - 0 1")
	require.Error(t, err)
}

func TestDecodeStrictRejectsLeadingZeroCounter(t *testing.T) {
	_, _, _, err := fen.DecodeStrict("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 00 1")
	require.Error(t, err)
}

func TestDecodeTolerantAcceptsLeadingZeroCounter(t *testing.T) {
	_, halfmove, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 00 1")
	require.NoError(t, err)
	assert.Equal(t, 0, halfmove)
}

func TestDecodeBadPlacement(t *testing.T) {
	_, _, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
}
