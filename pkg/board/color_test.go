package board_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestColorOpponent(t *testing.T) {
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())
}

func TestColorIsValid(t *testing.T) {
	assert.True(t, board.White.IsValid())
	assert.True(t, board.Black.IsValid())
	assert.False(t, board.Color(2).IsValid())
}
