package board_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestCastlingRights(t *testing.T) {
	var rights board.CastlingRights
	assert.False(t, rights.Has(board.KingsideFile))

	rights = rights.With(board.KingsideFile).With(board.QueensideFile)
	assert.True(t, rights.Has(board.KingsideFile))
	assert.True(t, rights.Has(board.QueensideFile))

	rights = rights.Without(board.KingsideFile)
	assert.False(t, rights.Has(board.KingsideFile))
	assert.True(t, rights.Has(board.QueensideFile))
}

func TestBackRank(t *testing.T) {
	assert.Equal(t, 0, board.BackRank(board.White))
	assert.Equal(t, 7, board.BackRank(board.Black))
}
