package fen

import (
	"fmt"

	"github.com/herohde/chesscore/pkg/board"
)

// ReasonCode reuses board.ReasonCode's machine-identifiable shape.
type ReasonCode = board.ReasonCode

const (
	ReasonWrongFieldCount  ReasonCode = "wrong number of FEN fields"
	ReasonBadPlacement     ReasonCode = "invalid piece placement field"
	ReasonBadTurn          ReasonCode = "invalid active color field"
	ReasonBadCastling      ReasonCode = "invalid castling field"
	ReasonNonCanonical     ReasonCode = "castling field not in canonical order"
	ReasonBadEnPassant     ReasonCode = "invalid en-passant field"
	ReasonBadEnPassantRank ReasonCode = "en-passant rank inconsistent with side to move"
	ReasonBadCounter       ReasonCode = "invalid move counter field"
	ReasonLeadingZero      ReasonCode = "move counter has a leading zero"
	ReasonIllegalPosition  ReasonCode = "decoded position is not legal"
)

// InvalidFENError is raised on any parse failure, carrying the original
// string, a reason code and any parameters, so callers can localize instead
// of parsing an English message.
type InvalidFENError struct {
	FEN    string
	Reason ReasonCode
	Params []interface{}
}

func (e *InvalidFENError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %v %v", e.FEN, e.Reason, e.Params)
}

func newError(fenStr string, reason ReasonCode, params ...interface{}) error {
	return &InvalidFENError{FEN: fenStr, Reason: reason, Params: params}
}
