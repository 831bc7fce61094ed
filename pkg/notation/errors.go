package notation

import (
	"fmt"

	"github.com/herohde/chesscore/pkg/board"
)

// ReasonCode reuses board.ReasonCode's machine-identifiable shape.
type ReasonCode = board.ReasonCode

const (
	ReasonEmpty             ReasonCode = "empty notation"
	ReasonMalformed         ReasonCode = "malformed notation"
	ReasonUnknownDisambig   ReasonCode = "disambiguation matches no legal move"
	ReasonAmbiguous         ReasonCode = "notation is ambiguous among legal moves"
	ReasonNoSuchMove        ReasonCode = "no legal move matches notation"
	ReasonBadCheckSuffix    ReasonCode = "check/mate suffix does not match position"
	ReasonBadCastlingLetter ReasonCode = "castling notation uses the wrong letter"
)

// InvalidNotationError is raised on any SAN parse failure, carrying the
// original string, a reason code and any parameters so callers can localize
// instead of parsing an English message.
type InvalidNotationError struct {
	Notation string
	Reason   ReasonCode
	Params   []interface{}
}

func (e *InvalidNotationError) Error() string {
	return fmt.Sprintf("invalid notation %q: %v %v", e.Notation, e.Reason, e.Params)
}

func newError(s string, reason ReasonCode, params ...interface{}) error {
	return &InvalidNotationError{Notation: s, Reason: reason, Params: params}
}
