package board

import "fmt"

// ReasonCode is a machine-identifiable failure reason, shared by all three
// error kinds in the taxonomy. Callers can switch on it instead of
// parsing a formatted message; the formatted message is provided purely for
// humans and logs.
type ReasonCode string

// Reason codes raised by this package and shared by movegen, fen and
// notation for the conditions package board itself can detect.
const (
	ReasonInvalidSquare     ReasonCode = "invalid square"
	ReasonInvalidColor      ReasonCode = "invalid color"
	ReasonInvalidCastling   ReasonCode = "invalid castling file"
	ReasonInvalidEnPassant  ReasonCode = "invalid en-passant file"
	ReasonIllegalPromotion  ReasonCode = "illegal promotion"
	ReasonPositionNotLegal  ReasonCode = "position is not legal"
)

// IllegalArgumentError is raised by setters and getters given malformed
// input, tagged with the offending function's name.
type IllegalArgumentError struct {
	Func   string
	Reason ReasonCode
	Params []interface{}
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("%v: %v %v", e.Func, e.Reason, e.Params)
}

// NewIllegalArgumentError builds an IllegalArgumentError for the given
// calling function and reason.
func NewIllegalArgumentError(fn string, reason ReasonCode, params ...interface{}) error {
	return &IllegalArgumentError{Func: fn, Reason: reason, Params: params}
}
