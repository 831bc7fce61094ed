package notation

import (
	"regexp"
	"strings"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
)

// sanPattern captures: piece letter, disambiguating file, disambiguating
// rank, capture marker, destination square, promotion piece, check/mate
// suffix. Castling is matched separately since it has no destination square.
var sanPattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=([QRBN]))?([+#])?$`)

var castlingPattern = regexp.MustCompile(`^(?:O-O-O|0-0-0|O-O|0-0)([+#])?$`)

// Parse interprets s as SAN against pos in tolerant mode: either castling
// spelling (O-O or 0-0) is accepted and the check/mate suffix is not
// validated against the resulting position.
func Parse(pos *board.Position, s string) (board.Move, error) {
	return parse(pos, s, false)
}

// ParseStrict interprets s as SAN against pos in strict mode: castling must
// use the letter O, and the check/mate suffix must match the actual result
// of playing the move exactly (a missing suffix on a checking move is
// rejected).
func ParseStrict(pos *board.Position, s string) (board.Move, error) {
	return parse(pos, s, true)
}

func parse(pos *board.Position, s string, strict bool) (board.Move, error) {
	if s == "" {
		return board.Move{}, newError(s, ReasonEmpty)
	}

	if castlingPattern.MatchString(s) {
		return parseCastling(pos, s, strict)
	}

	groups := sanPattern.FindStringSubmatch(s)
	if groups == nil {
		return board.Move{}, newError(s, ReasonMalformed)
	}
	pieceLetter, fileHint, rankHint, capture, destText, promoLetter, suffix := groups[1], groups[2], groups[3], groups[4], groups[5], groups[6], groups[7]

	dest, ok := board.ParseSquare(destText)
	if !ok {
		return board.Move{}, newError(s, ReasonMalformed)
	}

	kind := board.Pawn
	if pieceLetter != "" {
		kind = kindFromLetter(pieceLetter)
	}

	var matches []board.Move
	for _, cand := range movegen.GenerateMoves(pos) {
		if cand.To != dest || cand.MovingPiece.Kind() != kind || cand.IsCastling() {
			continue
		}
		if fileHint != "" && int(fileHint[0]-'a') != cand.From.File() {
			continue
		}
		if rankHint != "" && int(rankHint[0]-'1') != cand.From.Rank() {
			continue
		}
		if promoLetter != "" {
			if !cand.IsPromotion() || cand.FinalPiece.Kind() != kindFromLetter(promoLetter) {
				continue
			}
		} else if cand.IsPromotion() {
			continue
		}
		matches = append(matches, cand)
	}

	if capture == "x" && strict {
		for i := 0; i < len(matches); {
			if !matches[i].IsCapture() {
				matches = append(matches[:i], matches[i+1:]...)
				continue
			}
			i++
		}
	}

	switch len(matches) {
	case 0:
		return board.Move{}, newError(s, ReasonNoSuchMove)
	case 1:
		return checkSuffix(pos, matches[0], s, suffix, strict)
	default:
		return board.Move{}, newError(s, ReasonAmbiguous)
	}
}

func parseCastling(pos *board.Position, s string, strict bool) (board.Move, error) {
	bare := s
	var suffix string
	if n := len(s); n > 0 && (s[n-1] == '+' || s[n-1] == '#') {
		bare, suffix = s[:n-1], s[n-1:]
	}
	if strict && strings.ContainsRune(bare, '0') {
		return board.Move{}, newError(s, ReasonBadCastlingLetter)
	}

	kingside := bare == "O-O" || bare == "0-0"
	for _, cand := range movegen.GenerateMoves(pos) {
		if !cand.IsCastling() {
			continue
		}
		isKingside := cand.OptionalSquare1.File() == board.KingsideFile
		if isKingside == kingside {
			return checkSuffix(pos, cand, s, suffix, strict)
		}
	}
	return board.Move{}, newError(s, ReasonNoSuchMove)
}

func checkSuffix(pos *board.Position, m board.Move, s, suffix string, strict bool) (board.Move, error) {
	if !strict {
		return m, nil
	}
	next := pos.Copy()
	movegen.Play(next, m)
	want := ""
	switch {
	case movegen.IsCheckmate(next):
		want = "#"
	case movegen.IsCheck(next):
		want = "+"
	}
	if want != suffix {
		return board.Move{}, newError(s, ReasonBadCheckSuffix)
	}
	return m, nil
}

func kindFromLetter(l string) board.Kind {
	switch l {
	case "K":
		return board.King
	case "Q":
		return board.Queen
	case "R":
		return board.Rook
	case "B":
		return board.Bishop
	case "N":
		return board.Knight
	default:
		return board.Pawn
	}
}
