package board

// Kind represents a piece kind without color. 3 bits. King=0 is singled out
// because it never appears in the slider or promotable ranges.
type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// NumKinds is the number of piece kinds.
const NumKinds = 6

func (k Kind) IsValid() bool {
	return k <= Pawn
}

// IsSlider reports whether the kind moves along unobstructed rays.
func (k Kind) IsSlider() bool {
	return k == Queen || k == Rook || k == Bishop
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k Kind) IsPromotable() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

func (k Kind) String() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	default:
		return "?"
	}
}

// Piece is the content of a board cell: a colored piece, Empty or Invalid.
// Colored pieces are encoded as kind*2+color, so the low bit
// recovers the color and integer division by two recovers the kind. The
// encoding keeps Empty and Invalid outside the [0,11] colored-piece range so
// a single bounds check distinguishes "occupied" from the two sentinels.
type Piece int8

const (
	Invalid Piece = -2
	Empty   Piece = -1
)

// NewPiece builds the colored-piece code for kind k owned by color c.
func NewPiece(k Kind, c Color) Piece {
	return Piece(k)*2 + Piece(c)
}

// NumPieces is the number of distinct colored pieces.
const NumPieces = NumKinds * NumColors

// Colored piece constants, spelled out for readability at call sites (board
// setup tables, FEN/SAN symbol lookups) even though NewPiece computes the
// same values.
const (
	WhiteKing Piece = iota
	BlackKing
	WhiteQueen
	BlackQueen
	WhiteRook
	BlackRook
	WhiteBishop
	BlackBishop
	WhiteKnight
	BlackKnight
	WhitePawn
	BlackPawn
)

// IsPiece reports whether p holds an actual colored piece, as opposed to
// Empty or Invalid.
func (p Piece) IsPiece() bool {
	return p >= WhiteKing && p <= BlackPawn
}

// Kind returns the piece kind. Only meaningful when IsPiece() is true.
func (p Piece) Kind() Kind {
	return Kind(p / 2)
}

// Color returns the piece color. Only meaningful when IsPiece() is true.
func (p Piece) Color() Color {
	return Color(p % 2)
}

// IsSlider reports whether p is a colored queen, rook or bishop: exactly the
// colored-piece codes in [2,7].
func (p Piece) IsSlider() bool {
	return p >= WhiteQueen && p <= BlackBishop
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "-"
	case Invalid:
		return "x"
	}
	if !p.IsPiece() {
		return "?"
	}
	s := p.Kind().String()
	if p.Color() == Black {
		return toLower(s)
	}
	return s
}

func toLower(s string) string {
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// PieceSymbols maps each colored piece to its FEN/SAN letter, uppercase for
// White and lowercase for Black.
var PieceSymbols = [NumPieces]byte{
	WhiteKing:   'K',
	BlackKing:   'k',
	WhiteQueen:  'Q',
	BlackQueen:  'q',
	WhiteRook:   'R',
	BlackRook:   'r',
	WhiteBishop: 'B',
	BlackBishop: 'b',
	WhiteKnight: 'N',
	BlackKnight: 'n',
	WhitePawn:   'P',
	BlackPawn:   'p',
}

// ParsePieceSymbol reverses PieceSymbols.
func ParsePieceSymbol(r byte) (Piece, bool) {
	switch r {
	case 'K':
		return WhiteKing, true
	case 'k':
		return BlackKing, true
	case 'Q':
		return WhiteQueen, true
	case 'q':
		return BlackQueen, true
	case 'R':
		return WhiteRook, true
	case 'r':
		return BlackRook, true
	case 'B':
		return WhiteBishop, true
	case 'b':
		return BlackBishop, true
	case 'N':
		return WhiteKnight, true
	case 'n':
		return BlackKnight, true
	case 'P':
		return WhitePawn, true
	case 'p':
		return BlackPawn, true
	default:
		return Empty, false
	}
}
