package types

// PieceType is one of {Pawn, Knight, Bishop, Rook, Queen, King}, ordered so
// array indexing by piece type is direct.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
	PieceTypeLength = 6
)

// PieceTypeValue is the material value of each piece type in centipawns
// (pawn 100, knight 300, bishop 350, rook 500, queen 900, king 10000), the
// same figures as the evaluator's default weights. The evaluator reads its
// weights from config.Settings and move ordering ranks captures by
// piece-type order, so neither uses this table.
var PieceTypeValue = [PieceTypeLength]int{100, 300, 350, 500, 900, 10000}

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt < PieceTypeNone
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Char returns the uppercase promotion-piece letter used in UCI move
// strings and FEN (e.g. "Q").
func (pt PieceType) Char() string {
	switch pt {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	default:
		return ""
	}
}

// PieceTypeFromChar parses a promotion letter (q, r, b, n — either case)
// into a PieceType, returning PieceTypeNone if it is not one of those four.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return PieceTypeNone
	}
}
