package types

// CastlingRights is a 4-bit mask in the fixed order {white short = 0b1000,
// white long = 0b0100, black short = 0b0010, black long = 0b0001}, per the
// castling-rights encoding carried over from original_source/game.rs.
type CastlingRights uint8

const (
	CastlingNone       CastlingRights = 0
	CastlingWhiteShort CastlingRights = 0b1000
	CastlingWhiteLong  CastlingRights = 0b0100
	CastlingBlackShort CastlingRights = 0b0010
	CastlingBlackLong  CastlingRights = 0b0001
	CastlingAny        CastlingRights = 0b1111
	CastlingRightsLength              = 16
)

// Has reports whether all bits of flag are set in cr.
func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag == flag
}

// Remove clears flag's bits from cr and returns the result.
func (cr CastlingRights) Remove(flag CastlingRights) CastlingRights {
	return cr &^ flag
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteShort) {
		s += "K"
	}
	if cr.Has(CastlingWhiteLong) {
		s += "Q"
	}
	if cr.Has(CastlingBlackShort) {
		s += "k"
	}
	if cr.Has(CastlingBlackLong) {
		s += "q"
	}
	return s
}
