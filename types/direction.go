package types

// Direction is a square delta. Because square 0 is a8 and square 63 is h1
// (rank decreases as the square index increases), North is the *negative*
// delta here — the opposite sign convention from an a1=0 board.
type Direction int

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)
