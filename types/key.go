package types

// Key is a 64-bit Zobrist hash identifying a position up to placement,
// side to move, castling rights and en-passant file.
type Key uint64
