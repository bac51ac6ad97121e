/*
 * Package config loads the process-wide Settings value from a TOML file
 * once at startup, the way config/config.go does in the teacher
 * repository (toml.DecodeFile, idempotent Setup()). A missing or
 * unreadable config file is never fatal — it only means the compiled-in
 * defaults below stay in effect, logged as a diagnostic by the caller.
 */
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/fkopp/gambit/types"
)

// Settings is the global configuration, populated by Setup.
var Settings = defaults()

var initialized = false

type conf struct {
	Log    LogConfig
	Search SearchConfig
	Eval   EvalConfig
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level       int  `toml:"level"`
	SearchLevel int  `toml:"search_level"`
	UciTrace    bool `toml:"uci_trace"`
}

// SearchConfig exposes the search's tuning thresholds as configuration
// rather than buried constants.
type SearchConfig struct {
	AspirationWindow  int `toml:"aspiration_window"`
	NullMoveMinDepth  int `toml:"null_move_min_depth"`
	LmrMinDepth       int `toml:"lmr_min_depth"`
	LmrMinMoveNumber  int `toml:"lmr_min_move_number"`
	MaxDepth          int `toml:"max_depth"`
}

// EvalConfig holds the material weights used by evaluator.Material.
type EvalConfig struct {
	PawnValue   int `toml:"pawn_value"`
	KnightValue int `toml:"knight_value"`
	BishopValue int `toml:"bishop_value"`
	RookValue   int `toml:"rook_value"`
	QueenValue  int `toml:"queen_value"`
}

// PieceValues returns the material table indexed by types.PieceType
// (King is priced at a fixed sentinel 10000, never tunable — it never
// actually appears as a capturable material term).
func (e EvalConfig) PieceValues() [types.PieceTypeLength]int {
	return [types.PieceTypeLength]int{
		e.PawnValue, e.KnightValue, e.BishopValue, e.RookValue, e.QueenValue, 10000,
	}
}

func defaults() conf {
	return conf{
		Log: LogConfig{Level: 2, SearchLevel: 2, UciTrace: false},
		Search: SearchConfig{
			AspirationWindow: 50,
			NullMoveMinDepth: 3,
			LmrMinDepth:      3,
			LmrMinMoveNumber: 4,
			MaxDepth:         64,
		},
		Eval: EvalConfig{
			PawnValue:   100,
			KnightValue: 300,
			BishopValue: 350,
			RookValue:   500,
			QueenValue:  900,
		},
	}
}

// Setup reads the configuration file at path into Settings, falling back
// silently to the compiled-in defaults (already in Settings) if it
// cannot be read or parsed. Idempotent: a second call is a no-op.
func Setup(path string) error {
	if initialized {
		return nil
	}
	initialized = true
	if path == "" {
		return nil
	}
	_, err := toml.DecodeFile(path, &Settings)
	return err
}
