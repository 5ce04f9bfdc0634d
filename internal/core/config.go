package core

// Mode selects how food placement is decided.
type Mode string

const (
	// ModeLocal places food at random empty cells, no AI involved.
	ModeLocal Mode = "local"
	// ModeAI asks the coach for a placement and falls back to random
	// when the suggestion is missing or invalid.
	ModeAI Mode = "ai"
)

// RuntimeConfig contains configuration passed to a game session at
// construction. Seed 0 means the platform substitutes the current time.
type RuntimeConfig struct {
	BoardW   int   // Board width in cells, including the wall ring
	BoardH   int   // Board height in cells, including the wall ring
	TickMS   int   // Simulation tick period in milliseconds
	Seed     int64 // RNG seed for deterministic gameplay
	Mode     Mode  // Placement mode
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:  40,
		BoardH:  20,
		TickMS:  150,
		Mode:    ModeLocal,
		ScreenW: 80,
		ScreenH: 24,
	}
}
