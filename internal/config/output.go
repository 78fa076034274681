package config

// OutputConfig holds settings for exporting the played game.
type OutputConfig struct {
	// PGNFile receives the game in PGN ("" = no PGN export)
	PGNFile string

	// JSONFormat writes a JSON summary of the game to OutputFile
	JSONFormat bool

	// MaxLineLength is the maximum movetext line length for PGN output
	MaxLineLength uint

	// Event and Site fill the PGN tags of the same name
	Event string
	Site  string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		Event:         "Casual game",
		Site:          "?",
	}
}
