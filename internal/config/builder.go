package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWhite sets the White player.
func (b *ConfigBuilder) WithWhite(p PlayerConfig) *ConfigBuilder {
	b.cfg.White = p
	return b
}

// WithBlack sets the Black player.
func (b *ConfigBuilder) WithBlack(p PlayerConfig) *ConfigBuilder {
	b.cfg.Black = p
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMaxPlies limits the length of the game.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.MaxPlies = plies
	return b
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Games = n
	return b
}

// WithPGNFile exports the game in PGN to path.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.Output.PGNFile = path
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the maximum PGN line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithPerft sets the perft depth, divide mode and worker count.
func (b *ConfigBuilder) WithPerft(depth int, divide bool, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	b.cfg.Perft.Workers = workers
	return b
}

// WithReference enables the reference perft count.
func (b *ConfigBuilder) WithReference(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Reference = enabled
	return b
}

// WithInput sets the stream interactive players read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithClearScreen controls whether the terminal display clears the screen.
func (b *ConfigBuilder) WithClearScreen(clear bool) *ConfigBuilder {
	b.cfg.ClearScreen = clear
	return b
}
