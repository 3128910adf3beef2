package config

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Shell  ShellConfig  `mapstructure:"shell" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	// ExitWord typed at any prompt ends the shell.
	ExitWord string `mapstructure:"exit_word" validate:"required"`
}

// OutputConfig controls how one-shot results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json yaml"`
}
