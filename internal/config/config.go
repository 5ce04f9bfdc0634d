// Package config provides YAML-based configuration loading for
// snakecoach: board geometry, tick rate and the AI endpoint settings.
package config

// Config is the root configuration document.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Game  GameConfig  `yaml:"game"`
	AI    AIConfig    `yaml:"ai"`
}

// BoardConfig defines the playing field, wall ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig defines simulation timing.
type GameConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// AIConfig defines how to reach the coach endpoint. The API key itself is
// never stored in the file; APIKeyEnv names the environment variable that
// holds it.
type AIConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Game: GameConfig{
			TickMS: 150,
		},
		AI: AIConfig{
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "SNAKECOACH_API_KEY",
			TimeoutMS: 8000,
		},
	}
}
