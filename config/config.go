package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Move source kinds the CLI knows how to wire up.
const (
	SourceInteractive = "interactive"
	SourceRandom      = "random"
)

// Player configures one seat at the board.
type Player struct {
	Name   string `yaml:"name" env:"NAME"`
	Source string `yaml:"source" env:"SOURCE"`
}

// Config is the CLI configuration. Values come from defaults, then an
// optional YAML file, then MANCALA_* environment variables; positional
// command-line names override last (handled in main).
type Config struct {
	Player0  Player `yaml:"player0" envPrefix:"MANCALA_P0_"`
	Player1  Player `yaml:"player1" envPrefix:"MANCALA_P1_"`
	LogLevel string `yaml:"log_level" env:"MANCALA_LOG_LEVEL"`
}

// Default returns the configuration used when nothing is specified: two
// interactive players and info-level logging.
func Default() Config {
	return Config{
		Player0:  Player{Name: "Player 1", Source: SourceInteractive},
		Player1:  Player{Name: "Player 2", Source: SourceInteractive},
		LogLevel: "info",
	}
}

// Load builds the configuration from the file at path (skipped when path
// is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	for _, p := range []Player{cfg.Player0, cfg.Player1} {
		switch p.Source {
		case SourceInteractive, SourceRandom:
		default:
			return Config{}, fmt.Errorf("unknown move source %q", p.Source)
		}
	}
	return cfg, nil
}

// Names returns both player names in seat order.
func (c Config) Names() [2]string {
	return [2]string{c.Player0.Name, c.Player1.Name}
}
