package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the battle simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level"`

	// Battle rules
	TurnCap      int `yaml:"turn_cap"`
	WeatherTurns int `yaml:"weather_turns"`

	// Batch
	Seed    uint64 `yaml:"seed"`
	Battles int    `yaml:"battles"`
	Workers int    `yaml:"workers"`

	// Roster files
	PlayerRoster string `yaml:"player_roster"`
	EnemyRoster  string `yaml:"enemy_roster"`

	// Persistence
	StoreResults bool           `yaml:"store_results"`
	Database     DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:     "info",
		TurnCap:      100,
		WeatherTurns: 5,
		Seed:         1,
		Battles:      100,
		Workers:      4,
		PlayerRoster: "config/rosters/player.yaml",
		EnemyRoster:  "config/rosters/enemy.yaml",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "battlesim",
			Password: "battlesim",
			DBName:   "battlesim",
			SSLMode:  "disable",
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (c Simulator) Validate() error {
	switch {
	case c.TurnCap <= 0:
		return fmt.Errorf("turn_cap must be positive, got %d", c.TurnCap)
	case c.WeatherTurns <= 0:
		return fmt.Errorf("weather_turns must be positive, got %d", c.WeatherTurns)
	case c.Battles <= 0:
		return fmt.Errorf("battles must be positive, got %d", c.Battles)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
