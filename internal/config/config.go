// Package config loads game and server settings.
//
// Precedence, lowest first: built-in defaults, the TOML file named by
// WORDLE_CONFIG, environment variables (a .env file is loaded first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Config holds all settings.
type Config struct {
	Port     string `toml:"port"`
	LogLevel string `toml:"log_level"`

	Game   GameConfig   `toml:"game"`
	Store  StoreConfig  `toml:"store"`
	Auth   AuthConfig   `toml:"auth"`
	Daily  DailyConfig  `toml:"daily"`
	Client ClientConfig `toml:"client"`
}

type GameConfig struct {
	WordLength   int      `toml:"word_length"`
	MaxAttempts  int      `toml:"max_attempts"`
	KeyboardRows []string `toml:"keyboard_rows"`
	AnswersFile  string   `toml:"answers_file"`
}

type StoreConfig struct {
	// DSN of the SQLite database; empty keeps games in memory.
	DSN string `toml:"dsn"`
}

type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret"`
	ExpiresHours int    `toml:"expires_hours"`
}

type DailyConfig struct {
	Salt string `toml:"salt"`
}

type ClientConfig struct {
	Origin string `toml:"origin"`
}

// Default returns config with sensible defaults.
func Default() Config {
	return Config{
		Port:     "5175",
		LogLevel: "info",
		Game: GameConfig{
			WordLength:   5,
			MaxAttempts:  6,
			KeyboardRows: game.QWERTY.Rows(),
		},
		Auth: AuthConfig{
			JWTSecret:    "dev_secret_change_me",
			ExpiresHours: 24,
		},
		Daily:  DailyConfig{Salt: "local_dev_salt"},
		Client: ClientConfig{Origin: "http://localhost:5173"},
	}
}

// Load builds the config from defaults, the optional TOML file and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if p := os.Getenv("WORDLE_CONFIG"); p != "" {
		if _, err := toml.DecodeFile(p, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", p, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	setStr(&c.Port, "PORT")
	setStr(&c.LogLevel, "LOG_LEVEL")
	setStr(&c.Game.AnswersFile, "WORDS_ANSWERS_FILE")
	setStr(&c.Store.DSN, "STORE_DSN")
	setStr(&c.Auth.JWTSecret, "JWT_SECRET")
	setStr(&c.Daily.Salt, "DAILY_SALT")
	setStr(&c.Client.Origin, "CLIENT_ORIGIN")
	if v := os.Getenv("KEYBOARD_ROWS"); v != "" {
		c.Game.KeyboardRows = strings.Split(v, ",")
	}
	for _, kv := range []struct {
		key string
		dst *int
	}{
		{"WORD_LENGTH", &c.Game.WordLength},
		{"MAX_ATTEMPTS", &c.Game.MaxAttempts},
		{"JWT_EXPIRES_HOURS", &c.Auth.ExpiresHours},
	} {
		if err := setInt(kv.dst, kv.key); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Game.WordLength <= 0 {
		return fmt.Errorf("config: word_length must be positive, got %d", c.Game.WordLength)
	}
	if c.Game.MaxAttempts <= 0 {
		return fmt.Errorf("config: max_attempts must be positive, got %d", c.Game.MaxAttempts)
	}
	if c.Auth.ExpiresHours <= 0 {
		return fmt.Errorf("config: expires_hours must be positive, got %d", c.Auth.ExpiresHours)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: jwt_secret must not be empty")
	}
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("config: keyboard_rows: %w", err)
	}
	return nil
}

// Layout parses the configured keyboard rows.
func (c Config) Layout() (game.Layout, error) {
	return game.ParseLayout(c.Game.KeyboardRows)
}

// TokenTTL is the lifetime of a game token.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.ExpiresHours) * time.Hour
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
