package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate clears every variable Load reads and moves into an empty dir,
// so a developer's .env cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORDLE_CONFIG", "PORT", "LOG_LEVEL", "WORDS_ANSWERS_FILE", "STORE_DSN",
		"JWT_SECRET", "DAILY_SALT", "CLIENT_ORIGIN", "KEYBOARD_ROWS",
		"WORD_LENGTH", "MAX_ATTEMPTS", "JWT_EXPIRES_HOURS",
	} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != "5175" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Game.WordLength != 5 || cfg.Game.MaxAttempts != 6 {
		t.Errorf("Game = %+v", cfg.Game)
	}
	if cfg.Store.DSN != "" {
		t.Errorf("Store.DSN should default to memory, got %q", cfg.Store.DSN)
	}
	if cfg.TokenTTL() != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_TOMLAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "wordle.toml")
	body := `
port = "9000"

[game]
word_length = 6
max_attempts = 8
keyboard_rows = ["azertyuiop", "qsdfghjklm", "wxcvbn"]

[store]
dsn = "./data/games.db"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDLE_CONFIG", path)
	t.Setenv("MAX_ATTEMPTS", "4")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Game.WordLength != 6 {
		t.Errorf("WordLength = %d", cfg.Game.WordLength)
	}
	if cfg.Game.MaxAttempts != 4 {
		t.Errorf("env should override file: MaxAttempts = %d", cfg.Game.MaxAttempts)
	}
	if cfg.Store.DSN != "./data/games.db" {
		t.Errorf("DSN = %q", cfg.Store.DSN)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	l, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !strings.HasPrefix(l.Alphabet(), "azerty") {
		t.Errorf("Alphabet = %q", l.Alphabet())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad int", map[string]string{"WORD_LENGTH": "five"}, "WORD_LENGTH"},
		{"zero attempts", map[string]string{"MAX_ATTEMPTS": "0"}, "max_attempts"},
		{"duplicate keys", map[string]string{"KEYBOARD_ROWS": "abc,cde"}, "keyboard_rows"},
		{"missing file", map[string]string{"WORDLE_CONFIG": "/nonexistent/wordle.toml"}, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
