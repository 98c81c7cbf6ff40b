// apps/go-wordle/main.go
//
// Entrypoint for the Wordle game server.
//   - Loads config (.env, optional TOML file, env overrides).
//   - Loads the answer list for the configured word length and keyboard.
//   - Opens SQLite when STORE_DSN is set, otherwise keeps games in memory.
//   - Starts the chi HTTP server.

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid keyboard layout")
	}
	list, err := words.Load(cfg.Game.AnswersFile, cfg.Game.WordLength, layout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("answers", list.Len()).Int("length", list.WordLength()).Msg("word list loaded")

	var st store.Store
	if cfg.Store.DSN != "" {
		st, err = store.OpenSQLite(cfg.Store.DSN)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.Store.DSN).Msg("failed to open store")
		}
	} else {
		st = store.NewMemoryStore()
	}
	defer st.Close()

	srv, err := httpserver.New(cfg, st, list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}
	log.Info().Str("port", cfg.Port).Msg("starting go-wordle")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}
