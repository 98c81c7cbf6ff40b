// Command wordle-term plays one game in the terminal.
//
// Keys go straight to the game: letters type, Enter submits, Backspace
// deletes, Esc or Ctrl-C quits. Settings come from the same config as the
// server (WORDLE_CONFIG, WORD_LENGTH, MAX_ATTEMPTS, KEYBOARD_ROWS, ...).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/tui"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func main() {
	var (
		dailyMode = flag.Bool("daily", false, "play today's word instead of a random one")
		answer    = flag.String("answer", "", "fixed answer (for testing)")
		plain     = flag.Bool("plain", false, "no colours")
	)
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal().Err(err).Msg("keyboard layout")
	}

	target := *answer
	if target == "" {
		list, err := words.Load(cfg.Game.AnswersFile, cfg.Game.WordLength, layout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		if *dailyMode {
			p := daily.Pick(time.Now(), cfg.Daily.Salt, list)
			fmt.Printf("Daily puzzle #%d (%s)\n", p.Number, p.Date)
			target = p.Word
		} else {
			target = list.RandomAnswer()
		}
	}

	sess, err := game.NewSession(target, cfg.Game.WordLength, cfg.Game.MaxAttempts, game.WithLayout(layout))
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}

	theme := tui.ANSI
	if *plain {
		theme = tui.Plain
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input: no raw mode, no screen clearing.
		err = tui.Run(os.Stdin, os.Stdout, sess, theme, false)
	} else {
		state, rerr := term.MakeRaw(fd)
		if rerr != nil {
			log.Fatal().Err(rerr).Msg("enter raw mode")
		}
		err = tui.Run(os.Stdin, os.Stdout, sess, theme, true)
		_ = term.Restore(fd, state)
	}

	switch {
	case err == nil:
	case errors.Is(err, tui.ErrQuit), errors.Is(err, io.EOF):
		fmt.Printf("\nThe word was %s.\n", sess.Target())
	default:
		log.Fatal().Err(err).Msg("terminal")
	}
}
