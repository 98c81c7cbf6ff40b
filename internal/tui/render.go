package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Theme maps a status to a printf format taking one letter.
type Theme map[game.LetterStatus]string

// ANSI colours tiles like the classic game: green, yellow, grey.
var ANSI = Theme{
	game.StatusCorrect:   "\x1B[42m\x1B[30m %s \x1B[0m",
	game.StatusMisplaced: "\x1B[43m\x1B[30m %s \x1B[0m",
	game.StatusWrong:     "\x1B[100m\x1B[37m %s \x1B[0m",
	game.StatusEmpty:     " %s ",
}

// Plain marks statuses with brackets, for dumb terminals and tests.
var Plain = Theme{
	game.StatusCorrect:   "[%s]",
	game.StatusMisplaced: "(%s)",
	game.StatusWrong:     " %s ",
	game.StatusEmpty:     " %s ",
}

const (
	clearScreen = "\x1B[H\x1B[2J"
	newline     = "\r\n" // raw mode does not translate \n
)

func (t Theme) tile(tile game.Tile) string {
	letter := strings.ToUpper(tile.Letter)
	if letter == "" {
		letter = "_"
	}
	format, ok := t[tile.Status]
	if !ok {
		format = t[game.StatusEmpty]
	}
	return fmt.Sprintf(format, letter)
}

// Render draws the whole screen: board, keyboard and a status line.
func Render(w io.Writer, s *game.Session, theme Theme, wipe bool) error {
	var b strings.Builder
	if wipe {
		b.WriteString(clearScreen)
	}
	for _, row := range s.BoardView() {
		b.WriteString("  ")
		for _, tile := range row.Tiles {
			b.WriteString(theme.tile(tile))
		}
		b.WriteString(newline)
	}
	b.WriteString(newline)

	agg := s.KeyboardAggregate()
	for i, row := range s.Layout().Rows() {
		b.WriteString(strings.Repeat(" ", i+1))
		for _, r := range row {
			letter := string(r)
			b.WriteString(theme.tile(game.Tile{Letter: letter, Status: agg.Status(letter)}))
		}
		b.WriteString(newline)
	}
	b.WriteString(newline)
	b.WriteString(StatusLine(s))
	b.WriteString(newline)

	_, err := io.WriteString(w, b.String())
	return err
}

// StatusLine describes the session state in one line.
func StatusLine(s *game.Session) string {
	switch s.State() {
	case game.StateWon:
		n := len(s.History())
		if n == 1 {
			return "Solved in 1 guess!"
		}
		return fmt.Sprintf("Solved in %d guesses!", n)
	case game.StateLost:
		return fmt.Sprintf("Out of guesses. The word was %s.", strings.ToUpper(s.Target()))
	default:
		return fmt.Sprintf("%d of %d guesses left. Enter submits, Backspace deletes, Esc quits.",
			s.Remaining(), s.MaxAttempts())
	}
}
