package tui

import (
	"errors"
	"io"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// ErrQuit is returned by Run when the player quits before the game ends.
var ErrQuit = errors.New("tui: quit")

// Run reads key chunks from in, feeds them to s one at a time and redraws
// out after every change, until the game is over, the player quits or in
// is exhausted (io.EOF is returned as-is).
func Run(in io.Reader, out io.Writer, s *game.Session, theme Theme, wipe bool) error {
	if err := Render(out, s, theme, wipe); err != nil {
		return err
	}
	buf := make([]byte, 64)
	for !s.IsGameOver() {
		n, err := in.Read(buf)
		for _, key := range DecodeKeys(buf[:n]) {
			if key == KeyQuit {
				return ErrQuit
			}
			if s.HandleKey(key) {
				if err := Render(out, s, theme, wipe); err != nil {
					return err
				}
			}
			if s.IsGameOver() {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
