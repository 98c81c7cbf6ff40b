// Package tui is a raw-mode terminal front end for a game.Session:
// it turns terminal bytes into key names and draws the board with ANSI colours.
package tui

import (
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// KeyQuit is emitted for Ctrl-C, Ctrl-D and a lone Esc.
const KeyQuit = "Quit"

// DecodeKeys converts one chunk read from a raw terminal into key names
// understood by game.Session.HandleKey, plus KeyQuit.
// Escape sequences (arrows, function keys) arrive whole in a single read
// and are dropped.
func DecodeKeys(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); {
		b := buf[i]
		switch {
		case b == '\r' || b == '\n':
			keys = append(keys, game.KeyEnter)
			i++
		case b == 0x7f || b == 0x08:
			keys = append(keys, game.KeyBackspace)
			i++
		case b == 0x03 || b == 0x04:
			keys = append(keys, KeyQuit)
			i++
		case b == 0x1b:
			if i+1 == len(buf) {
				keys = append(keys, KeyQuit)
				i++
				continue
			}
			i = skipEscape(buf, i)
		default:
			r, size := utf8.DecodeRune(buf[i:])
			i += size
			if r != utf8.RuneError && unicode.IsLetter(r) {
				keys = append(keys, string(r))
			}
		}
	}
	return keys
}

// skipEscape returns the index just past the escape sequence starting at i.
func skipEscape(buf []byte, i int) int {
	i++ // ESC
	if i < len(buf) && (buf[i] == '[' || buf[i] == 'O') {
		i++
		for i < len(buf) {
			b := buf[i]
			i++
			if b >= 0x40 && b <= 0x7e {
				break
			}
		}
		return i
	}
	// Alt+key: ESC followed by one character.
	_, size := utf8.DecodeRune(buf[i:])
	return i + size
}
