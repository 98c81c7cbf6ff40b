package game

import "unicode/utf8"

// Key names understood by HandleKey besides single letters.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
)

// HandleKey routes one key event to the matching mutator:
// Enter submits the current input, Backspace deletes a letter and a
// single character is appended. Anything else is ignored, as is every
// key once the game is over. It reports whether the session changed.
func (s *Session) HandleKey(key string) bool {
	if s.IsGameOver() {
		return false
	}
	switch key {
	case KeyEnter:
		return s.SubmitGuess(s.Input())
	case KeyBackspace:
		return s.DeleteLastLetter()
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return false
	}
	return s.AppendLetter(r)
}
