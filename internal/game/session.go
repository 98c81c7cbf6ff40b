// internal/game/session.go
//
// Game session state machine.
// Responsibilities:
//   - Hold the target, the attempt limit, the guess history and the in‑progress input.
//   - Shape input: letters outside the alphabet, overlong input, early Enter
//     and anything after the game ended are silently ignored.
//   - Track state transitions: playing → won/lost. Both are terminal.
//   - Derive read‑only views: board rows and the keyboard aggregate.
//
// A Session has a single owner and is not safe for concurrent mutation.

package game

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrTargetLength is returned when the target does not have the declared length.
	ErrTargetLength = errors.New("game: target length does not match word length")
	// ErrInvalidDimensions is returned for a non-positive length or attempt limit.
	ErrInvalidDimensions = errors.New("game: word length and attempts must be positive")
	// ErrTargetAlphabet is returned when the target uses letters missing from the layout.
	ErrTargetAlphabet = errors.New("game: target contains letters outside the alphabet")
)

// Option configures a Session at construction.
type Option func(*Session)

// WithLayout sets the keyboard layout (and with it the alphabet).
func WithLayout(l Layout) Option {
	return func(s *Session) {
		if !l.zero() {
			s.layout = l
		}
	}
}

// Session holds the state of a single game.
type Session struct {
	target      string
	length      int
	maxAttempts int
	layout      Layout

	history []Guess
	input   []rune
}

// NewSession constructs a session for target.
// The target is lowercased; it must be exactly length letters of the layout.
func NewSession(target string, length, maxAttempts int, opts ...Option) (*Session, error) {
	if length <= 0 || maxAttempts <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &Session{
		target:      strings.ToLower(target),
		length:      length,
		maxAttempts: maxAttempts,
		layout:      QWERTY,
		history:     make([]Guess, 0, maxAttempts),
		input:       make([]rune, 0, length),
	}
	for _, opt := range opts {
		opt(s)
	}
	if utf8.RuneCountInString(s.target) != length {
		return nil, ErrTargetLength
	}
	if !s.layout.ContainsAll(s.target) {
		return nil, ErrTargetAlphabet
	}
	return s, nil
}

// SubmitGuess evaluates raw and appends it to the history.
// It is a no-op, returning false, when the game is over, when raw is not
// exactly Length() characters, or when raw uses letters outside the alphabet.
// On success the in-progress input is cleared.
func (s *Session) SubmitGuess(raw string) bool {
	if s.IsGameOver() {
		return false
	}
	raw = strings.ToLower(raw)
	if utf8.RuneCountInString(raw) != s.length || !s.layout.ContainsAll(raw) {
		return false
	}
	g, err := Evaluate(raw, s.target)
	if err != nil {
		return false
	}
	s.history = append(s.history, g)
	s.input = s.input[:0]
	return true
}

// AppendLetter adds ch (lowercased) to the in-progress input.
// No-op when the game is over, the input is full, or ch is not in the alphabet.
func (s *Session) AppendLetter(ch rune) bool {
	if s.IsGameOver() || len(s.input) >= s.length {
		return false
	}
	ch = unicode.ToLower(ch)
	if !s.layout.Contains(ch) {
		return false
	}
	s.input = append(s.input, ch)
	return true
}

// DeleteLastLetter removes the last letter of the in-progress input.
// No-op when the game is over or the input is empty.
func (s *Session) DeleteLastLetter() bool {
	if s.IsGameOver() || len(s.input) == 0 {
		return false
	}
	s.input = s.input[:len(s.input)-1]
	return true
}

// IsWin reports whether any guess in the history equals the target.
// The whole history is scanned rather than just the last guess.
func (s *Session) IsWin() bool {
	for _, g := range s.history {
		if g.Word() == s.target {
			return true
		}
	}
	return false
}

// IsGameOver reports whether the session reached a terminal state.
func (s *Session) IsGameOver() bool {
	return s.IsWin() || len(s.history) >= s.maxAttempts
}

// State reports playing, won or lost.
func (s *Session) State() State {
	switch {
	case s.IsWin():
		return StateWon
	case len(s.history) >= s.maxAttempts:
		return StateLost
	default:
		return StatePlaying
	}
}

// KeyboardAggregate folds the history into the best status per letter.
// A letter already marked correct is never downgraded.
func (s *Session) KeyboardAggregate() KeyboardAggregate {
	agg := make(KeyboardAggregate)
	for _, g := range s.history {
		for _, t := range g {
			if cur, ok := agg[t.Letter]; !ok || t.Status.Better(cur) {
				agg[t.Letter] = t.Status
			}
		}
	}
	return agg
}

// BoardView returns MaxAttempts() rows of Length() tiles each.
// Rows before len(History()) are submitted guesses, the row at that index
// (if any) holds the in-progress input with empty statuses, later rows are blank.
func (s *Session) BoardView() []Row {
	rows := make([]Row, s.maxAttempts)
	for i := range rows {
		switch {
		case i < len(s.history):
			rows[i] = Row{Kind: RowGuess, Tiles: s.history[i].clone()}
		case i == len(s.history):
			rows[i] = Row{Kind: RowInput, Tiles: s.blankTiles(s.input)}
		default:
			rows[i] = Row{Kind: RowEmpty, Tiles: s.blankTiles(nil)}
		}
	}
	return rows
}

func (s *Session) blankTiles(letters []rune) []Tile {
	tiles := make([]Tile, s.length)
	for i := range tiles {
		tiles[i].Status = StatusEmpty
		if i < len(letters) {
			tiles[i].Letter = string(letters[i])
		}
	}
	return tiles
}

// History returns a copy of the submitted guesses in order.
func (s *Session) History() []Guess {
	out := make([]Guess, len(s.history))
	for i, g := range s.history {
		out[i] = g.clone()
	}
	return out
}

// Input returns the in-progress input.
func (s *Session) Input() string { return string(s.input) }

// Remaining returns how many guesses may still be submitted.
func (s *Session) Remaining() int {
	if s.IsGameOver() {
		return 0
	}
	return s.maxAttempts - len(s.history)
}

func (s *Session) Length() int      { return s.length }
func (s *Session) MaxAttempts() int { return s.maxAttempts }
func (s *Session) Layout() Layout   { return s.layout }

// Target returns the hidden word. Callers decide when to reveal it.
func (s *Session) Target() string { return s.target }
