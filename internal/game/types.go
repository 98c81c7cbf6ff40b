// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - LetterStatus: per-letter feedback (correct/misplaced/wrong/empty).
//   - Tile, Guess: one evaluated letter and one evaluated word.
//   - Row, RowKind: what a board renderer draws for each attempt.
//   - KeyboardAggregate: best-known status per letter.
//   - State: playing → won/lost.

package game

// LetterStatus represents the feedback for a single letter.
// Possible values:
//   - "correct":   letter is in the target at this position.
//   - "misplaced": letter is in the target at another, unconsumed position.
//   - "wrong":     no unconsumed occurrence of the letter is left in the target.
//   - "empty":     no information yet (unsubmitted or unguessed).
type LetterStatus string

const (
	StatusCorrect   LetterStatus = "correct"
	StatusMisplaced LetterStatus = "misplaced"
	StatusWrong     LetterStatus = "wrong"
	StatusEmpty     LetterStatus = "empty"
)

// Rank orders statuses by quality: correct > misplaced > wrong > empty.
// Unknown values rank with empty.
func (s LetterStatus) Rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusMisplaced:
		return 2
	case StatusWrong:
		return 1
	default:
		return 0
	}
}

// Better reports whether s carries strictly more information than o.
func (s LetterStatus) Better(o LetterStatus) bool { return s.Rank() > o.Rank() }

// Tile is one letter together with its status.
// Letter is a single character, or "" for a blank tile.
type Tile struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// Guess is a submitted word with one tile per position.
// Treat it as immutable: Session hands out copies.
type Guess []Tile

// Word joins the letters of g back into a string.
func (g Guess) Word() string {
	b := make([]byte, 0, len(g))
	for _, t := range g {
		b = append(b, t.Letter...)
	}
	return string(b)
}

// Solved reports whether every tile is correct.
func (g Guess) Solved() bool {
	if len(g) == 0 {
		return false
	}
	for _, t := range g {
		if t.Status != StatusCorrect {
			return false
		}
	}
	return true
}

func (g Guess) clone() Guess {
	out := make(Guess, len(g))
	copy(out, g)
	return out
}

// RowKind tells a renderer where a board row comes from.
type RowKind string

const (
	RowGuess RowKind = "guess" // submitted, carries feedback
	RowInput RowKind = "input" // in-progress, all tiles empty
	RowEmpty RowKind = "empty" // attempt not reached yet
)

// Row is one line of the board.
type Row struct {
	Kind  RowKind `json:"kind"`
	Tiles []Tile  `json:"tiles"`
}

// KeyboardAggregate maps a letter to the best status observed for it.
// Letters that were never guessed are absent.
type KeyboardAggregate map[string]LetterStatus

// Status returns the aggregate status of letter, or StatusEmpty.
func (k KeyboardAggregate) Status(letter string) LetterStatus {
	if s, ok := k[letter]; ok {
		return s
	}
	return StatusEmpty
}

// State is the coarse state of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }
