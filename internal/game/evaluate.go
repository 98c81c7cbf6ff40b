// internal/game/evaluate.go
//
// Guess evaluation.
// Evaluate is pure: it never touches a Session and has no side effects.

package game

import "errors"

// ErrLengthMismatch is returned by Evaluate when guess and target differ in length.
var ErrLengthMismatch = errors.New("game: guess and target lengths differ")

// Evaluate scores guess against target using the two‑pass algorithm.
//
// Pass 1:
//   - Mark every position where guess and target agree as correct
//     and consume that target position.
//
// Pass 2:
//   - For each remaining guess letter, consume the leftmost unconsumed
//     target position holding the same letter and mark misplaced;
//     mark wrong when none is left.
//
// A target letter satisfies at most one guess letter, so repeated letters
// are only credited as often as they occur in the target, and an exact
// match is never stolen by an earlier misplaced copy.
//
// Lengths are compared in characters. Mismatched lengths are rejected,
// never truncated or padded.
func Evaluate(guess, target string) (Guess, error) {
	g := []rune(guess)
	t := []rune(target)
	if len(g) != len(t) {
		return nil, ErrLengthMismatch
	}

	res := make(Guess, len(g))
	consumed := make([]bool, len(t))

	// First pass: exact positions.
	for i := range g {
		res[i].Letter = string(g[i])
		if g[i] == t[i] {
			res[i].Status = StatusCorrect
			consumed[i] = true
		}
	}

	// Second pass: misplaced or wrong.
	for i := range g {
		if res[i].Status == StatusCorrect {
			continue
		}
		res[i].Status = StatusWrong
		for j := range t {
			if !consumed[j] && t[j] == g[i] {
				res[i].Status = StatusMisplaced
				consumed[j] = true
				break
			}
		}
	}
	return res, nil
}
