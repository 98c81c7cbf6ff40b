// internal/words/words.go
//
// Provides answer list management for target selection.
//
// Responsibilities:
//   - Load the answer list from an environment-provided file or fall back to
//     the embedded default in the assets package.
//   - Keep only words that fit the configured word length and keyboard layout.
//   - Supply RandomAnswer, At, IsAnswer and Stats.
//
// Guesses are never checked against these lists; they only choose targets.
//
// Source selection (Load):
//   1. If path is set, read one word per line from that file.
//   2. Otherwise use assets.AnswersList().
//
// Constraints:
//   • Words must be exactly `length` letters of the layout.
//   • Lists are normalized to lowercase and de-duplicated, order preserved.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// ErrEmpty is returned by Load when no word survives filtering.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable, filtered answer list.
type List struct {
	length  int
	answers []string
	set     map[string]struct{}
}

// Load reads answers from path (or the embedded default when path is empty)
// and keeps the words usable with the given length and layout.
func Load(path string, length int, layout game.Layout) (*List, error) {
	var (
		raw []string
		err error
	)
	if path != "" {
		raw, err = readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("read answers %s: %w", path, err)
		}
	} else {
		raw, err = assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("read embedded answers: %w", err)
		}
	}
	return New(raw, length, layout)
}

// New filters raw into a List.
func New(raw []string, length int, layout game.Layout) (*List, error) {
	l := &List{length: length, set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = strings.TrimSpace(strings.ToLower(w))
		if utf8.RuneCountInString(w) != length || !layout.ContainsAll(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// readWordFile loads one word per line from a file, skipping blanks and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// RandomAnswer returns a cryptographically random answer.
func (l *List) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// At returns the answer at index i modulo the list length.
func (l *List) At(i int) string {
	n := len(l.answers)
	return l.answers[((i%n)+n)%n]
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of answers.
func (l *List) Len() int { return len(l.answers) }

// WordLength returns the length every answer has.
func (l *List) WordLength() int { return l.length }

// Stats returns list counts for diagnostics.
func (l *List) Stats() map[string]int {
	return map[string]int{"answers": len(l.answers), "length": l.length}
}
