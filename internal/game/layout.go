// internal/game/layout.go
//
// Keyboard layout and alphabet.
// The alphabet of a session is exactly the set of letters on its layout,
// so renderers and input validation can never disagree.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Layout is an immutable keyboard layout: rows of lowercase letters.
type Layout struct {
	rows     []string
	alphabet string
	set      map[rune]struct{}
}

// QWERTY is the default layout.
var QWERTY = mustLayout([]string{"qwertyuiop", "asdfghjkl", "zxcvbnm"})

var errEmptyLayout = errors.New("game: layout has no letters")

// ParseLayout validates rows and builds a Layout.
// Rows are trimmed and lowercased; blank rows are dropped.
// Letters must be unique across the whole layout.
func ParseLayout(rows []string) (Layout, error) {
	l := Layout{set: make(map[rune]struct{})}
	var all strings.Builder
	for _, row := range rows {
		row = strings.ToLower(strings.TrimSpace(row))
		if row == "" {
			continue
		}
		for _, r := range row {
			if !unicode.IsLetter(r) {
				return Layout{}, fmt.Errorf("game: layout key %q is not a letter", r)
			}
			if _, dup := l.set[r]; dup {
				return Layout{}, fmt.Errorf("game: layout key %q appears twice", r)
			}
			l.set[r] = struct{}{}
		}
		l.rows = append(l.rows, row)
		all.WriteString(row)
	}
	if len(l.set) == 0 {
		return Layout{}, errEmptyLayout
	}
	l.alphabet = all.String()
	return l, nil
}

func mustLayout(rows []string) Layout {
	l, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return l
}

// Rows returns a copy of the layout rows.
func (l Layout) Rows() []string {
	out := make([]string, len(l.rows))
	copy(out, l.rows)
	return out
}

// Alphabet returns all letters in row order.
func (l Layout) Alphabet() string { return l.alphabet }

// Contains reports whether r is a key of the layout.
func (l Layout) Contains(r rune) bool {
	_, ok := l.set[r]
	return ok
}

// ContainsAll reports whether every character of s is a key of the layout.
func (l Layout) ContainsAll(s string) bool {
	for _, r := range s {
		if !l.Contains(r) {
			return false
		}
	}
	return true
}

// zero reports whether l was never initialised.
func (l Layout) zero() bool { return l.set == nil }
