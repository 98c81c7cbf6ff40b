// Package daily picks a deterministic target word per calendar day.
//
// The day is always taken in UTC, so every player sees the same word
// regardless of their time zone. The salt keeps the sequence unguessable
// from the answer list alone.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Epoch is day number 0.
var Epoch = time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC)

// Answers is the part of an answer list Pick needs.
type Answers interface {
	Len() int
	At(i int) string
}

// Puzzle is the word of one day.
type Puzzle struct {
	Date   string `json:"date"`   // YYYY-MM-DD, UTC
	Number int    `json:"number"` // days since Epoch
	Word   string `json:"-"`
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Number returns the day number of t counted from Epoch. Days before Epoch are negative.
func Number(t time.Time) int {
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}

// WordIndex returns HMAC-SHA256(salt, YYYY-MM-DD) mod answersLen,
// or 0 when there are no answers.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Pick returns the puzzle for the day containing t.
func Pick(t time.Time, salt string, answers Answers) Puzzle {
	return Puzzle{
		Date:   DateKey(t),
		Number: Number(t),
		Word:   answers.At(WordIndex(t, salt, answers.Len())),
	}
}
