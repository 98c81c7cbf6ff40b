package game

import (
	"errors"
	"fmt"
)

// ErrSnapshotReplay is returned by Restore when a stored guess is rejected on replay.
var ErrSnapshotReplay = errors.New("game: snapshot guess rejected on replay")

// Snapshot is the minimal state needed to rebuild a Session.
// Feedback is not stored; it is recomputed on Restore.
type Snapshot struct {
	Target      string   `json:"target"`
	Length      int      `json:"length"`
	MaxAttempts int      `json:"maxAttempts"`
	Layout      []string `json:"layout,omitempty"`
	Guesses     []string `json:"guesses"`
	Input       string   `json:"input"`
}

// Snapshot exports the session.
func (s *Session) Snapshot() Snapshot {
	guesses := make([]string, len(s.history))
	for i, g := range s.history {
		guesses[i] = g.Word()
	}
	return Snapshot{
		Target:      s.target,
		Length:      s.length,
		MaxAttempts: s.maxAttempts,
		Layout:      s.layout.Rows(),
		Guesses:     guesses,
		Input:       string(s.input),
	}
}

// Restore rebuilds a session by replaying the snapshot through the public
// mutators, so a restored session obeys the same rules as a live one.
// Options are applied after the snapshot's own layout.
func Restore(snap Snapshot, opts ...Option) (*Session, error) {
	if len(snap.Layout) > 0 {
		l, err := ParseLayout(snap.Layout)
		if err != nil {
			return nil, fmt.Errorf("restore layout: %w", err)
		}
		opts = append([]Option{WithLayout(l)}, opts...)
	}
	s, err := NewSession(snap.Target, snap.Length, snap.MaxAttempts, opts...)
	if err != nil {
		return nil, err
	}
	for i, g := range snap.Guesses {
		if !s.SubmitGuess(g) {
			return nil, fmt.Errorf("guess %d %q: %w", i, g, ErrSnapshotReplay)
		}
	}
	for _, r := range snap.Input {
		if !s.AppendLetter(r) {
			return nil, fmt.Errorf("input %q: %w", snap.Input, ErrSnapshotReplay)
		}
	}
	return s, nil
}
